package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("loading post: %w", NotFound("Post not found"))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.True(t, Is(Validation("text is required"), KindValidation))
	assert.False(t, Is(nil, KindValidation))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.Status())
	assert.Equal(t, http.StatusForbidden, KindAuthorization.Status())
	assert.Equal(t, http.StatusNotFound, KindNotFound.Status())
	assert.Equal(t, http.StatusInternalServerError, KindUpload.Status())
	assert.Equal(t, http.StatusInternalServerError, KindUnknown.Status())
}

func TestWrapKeepsMessage(t *testing.T) {
	err := Wrap(errors.New("connection refused"))
	assert.Equal(t, "connection refused", err.Error())
	assert.Equal(t, KindUnknown, err.Kind)

	same := Authorization("Not authorized to delete this post")
	assert.Same(t, same, Wrap(same))
	assert.Nil(t, Wrap(nil))
}

func TestUploadUnwraps(t *testing.T) {
	cause := errors.New("timeout")
	err := Upload(cause, "Image upload failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Image upload failed", err.Error())
}
