package cloudinary

import (
	"context"
	"errors"
	"io"
	"testing"

	"socialfeed/internal/ports/media"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	uploaded      []byte
	uploadParams  uploader.UploadParams
	uploadResult  *uploader.UploadResult
	uploadErr     error
	destroyParams uploader.DestroyParams
	destroyResult *uploader.DestroyResult
	destroyErr    error
}

func (f *fakeAPI) Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.uploadParams = params
	if r, ok := file.(io.Reader); ok {
		f.uploaded, _ = io.ReadAll(r)
	}
	return f.uploadResult, f.uploadErr
}

func (f *fakeAPI) Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyParams = params
	return f.destroyResult, f.destroyErr
}

func TestImageStore_Upload(t *testing.T) {
	fake := &fakeAPI{uploadResult: &uploader.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/image/upload/posts/abc.jpg",
		PublicID:  "posts/abc",
	}}
	store := &ImageStore{api: fake}

	asset, err := store.Upload(context.Background(), "posts", &media.Image{Filename: "a.jpg", Data: []byte("jpeg")})
	require.NoError(t, err)
	assert.Equal(t, "posts/abc", asset.PublicID)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/posts/abc.jpg", asset.URL)
	assert.Equal(t, "posts", fake.uploadParams.Folder)
	assert.Equal(t, []byte("jpeg"), fake.uploaded)
}

func TestImageStore_UploadErrors(t *testing.T) {
	store := &ImageStore{api: &fakeAPI{uploadErr: errors.New("timeout")}}
	_, err := store.Upload(context.Background(), "posts", &media.Image{Data: []byte("x")})
	assert.Error(t, err)

	store = &ImageStore{api: &fakeAPI{uploadResult: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}}
	_, err = store.Upload(context.Background(), "posts", &media.Image{Data: []byte("x")})
	assert.EqualError(t, err, "cloudinary upload: Invalid image file")

	_, err = store.Upload(context.Background(), "posts", &media.Image{})
	assert.Error(t, err)
}

func TestImageStore_Destroy(t *testing.T) {
	fake := &fakeAPI{destroyResult: &uploader.DestroyResult{Result: "ok"}}
	store := &ImageStore{api: fake}

	require.NoError(t, store.Destroy(context.Background(), "reason_photo/xyz"))
	assert.Equal(t, "reason_photo/xyz", fake.destroyParams.PublicID)
	require.NotNil(t, fake.destroyParams.Invalidate)
	assert.True(t, *fake.destroyParams.Invalidate)

	fake.destroyResult = &uploader.DestroyResult{Result: "not found"}
	assert.Error(t, store.Destroy(context.Background(), "reason_photo/xyz"))

	fake.destroyErr = errors.New("network")
	assert.Error(t, store.Destroy(context.Background(), "reason_photo/xyz"))
}
