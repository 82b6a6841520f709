package database

import (
	"errors"
	"fmt"
	"testing"

	"socialfeed/internal/ports"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ports.ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("query: %w", gorm.ErrRecordNotFound)), ports.ErrNotFound)

	other := errors.New("connection refused")
	assert.Same(t, other, translate(other))
	assert.NoError(t, translate(nil))
}

func TestAffected(t *testing.T) {
	assert.ErrorIs(t, affected(&gorm.DB{RowsAffected: 0}), ports.ErrNotFound)
	assert.NoError(t, affected(&gorm.DB{RowsAffected: 1}))

	failed := errors.New("deadlock")
	assert.Same(t, failed, affected(&gorm.DB{Error: failed}))
}

func TestUpdated(t *testing.T) {
	found := func() (bool, error) { return true, nil }
	missing := func() (bool, error) { return false, nil }
	unused := func() (bool, error) {
		t.Fatal("existence check must not run")
		return false, nil
	}

	assert.NoError(t, updated(&gorm.DB{RowsAffected: 1}, unused))
	// ردیف حذف‌شده بین خواندن و نوشتن
	assert.ErrorIs(t, updated(&gorm.DB{RowsAffected: 0}, missing), ports.ErrNotFound)
	// به‌روزرسانی بدون تغییر مقدار در MySQL
	assert.NoError(t, updated(&gorm.DB{RowsAffected: 0}, found))

	failed := errors.New("deadlock")
	assert.Same(t, failed, updated(&gorm.DB{Error: failed}, unused))

	countErr := errors.New("count failed")
	assert.Same(t, countErr, updated(&gorm.DB{}, func() (bool, error) { return false, countErr }))
}
