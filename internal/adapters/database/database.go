package database

import (
	"context"
	"errors"

	"socialfeed/internal/ports"

	"gorm.io/gorm"
)

// translate خطای رکورد ناموجود gorm را به خطای پورت تبدیل می‌کند
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.ErrNotFound
	}
	return err
}

// affected اگر DELETE هیچ ردیفی را حذف نکرده باشد ErrNotFound برمی‌گرداند
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// updated صفر بودن RowsAffected در UPDATE را فقط وقتی رکورد وجود ندارد به ErrNotFound تبدیل می‌کند
func updated(res *gorm.DB, exists func() (bool, error)) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	ok, err := exists()
	if err != nil {
		return err
	}
	if !ok {
		return ports.ErrNotFound
	}
	return nil
}

func existsByID(ctx context.Context, db *gorm.DB, model interface{}, id interface{}) func() (bool, error) {
	return func() (bool, error) {
		var n int64
		err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error
		return n > 0, err
	}
}
