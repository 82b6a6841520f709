package media

import "context"

// Image فایل تصویری دریافتی از کاربر
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Asset تصویر ذخیره‌شده در سرویس میزبانی
type Asset struct {
	URL      string
	PublicID string
}

// ImageStore پورت سرویس میزبانی تصویر
type ImageStore interface {
	Upload(ctx context.Context, folder string, img *Image) (*Asset, error)
	Destroy(ctx context.Context, publicID string) error
}
