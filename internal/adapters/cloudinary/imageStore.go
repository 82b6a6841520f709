package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"socialfeed/internal/ports/media"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// uploadAPI بخشی از uploader.API که استفاده می‌شود
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// ImageStore آداپتر Cloudinary برای پورت media.ImageStore
type ImageStore struct {
	api uploadAPI
}

// NewImageStore ساخت کلاینت Cloudinary از اطلاعات حساب
func NewImageStore(cloudName, apiKey, apiSecret string) (*ImageStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &ImageStore{api: &cld.Upload}, nil
}

func (s *ImageStore) Upload(ctx context.Context, folder string, img *media.Image) (*media.Asset, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, errors.New("cloudinary: empty image")
	}
	res, err := s.api.Upload(ctx, bytes.NewReader(img.Data), uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return &media.Asset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Destroy حذف تصویر و باطل کردن نسخه‌های کش‌شده در CDN
func (s *ImageStore) Destroy(ctx context.Context, publicID string) error {
	res, err := s.api.Destroy(ctx, uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", res.Error.Message)
	}
	if res.Result != "ok" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, res.Result)
	}
	return nil
}
