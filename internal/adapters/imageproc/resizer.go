package imageproc

import (
	"bytes"
	"context"
	"image"

	"socialfeed/internal/ports/media"

	"github.com/disintegration/imaging"
)

// Resizer دکوراتور ImageStore که تصاویر بزرگ‌تر از حداکثر ابعاد را قبل از آپلود کوچک می‌کند
type Resizer struct {
	next      media.ImageStore
	maxWidth  int
	maxHeight int
}

func NewResizer(next media.ImageStore, maxWidth, maxHeight int) *Resizer {
	return &Resizer{next: next, maxWidth: maxWidth, maxHeight: maxHeight}
}

func (r *Resizer) Upload(ctx context.Context, folder string, img *media.Image) (*media.Asset, error) {
	return r.next.Upload(ctx, folder, r.shrink(img))
}

func (r *Resizer) Destroy(ctx context.Context, publicID string) error {
	return r.next.Destroy(ctx, publicID)
}

// shrink اگر تصویر قابل decode نباشد یا کوچک‌تر از حد باشد، همان ورودی برگردانده می‌شود
func (r *Resizer) shrink(img *media.Image) *media.Image {
	if img == nil || len(img.Data) == 0 || r.maxWidth <= 0 || r.maxHeight <= 0 {
		return img
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil || (cfg.Width <= r.maxWidth && cfg.Height <= r.maxHeight) {
		return img
	}

	src, err := imaging.Decode(bytes.NewReader(img.Data), imaging.AutoOrientation(true))
	if err != nil {
		return img
	}
	format, err := imaging.FormatFromFilename(img.Filename)
	if err != nil {
		format = imaging.JPEG
	}

	var buf bytes.Buffer
	dst := imaging.Fit(src, r.maxWidth, r.maxHeight, imaging.Lanczos)
	if err := imaging.Encode(&buf, dst, format, imaging.JPEGQuality(85)); err != nil {
		return img
	}

	return &media.Image{
		Filename:    img.Filename,
		ContentType: img.ContentType,
		Data:        buf.Bytes(),
	}
}
