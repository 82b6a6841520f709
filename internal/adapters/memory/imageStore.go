package memory

import (
	"context"
	"fmt"
	"path"
	"sync"

	"socialfeed/internal/ports/media"

	"github.com/gofrs/uuid"
)

// ImageStore تصاویر را در حافظه نگه می‌دارد؛ UploadErr و DestroyErr برای شبیه‌سازی خطا
type ImageStore struct {
	mu         sync.Mutex
	assets     map[string][]byte
	destroyed  []string
	UploadErr  error
	DestroyErr error
}

func NewImageStore() *ImageStore {
	return &ImageStore{assets: make(map[string][]byte)}
}

func (s *ImageStore) Upload(ctx context.Context, folder string, img *media.Image) (*media.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.UploadErr != nil {
		return nil, s.UploadErr
	}
	publicID := path.Join(folder, uuid.Must(uuid.NewV4()).String())
	s.assets[publicID] = append([]byte(nil), img.Data...)
	return &media.Asset{
		URL:      fmt.Sprintf("memory://%s", publicID),
		PublicID: publicID,
	}, nil
}

func (s *ImageStore) Destroy(ctx context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.destroyed = append(s.destroyed, publicID)
	if s.DestroyErr != nil {
		return s.DestroyErr
	}
	delete(s.assets, publicID)
	return nil
}

// Has گزارش می‌دهد آیا تصویر هنوز ذخیره است
func (s *ImageStore) Has(publicID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.assets[publicID]
	return ok
}

// Destroyed شناسه‌هایی که برای حذف آن‌ها تلاش شده است
func (s *ImageStore) Destroyed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.destroyed...)
}
