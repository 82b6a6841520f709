package memory

import (
	"context"
	"sort"
	"sync"
	"time"
)

// ExpirySchedule معادل حافظه‌ای ZSET انقضا
type ExpirySchedule struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewExpirySchedule() *ExpirySchedule {
	return &ExpirySchedule{entries: make(map[string]time.Time)}
}

func (s *ExpirySchedule) Schedule(ctx context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = at
	return nil
}

func (s *ExpirySchedule) Due(ctx context.Context, now time.Time, limit int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0)
	for id, at := range s.entries {
		if !at.After(now) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.entries[ids[i]].Before(s.entries[ids[j]])
	})
	if limit > 0 && int64(len(ids)) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (s *ExpirySchedule) Remove(ctx context.Context, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.entries, id)
	}
	return nil
}

// Len تعداد ورودی‌های زمان‌بندی‌شده
func (s *ExpirySchedule) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
