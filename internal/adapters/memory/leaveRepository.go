package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"socialfeed/internal/core/leave"
	"socialfeed/internal/ports"
)

type LeaveRepository struct {
	mu     sync.RWMutex
	leaves map[string]*leave.Leave
}

func NewLeaveRepository() *LeaveRepository {
	return &LeaveRepository{leaves: make(map[string]*leave.Leave)}
}

func (r *LeaveRepository) Create(ctx context.Context, l *leave.Leave) (*leave.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *l
	r.leaves[l.ID.String()] = &cp
	return l, nil
}

func (r *LeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leaves[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *LeaveRepository) ListCreatedAfter(ctx context.Context, since time.Time) ([]*leave.Leave, error) {
	return r.filter(func(l *leave.Leave) bool { return l.CreatedAt.After(since) }, 0, true), nil
}

func (r *LeaveRepository) ListCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*leave.Leave, error) {
	return r.filter(func(l *leave.Leave) bool { return l.CreatedAt.Before(cutoff) }, limit, false), nil
}

func (r *LeaveRepository) filter(keep func(*leave.Leave) bool, limit int, newestFirst bool) []*leave.Leave {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*leave.Leave, 0)
	for _, l := range r.leaves {
		if keep(l) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if newestFirst {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *LeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leaves[l.ID.String()]; !ok {
		return ports.ErrNotFound
	}
	cp := *l
	r.leaves[l.ID.String()] = &cp
	return nil
}

func (r *LeaveRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leaves[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.leaves, id)
	return nil
}
