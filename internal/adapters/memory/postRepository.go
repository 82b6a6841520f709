package memory

import (
	"context"
	"sort"
	"sync"

	"socialfeed/internal/core/post"
	"socialfeed/internal/ports"
)

// PostRepository هر پست را به صورت یک سند کامل نگه می‌دارد؛ خواندن و نوشتن با کپی عمیق
type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]*post.Post
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*post.Post)}
}

func (r *PostRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts[p.ID.String()] = p.Clone()
	return p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *PostRepository) List(ctx context.Context) ([]*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		all = append(all, p.Clone())
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (r *PostRepository) Save(ctx context.Context, p *post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[p.ID.String()]; !ok {
		return ports.ErrNotFound
	}
	r.posts[p.ID.String()] = p.Clone()
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}
