package memory

import (
	"context"
	"sort"
	"sync"

	"socialfeed/internal/core/task"
	"socialfeed/internal/ports"
)

type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]*task.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]*task.Task)}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *t
	r.tasks[t.ID.String()] = &cp
	return t, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*task.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		cp := *t
		all = append(all, &cp)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID.String()]; !ok {
		return ports.ErrNotFound
	}
	cp := *t
	r.tasks[t.ID.String()] = &cp
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
