package task

import (
	"context"
	"time"

	"socialfeed/internal/core/task"
)

// TaskRepository پورت برای ذخیره‌سازی وظایف
type TaskRepository interface {
	Create(ctx context.Context, t *task.Task) (*task.Task, error)
	FindByID(ctx context.Context, id string) (*task.Task, error)
	// List همه وظایف، جدیدترین اول
	List(ctx context.Context) ([]*task.Task, error)
	Update(ctx context.Context, t *task.Task) error
	Delete(ctx context.Context, id string) error
}

// DTOها برای UseCase
type CreateTaskInput struct {
	PostID   string     `json:"postId" validate:"required"`
	Content  string     `json:"content" validate:"required"`
	Task     string     `json:"task" validate:"required"`
	State    string     `json:"state" validate:"required"`
	UserTime *time.Time `json:"user_time" validate:"required"`
}

// UpdateTaskInput فقط فیلدهای غیر nil اعمال می‌شوند
type UpdateTaskInput struct {
	PostID   *string    `json:"postId"`
	Content  *string    `json:"content"`
	Task     *string    `json:"task"`
	State    *string    `json:"state"`
	UserTime *time.Time `json:"user_time"`
}

type TaskDTO struct {
	ID        string    `json:"_id"`
	PostID    string    `json:"postId"`
	Content   string    `json:"content"`
	Task      string    `json:"task"`
	State     string    `json:"state"`
	UserTime  time.Time `json:"user_time"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToDTO(t *task.Task) *TaskDTO {
	return &TaskDTO{
		ID:        t.ID.String(),
		PostID:    t.PostID,
		Content:   t.Content,
		Task:      t.Task,
		State:     string(t.State),
		UserTime:  t.UserTime,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
