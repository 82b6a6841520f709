package database

import (
	"context"

	"socialfeed/internal/core/task"

	"gorm.io/gorm"
)

type TaskRepositoryDatabase struct {
	db *gorm.DB
}

func NewTaskRepositoryDatabase(db *gorm.DB) *TaskRepositoryDatabase {
	return &TaskRepositoryDatabase{db: db}
}

func (repo *TaskRepositoryDatabase) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	if err := repo.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (repo *TaskRepositoryDatabase) FindByID(ctx context.Context, id string) (*task.Task, error) {
	var t task.Task
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (repo *TaskRepositoryDatabase) List(ctx context.Context) ([]*task.Task, error) {
	var tasks []*task.Task
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepositoryDatabase) Update(ctx context.Context, t *task.Task) error {
	res := repo.db.WithContext(ctx).
		Model(&task.Task{}).
		Where("id = ?", t.ID).
		Select("PostID", "Content", "Task", "State", "UserTime", "UpdatedAt").
		Updates(t)
	return updated(res, existsByID(ctx, repo.db, &task.Task{}, t.ID))
}

func (repo *TaskRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return affected(repo.db.WithContext(ctx).Where("id = ?", id).Delete(&task.Task{}))
}
