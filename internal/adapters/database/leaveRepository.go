package database

import (
	"context"
	"time"

	"socialfeed/internal/core/leave"

	"gorm.io/gorm"
)

type LeaveRepositoryDatabase struct {
	db *gorm.DB
}

func NewLeaveRepositoryDatabase(db *gorm.DB) *LeaveRepositoryDatabase {
	return &LeaveRepositoryDatabase{db: db}
}

func (repo *LeaveRepositoryDatabase) Create(ctx context.Context, l *leave.Leave) (*leave.Leave, error) {
	if err := repo.db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (repo *LeaveRepositoryDatabase) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	var l leave.Leave
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (repo *LeaveRepositoryDatabase) ListCreatedAfter(ctx context.Context, since time.Time) ([]*leave.Leave, error) {
	var leaves []*leave.Leave
	if err := repo.db.WithContext(ctx).
		Where("created_at > ?", since).
		Order("created_at DESC").
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (repo *LeaveRepositoryDatabase) ListCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*leave.Leave, error) {
	var leaves []*leave.Leave
	if err := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (repo *LeaveRepositoryDatabase) Update(ctx context.Context, l *leave.Leave) error {
	res := repo.db.WithContext(ctx).
		Model(&leave.Leave{}).
		Where("id = ?", l.ID).
		Select("RequesterID", "Name", "Position", "Remark", "StartDate", "EndDate", "Condition", "HalfDay", "UpdatedAt").
		Updates(l)
	return updated(res, existsByID(ctx, repo.db, &leave.Leave{}, l.ID))
}

func (repo *LeaveRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return affected(repo.db.WithContext(ctx).Where("id = ?", id).Delete(&leave.Leave{}))
}
