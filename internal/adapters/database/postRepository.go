package database

import (
	"context"

	"socialfeed/internal/core/post"

	"gorm.io/gorm"
)

// PostRepositoryDatabase هر پست یک ردیف است؛ likes و comments ستون‌های JSON همان ردیف‌اند
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) List(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Save کل سند (لایک‌ها و درخت کامنت‌ها) را در یک UPDATE می‌نویسد
func (repo *PostRepositoryDatabase) Save(ctx context.Context, p *post.Post) error {
	res := repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"likes":    p.Likes,
			"comments": p.Comments,
		})
	return updated(res, existsByID(ctx, repo.db, &post.Post{}, p.ID))
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return affected(repo.db.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{}))
}
