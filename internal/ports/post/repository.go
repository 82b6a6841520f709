package post

import (
	"context"
	"time"

	"socialfeed/internal/core/post"
	userPort "socialfeed/internal/ports/user"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها (هر پست یک سند کامل)
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	// List همه پست‌ها به ترتیب زمان ایجاد، جدیدترین اول
	List(ctx context.Context) ([]*post.Post, error)
	Save(ctx context.Context, post *post.Post) error
	Delete(ctx context.Context, id string) error
}

// PostView پست با مالک، لایک‌کننده‌ها و نویسندگان کامنت/پاسخ به صورت denormalized
type PostView struct {
	ID        string                  `json:"id"`
	User      *userPort.UserSummary   `json:"user"`
	Content   string                  `json:"content"`
	Image     string                  `json:"image,omitempty"`
	Likes     []*userPort.UserSummary `json:"likes"`
	Comments  []*CommentView          `json:"comments"`
	CreatedAt time.Time               `json:"createdAt"`
}

// LikedPostView پاسخ toggle لایک: likes فقط شناسه‌ها هستند و بقیه denormalized
type LikedPostView struct {
	ID        string                `json:"id"`
	User      *userPort.UserSummary `json:"user"`
	Content   string                `json:"content"`
	Image     string                `json:"image,omitempty"`
	Likes     []string              `json:"likes"`
	Comments  []*CommentView        `json:"comments"`
	CreatedAt time.Time             `json:"createdAt"`
}

type CommentView struct {
	ID        string                `json:"id"`
	User      *userPort.UserSummary `json:"user"`
	Text      string                `json:"text"`
	Replies   []*ReplyView          `json:"replies"`
	CreatedAt time.Time             `json:"createdAt"`
}

type ReplyView struct {
	ID        string                `json:"id"`
	User      *userPort.UserSummary `json:"user"`
	Text      string                `json:"text"`
	CreatedAt time.Time             `json:"createdAt"`
}
