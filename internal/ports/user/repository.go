package user

import (
	"context"
	"socialfeed/internal/core/user"
)

// UserRepository پورت برای ذخیره‌سازی و بازیابی کاربران
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

// DTOها برای UseCase
type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expiresAt"`
	User      *UserDTO `json:"user"`
}

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// UserSummary ویژگی‌های نمایشی کاربر در پاسخ‌های پست
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func ToDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}

func ToSummary(u *user.User) *UserSummary {
	return &UserSummary{
		ID:       u.ID.String(),
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}
