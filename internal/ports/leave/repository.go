package leave

import (
	"context"
	"time"

	"socialfeed/internal/core/leave"
)

// LeaveRepository پورت برای ذخیره‌سازی درخواست‌های مرخصی
type LeaveRepository interface {
	Create(ctx context.Context, l *leave.Leave) (*leave.Leave, error)
	FindByID(ctx context.Context, id string) (*leave.Leave, error)
	// ListCreatedAfter رکوردهای ایجادشده پس از since، جدیدترین اول
	ListCreatedAfter(ctx context.Context, since time.Time) ([]*leave.Leave, error)
	// ListCreatedBefore رکوردهای ایجادشده قبل از cutoff (حداکثر limit مورد)
	ListCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*leave.Leave, error)
	Update(ctx context.Context, l *leave.Leave) error
	Delete(ctx context.Context, id string) error
}

// ExpirySchedule زمان‌بندی انقضای رکوردها (ZSET در Redis)
type ExpirySchedule interface {
	Schedule(ctx context.Context, id string, at time.Time) error
	Due(ctx context.Context, now time.Time, limit int64) ([]string, error)
	Remove(ctx context.Context, ids ...string) error
}

// DTOها برای UseCase
type CreateLeaveInput struct {
	RequesterID string `validate:"required"`
	Name        string `validate:"required"`
	Position    string `validate:"required"`
	Remark      string `validate:"required"`
	StartDate   string
	EndDate     string
	HalfDay     string
	Condition   bool
}

// UpdateLeaveInput فقط فیلدهای غیر nil اعمال می‌شوند
type UpdateLeaveInput struct {
	RequesterID *string `json:"id"`
	Name        *string `json:"mm_name"`
	Position    *string `json:"position"`
	Remark      *string `json:"remark"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	HalfDay     *string `json:"half_day"`
	Condition   *bool   `json:"condition"`
}

type LeaveDTO struct {
	ID            string    `json:"_id"`
	RequesterID   string    `json:"id"`
	Name          string    `json:"mm_name"`
	Position      string    `json:"position"`
	Remark        string    `json:"remark"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	HalfDay       string    `json:"half_day,omitempty"`
	Condition     bool      `json:"condition"`
	ImageURL      string    `json:"imageUrl"`
	ImagePublicID string    `json:"cloudinaryId"`
	ExpiresAt     time.Time `json:"expiresAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DateLayout قالب تاریخ‌های شروع و پایان
const DateLayout = "2006-01-02"

func ToDTO(l *leave.Leave) *LeaveDTO {
	return &LeaveDTO{
		ID:            l.ID.String(),
		RequesterID:   l.RequesterID,
		Name:          l.Name,
		Position:      l.Position,
		Remark:        l.Remark,
		StartDate:     l.StartDate.Format(DateLayout),
		EndDate:       l.EndDate.Format(DateLayout),
		HalfDay:       l.HalfDay,
		Condition:     l.Condition,
		ImageURL:      l.ImageURL,
		ImagePublicID: l.ImagePublicID,
		ExpiresAt:     l.ExpiresAt(),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}
