package task

import (
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

type State string

const (
	StatePending    State = "pending"
	StateInProgress State = "in-progress"
	StateCompleted  State = "completed"
)

// ParseState ورودی را به یکی از وضعیت‌های مجاز تبدیل می‌کند؛ املای قدیمی "in progress" هم پذیرفته می‌شود
func ParseState(s string) (State, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatePending, true
	case "in-progress", "in progress", "in_progress":
		return StateInProgress, true
	case "completed":
		return StateCompleted, true
	}
	return "", false
}

type Task struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID    string    `gorm:"type:varchar(64);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Task      string    `gorm:"type:text;not null"`
	State     State     `gorm:"type:varchar(20);not null"`
	UserTime  time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
