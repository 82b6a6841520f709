package leave

import (
	"time"

	"github.com/gofrs/uuid"
)

// TTL عمر هر درخواست مرخصی؛ پس از آن رکورد و تصویرش پاک می‌شوند
const TTL = 24 * time.Hour

// ImageFolder پوشه تصاویر مدارک مرخصی در سرویس میزبانی تصویر
const ImageFolder = "reason_photo"

type Leave struct {
	ID            uuid.UUID `gorm:"primary_key;type:char(36)"`
	RequesterID   string    `gorm:"type:varchar(64);not null"`
	Name          string    `gorm:"type:varchar(128);not null"`
	Position      string    `gorm:"type:varchar(128);not null"`
	Remark        string    `gorm:"type:text;not null"`
	StartDate     time.Time `gorm:"type:date;not null"`
	EndDate       time.Time `gorm:"type:date;not null"`
	Condition     bool      `gorm:"column:is_half_day;not null;default:false"` // نیم‌روز
	HalfDay       string    `gorm:"type:varchar(32)"`
	ImageURL      string    `gorm:"type:varchar(512)"`
	ImagePublicID string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

func (l *Leave) ExpiresAt() time.Time {
	return l.CreatedAt.Add(TTL)
}

// Expired یعنی رکورد در لحظه now دیگر نباید دیده شود
func (l *Leave) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt())
}

// Day تاریخ را به ابتدای روز (UTC) گرد می‌کند
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
