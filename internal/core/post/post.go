package post

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/datatypes"
)

// Post یک سند کامل: لایک‌ها و کامنت‌ها (با پاسخ‌هایشان) در همان ردیف ذخیره می‌شوند
type Post struct {
	ID            uuid.UUID                      `gorm:"primary_key;type:char(36)"`
	UserID        uuid.UUID                      `gorm:"type:char(36);not null;index"`
	Content       string                         `gorm:"type:text"`
	ImageURL      string                         `gorm:"type:varchar(512)"`
	ImagePublicID string                         `gorm:"type:varchar(255)"`
	Likes         datatypes.JSONSlice[uuid.UUID] `gorm:"not null"`
	Comments      datatypes.JSONSlice[Comment]   `gorm:"not null"`
	CreatedAt     time.Time                      `gorm:"index"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Replies   []Reply   `json:"replies"`
	CreatedAt time.Time `json:"createdAt"`
}

type Reply struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// New پست خالی (بدون لایک و کامنت) برای مالک می‌سازد
func New(ownerID uuid.UUID, content string, now time.Time) *Post {
	return &Post{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    ownerID,
		Content:   content,
		Likes:     datatypes.JSONSlice[uuid.UUID]{},
		Comments:  datatypes.JSONSlice[Comment]{},
		CreatedAt: now,
	}
}

// LikeIndex موقعیت کاربر در لیست لایک‌ها یا -1
func (p *Post) LikeIndex(userID uuid.UUID) int {
	for i, id := range p.Likes {
		if id == userID {
			return i
		}
	}
	return -1
}

// ToggleLike اگر کاربر لایک کرده بود حذف و در غیر این صورت اضافه می‌کند.
// مقدار برگشتی نشان می‌دهد پس از تغییر، پست لایک شده است یا نه.
func (p *Post) ToggleLike(userID uuid.UUID) bool {
	if i := p.LikeIndex(userID); i >= 0 {
		likes := make(datatypes.JSONSlice[uuid.UUID], 0, len(p.Likes)-1)
		likes = append(likes, p.Likes[:i]...)
		p.Likes = append(likes, p.Likes[i+1:]...)
		return false
	}
	p.Likes = append(p.Likes, userID)
	return true
}

func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

// CommentIndex موقعیت کامنت در پست یا -1
func (p *Post) CommentIndex(commentID uuid.UUID) int {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return i
		}
	}
	return -1
}

// AddComment کامنت جدید را به انتهای لیست اضافه می‌کند و اندیس آن را برمی‌گرداند
func (p *Post) AddComment(userID uuid.UUID, text string, now time.Time) int {
	p.Comments = append(p.Comments, Comment{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		Text:      text,
		Replies:   []Reply{},
		CreatedAt: now,
	})
	return len(p.Comments) - 1
}

// AddReply پاسخ را به کامنت با اندیس داده‌شده اضافه می‌کند و اندیس پاسخ را برمی‌گرداند
func (p *Post) AddReply(commentIdx int, userID uuid.UUID, text string, now time.Time) int {
	c := &p.Comments[commentIdx]
	c.Replies = append(c.Replies, Reply{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		Text:      text,
		CreatedAt: now,
	})
	return len(c.Replies) - 1
}

// Clone کپی عمیق؛ آداپتر حافظه‌ای برای جلوگیری از اشتراک وضعیت استفاده می‌کند
func (p *Post) Clone() *Post {
	cp := *p
	cp.Likes = append(datatypes.JSONSlice[uuid.UUID]{}, p.Likes...)
	cp.Comments = make(datatypes.JSONSlice[Comment], len(p.Comments))
	for i, c := range p.Comments {
		c.Replies = append([]Reply{}, c.Replies...)
		cp.Comments[i] = c
	}
	return &cp
}

// UserIDs همه شناسه‌های کاربری ارجاع‌شده در سند (مالک، لایک‌کننده‌ها، نویسندگان کامنت و پاسخ)
func (p *Post) UserIDs() []uuid.UUID {
	ids := []uuid.UUID{p.UserID}
	ids = append(ids, p.Likes...)
	for _, c := range p.Comments {
		ids = append(ids, c.UserID)
		for _, r := range c.Replies {
			ids = append(ids, r.UserID)
		}
	}
	return ids
}
