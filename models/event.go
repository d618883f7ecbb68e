package models

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"regexp"
	"time"
)

// Event 活动，由上游活动接口提供，本地镜像一份用于回退与按slug查询
type Event struct {
	ID          uuid.UUID  `gorm:"type:char(36);primary_key" json:"-"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
	Slug        string     `gorm:"type:varchar(191);not null;unique_index:idx_event_lang_slug" json:"slug"`
	Lang        string     `gorm:"type:varchar(16);not null;unique_index:idx_event_lang_slug" json:"lang"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `gorm:"type:varchar(255)" json:"location"`
	StartsAt    time.Time  `gorm:"index" json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	CoverImage  string     `gorm:"type:varchar(512)" json:"cover_image,omitempty"`
	TicketURL   string     `gorm:"type:varchar(512)" json:"ticket_url,omitempty"`
}

type Events []*Event

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.~-]*$`)

var ErrInvalidEvent = errors.New("invalid event")

// BeforeCreate 为新记录生成ID
func (e *Event) BeforeCreate(scope *gorm.Scope) error {
	if e.ID == uuid.Nil {
		return scope.SetColumn("ID", uuid.New())
	}
	return nil
}

// Validate slug会被拼进跳转地址，必须是安全的路径段
func (e *Event) Validate() error {
	if len(e.Slug) == 0 {
		return errors.Wrap(ErrInvalidEvent, "empty slug")
	}
	if !slugPattern.MatchString(e.Slug) {
		return errors.Wrapf(ErrInvalidEvent, "slug %q is not path safe", e.Slug)
	}
	return nil
}
