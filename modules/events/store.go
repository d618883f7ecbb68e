package events

import (
	"eventsite/models"
	"eventsite/modules/locale"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// GormStore 活动镜像，按(lang, slug)唯一
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Save(ev *models.Event) error {
	existing := models.Event{}
	err := s.db.Where("lang = ? AND slug = ?", ev.Lang, ev.Slug).First(&existing).Error
	if gorm.IsRecordNotFoundError(err) {
		return errors.Wrap(s.db.Create(ev).Error, "create event")
	}
	if err != nil {
		return errors.Wrap(err, "find event")
	}
	ev.ID = existing.ID
	ev.CreatedAt = existing.CreatedAt
	return errors.Wrap(s.db.Save(ev).Error, "update event")
}

// Latest 最近一次作为即将举行的活动写入的记录
func (s *GormStore) Latest(lang locale.Locale) (*models.Event, error) {
	ev := &models.Event{}
	if err := s.wrap(s.db.Where("lang = ?", string(lang)).Order("updated_at desc").First(ev).Error, string(lang)); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *GormStore) BySlug(lang locale.Locale, slug string) (*models.Event, error) {
	ev := &models.Event{}
	if err := s.wrap(s.db.Where("lang = ? AND slug = ?", string(lang), slug).First(ev).Error, string(lang)+"/"+slug); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *GormStore) wrap(err error, what string) error {
	if err == nil {
		return nil
	}
	if gorm.IsRecordNotFoundError(err) {
		return errors.Wrap(ErrEventNotFound, what)
	}
	return errors.Wrapf(err, "query event %s", what)
}
