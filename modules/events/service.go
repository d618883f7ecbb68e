// Package events 获取即将举行的活动：缓存 -> 上游接口 -> 本地镜像
package events

import (
	"context"
	"eventsite/common"
	"eventsite/models"
	"eventsite/modules/locale"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
	"time"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUpstream      = errors.New("events upstream unavailable")
)

// FetchFunc 从上游接口获取lang对应的即将举行的活动
type FetchFunc func(ctx context.Context, lang locale.Locale) (*models.Event, error)

// Cache 未命中时返回nil, nil
type Cache interface {
	Get(lang locale.Locale) (*models.Event, error)
	Set(lang locale.Locale, ev *models.Event) error
	Delete(lang locale.Locale) error
}

// Store 无匹配记录时返回ErrEventNotFound
type Store interface {
	Save(ev *models.Event) error
	Latest(lang locale.Locale) (*models.Event, error)
	BySlug(lang locale.Locale, slug string) (*models.Event, error)
}

type Service struct {
	cache        Cache
	store        Store
	group        singleflight.Group
	// 共享的上游请求不跟随任何单个请求的ctx，由该超时兜底
	fetchTimeout time.Duration
}

const DefaultFetchTimeout = 30 * time.Second

// Default 由main初始化，controllers使用
var Default = NewService(nil, nil)

// NewService cache和store可为nil，对应层跳过
func NewService(cache Cache, store Store) *Service {
	return &Service{cache: cache, store: store, fetchTimeout: DefaultFetchTimeout}
}

func (s *Service) SetFetchTimeout(d time.Duration) {
	if d > 0 {
		s.fetchTimeout = d
	}
}

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrEventNotFound
}

func (s *Service) GetUpcomingEvent(ctx context.Context, fetch FetchFunc, lang string) (*models.Event, error) {
	l, err := locale.Parse(lang)
	if err != nil {
		return nil, err
	}
	if ev := s.Cached(l); ev != nil {
		return ev, nil
	}
	ch := s.group.DoChan(string(l), func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
		defer cancel()
		return s.fetch(fctx, fetch, l)
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "wait upcoming event for %s", l)
	case res = <-ch:
	}
	if res.Err == nil {
		if res.Shared {
			common.Log.Debugf("Shared upcoming event fetch for %s", l)
		}
		ev := *res.Val.(*models.Event)
		return &ev, nil
	}
	err = res.Err
	// 仅上游不可用时回退到镜像
	if errors.Cause(err) != ErrUpstream || s.store == nil {
		return nil, err
	}
	ev, serr := s.store.Latest(l)
	if serr != nil {
		if !IsNotFound(serr) {
			common.Log.Errorf("Mirror lookup for %s failed: %s", l, serr.Error())
		}
		return nil, err
	}
	common.Log.Warnf("Serving mirrored event %s for %s: %s", ev.Slug, l, err.Error())
	return ev, nil
}

func (s *Service) fetch(ctx context.Context, fetch FetchFunc, l locale.Locale) (*models.Event, error) {
	ev, err := fetch(ctx, l)
	if err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "fetch upcoming event for %s", l)
	}
	if ev == nil {
		return nil, errors.Wrapf(ErrEventNotFound, "no upcoming event for %s", l)
	}
	if err := ev.Validate(); err != nil {
		return nil, errors.Wrap(ErrUpstream, err.Error())
	}
	if len(ev.Lang) == 0 {
		ev.Lang = string(l)
	}
	if s.cache != nil {
		if err := s.cache.Set(l, ev); err != nil {
			common.Log.Errorf("Couldn't cache upcoming event for %s: %s", l, err.Error())
		}
	}
	if s.store != nil {
		if err := s.store.Save(ev); err != nil {
			common.Log.Errorf("Couldn't mirror event %s: %s", ev.Slug, err.Error())
		}
	}
	return ev, nil
}

// Cached 只查缓存，未命中返回nil
func (s *Service) Cached(lang locale.Locale) *models.Event {
	if s.cache == nil {
		return nil
	}
	ev, err := s.cache.Get(lang)
	if err != nil {
		common.Log.Errorf("Couldn't read cached event for %s: %s", lang, err.Error())
		return nil
	}
	return ev
}

func (s *Service) BySlug(lang, slug string) (*models.Event, error) {
	l, err := locale.Parse(lang)
	if err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, errors.Wrapf(ErrEventNotFound, "%s/%s", l, slug)
	}
	return s.store.BySlug(l, slug)
}

func (s *Service) Invalidate(lang string) error {
	l, err := locale.Parse(lang)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(l)
}
