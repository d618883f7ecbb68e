package middleware

import (
	"eventsite/models"
	"eventsite/modules/events"
	"eventsite/modules/locale"
	"github.com/gin-gonic/gin"
)

const (
	UpcomingEventKey   = "upcomingEvent"
	PrefetchedEventKey = "prefetchedEvent"
)

// Prefetch 缓存中已有该语言的即将举行活动时放入上下文，页面无需再请求上游
func Prefetch() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if l, err := locale.Parse(ctx.Param("lang")); err == nil {
			if ev := events.Default.Cached(l); ev != nil {
				ctx.Set(PrefetchedEventKey, ev)
			}
		}
		ctx.Next()
	}
}

func PrefetchedEvent(ctx *gin.Context) *models.Event {
	if v, ok := ctx.Get(PrefetchedEventKey); ok {
		if ev, ok := v.(*models.Event); ok {
			return ev
		}
	}
	return nil
}
