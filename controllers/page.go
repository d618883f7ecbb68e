package controllers

import (
	"eventsite/common"
	"eventsite/middleware"
	"eventsite/models"
	"eventsite/modules/events"
	"eventsite/modules/locale"
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
	"net/url"
)

// RootRedirect 将访问者跳转到默认语言下即将举行的活动页
func RootRedirect(ctx *gin.Context) {
	lang := locale.Default()
	ev, err := events.Default.GetUpcomingEvent(ctx.Request.Context(), Fetch, string(lang))
	if err != nil {
		pageError(ctx, err)
		return
	}
	// 供同一请求内后续中间件使用，跳转后不保留
	ctx.Set(middleware.UpcomingEventKey, ev)
	ctx.Redirect(http.StatusFound, fmt.Sprintf("%s/%s/events/%s", requestOrigin(ctx), lang, url.PathEscape(ev.Slug)))
}

// EventPage 返回活动页数据，优先使用预取的活动
func EventPage(ctx *gin.Context) {
	lang, slug := ctx.Param("lang"), ctx.Param("slug")
	ev := middleware.PrefetchedEvent(ctx)
	if ev == nil {
		var err error
		if ev, err = events.Default.GetUpcomingEvent(ctx.Request.Context(), Fetch, lang); err != nil {
			pageError(ctx, err)
			return
		}
	}
	if slug != ev.Slug {
		if mirrored, err := events.Default.BySlug(lang, slug); err == nil {
			ev = mirrored
		} else if !events.IsNotFound(err) {
			common.Log.Errorf("Mirror lookup for %s/%s failed: %s", lang, slug, err.Error())
		}
	}
	renderEvent(ctx, ev)
}

func renderEvent(ctx *gin.Context, ev *models.Event) {
	ctx.Negotiate(http.StatusOK, gin.Negotiate{
		Offered:  []string{gin.MIMEJSON, gin.MIMEHTML},
		HTMLName: EventTemplateName,
		HTMLData: ev,
		JSONData: gin.H{"event": ev},
	})
}

func requestOrigin(ctx *gin.Context) string {
	if len(common.Config.Origin) > 0 {
		return common.Config.Origin
	}
	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	if p := ctx.GetHeader("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + ctx.Request.Host
}
