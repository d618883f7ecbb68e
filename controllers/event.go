package controllers

import (
	"eventsite/modules/events"
	"eventsite/modules/locale"
	"fmt"
	"github.com/gin-gonic/gin"
)

func FetchUpcomingEvent(ctx *gin.Context) {
	lang := ctx.DefaultQuery("lang", string(locale.Default()))
	if _, err := locale.Parse(lang); err != nil {
		ctx.JSON(200, newHttpResp(CodeBadParams, fmt.Sprintf("参数错误: %s", err.Error()), nil))
		return
	}
	ev, err := events.Default.GetUpcomingEvent(ctx.Request.Context(), Fetch, lang)
	if err != nil {
		ctx.JSON(200, newHttpResp(CodeFetchEventErr, fmt.Sprintf("获取活动出错：%s", err.Error()), nil))
		return
	}
	ctx.JSON(200, newHttpResp(CodeOK, "成功获取活动", gin.H{"event": ev}))
}

func InvalidateUpcomingEvent(ctx *gin.Context) {
	lang := ctx.Param("lang")
	if _, err := locale.Parse(lang); err != nil {
		ctx.JSON(200, newHttpResp(CodeBadParams, fmt.Sprintf("参数错误: %s", err.Error()), nil))
		return
	}
	if err := events.Default.Invalidate(lang); err != nil {
		ctx.JSON(200, newHttpResp(CodeCacheErr, fmt.Sprintf("清除缓存出错：%s", err.Error()), nil))
		return
	}
	ctx.JSON(200, newHttpResp(CodeOK, "成功清除缓存", lang))
}

func Healthz(ctx *gin.Context) {
	ctx.String(200, "ok")
}
