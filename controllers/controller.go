package controllers

import (
	"eventsite/common"
	"eventsite/modules/events"
	"eventsite/modules/locale"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"net/http"
)

const (
	CodeOK            = 100000
	CodeBadParams     = 100001
	CodeNotFound      = 100404
	CodeUpstream      = 100502
	CodeFetchEventErr = 100302
	CodeCacheErr      = 100303
)

type SHttpResp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func newHttpResp(code int, message string, data interface{}) SHttpResp {
	return SHttpResp{Code: code, Message: message, Data: data}
}

// Fetch 上游活动接口，由router初始化
var Fetch events.FetchFunc

// pageError 页面路由使用真实的HTTP状态码
func pageError(ctx *gin.Context, err error) {
	status, code := http.StatusBadGateway, CodeUpstream
	switch errors.Cause(err) {
	case locale.ErrUnsupportedLocale, events.ErrEventNotFound:
		status, code = http.StatusNotFound, CodeNotFound
	default:
		common.Log.Errorf("Loading event for %s failed: %s", ctx.Request.URL.Path, err.Error())
	}
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(status, newHttpResp(code, err.Error(), nil))
}
