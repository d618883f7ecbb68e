package middleware

import (
	"eventsite/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"time"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "requestID"
)

// RequestLog 为每个请求分配request id并记录访问日志
func RequestLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		rid := ctx.GetHeader(RequestIDHeader)
		if len(rid) == 0 {
			rid = uuid.New().String()
		}
		ctx.Set(RequestIDKey, rid)
		ctx.Header(RequestIDHeader, rid)
		ctx.Next()
		entry := common.Log.WithFields(logrus.Fields{
			"request_id": rid,
			"status":     ctx.Writer.Status(),
		})
		const msg = "%s %s %d %s"
		args := []interface{}{ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start)}
		switch {
		case len(ctx.Errors) > 0:
			entry.Errorf(msg+" %s", append(args, ctx.Errors.String())...)
		case ctx.Writer.Status() >= 500:
			entry.Warnf(msg, args...)
		default:
			entry.Infof(msg, args...)
		}
	}
}
