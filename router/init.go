package router

import (
	"eventsite/controllers"
	"eventsite/middleware"
	"eventsite/modules/events"
	"github.com/gin-gonic/gin"
)

var R *gin.Engine

func Init(fetch events.FetchFunc) {
	R = New(fetch)
}

// New 创建engine并注册所有路由，fetch为上游活动接口
func New(fetch events.FetchFunc) *gin.Engine {
	controllers.Fetch = fetch
	r := gin.New()
	r.Use(middleware.RequestLog(), gin.Recovery())
	r.SetHTMLTemplate(controllers.Templates)
	Register(r)
	return r
}

// Register 注册子路由
func Register(r *gin.Engine) {
	r.GET("/healthz", controllers.Healthz)
	pageRouter(r)
	eventRouter(r)
}
