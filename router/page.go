package router

import (
	"eventsite/controllers"
	"eventsite/middleware"
	"github.com/gin-gonic/gin"
)

func pageRouter(r *gin.Engine) {
	r.GET("/", controllers.RootRedirect)
	pageR := r.Group("/:lang/events", middleware.Prefetch())
	{
		pageR.GET("/:slug", controllers.EventPage)
	}
}
