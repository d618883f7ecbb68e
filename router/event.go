package router

import (
	"eventsite/controllers"
	"eventsite/middleware"
	"github.com/gin-gonic/gin"
)

func eventRouter(r *gin.Engine) {
	eventR := r.Group("/api/v1/events")
	{
		eventR.GET("/upcoming", controllers.FetchUpcomingEvent)
		eventR.DELETE("/upcoming/:lang", middleware.CheckToken(), controllers.InvalidateUpcomingEvent)
	}
}
