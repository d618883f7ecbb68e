package main

import (
	"context"
	"eventsite/common"
	"eventsite/external"
	"eventsite/models"
	"eventsite/modules/events"
	"eventsite/modules/locale"
	"eventsite/router"
	"eventsite/utils"
	"github.com/gin-gonic/gin"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func initAll() {
	// 初始化程序配置，mysql、redis连接以及日志配置等
	common.Init()
	gin.SetMode(gin.ReleaseMode)
	locale.Init(common.Config.DefaultLocale, common.Config.Locales)
	if len(common.Config.EventsConfig.TokenSecret) == 0 {
		common.Log.Warnf("events.token_secret is empty, upstream requests are unsigned and the admin api is disabled")
	}
	utils.SetTokenSecret(common.Config.EventsConfig.TokenSecret)

	var cache events.Cache
	var store events.Store
	if common.Redis != nil {
		cache = events.NewRedisCache(common.Redis, common.Config.RedisTTL())
	}
	if common.Mysql != nil {
		if err := common.Mysql.AutoMigrate(&models.Event{}).Error; err != nil {
			common.Log.Errorf("Couldn't migrate events table: %s", err.Error())
		} else {
			store = events.NewGormStore(common.Mysql)
		}
	}
	events.Default = events.NewService(cache, store)
	events.Default.SetFetchTimeout(common.Config.EventsConfig.Timeout)
	router.Init(external.NewEventAPI(common.Config.EventsConfig).FetchUpcomingEvent)
}

func run() {
	srv := &http.Server{Addr: common.Config.WebServerAddr, Handler: router.R}
	errCh := make(chan error, 1)
	go func() {
		common.Log.Infof("Web server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			common.Log.Errorf("Web server stopped: %s", err.Error())
		}
		return
	case s := <-sc:
		common.Log.Infof("Received %s, shutting down", s)
	}
	// 系统退出前等待正在处理的请求
	ctx, cancel := context.WithTimeout(context.Background(), common.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		common.Log.Errorf("Web server shutdown: %s", err.Error())
	}
}
