package common

import "time"

// EventsConfig 上游活动接口配置
type EventsConfig struct {
	Addr        string
	ApiPrefix   string
	ServiceName string
	TokenSecret string
	Timeout     time.Duration
}
