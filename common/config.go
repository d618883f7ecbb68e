package common

import (
	"github.com/spf13/viper"
	"net"
	"os"
	"strings"
	"time"
)

// 定义部分默认配置
const (
	DefaultWebServerAddr   = "0.0.0.0:8080"
	DefaultLocale          = "hu"
	DefaultShutdownTimeout = 10
	DefaultEventsApiPrefix = "api"
	DefaultEventsService   = "eventsite"
	DefaultEventsTimeout   = 5
	DefaultMysqlHost       = "127.0.0.1"
	DefaultMysqlPort       = 3306
	DefaultMysqlUser       = "root"
	DefaultMysqlDatabase   = "eventsite"
	DefaultRedisHost       = "127.0.0.1"
	DefaultRedisPort       = 6379
	DefaultRedisTTL        = 60
	DefaultFileMode        = 0644
)

var DefaultLocales = []string{"hu", "en"}

type mainConfig struct {
	WebServerAddr   string
	Origin          string
	DefaultLocale   string
	Locales         []string
	ShutdownTimeout time.Duration
	LogFile         *os.File
}

type config struct {
	mainConfig
	mysqlConfig
	redisConfig
	EventsConfig
}

var Config = &config{}
var Configfile *string

// initConfig 读取配置文件，初始化配置
func (c *config) initConfig() {
	var err error
	logfile := c.readFrom(*Configfile)
	c.checkAndSetDefault()
	if len(logfile) == 0 {
		c.LogFile = os.Stderr
	} else if c.LogFile, err = os.OpenFile(logfile, os.O_RDWR|os.O_CREATE|os.O_APPEND, DefaultFileMode); err != nil {
		Log.Warnf("Couldn't open log file: %s, logging to stderr", logfile)
		c.LogFile = os.Stderr
	}
	c.mysqlConfig.connParams = map[string]string{"charset": "utf8mb4"}
	Log.Info("Init configuration successfully !")
}

// readFrom 读取toml配置文件，返回日志文件路径
func (c *config) readFrom(path string) (logfile string) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		Log.Warnf("Couldn't read config file %s", path)
		Log.Warnf("Using default configuration!")
		return
	}
	c.WebServerAddr = v.GetString("main.webServerAddr")
	c.Origin = strings.TrimRight(v.GetString("main.origin"), "/")
	c.DefaultLocale = v.GetString("main.default_locale")
	c.Locales = v.GetStringSlice("main.locales")
	c.ShutdownTimeout = time.Duration(v.GetInt("main.shutdown_timeout")) * time.Second
	logfile = v.GetString("main.logfile")
	c.EventsConfig.Addr = strings.TrimRight(v.GetString("events.addr"), "/")
	c.EventsConfig.ApiPrefix = strings.Trim(v.GetString("events.api_prefix"), "/")
	c.EventsConfig.ServiceName = v.GetString("events.service_name")
	c.EventsConfig.TokenSecret = v.GetString("events.token_secret")
	c.EventsConfig.Timeout = time.Duration(v.GetInt("events.timeout")) * time.Second
	c.mysqlConfig.user = v.GetString("mysql.user")
	c.mysqlConfig.host = v.GetString("mysql.host")
	c.mysqlConfig.port = v.GetInt("mysql.port")
	c.mysqlConfig.database = v.GetString("mysql.database")
	c.mysqlConfig.password = v.GetString("mysql.password")
	c.redisConfig.host = v.GetString("redis.host")
	c.redisConfig.port = v.GetInt("redis.port")
	c.redisConfig.password = v.GetString("redis.password")
	c.redisConfig.db = v.GetInt("redis.db")
	c.redisConfig.TTL = time.Duration(v.GetInt("redis.ttl")) * time.Second
	return
}

// checkAndSetDefault 检测配置项是否为0值，如果为0值则设置默认值
func (c *config) checkAndSetDefault() {
	if len(c.mainConfig.WebServerAddr) == 0 {
		c.mainConfig.WebServerAddr = DefaultWebServerAddr
	} else if _, err := net.ResolveTCPAddr("tcp", c.mainConfig.WebServerAddr); err != nil {
		Log.Warnf("Web server listen config error, using default")
		c.mainConfig.WebServerAddr = DefaultWebServerAddr
	}
	if len(c.mainConfig.DefaultLocale) == 0 {
		c.mainConfig.DefaultLocale = DefaultLocale
	}
	c.mainConfig.DefaultLocale = strings.ToLower(c.mainConfig.DefaultLocale)
	if len(c.mainConfig.Locales) == 0 {
		c.mainConfig.Locales = append([]string{}, DefaultLocales...)
	}
	for i, l := range c.mainConfig.Locales {
		c.mainConfig.Locales[i] = strings.ToLower(strings.TrimSpace(l))
	}
	if !containsString(c.mainConfig.Locales, c.mainConfig.DefaultLocale) {
		c.mainConfig.Locales = append(c.mainConfig.Locales, c.mainConfig.DefaultLocale)
	}
	if c.mainConfig.ShutdownTimeout <= 0 {
		c.mainConfig.ShutdownTimeout = DefaultShutdownTimeout * time.Second
	}
	if len(c.EventsConfig.ApiPrefix) == 0 {
		c.EventsConfig.ApiPrefix = DefaultEventsApiPrefix
	}
	if len(c.EventsConfig.ServiceName) == 0 {
		c.EventsConfig.ServiceName = DefaultEventsService
	}
	if c.EventsConfig.Timeout <= 0 {
		c.EventsConfig.Timeout = DefaultEventsTimeout * time.Second
	}
	if len(c.mysqlConfig.host) == 0 {
		c.mysqlConfig.host = DefaultMysqlHost
	}
	if c.mysqlConfig.port == 0 {
		c.mysqlConfig.port = DefaultMysqlPort
	}
	if len(c.mysqlConfig.user) == 0 {
		c.mysqlConfig.user = DefaultMysqlUser
	}
	if len(c.mysqlConfig.database) == 0 {
		c.mysqlConfig.database = DefaultMysqlDatabase
	}
	if len(c.redisConfig.host) == 0 {
		c.redisConfig.host = DefaultRedisHost
	}
	if c.redisConfig.port == 0 {
		c.redisConfig.port = DefaultRedisPort
	}
	if c.redisConfig.TTL <= 0 {
		c.redisConfig.TTL = DefaultRedisTTL * time.Second
	}
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
