package common

import (
	"fmt"
	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	"time"
)

type mysqlConfig struct {
	host       string
	port       int
	user       string
	password   string
	database   string
	connParams map[string]string
}

var Mysql *gorm.DB

func (m mysqlConfig) dsn() string {
	mc := mysql.NewConfig()
	mc.User = m.user
	mc.Passwd = m.password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", m.host, m.port)
	mc.DBName = m.database
	mc.Params = m.connParams
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

// initMysql 连接失败时不退出，活动镜像不可用
func initMysql() {
	var err error
	Log.Infoln("Connecting Mysql ......")
	Mysql, err = gorm.Open("mysql", Config.mysqlConfig.dsn())
	if err != nil {
		Log.Errorf("Couldn't connect to mysql at %s:%d: %s", Config.mysqlConfig.host, Config.mysqlConfig.port, err.Error())
		Mysql = nil
		return
	}
	Log.Infof("Connected to mysql at %s:%d successfully", Config.mysqlConfig.host, Config.mysqlConfig.port)
	Mysql.SetLogger(gorm.Logger{LogWriter: Log})
}
