package common

import "os"

func Exit() {
	// 关闭mysql连接
	if Mysql != nil {
		if err := Mysql.Close(); err != nil {
			Log.Errorf("Couldn't closing mysql connection to %s:%d", Config.mysqlConfig.host, Config.mysqlConfig.port)
		}
	}
	// 关闭redis连接
	if Redis != nil {
		if err := Redis.Close(); err != nil {
			Log.Errorf("Couldn't closing redis connection to %s:%d", Config.redisConfig.host, Config.redisConfig.port)
		}
	}
	// 关闭日志文件
	if Config.LogFile != nil && Config.LogFile != os.Stderr {
		if err := Config.LogFile.Close(); err != nil {
			Log.Errorf("Couldn't closing log file: %s", Config.LogFile.Name())
		}
	}
}
