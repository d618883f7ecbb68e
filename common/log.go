package common

import (
	runtime "github.com/banzaicloud/logrus-runtime-formatter"
	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

var Log = logrus.New()

func newFormatter() logrus.Formatter {
	return &runtime.Formatter{
		ChildFormatter: &easy.Formatter{
			TimestampFormat: "2006-01-02 15:04:05",
			LogFormat:       " %time%  [%lvl%]	%function% - %msg% \n",
		},
	}
}

func initLog() {
	Log.Debugln("starting init log configuration")
	Log.SetFormatter(newFormatter())
	Log.SetLevel(logrus.DebugLevel)
	Log.SetOutput(Config.mainConfig.LogFile)
	Log.Debugln("init log configuration successfully")
}
