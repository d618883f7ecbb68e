package main

import (
	"eventsite/common"
	"flag"
)

func main() {
	// 定义命令行参数'--config'， 默认值为"./configs/config.toml"
	common.Configfile = flag.String("config", "./configs/config.toml", "Specify config file for server")
	flag.Parse()
	initAll()
	defer common.Exit()
	run()
}
