package main

import (
	"github.com/spf13/viper"
)

const defaultConfigFileName = "keybench.toml"

func initConfig(fileName string) error {
	viper.SetDefault("bench.iterations", 1000000)
	viper.SetDefault("bench.memstats", false)
	viper.SetDefault("log.debug", false)
	viper.SetConfigFile(fileName)
	return viper.ReadInConfig()
}

func configGetInt(key string) int { return viper.GetInt(key) }

func configGetBool(key string) bool { return viper.GetBool(key) }

func configGetIterations() int {
	return configGetInt("bench.iterations")
}

func configGetMemStats() bool {
	return configGetBool("bench.memstats")
}

func configGetDebug() bool {
	return configGetBool("log.debug")
}
