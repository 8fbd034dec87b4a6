package configs

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

type configs struct {
	MongoDB MongoDBConfig `yaml:"mongodb"`
	Redis   RedisConfig   `yaml:"redis"`
	Email   EmailConfig   `yaml:"email"`
	Service ServiceConfig `yaml:"service"`
	Logs    LogsConfig    `yaml:"logs"`
	Secrets Secrets       `yaml:"secrets"`
}

var Configs configs

func Init(ConfigPath *string) {
	var configPath string
	if ConfigPath == nil || *ConfigPath == "" {
		_, b, _, _ := runtime.Caller(0)
		BasePath := filepath.Dir(b)
		configPath = BasePath + "/file/configs.yaml"
	} else {
		configPath = *ConfigPath
	}
	load(configPath)

	InitLogger()
}

func load(ConfigsPath string) {
	yamlFile, err := os.ReadFile(ConfigsPath)
	if err != nil {
		panic("Failed to read config file: " + err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Configs)
	if err != nil {
		panic("Failed to parse config file: " + err.Error())
	}
}
