package config

import (
	"github.com/GDVFox/ladderlogic/util"
	"github.com/GDVFox/ladderlogic/util/httplib"
)

// Conf глобальный конфиг синглтон.
var Conf = NewConfig()

// Config конфигурация сервиса.
type Config struct {
	HTTP    *httplib.HTTPConfig `yaml:"http"`
	Logging *util.LoggingConfig `yaml:"logging"`
}

// NewConfig создает конфиг с настройками по-умолчанию
func NewConfig() *Config {
	return &Config{
		HTTP:    httplib.NewHTTPConfig(),
		Logging: util.NewLoggingConfig(),
	}
}
