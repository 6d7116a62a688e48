package internal

import "time"

type AppConfig struct {
	Name string `mapstructure:"name" validate:"required"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"gte=0,lte=65535"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=json console"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"maxsize" validate:"gte=0"`
	MaxAge     int    `mapstructure:"maxage" validate:"gte=0"`
	MaxBackups int    `mapstructure:"maxbackups" validate:"gte=0"`
	Compress   bool   `mapstructure:"compress"`
}

// WalkConfig 遍历限制
type WalkConfig struct {
	Limit int `mapstructure:"limit" validate:"gte=0"`
}

// OutputConfig 文档输出
type OutputConfig struct {
	Indent string `mapstructure:"indent"`
	Sort   bool   `mapstructure:"sort"`
}

// FocusConfig 可达性闭包
type FocusConfig struct {
	Arguments bool `mapstructure:"arguments"`
}

// ServerConfig HTTP服务
type ServerConfig struct {
	BodyLimit   int           `mapstructure:"bodylimit" validate:"gte=0"`
	ReadTimeout time.Duration `mapstructure:"readtimeout"`
}
