package std

import (
	"fmt"

	"github.com/jeffutter/graphql-document-utils/std/internal"
)

// 默认配置，键与Config的mapstructure标签一致
var defaults = map[string]interface{}{
	"mode":               "dev",
	"app.name":           "graphql-document-utils",
	"app.host":           "",
	"app.port":           8080,
	"log.level":          "info",
	"log.format":         "console",
	"log.file":           "",
	"log.maxsize":        100,
	"log.maxage":         7,
	"log.maxbackups":     3,
	"log.compress":       false,
	"walk.limit":         4096,
	"output.indent":      "  ",
	"output.sort":        false,
	"focus.arguments":    false,
	"server.bodylimit":   16 * 1024 * 1024,
	"server.readtimeout": "30s",
}

// Config 表示标准配置
type Config struct {
	internal.AppConfig `mapstructure:"app"`
	Mode               string                `mapstructure:"mode" validate:"required"`
	Log                internal.LogConfig    `mapstructure:"log"`
	Walk               internal.WalkConfig   `mapstructure:"walk"`
	Output             internal.OutputConfig `mapstructure:"output"`
	Focus              internal.FocusConfig  `mapstructure:"focus"`
	Server             internal.ServerConfig `mapstructure:"server"`
}

// NewConfig 从配置管理器解析并校验配置
func NewConfig(k *Konfig, v *Validator) (*Config, error) {
	c := &Config{}
	if err := k.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := v.Check(c); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}
	return c, nil
}

// IsDebug 判断是否为开发模式
func (my *Config) IsDebug() bool {
	return my.Mode == "development" || my.Mode == "dev"
}

// Addr 服务监听地址
func (my *Config) Addr() string {
	return fmt.Sprintf("%s:%d", my.Host, my.Port)
}
