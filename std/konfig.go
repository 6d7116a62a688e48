package std

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeffutter/graphql-document-utils/log"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ENV_PREFIX 环境变量前缀，GDU_LOG_LEVEL对应log.level
const ENV_PREFIX = "GDU"

// Konfig 配置管理器，包装了koanf.Koanf
type Konfig struct {
	k       *koanf.Koanf
	options *konfigOptions
}

// KonfigOption 定义配置选项函数类型
type KonfigOption func(*konfigOptions)

// konfigOptions 保存koanf的配置选项
type konfigOptions struct {
	configType string
	envPrefix  string
	envFile    string
	filePath   string
	delim      string
	values     map[string]interface{}
}

// WithFilePath 设置配置文件路径，文件类型取自扩展名
func WithFilePath(filePath string) KonfigOption {
	return func(options *konfigOptions) {
		if filePath != "" {
			options.filePath = filePath
			options.configType = strings.TrimPrefix(filepath.Ext(filePath), ".")
		}
	}
}

// WithEnvPrefix 设置环境变量前缀
func WithEnvPrefix(prefix string) KonfigOption {
	return func(options *konfigOptions) {
		options.envPrefix = prefix
	}
}

// WithEnvFile 设置.env文件路径，文件不存在时忽略
func WithEnvFile(envFile string) KonfigOption {
	return func(options *konfigOptions) {
		options.envFile = envFile
	}
}

// WithValue 设置覆盖项，优先级高于环境变量，用于命令行参数
func WithValue(key string, value interface{}) KonfigOption {
	return func(options *konfigOptions) {
		if options.values == nil {
			options.values = make(map[string]interface{})
		}
		options.values[key] = value
	}
}

// NewKonfig 按默认值、.env、配置文件、环境变量、覆盖项的顺序加载配置，后者覆盖前者
func NewKonfig(opts ...KonfigOption) (*Konfig, error) {
	options := &konfigOptions{
		configType: "yaml",
		envPrefix:  ENV_PREFIX,
		envFile:    ".env",
		delim:      ".",
	}
	for _, opt := range opts {
		opt(options)
	}

	k := koanf.New(options.delim)

	// 默认配置
	if err := k.Load(confmap.Provider(defaults, options.delim), nil); err != nil {
		return nil, fmt.Errorf("加载默认配置失败: %w", err)
	}

	// 加载环境变量文件(可选)
	if err := loadEnvFile(options.envFile); err != nil {
		return nil, fmt.Errorf("加载环境变量文件: %w", err)
	}

	if options.filePath != "" {
		if err := loadConfigFile(k, options); err != nil {
			return nil, err
		}
	}

	prefix := options.envPrefix + "_"
	envProvider := env.Provider(prefix, options.delim, func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", options.delim)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("加载环境变量失败: %w", err)
	}

	if len(options.values) > 0 {
		if err := k.Load(confmap.Provider(options.values, options.delim), nil); err != nil {
			return nil, fmt.Errorf("加载覆盖项失败: %w", err)
		}
	}

	return &Konfig{k: k, options: options}, nil
}

// loadEnvFile 加载环境变量文件(可选)
func loadEnvFile(envFile string) error {
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("加载.env文件失败: %w", err)
	}
	return nil
}

// loadConfigFile 加载配置文件
func loadConfigFile(k *koanf.Koanf, options *konfigOptions) error {
	var parser koanf.Parser
	switch options.configType {
	case "yaml", "yml":
		parser = yaml.Parser()
	default:
		return fmt.Errorf("不支持的配置文件类型: %s", options.configType)
	}

	if err := k.Load(file.Provider(options.filePath), parser); err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}

	log.Debug().Str("file", options.filePath).Msg("配置文件已加载")
	return nil
}

// Set 设置配置项
func (my *Konfig) Set(key string, value interface{}) {
	_ = my.k.Set(key, value)
}

// Get 获取配置项
func (my *Konfig) Get(key string) interface{} {
	return my.k.Get(key)
}

// GetString 获取字符串配置项
func (my *Konfig) GetString(key string) string {
	return my.k.String(key)
}

// GetInt 获取整数配置项
func (my *Konfig) GetInt(key string) int {
	return my.k.Int(key)
}

// GetBool 获取布尔配置项
func (my *Konfig) GetBool(key string) bool {
	return my.k.Bool(key)
}

// Unmarshal 将整个配置解析到结构体，使用mapstructure标签
func (my *Konfig) Unmarshal(out interface{}) error {
	return my.k.UnmarshalWithConf("", out, koanf.UnmarshalConf{Tag: "mapstructure"})
}
