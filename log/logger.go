package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	// TraceLevel 跟踪级别
	TraceLevel = zerolog.TraceLevel
	// DebugLevel 调试级别
	DebugLevel = zerolog.DebugLevel
	// InfoLevel 信息级别
	InfoLevel = zerolog.InfoLevel
	// WarnLevel 警告级别
	WarnLevel = zerolog.WarnLevel
	// ErrorLevel 错误级别
	ErrorLevel = zerolog.ErrorLevel
	// NoLevel 无级别
	NoLevel = zerolog.NoLevel
	// Disabled 禁用日志
	Disabled = zerolog.Disabled
)

// 输出格式
const (
	FORMAT_JSON    = "json"
	FORMAT_CONSOLE = "console"
)

// Logger 日志记录器，嵌入zerolog.Logger，Trace到Error等事件方法直接可用
type Logger struct {
	zerolog.Logger
}

// NewLogger 创建新的日志记录器，默认以控制台格式输出到stderr，stdout只留给文档输出
func NewLogger(ops ...LoggerOption) *Logger {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
	zerolog.TimestampFieldName = "time"

	l := zerolog.New(NewConsoleWriter(os.Stderr)).With().Timestamp().Logger()
	for _, o := range ops {
		l = o(l)
	}
	return &Logger{l}
}

// NewConsoleWriter 创建控制台格式的输出
func NewConsoleWriter(out io.Writer) io.Writer {
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.DateTime,
		NoColor:    true,
	}

	console.FormatTimestamp = func(i interface{}) string {
		return fmt.Sprintf("[%s] ", i)
	}

	console.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	console.FormatMessage = func(i interface{}) string {
		if i == nil {
			return ""
		}
		return fmt.Sprintf(" %s", i)
	}

	console.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf(" %s=", i)
	}

	console.FormatFieldValue = func(i interface{}) string {
		return fmt.Sprintf("%v", i)
	}

	return console
}

// ParseLevel 解析日志级别，空字符串视为info
func ParseLevel(level string) (Level, error) {
	if strings.TrimSpace(level) == "" {
		return InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return NoLevel, fmt.Errorf("无效的日志级别 %q: %w", level, err)
	}
	return l, nil
}

// SetLevel 设置日志级别
func (my *Logger) SetLevel(level Level) {
	my.Logger = my.Logger.Level(level)
}

// Named 返回带component字段的子记录器，级别与输出和当前记录器相同
func (my *Logger) Named(component string) *Logger {
	return &Logger{my.Logger.With().Str("component", component).Logger()}
}

// Zerolog 返回底层的zerolog实例，供中间件等第三方组件使用
func (my *Logger) Zerolog() *zerolog.Logger {
	return &my.Logger
}

var std = NewLogger(WithLevel(InfoLevel))

// Default 返回默认logger实例
func Default() *Logger { return std }

// SetDefault 设置默认logger实例
func SetDefault(l *Logger) { std = l }

// SetLevel 设置默认logger的日志级别
func SetLevel(level Level) { std.SetLevel(level) }

func Debug() *zerolog.Event { return std.Debug() }
func Info() *zerolog.Event  { return std.Info() }
func Warn() *zerolog.Event  { return std.Warn() }
func Error() *zerolog.Event { return std.Error() }
