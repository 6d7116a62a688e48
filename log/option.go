package log

import (
	"io"

	"github.com/jeffutter/graphql-document-utils/log/internal"
	"github.com/rs/zerolog"
)

// LoggerOption 定义日志选项函数类型
type LoggerOption func(zerolog.Logger) zerolog.Logger

// RotateOption 定义日志轮转选项函数类型
type RotateOption func(*internal.Rotate)

// WithOutput 设置日志输出目标，按JSON格式写出
func WithOutput(out io.Writer) LoggerOption {
	return func(l zerolog.Logger) zerolog.Logger {
		return l.Output(out)
	}
}

// WithFormat 按格式设置日志输出目标，未知格式按console处理
func WithFormat(format string, out io.Writer) LoggerOption {
	if format == FORMAT_JSON {
		return WithOutput(out)
	}
	return WithOutput(NewConsoleWriter(out))
}

// WithLevel 设置日志级别
func WithLevel(level Level) LoggerOption {
	return func(l zerolog.Logger) zerolog.Logger {
		return l.Level(level)
	}
}

// WithFilename 设置日志文件名
func WithFilename(filename string) RotateOption {
	return func(r *internal.Rotate) {
		r.Filename = filename
	}
}

// WithMaxAge 设置日志最大保存时间（天）
func WithMaxAge(maxAge int) RotateOption {
	return func(r *internal.Rotate) {
		r.MaxAge = maxAge
	}
}

// WithMaxSize 设置单个日志文件最大尺寸（MB）
func WithMaxSize(maxSize int) RotateOption {
	return func(r *internal.Rotate) {
		r.MaxSize = maxSize
	}
}

// WithMaxBackups 设置最大备份文件数
func WithMaxBackups(maxBackups int) RotateOption {
	return func(r *internal.Rotate) {
		r.MaxBackups = maxBackups
	}
}

// WithRotateLevel 设置轮转日志的级别
func WithRotateLevel(level Level) RotateOption {
	return func(r *internal.Rotate) {
		r.Level = level
	}
}

// UseCompress 是否压缩旧日志文件
func UseCompress(compress bool) RotateOption {
	return func(r *internal.Rotate) {
		r.Compress = compress
	}
}

// NewRotateLogger 创建一个新的日志轮转记录器
func NewRotateLogger(ops ...RotateOption) *Logger {
	r := internal.DefaultRotateConfig()
	for _, o := range ops {
		o(r)
	}
	return &Logger{internal.NewRotateLogger(r)}
}
