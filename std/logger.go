package std

import (
	"io"
	"os"

	"github.com/jeffutter/graphql-document-utils/log"
)

// NewLogger 按配置创建日志记录器并设为默认实例
// 配置了日志文件时写入轮转文件，否则写到stderr
func NewLogger(c *Config) (*log.Logger, error) {
	return newLogger(c, os.Stderr)
}

func newLogger(c *Config, out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	var l *log.Logger
	if c.Log.File != "" {
		l = log.NewRotateLogger(
			log.WithFilename(c.Log.File),
			log.WithMaxSize(c.Log.MaxSize),
			log.WithMaxAge(c.Log.MaxAge),
			log.WithMaxBackups(c.Log.MaxBackups),
			log.WithRotateLevel(level),
			log.UseCompress(c.Log.Compress),
		)
	} else {
		l = log.NewLogger(log.WithFormat(c.Log.Format, out), log.WithLevel(level))
	}

	log.SetDefault(l)
	return l, nil
}
