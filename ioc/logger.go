package ioc

import (
	"fmt"

	"github.com/jeffutter/graphql-document-utils/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// fxLogger 将fx的生命周期事件写入项目日志
type fxLogger struct {
	l *log.Logger
}

func (my *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Invoked:
		if e.Err != nil {
			my.l.Error().Err(e.Err).Str("function", e.FunctionName).Msg("调用失败")
		}
	case *fxevent.Started:
		if e.Err != nil {
			my.l.Error().Err(e.Err).Msg("启动失败")
		}
	case *fxevent.Stopped:
		if e.Err != nil {
			my.l.Error().Err(e.Err).Msg("停止失败")
		}
	default:
		my.l.Trace().Str("event", fmt.Sprintf("%T", e)).Msg("fx")
	}
}

func init() {
	Add(fx.WithLogger(func(l *log.Logger) fxevent.Logger {
		return &fxLogger{l: l.Named("fx")}
	}))
}
