package ioc

import (
	"github.com/jeffutter/graphql-document-utils/std"
	"github.com/jeffutter/graphql-document-utils/svc"
	"go.uber.org/fx"
)

// HTTP服务模块
func init() {
	Module("server",
		fx.Provide(
			std.NewFiber,
			std.NewMetrics,
			svc.NewDocuments,
			asPlugin(std.NewHealth),
			asPlugin(func(m *std.Metrics) *std.Metrics { return m }),
			asPlugin(svc.NewSchema),
			asPlugin(svc.NewQuery),
		),
		fx.Invoke(std.Bootstrap),
	)
}

func asPlugin(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.As(new(std.Plugin)),
		fx.ResultTags(`group:"plugin"`),
	)
}
