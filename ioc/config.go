package ioc

import (
	"github.com/jeffutter/graphql-document-utils/std"
	"go.uber.org/fx"
)

// 配置模块，配置文件路径与覆盖项由调用方通过Supply提供
func init() {
	Module("config",
		fx.Provide(
			fx.Annotate(
				std.WithFilePath,
				fx.ParamTags(`name:"configFile"`),
				fx.ResultTags(`group:"konfigOptions"`),
			),
			fx.Annotate(
				std.NewKonfig,
				fx.ParamTags(`group:"konfigOptions"`),
			),
			std.NewValidator,
			std.NewConfig,
			std.NewLogger,
		),
	)
}

// Supply 提供配置文件路径以及命令行覆盖项
func Supply(configFile string, ops ...std.KonfigOption) fx.Option {
	options := []fx.Option{
		fx.Supply(fx.Annotated{Name: "configFile", Target: configFile}),
	}
	for _, op := range ops {
		options = append(options, fx.Provide(fx.Annotate(
			func() std.KonfigOption { return op },
			fx.ResultTags(`group:"konfigOptions"`),
		)))
	}
	return fx.Options(options...)
}
