package std

import (
	"github.com/gofiber/contrib/fiberzerolog"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jeffutter/graphql-document-utils/log"
	"github.com/jeffutter/graphql-document-utils/utl"
)

// NewFiber 创建并配置一个新的fiber应用实例
func NewFiber(c *Config, l *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               c.Name,
		BodyLimit:             c.Server.BodyLimit,
		ReadTimeout:           c.Server.ReadTimeout,
		DisableStartupMessage: true,
		JSONEncoder:           utl.MarshalJSON,
		JSONDecoder:           utl.UnmarshalJSON,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(requestid.New()) // 请求ID中间件
	app.Use(recover.New())   // 异常恢复中间件
	app.Use(fiberzerolog.New(fiberzerolog.Config{
		Logger: l.Zerolog(),
	})) // 请求日志中间件

	return app
}
