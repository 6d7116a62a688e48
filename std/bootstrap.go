package std

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/jeffutter/graphql-document-utils/log"
)

var (
	// Version 当前版本号
	Version = "v0.0.0"
	// GitCommit Git提交哈希
	GitCommit = "unknown"
	// BuildTime 构建时间
	BuildTime = ""

	// 路径规范化正则表达式
	reg = regexp.MustCompile(`/+`)
)

// Plugin 插件接口
type Plugin interface {
	// Base 插件基础路径
	Base() string
	// Init 初始化插件
	Init(fiber.Router)
}

// PluginGroup 插件组
type PluginGroup struct {
	fx.In
	Plugins     []Plugin `group:"plugin"`
	Middlewares []Plugin `group:"middleware"`
}

// Mount 按基础路径把中间件和插件挂载到应用上，中间件先于插件
func Mount(a *fiber.App, g PluginGroup) {
	routers := map[string]fiber.Router{"/": a}
	getRouter := func(basePath string) fiber.Router {
		// 规范化路径,将连续的多个斜杠(/)替换为单个斜杠且移除字符串右侧的斜杠
		base := fmt.Sprintf("%s/", strings.TrimRight(reg.ReplaceAllString(basePath, "/"), "/"))
		if r, exists := routers[base]; exists {
			return r
		}
		r := a.Group(strings.TrimRight(base, "/"))
		routers[base] = r
		return r
	}

	for _, m := range append(g.Middlewares, g.Plugins...) {
		m.Init(getRouter(m.Base()))
	}
}

// Bootstrap 应用程序引导函数
func Bootstrap(l fx.Lifecycle, c *Config, a *fiber.App, g PluginGroup) {
	if BuildTime == "" {
		BuildTime = time.Now().Format(time.DateTime)
	}

	Mount(a, g)

	l.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// 异步启动服务器
			go func() {
				if err := a.Listen(c.Addr()); err != nil {
					log.Error().Err(err).Str("addr", c.Addr()).Msg("服务启动失败")
				}
			}()
			log.Info().Str("addr", c.Addr()).Str("version", Version).Str("commit", GitCommit).Str("build", BuildTime).Msgf("%s 已启动", c.Name)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := a.ShutdownWithContext(ctx)
			log.Info().Msgf("%s 已关闭", c.Name)
			return err
		},
	})
}
