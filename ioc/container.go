package ioc

import (
	"go.uber.org/fx"
)

var modules []fx.Option

// Add 注册应用级选项，例如fx.WithLogger
func Add(args ...fx.Option) {
	modules = append(modules, args...)
}

// Module 注册一个命名模块，名称出现在fx的依赖错误里
func Module(name string, args ...fx.Option) {
	Add(fx.Module(name, args...))
}

// Get 返回已注册的全部模块
func Get() fx.Option {
	return fx.Options(modules...)
}
