package std

import (
	"errors"
	"maps"

	"github.com/gofiber/fiber/v2"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Result GraphQL风格的统一响应，data与errors二选一
type Result struct {
	Data       interface{}  `json:"data,omitempty"`
	Errors     []*Exception `json:"errors,omitempty"`
	Extensions Extension    `json:"extensions,omitempty"`
}

// Extension 扩展信息
type Extension map[string]interface{}

// Exception 响应中的单条错误，位置指向出错的schema或查询文本
type Exception struct {
	Message    string              `json:"message"`
	Locations  []gqlerror.Location `json:"locations,omitempty"`
	Extensions Extension           `json:"extensions,omitempty"`

	statusCode int
}

func (my *Exception) Error() string {
	return my.Message
}

// StatusCode HTTP状态码
func (my *Exception) StatusCode() int {
	return my.statusCode
}

// NewException 创建指定状态码的异常
func NewException(statusCode int) *Exception {
	return &Exception{statusCode: statusCode}
}

// With 添加扩展字段，nil值忽略
func (my *Exception) With(key string, value interface{}) *Exception {
	if value == nil {
		return my
	}
	if my.Extensions == nil {
		my.Extensions = make(Extension)
	}
	my.Extensions[key] = value
	return my
}

func (my *Exception) WithMessage(message string) *Exception {
	if message != "" {
		my.Message = message
	}
	return my
}

// WithLocations 追加文档位置，行号为0的位置忽略
func (my *Exception) WithLocations(locations ...gqlerror.Location) *Exception {
	for _, l := range locations {
		if l.Line > 0 {
			my.Locations = append(my.Locations, l)
		}
	}
	return my
}

// WithError 合并错误携带的扩展与位置，消息为空时使用错误信息
func (my *Exception) WithError(err error) *Exception {
	var carrier interface{ Extensions() Extension }
	if errors.As(err, &carrier) {
		if ext := carrier.Extensions(); len(ext) > 0 {
			if my.Extensions == nil {
				my.Extensions = maps.Clone(ext)
			} else {
				maps.Copy(my.Extensions, ext)
			}
		}
	}
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		my.WithLocations(gqlErr.Locations...)
	}
	if my.Message == "" {
		my.Message = err.Error()
	}
	return my
}

// AsException 把错误转换为异常: 语法错误与校验错误为400，fiber错误沿用其状态码，其余使用fallback
func AsException(err error, fallback int) *Exception {
	var ex *Exception
	if errors.As(err, &ex) {
		return ex
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return NewException(fe.Code).WithMessage(fe.Message)
	}
	var gqlErr *gqlerror.Error
	var verr *ValidationError
	if errors.As(err, &gqlErr) || errors.As(err, &verr) {
		return NewException(fiber.StatusBadRequest).WithError(err)
	}
	if fallback >= fiber.StatusInternalServerError {
		return NewException(fallback).WithMessage("内部服务器错误").WithError(err)
	}
	return NewException(fallback).WithError(err)
}

// WrapHandler 包装处理函数，结果写为Result
func WrapHandler(handler func(*fiber.Ctx) (any, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := handler(c)
		if err != nil {
			return ErrorHandler(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(Result{Data: data})
	}
}

// ErrorHandler 将错误写为统一响应，同时作为fiber的全局错误处理器
func ErrorHandler(c *fiber.Ctx, err error) error {
	ex := AsException(err, fiber.StatusInternalServerError)
	return c.Status(ex.statusCode).JSON(Result{Errors: []*Exception{ex}})
}
