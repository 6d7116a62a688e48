package svc

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jeffutter/graphql-document-utils/gql"
	"github.com/jeffutter/graphql-document-utils/std"
)

// 除闭包之外的操作名称，用于指标
const (
	OPERATION_USAGE     = "usage"
	OPERATION_FORMAT    = "format"
	OPERATION_NORMALIZE = "normalize"
)

// handler 插件共用的请求解析、校验与指标记录
type handler struct {
	docs      *Documents
	metrics   *std.Metrics
	validator *std.Validator
}

// bind 解析并校验请求体
func (my *handler) bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return std.NewException(fiber.StatusBadRequest).WithMessage("请求体解析失败").With("details", err.Error())
	}
	if err := my.validator.Check(req); err != nil {
		return err
	}
	return nil
}

// observe 包装处理函数，retained为负数时不记录闭包大小
func (my *handler) observe(operation string, fn func(c *fiber.Ctx) (any, int, error)) fiber.Handler {
	return std.WrapHandler(func(c *fiber.Ctx) (any, error) {
		start := time.Now()
		data, retained, err := fn(c)
		if err != nil {
			my.metrics.Observe(operation, outcome(err), start)
			return nil, exception(err)
		}
		my.metrics.Observe(operation, std.OUTCOME_OK, start)
		if retained >= 0 {
			my.metrics.ObserveClosure(operation, retained)
		}
		return data, nil
	})
}

func outcome(err error) string {
	if errors.Is(err, gql.ErrDepthExceeded) {
		return std.OUTCOME_FAILED
	}
	return std.OUTCOME_INVALID
}

// exception 超过深度为422，其余错误按输入问题处理为400
func exception(err error) error {
	if errors.Is(err, gql.ErrDepthExceeded) {
		return std.NewException(fiber.StatusUnprocessableEntity).WithError(err).With("code", "DEPTH_EXCEEDED")
	}
	return std.AsException(err, fiber.StatusBadRequest)
}
