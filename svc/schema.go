package svc

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeffutter/graphql-document-utils/gql"
	"github.com/jeffutter/graphql-document-utils/std"
)

type focusRequest struct {
	Schema    string   `json:"schema" validate:"required"`
	Types     []string `json:"types" validate:"required,min=1,dive,required"`
	Arguments *bool    `json:"arguments"`
}

type pruneRequest struct {
	Schema string `json:"schema" validate:"required"`
	Query  string `json:"query" validate:"required"`
}

type formatRequest struct {
	Schema string `json:"schema" validate:"required"`
	Sort   bool   `json:"sort"`
}

// Schema schema相关的HTTP接口
type Schema struct {
	handler
}

// NewSchema 创建schema插件
func NewSchema(d *Documents, m *std.Metrics, v *std.Validator) *Schema {
	return &Schema{handler{docs: d, metrics: m, validator: v}}
}

func (my *Schema) Base() string {
	return "/schema"
}

func (my *Schema) Init(r fiber.Router) {
	r.Post("/focus", my.observe(gql.OPERATION_FOCUS, my.focus))
	r.Post("/prune", my.observe(gql.OPERATION_PRUNE, my.prune))
	r.Post("/usage", my.observe(OPERATION_USAGE, my.usage))
	r.Post("/format", my.observe(OPERATION_FORMAT, my.format))
}

func (my *Schema) focus(c *fiber.Ctx) (any, int, error) {
	var req focusRequest
	if err := my.bind(c, &req); err != nil {
		return nil, 0, err
	}
	var ops []gql.Option
	if req.Arguments != nil {
		ops = append(ops, gql.WithArguments(*req.Arguments))
	}
	out, closure, err := my.docs.Focus(Source{Name: "schema", Text: req.Schema}, req.Types, ops...)
	if err != nil {
		return nil, 0, err
	}
	return fiber.Map{"schema": out}, len(closure.Types), nil
}

func (my *Schema) prune(c *fiber.Ctx) (any, int, error) {
	var req pruneRequest
	if err := my.bind(c, &req); err != nil {
		return nil, 0, err
	}
	out, closure, err := my.docs.Prune(Source{Name: "schema", Text: req.Schema}, Source{Name: "query", Text: req.Query})
	if err != nil {
		return nil, 0, err
	}
	return fiber.Map{"schema": out}, len(closure.Types), nil
}

func (my *Schema) usage(c *fiber.Ctx) (any, int, error) {
	var req pruneRequest
	if err := my.bind(c, &req); err != nil {
		return nil, 0, err
	}
	usage, closure, err := my.docs.Usage(Source{Name: "schema", Text: req.Schema}, Source{Name: "query", Text: req.Query})
	if err != nil {
		return nil, 0, err
	}
	return fiber.Map{"types": usage}, len(closure.Types), nil
}

func (my *Schema) format(c *fiber.Ctx) (any, int, error) {
	var req formatRequest
	if err := my.bind(c, &req); err != nil {
		return nil, 0, err
	}
	out, err := my.docs.Format(Source{Name: "schema", Text: req.Schema}, req.Sort)
	if err != nil {
		return nil, 0, err
	}
	return fiber.Map{"schema": out}, -1, nil
}
