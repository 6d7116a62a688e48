package svc

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeffutter/graphql-document-utils/std"
)

type normalizeRequest struct {
	Query  string `json:"query" validate:"required"`
	Minify bool   `json:"minify"`
}

// Query 查询相关的HTTP接口
type Query struct {
	handler
}

// NewQuery 创建查询插件
func NewQuery(d *Documents, m *std.Metrics, v *std.Validator) *Query {
	return &Query{handler{docs: d, metrics: m, validator: v}}
}

func (my *Query) Base() string {
	return "/query"
}

func (my *Query) Init(r fiber.Router) {
	r.Post("/normalize", my.observe(OPERATION_NORMALIZE, my.normalize))
}

func (my *Query) normalize(c *fiber.Ctx) (any, int, error) {
	var req normalizeRequest
	if err := my.bind(c, &req); err != nil {
		return nil, 0, err
	}
	out, err := my.docs.Normalize(Source{Name: "query", Text: req.Query}, req.Minify)
	if err != nil {
		return nil, 0, err
	}
	return fiber.Map{"query": out}, -1, nil
}
