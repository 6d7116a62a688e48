package svc

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/jeffutter/graphql-document-utils/gql"
	"github.com/jeffutter/graphql-document-utils/std"
)

// Source 命名的文档文本，名称用于错误定位
type Source struct {
	Name string
	Text string
}

// Documents 文档操作服务，CLI与HTTP共用，每次调用都重新解析输入，不保留状态
type Documents struct {
	limit     int
	indent    string
	sort      bool
	arguments bool
}

// NewDocuments 按配置创建文档服务
func NewDocuments(c *std.Config) *Documents {
	indent := c.Output.Indent
	if indent == "" {
		indent = gql.DEFAULT_INDENT
	}
	return &Documents{
		limit:     c.Walk.Limit,
		indent:    indent,
		sort:      c.Output.Sort,
		arguments: c.Focus.Arguments,
	}
}

// Focus 输出从types可达的类型，ops在配置之后应用
func (my *Documents) Focus(schema Source, types []string, ops ...gql.Option) (string, *gql.Closure, error) {
	doc, err := gql.ParseSchema(schema.Name, schema.Text)
	if err != nil {
		return "", nil, err
	}
	options := append([]gql.Option{gql.WithLimit(my.limit), gql.WithArguments(my.arguments)}, ops...)
	closure, err := gql.Focus(doc, types, options...)
	if err != nil {
		return "", nil, err
	}
	return my.print(gql.Filter(doc, closure), false), closure, nil
}

// Prune 输出查询使用到的类型与字段
func (my *Documents) Prune(schema, query Source) (string, *gql.Closure, error) {
	doc, closure, err := my.prune(schema, query)
	if err != nil {
		return "", nil, err
	}
	return my.print(gql.Filter(doc, closure), false), closure, nil
}

// Usage 返回查询使用到的类型及其字段
func (my *Documents) Usage(schema, query Source) (map[string][]string, *gql.Closure, error) {
	doc, closure, err := my.prune(schema, query)
	if err != nil {
		return nil, nil, err
	}
	return closure.Usage(doc), closure, nil
}

func (my *Documents) prune(schema, query Source) (*ast.SchemaDocument, *gql.Closure, error) {
	doc, err := gql.ParseSchema(schema.Name, schema.Text)
	if err != nil {
		return nil, nil, err
	}
	q, err := gql.ParseQuery(query.Name, query.Text)
	if err != nil {
		return nil, nil, err
	}
	closure, err := gql.Prune(doc, q, gql.WithLimit(my.limit))
	if err != nil {
		return nil, nil, err
	}
	return doc, closure, nil
}

// Format 重新打印schema，sort为true或配置开启时按(类别, 名称)排序
func (my *Documents) Format(schema Source, sort bool) (string, error) {
	doc, err := gql.ParseSchema(schema.Name, schema.Text)
	if err != nil {
		return "", err
	}
	return my.print(doc, sort), nil
}

// Normalize 输出查询的规范形式，minify为true时压缩为单行
func (my *Documents) Normalize(query Source, minify bool) (string, error) {
	doc, err := gql.ParseQuery(query.Name, query.Text)
	if err != nil {
		return "", err
	}
	out := gql.PrintQuery(gql.Normalize(doc), my.indent)
	if !minify {
		return out, nil
	}
	return gql.Minify(out)
}

func (my *Documents) print(doc *ast.SchemaDocument, sort bool) string {
	if sort || my.sort {
		return gql.PrintGrouped(gql.Sort(doc), my.indent)
	}
	return gql.Print(doc, my.indent)
}
