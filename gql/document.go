package gql

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseSchema 解析schema文本，不做语义校验
func ParseSchema(name, input string) (*ast.SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: input})
	if err != nil {
		return nil, fmt.Errorf("解析schema %s 失败: %w", name, err)
	}
	return doc, nil
}

// ParseQuery 解析查询文本，不做语义校验
func ParseQuery(name, input string) (*ast.QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: input})
	if err != nil {
		return nil, fmt.Errorf("解析查询 %s 失败: %w", name, err)
	}
	return doc, nil
}

// Print 按源文本位置打印schema文档，各类定义保持原有的相对顺序，空文档打印为空字符串
func Print(doc *ast.SchemaDocument, indent string) string {
	var sb strings.Builder
	f := formatter.NewFormatter(&sb, formatter.WithIndent(indent))
	for _, e := range entries(doc) {
		f.FormatSchemaDocument(e.doc)
	}
	return sb.String()
}

// PrintGrouped 按类别分组打印: schema块、指令定义、类型定义、类型扩展，组内保持列表顺序
func PrintGrouped(doc *ast.SchemaDocument, indent string) string {
	var sb strings.Builder
	formatter.NewFormatter(&sb, formatter.WithIndent(indent)).FormatSchemaDocument(doc)
	return sb.String()
}

// entry 单个顶层定义及其起始位置
type entry struct {
	start int
	doc   *ast.SchemaDocument
}

// entries 把文档拆成单定义文档，按起始位置稳定排序，没有位置的排在最后
func entries(doc *ast.SchemaDocument) []entry {
	var list []entry
	add := func(pos *ast.Position, d *ast.SchemaDocument) {
		start := math.MaxInt
		if pos != nil {
			start = pos.Start
		}
		list = append(list, entry{start: start, doc: d})
	}
	for _, s := range doc.Schema {
		add(s.Position, &ast.SchemaDocument{Schema: ast.SchemaDefinitionList{s}})
	}
	for _, s := range doc.SchemaExtension {
		add(s.Position, &ast.SchemaDocument{SchemaExtension: ast.SchemaDefinitionList{s}})
	}
	for _, d := range doc.Directives {
		add(d.Position, &ast.SchemaDocument{Directives: ast.DirectiveDefinitionList{d}})
	}
	for _, d := range doc.Definitions {
		add(d.Position, &ast.SchemaDocument{Definitions: ast.DefinitionList{d}})
	}
	for _, d := range doc.Extensions {
		add(d.Position, &ast.SchemaDocument{Extensions: ast.DefinitionList{d}})
	}
	slices.SortStableFunc(list, func(a, b entry) int {
		return cmp.Compare(a.start, b.start)
	})
	return list
}

// PrintQuery 打印查询文档
func PrintQuery(doc *ast.QueryDocument, indent string) string {
	var sb strings.Builder
	formatter.NewFormatter(&sb, formatter.WithIndent(indent)).FormatQueryDocument(doc)
	return sb.String()
}
