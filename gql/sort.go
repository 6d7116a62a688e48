package gql

import (
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Sort 按(类别, 名称)稳定排序文档，不修改输入文档
// 类别依次为schema块、指令定义、类型定义、类型扩展，类型扩展保持原有顺序
// 类别顺序由PrintGrouped输出，Print会按源文本位置恢复原有顺序
func Sort(doc *ast.SchemaDocument) *ast.SchemaDocument {
	out := &ast.SchemaDocument{
		Schema:          slices.Clone(doc.Schema),
		SchemaExtension: slices.Clone(doc.SchemaExtension),
		Directives:      slices.Clone(doc.Directives),
		Definitions:     slices.Clone(doc.Definitions),
		Extensions:      slices.Clone(doc.Extensions),
	}
	slices.SortStableFunc(out.Directives, func(a, b *ast.DirectiveDefinition) int {
		return strings.Compare(a.Name, b.Name)
	})
	slices.SortStableFunc(out.Definitions, func(a, b *ast.Definition) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
