package gql

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// Focus 计算从roots出发可达的类型闭包，索引中不存在的root不产生结果
func Focus(doc *ast.SchemaDocument, roots []string, ops ...Option) (*Closure, error) {
	o := newOptions(ops...)

	selector := Selector{}
	if !o.arguments {
		selector.Arguments = func(*ast.Definition, *ast.FieldDefinition) ast.ArgumentDefinitionList {
			return nil
		}
	}

	stats := &Stats{}
	walker := NewWalker(NewIndex(doc), selector, stats.Visitor(), o.limit)
	for _, root := range lo.Uniq(roots) {
		if err := walker.Walk(root); err != nil {
			return nil, fmt.Errorf("计算类型 %s 的可达闭包失败: %w", root, err)
		}
	}

	closure := NewClosure(walker.Visited()...)
	stats.log(OPERATION_FOCUS, len(closure.Types))
	return closure, nil
}

// FocusDocument 返回只包含可达类型的文档，不包含schema、指令定义与类型扩展
func FocusDocument(doc *ast.SchemaDocument, roots []string, ops ...Option) (*ast.SchemaDocument, error) {
	closure, err := Focus(doc, roots, ops...)
	if err != nil {
		return nil, err
	}
	return Filter(doc, closure), nil
}
