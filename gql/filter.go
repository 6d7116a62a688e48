package gql

import (
	set "github.com/duke-git/lancet/v2/datastructure/set"
	"github.com/huandu/go-clone"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// Closure 闭包计算结果
type Closure struct {
	// Types 保留的类型名，按首次访问顺序
	Types []string
	// Fields 对象与接口保留的字段，为nil时保留全部字段
	Fields map[string]set.Set[string]
	// Passthrough 是否原样保留schema、指令定义与类型扩展
	Passthrough bool

	types set.Set[string]
}

// NewClosure 创建只包含类型集合的闭包
func NewClosure(types ...string) *Closure {
	my := &Closure{types: set.New[string]()}
	for _, name := range types {
		if my.types.AddIfNotExist(name) {
			my.Types = append(my.Types, name)
		}
	}
	return my
}

// Has 类型是否在闭包中
func (my *Closure) Has(name string) bool {
	return my.types.Contain(name)
}

// Empty 闭包是否为空
func (my *Closure) Empty() bool {
	return len(my.Types) == 0
}

// Usage 返回每个保留类型的字段，按定义顺序，非对象类型为空列表
func (my *Closure) Usage(doc *ast.SchemaDocument) map[string][]string {
	index := NewIndex(doc)
	usage := make(map[string][]string, len(my.Types))
	for _, name := range my.Types {
		fields := make([]string, 0)
		if def, ok := index.Lookup(name); ok && my.filters(def) {
			keep := my.Fields[name]
			for _, f := range def.Fields {
				if keep.Contain(f.Name) {
					fields = append(fields, f.Name)
				}
			}
		}
		usage[name] = fields
	}
	return usage
}

func (my *Closure) filters(def *ast.Definition) bool {
	return my.Fields != nil && (def.Kind == ast.Object || def.Kind == ast.Interface)
}

// Filter 按闭包重建文档，保持原有顺序，不修改输入文档
func Filter(doc *ast.SchemaDocument, closure *Closure) *ast.SchemaDocument {
	out := &ast.SchemaDocument{}
	if closure.Passthrough {
		out.Schema = doc.Schema
		out.SchemaExtension = doc.SchemaExtension
		out.Directives = doc.Directives
		out.Extensions = doc.Extensions
	}
	for _, def := range doc.Definitions {
		if !closure.Has(def.Name) {
			continue
		}
		if !closure.filters(def) {
			out.Definitions = append(out.Definitions, def)
			continue
		}
		keep := closure.Fields[def.Name]
		cp := clone.Slowly(def).(*ast.Definition)
		cp.Fields = lo.Filter(cp.Fields, func(f *ast.FieldDefinition, _ int) bool {
			return keep.Contain(f.Name)
		})
		out.Definitions = append(out.Definitions, cp)
	}
	return out
}
