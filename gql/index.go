package gql

import (
	set "github.com/duke-git/lancet/v2/datastructure/set"
	"github.com/vektah/gqlparser/v2/ast"
)

// Index 类型名到定义的索引以及接口到实现者的反向索引，构建后只读
type Index struct {
	Types        map[string]*ast.Definition
	Implementers map[string][]string
}

// NewIndex 单次扫描文档的类型定义构建索引，同名定义后者覆盖前者
func NewIndex(doc *ast.SchemaDocument) *Index {
	my := &Index{
		Types:        make(map[string]*ast.Definition, len(doc.Definitions)),
		Implementers: make(map[string][]string),
	}
	seen := make(map[string]set.Set[string])
	for _, def := range doc.Definitions {
		my.Types[def.Name] = def
		if def.Kind != ast.Object {
			continue
		}
		for _, name := range def.Interfaces {
			s, ok := seen[name]
			if !ok {
				s = set.New[string]()
				seen[name] = s
			}
			//同一对象重复声明只记录一次
			if s.AddIfNotExist(def.Name) {
				my.Implementers[name] = append(my.Implementers[name], def.Name)
			}
		}
	}
	return my
}

// Lookup 按名称查找类型定义
func (my *Index) Lookup(name string) (*ast.Definition, bool) {
	def, ok := my.Types[name]
	return def, ok
}

// ImplementersOf 返回接口的实现者，按声明顺序
func (my *Index) ImplementersOf(name string) []string {
	return my.Implementers[name]
}
