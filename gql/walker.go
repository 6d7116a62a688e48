package gql

import (
	"fmt"
	"slices"
	"strings"

	set "github.com/duke-git/lancet/v2/datastructure/set"
	"github.com/vektah/gqlparser/v2/ast"
)

// Path 从遍历起点到当前类型的类型名栈，钩子内只读且不可保留
type Path []string

func (my Path) String() string {
	return strings.Join(my, " -> ")
}

// Selector 子节点选择策略，字段为nil时选择全部子节点
type Selector struct {
	Fields       func(def *ast.Definition) ast.FieldList
	Arguments    func(def *ast.Definition, field *ast.FieldDefinition) ast.ArgumentDefinitionList
	Interfaces   func(def *ast.Definition) []string
	Implementers func(def *ast.Definition) []string
	Members      func(def *ast.Definition) []string
	Values       func(def *ast.Definition) ast.EnumValueList
}

// Visitor 遍历钩子，字段为nil时忽略
type Visitor struct {
	// EnterType 首次进入类型时调用，已访问的接口沿新的边再次到达时也会调用
	EnterType     func(path Path, def *ast.Definition)
	EnterField    func(path Path, def *ast.Definition, field *ast.FieldDefinition)
	EnterArgument func(path Path, field *ast.FieldDefinition, arg *ast.ArgumentDefinition)
	EnterValue    func(path Path, def *ast.Definition, value *ast.EnumValueDefinition)
	// Cycle 边指向当前路径上已有的类型
	Cycle func(path Path, name string)
}

// Walker 深度优先的类型图遍历器，每个类型的子节点最多展开一次
type Walker struct {
	index    *Index
	selector Selector
	visitor  Visitor
	limit    int
	visited  set.Set[string]
	onPath   set.Set[string]
	order    []string
	path     Path
}

// NewWalker 创建遍历器，limit非正数时使用默认深度
func NewWalker(index *Index, selector Selector, visitor Visitor, limit int) *Walker {
	if limit <= 0 {
		limit = DEFAULT_LIMIT
	}
	return &Walker{
		index:    index,
		selector: selector,
		visitor:  visitor,
		limit:    limit,
		visited:  set.New[string](),
		onPath:   set.New[string](),
	}
}

// Walk 从root开始遍历，多次调用共享已访问标记，索引中不存在的root不产生任何结果
func (my *Walker) Walk(root string) error {
	return my.enter(root)
}

// Visited 按首次访问顺序返回已访问的类型
func (my *Walker) Visited() []string {
	return my.order
}

// Seen 类型是否已被访问
func (my *Walker) Seen(name string) bool {
	return my.visited.Contain(name)
}

func (my *Walker) enter(name string) error {
	def, ok := my.index.Lookup(name)
	if !ok {
		return nil
	}

	if my.visited.Contain(name) {
		if my.onPath.Contain(name) {
			if my.visitor.Cycle != nil {
				my.visitor.Cycle(my.path, name)
			}
			return nil
		}
		//接口沿不同的边再次到达，只触发钩子不再展开
		if def.Kind == ast.Interface && my.visitor.EnterType != nil {
			my.visitor.EnterType(append(slices.Clip(my.path), name), def)
		}
		return nil
	}

	if len(my.path) >= my.limit {
		return fmt.Errorf("%w(%d): %s -> %s", ErrDepthExceeded, my.limit, my.path, name)
	}

	my.visited.Add(name)
	my.order = append(my.order, name)
	my.path = append(my.path, name)
	my.onPath.Add(name)
	defer func() {
		my.path = my.path[:len(my.path)-1]
		my.onPath.Delete(name)
	}()

	if my.visitor.EnterType != nil {
		my.visitor.EnterType(my.path, def)
	}

	switch def.Kind {
	case ast.Object, ast.Interface:
		if err := my.fields(def, true); err != nil {
			return err
		}
		if err := my.each(my.interfaces(def)); err != nil {
			return err
		}
		if def.Kind == ast.Interface {
			return my.each(my.implementers(def))
		}
	case ast.InputObject:
		return my.fields(def, false)
	case ast.Union:
		return my.each(my.members(def))
	case ast.Enum:
		if my.visitor.EnterValue != nil {
			for _, v := range my.values(def) {
				my.visitor.EnterValue(my.path, def, v)
			}
		}
	case ast.Scalar:
	}
	return nil
}

func (my *Walker) fields(def *ast.Definition, arguments bool) error {
	for _, f := range my.selectFields(def) {
		if my.visitor.EnterField != nil {
			my.visitor.EnterField(my.path, def, f)
		}
		if arguments {
			for _, arg := range my.arguments(def, f) {
				if my.visitor.EnterArgument != nil {
					my.visitor.EnterArgument(my.path, f, arg)
				}
				if err := my.enter(arg.Type.Name()); err != nil {
					return err
				}
			}
		}
		if err := my.enter(f.Type.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (my *Walker) each(names []string) error {
	for _, name := range names {
		if err := my.enter(name); err != nil {
			return err
		}
	}
	return nil
}

func (my *Walker) selectFields(def *ast.Definition) ast.FieldList {
	if my.selector.Fields == nil {
		return def.Fields
	}
	return my.selector.Fields(def)
}

func (my *Walker) arguments(def *ast.Definition, field *ast.FieldDefinition) ast.ArgumentDefinitionList {
	if my.selector.Arguments == nil {
		return field.Arguments
	}
	return my.selector.Arguments(def, field)
}

func (my *Walker) interfaces(def *ast.Definition) []string {
	if my.selector.Interfaces == nil {
		return def.Interfaces
	}
	return my.selector.Interfaces(def)
}

func (my *Walker) implementers(def *ast.Definition) []string {
	if my.selector.Implementers == nil {
		return my.index.ImplementersOf(def.Name)
	}
	return my.selector.Implementers(def)
}

func (my *Walker) members(def *ast.Definition) []string {
	if my.selector.Members == nil {
		return def.Types
	}
	return my.selector.Members(def)
}

func (my *Walker) values(def *ast.Definition) ast.EnumValueList {
	if my.selector.Values == nil {
		return def.EnumValues
	}
	return my.selector.Values(def)
}
