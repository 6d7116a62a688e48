package gql

import (
	"fmt"

	set "github.com/duke-git/lancet/v2/datastructure/set"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// Roots 操作类型到根类型名的映射
type Roots map[ast.Operation]string

// RootsOf 读取schema块（含扩展）声明的根类型，未声明的使用默认名称
func RootsOf(doc *ast.SchemaDocument) Roots {
	roots := Roots{
		ast.Query:        ROOT_QUERY,
		ast.Mutation:     ROOT_MUTATION,
		ast.Subscription: ROOT_SUBSCRIPTION,
	}
	for _, list := range []ast.SchemaDefinitionList{doc.Schema, doc.SchemaExtension} {
		for _, s := range list {
			for _, ot := range s.OperationTypes {
				roots[ot.Operation] = ot.Type
			}
		}
	}
	return roots
}

// usage 选择集遍历收集的类型与字段使用情况
type usage struct {
	index     *Index
	limit     int
	fragments map[string]*ast.FragmentDefinition
	expanded  set.Set[string]
	used      map[string]set.Set[string]
	order     []string
}

func (my *usage) touch(name string) set.Set[string] {
	s, ok := my.used[name]
	if !ok {
		s = set.New[string]()
		my.used[name] = s
		my.order = append(my.order, name)
	}
	return s
}

func (my *usage) selections(parent string, selections ast.SelectionSet, depth int) error {
	def, ok := my.index.Lookup(parent)
	if !ok {
		return nil
	}
	if depth > my.limit {
		return fmt.Errorf("%w(%d): 选择集 %s", ErrDepthExceeded, my.limit, parent)
	}
	for _, selection := range selections {
		switch sel := selection.(type) {
		case *ast.Field:
			if def.Kind != ast.Object && def.Kind != ast.Interface {
				continue
			}
			field := def.Fields.ForName(sel.Name)
			if field == nil {
				continue
			}
			my.touch(def.Name).Add(field.Name)
			target := field.Type.Name()
			my.touch(target)
			for _, arg := range field.Arguments {
				my.touch(arg.Type.Name())
			}
			if err := my.selections(target, sel.SelectionSet, depth+1); err != nil {
				return err
			}
		case *ast.FragmentSpread:
			fragment, ok := my.fragments[sel.Name]
			if !ok {
				continue
			}
			my.touch(fragment.TypeCondition)
			//片段的展开与上下文无关，只展开一次
			if !my.expanded.AddIfNotExist(fragment.Name) {
				continue
			}
			if err := my.selections(fragment.TypeCondition, fragment.SelectionSet, depth+1); err != nil {
				return err
			}
		case *ast.InlineFragment:
			target := lo.Ternary(sel.TypeCondition != "", sel.TypeCondition, parent)
			my.touch(target)
			if err := my.selections(target, sel.SelectionSet, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// keeps 对象保留自身被使用的字段以及在其实现的接口上被使用的同名字段
func (my *usage) keeps(def *ast.Definition, name string) bool {
	if my.used[def.Name].Contain(name) {
		return true
	}
	if def.Kind != ast.Object {
		return false
	}
	return lo.ContainsBy(def.Interfaces, func(i string) bool {
		return my.used[i].Contain(name)
	})
}

// Prune 计算查询文档使用到的类型与字段闭包
func Prune(schema *ast.SchemaDocument, query *ast.QueryDocument, ops ...Option) (*Closure, error) {
	o := newOptions(ops...)
	index := NewIndex(schema)
	u := &usage{
		index:     index,
		limit:     o.limit,
		fragments: make(map[string]*ast.FragmentDefinition, len(query.Fragments)),
		expanded:  set.New[string](),
		used:      make(map[string]set.Set[string]),
	}
	for _, f := range query.Fragments {
		u.fragments[f.Name] = f
	}

	roots := RootsOf(schema)
	for _, op := range query.Operations {
		//匿名选择集按query处理
		kind := lo.Ternary(op.Operation == "", ast.Query, op.Operation)
		root := roots[kind]
		if _, ok := index.Lookup(root); !ok {
			continue
		}
		u.touch(root)
		if err := u.selections(root, op.SelectionSet, 1); err != nil {
			return nil, fmt.Errorf("遍历操作 %s 的选择集失败: %w", op.Name, err)
		}
	}

	//补全阶段: 从所有被使用的类型出发，沿保留的字段、参数、接口、实现者与联合成员补全
	selector := Selector{
		Fields: func(def *ast.Definition) ast.FieldList {
			if def.Kind != ast.Object && def.Kind != ast.Interface {
				return def.Fields
			}
			return lo.Filter(def.Fields, func(f *ast.FieldDefinition, _ int) bool {
				return u.keeps(def, f.Name)
			})
		},
		//只因被实现而保留的接口不再拉入其它实现者
		Implementers: func(def *ast.Definition) []string {
			if _, ok := u.used[def.Name]; !ok {
				return nil
			}
			return index.ImplementersOf(def.Name)
		},
	}
	stats := &Stats{}
	walker := NewWalker(index, selector, stats.Visitor(), o.limit)
	for _, name := range u.order {
		if err := walker.Walk(name); err != nil {
			return nil, fmt.Errorf("补全类型 %s 的使用闭包失败: %w", name, err)
		}
	}

	closure := NewClosure(walker.Visited()...)
	closure.Passthrough = true
	closure.Fields = make(map[string]set.Set[string])
	for _, name := range closure.Types {
		def, _ := index.Lookup(name)
		if def.Kind != ast.Object && def.Kind != ast.Interface {
			continue
		}
		keep := set.New[string]()
		for _, f := range def.Fields {
			if u.keeps(def, f.Name) {
				keep.Add(f.Name)
			}
		}
		closure.Fields[name] = keep
	}

	stats.log(OPERATION_PRUNE, len(closure.Types))
	return closure, nil
}

// PruneDocument 返回只包含查询使用到的类型与字段的文档
func PruneDocument(schema *ast.SchemaDocument, query *ast.QueryDocument, ops ...Option) (*ast.SchemaDocument, error) {
	closure, err := Prune(schema, query, ops...)
	if err != nil {
		return nil, err
	}
	return Filter(schema, closure), nil
}
