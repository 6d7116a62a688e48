package gql

import (
	"github.com/jeffutter/graphql-document-utils/log"
	"github.com/vektah/gqlparser/v2/ast"
)

// Stats 一次闭包计算的遍历统计
type Stats struct {
	Types     int `json:"types"`
	Reentries int `json:"reentries"`
	Fields    int `json:"fields"`
	Arguments int `json:"arguments"`
	Values    int `json:"values"`
	Cycles    int `json:"cycles"`
}

// Visitor 返回累计统计的遍历钩子
func (my *Stats) Visitor() Visitor {
	seen := make(map[string]struct{})
	return Visitor{
		EnterType: func(_ Path, def *ast.Definition) {
			if _, ok := seen[def.Name]; ok {
				my.Reentries++
				return
			}
			seen[def.Name] = struct{}{}
			my.Types++
		},
		EnterField: func(Path, *ast.Definition, *ast.FieldDefinition) {
			my.Fields++
		},
		EnterArgument: func(Path, *ast.FieldDefinition, *ast.ArgumentDefinition) {
			my.Arguments++
		},
		EnterValue: func(Path, *ast.Definition, *ast.EnumValueDefinition) {
			my.Values++
		},
		Cycle: func(Path, string) {
			my.Cycles++
		},
	}
}

func (my *Stats) log(operation string, retained int) {
	log.Debug().
		Str("operation", operation).
		Int("retained", retained).
		Int("types", my.Types).
		Int("reentries", my.Reentries).
		Int("fields", my.Fields).
		Int("arguments", my.Arguments).
		Int("values", my.Values).
		Int("cycles", my.Cycles).
		Msg("闭包计算完成")
}
