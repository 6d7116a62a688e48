package gql

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/huandu/go-clone"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/lexer"
)

// Normalize 返回查询文档的规范形式，不修改输入文档
//   - 片段按名称排序，操作保持原有顺序
//   - 变量定义与参数按名称排序
//   - 选择集内字段在前（按响应名、字段名），其次片段展开（按名称），最后内联片段（按类型条件）
func Normalize(doc *ast.QueryDocument) *ast.QueryDocument {
	out := clone.Slowly(doc).(*ast.QueryDocument)
	slices.SortStableFunc(out.Fragments, func(a, b *ast.FragmentDefinition) int {
		return strings.Compare(a.Name, b.Name)
	})
	for _, op := range out.Operations {
		slices.SortStableFunc(op.VariableDefinitions, func(a, b *ast.VariableDefinition) int {
			return strings.Compare(a.Variable, b.Variable)
		})
		normalizeSelections(op.SelectionSet)
	}
	for _, f := range out.Fragments {
		normalizeSelections(f.SelectionSet)
	}
	return out
}

func normalizeSelections(selections ast.SelectionSet) {
	for _, selection := range selections {
		switch sel := selection.(type) {
		case *ast.Field:
			slices.SortStableFunc(sel.Arguments, func(a, b *ast.Argument) int {
				return strings.Compare(a.Name, b.Name)
			})
			normalizeSelections(sel.SelectionSet)
		case *ast.InlineFragment:
			normalizeSelections(sel.SelectionSet)
		}
	}
	slices.SortStableFunc(selections, func(a, b ast.Selection) int {
		ra, ka, na := selectionKey(a)
		rb, kb, nb := selectionKey(b)
		return cmp.Or(cmp.Compare(ra, rb), strings.Compare(ka, kb), strings.Compare(na, nb))
	})
}

// selectionKey 返回选择的排序键: 类别、主键、次键
func selectionKey(selection ast.Selection) (int, string, string) {
	switch sel := selection.(type) {
	case *ast.Field:
		return 0, sel.Alias, sel.Name
	case *ast.FragmentSpread:
		return 1, sel.Name, ""
	case *ast.InlineFragment:
		return 2, sel.TypeCondition, ""
	}
	return 3, "", ""
}

// Minify 去掉查询文本中的空白与注释，只在相邻的名称或数字之间保留一个空格
func Minify(input string) (string, error) {
	lex := lexer.New(&ast.Source{Input: input})
	runes := []rune(input)

	var sb strings.Builder
	words := false
	for {
		tok, err := lex.ReadToken()
		if err != nil {
			return "", fmt.Errorf("压缩查询失败: %w", err)
		}
		if tok.Kind == lexer.EOF {
			break
		}
		text := string(runes[tok.Pos.Start:tok.Pos.End])
		if strings.HasPrefix(text, "#") {
			continue
		}
		word := tok.Kind == lexer.Name || tok.Kind == lexer.Int || tok.Kind == lexer.Float
		if word && words {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
		words = word
	}
	return sb.String(), nil
}
