package utl

import (
	"strings"

	"github.com/samber/lo"
)

// SplitNames 拆分以逗号或空白分隔的名称列表，去掉空项并保持首次出现的顺序
func SplitNames(elem ...string) []string {
	var names []string
	for _, e := range elem {
		names = append(names, strings.FieldsFunc(e, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})...)
	}
	return lo.Uniq(names)
}
