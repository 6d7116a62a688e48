package gql

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

const walkerSchema = `
type Query { a: Person b: Person search(term: String, filter: Filter): [Result] role: Role }
interface Person { name: String friend: Person }
type User implements Person { name: String friend: Person profile: Profile }
type Guest implements Person { name: String friend: Person }
type Profile { owner: User }
union Result = User | Post
type Post { title: String }
input Filter { role: Role, nested: Nested }
input Nested { deep: Int }
enum Role { ADMIN MEMBER }
type Orphan { x: Int }
`

func TestWalker(t *testing.T) {
	index := NewIndex(mustSchema(t, walkerSchema))

	t.Run("默认选择全部子节点", func(t *testing.T) {
		w := NewWalker(index, Selector{}, Visitor{}, 0)
		require.NoError(t, w.Walk("Query"))
		assert.ElementsMatch(t,
			[]string{"Query", "Person", "User", "Profile", "Guest", "Filter", "Role", "Nested", "Result", "Post"},
			w.Visited(),
		)
		assert.False(t, w.Seen("Orphan"))
		assert.Equal(t, "Query", w.Visited()[0])
	})

	t.Run("不存在的起点没有结果", func(t *testing.T) {
		w := NewWalker(index, Selector{}, Visitor{}, 0)
		require.NoError(t, w.Walk("Nope"))
		assert.Empty(t, w.Visited())
	})

	t.Run("接口再次到达时触发钩子但不再展开", func(t *testing.T) {
		entered := map[string]int{}
		fields := map[string]int{}
		w := NewWalker(index, Selector{}, Visitor{
			EnterType: func(_ Path, def *ast.Definition) {
				entered[def.Name]++
			},
			EnterField: func(_ Path, def *ast.Definition, _ *ast.FieldDefinition) {
				fields[def.Name]++
			},
		}, 0)
		require.NoError(t, w.Walk("Query"))
		assert.Equal(t, 2, entered["Person"])
		assert.Equal(t, 1, entered["User"])
		assert.Equal(t, 2, fields["Person"])
	})

	t.Run("检测路径上的环", func(t *testing.T) {
		var cycles []string
		w := NewWalker(index, Selector{}, Visitor{
			Cycle: func(path Path, name string) {
				assert.Contains(t, path, name)
				cycles = append(cycles, name)
			},
		}, 0)
		require.NoError(t, w.Walk("Profile"))
		assert.Contains(t, cycles, "User")
		assert.Contains(t, cycles, "Person")
	})

	t.Run("参数与枚举值钩子", func(t *testing.T) {
		var args, values []string
		w := NewWalker(index, Selector{}, Visitor{
			EnterArgument: func(_ Path, field *ast.FieldDefinition, arg *ast.ArgumentDefinition) {
				args = append(args, field.Name+"."+arg.Name)
			},
			EnterValue: func(path Path, def *ast.Definition, value *ast.EnumValueDefinition) {
				assert.Equal(t, "Role", path[len(path)-1])
				values = append(values, value.Name)
			},
		}, 0)
		require.NoError(t, w.Walk("Query"))
		assert.Equal(t, []string{"search.term", "search.filter"}, args)
		assert.Equal(t, []string{"ADMIN", "MEMBER"}, values)
	})

	t.Run("自定义选择策略", func(t *testing.T) {
		w := NewWalker(index, Selector{
			Fields: func(def *ast.Definition) ast.FieldList {
				return lo.Filter(def.Fields, func(f *ast.FieldDefinition, _ int) bool {
					return f.Name != "search" && f.Name != "friend"
				})
			},
			Implementers: func(*ast.Definition) []string { return nil },
		}, Visitor{}, 0)
		require.NoError(t, w.Walk("Query"))
		assert.Equal(t, []string{"Query", "Person", "Role"}, w.Visited())
	})

	t.Run("多次遍历共享访问标记", func(t *testing.T) {
		w := NewWalker(index, Selector{}, Visitor{}, 0)
		require.NoError(t, w.Walk("Post"))
		require.NoError(t, w.Walk("Result"))
		require.NoError(t, w.Walk("Post"))
		assert.Equal(t, []string{"Post", "Result", "User", "Person", "Guest", "Profile"}, w.Visited())
	})
}

func TestWalkerReentryPath(t *testing.T) {
	index := NewIndex(mustSchema(t, walkerSchema))
	var (
		kept    []Path
		printed []string
	)
	w := NewWalker(index, Selector{}, Visitor{
		EnterType: func(path Path, def *ast.Definition) {
			if def.Name == "Person" {
				kept = append(kept, path)
				printed = append(printed, path.String())
			}
		},
	}, 0)
	require.NoError(t, w.Walk("Query"))

	//第二次为沿b字段再次到达
	require.Len(t, kept, 2)
	assert.Equal(t, "Query -> Person", printed[1])
	assert.Equal(t, printed[1], kept[1].String())
}

func TestWalkerDepth(t *testing.T) {
	index := NewIndex(mustSchema(t, `
type T0 { next: T1 }
type T1 { next: T2 }
type T2 { next: T3 }
type T3 { next: T4 }
type T4 { value: Int }
`))

	t.Run("超过深度限制", func(t *testing.T) {
		w := NewWalker(index, Selector{}, Visitor{}, 3)
		err := w.Walk("T0")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDepthExceeded))
		assert.Contains(t, err.Error(), "T0 -> T1 -> T2")
	})

	t.Run("深度足够时正常完成", func(t *testing.T) {
		w := NewWalker(index, Selector{}, Visitor{}, 5)
		require.NoError(t, w.Walk("T0"))
		assert.Len(t, w.Visited(), 5)
	})
}
