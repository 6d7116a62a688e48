package gql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocus(t *testing.T) {
	t.Run("对象沿字段类型可达", func(t *testing.T) {
		doc := mustSchema(t, `
type User { id: ID! name: String profile: Profile }
type Profile { bio: String }
type Post { title: String author: User }
`)
		closure, err := Focus(doc, []string{"User"})
		require.NoError(t, err)
		assert.Equal(t, []string{"User", "Profile"}, closure.Types)
		assert.Nil(t, closure.Fields)
		assert.False(t, closure.Passthrough)
	})

	t.Run("接口包含全部实现者", func(t *testing.T) {
		doc := mustSchema(t, `
interface Person { name: String }
type User implements Person { name: String }
type Guest implements Person { name: String }
type Other { x: Int }
`)
		closure, err := Focus(doc, []string{"Person"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Person", "User", "Guest"}, closure.Types)
	})

	t.Run("实现者可达其接口与兄弟实现者", func(t *testing.T) {
		doc := mustSchema(t, `
interface Person { name: String }
type User implements Person { name: String }
type Guest implements Person { name: String }
`)
		closure, err := Focus(doc, []string{"User"})
		require.NoError(t, err)
		assert.Equal(t, []string{"User", "Person", "Guest"}, closure.Types)
	})

	t.Run("联合类型包含全部成员", func(t *testing.T) {
		doc := mustSchema(t, `
union Result = A | B
type A { b: B }
type B { e: E }
enum E { X }
`)
		closure, err := Focus(doc, []string{"Result"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Result", "A", "B", "E"}, closure.Types)
	})

	t.Run("互相引用的类型可以终止", func(t *testing.T) {
		doc := mustSchema(t, `
type A { b: B }
type B { a: A self: B }
`)
		closure, err := Focus(doc, []string{"A", "B"})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, closure.Types)
	})

	t.Run("不存在的根返回空文档", func(t *testing.T) {
		doc := mustSchema(t, `type A { x: Int }`)
		out, err := FocusDocument(doc, []string{"Missing"})
		require.NoError(t, err)
		assert.Empty(t, out.Definitions)
		assert.Equal(t, "", Print(out, DEFAULT_INDENT))
	})
}

func TestFocusArguments(t *testing.T) {
	doc := mustSchema(t, `
type Query { users(filter: UserFilter): [User] }
type User { id: ID! }
input UserFilter { role: Role }
enum Role { ADMIN }
`)

	t.Run("默认不沿参数遍历", func(t *testing.T) {
		closure, err := Focus(doc, []string{"Query"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Query", "User"}, closure.Types)
	})

	t.Run("开启参数遍历", func(t *testing.T) {
		closure, err := Focus(doc, []string{"Query"}, WithArguments(true))
		require.NoError(t, err)
		assert.Equal(t, []string{"Query", "UserFilter", "Role", "User"}, closure.Types)
	})
}

func TestFocusDocument(t *testing.T) {
	doc := mustSchema(t, `
schema { query: Query }
directive @auth on FIELD_DEFINITION
type Query { user: User @auth }
type User { id: ID! }
extend type User { name: String }
type Unused { x: Int }
`)
	out, err := FocusDocument(doc, []string{"Query"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Query", "User"}, definitionNames(out))
	assert.Empty(t, out.Schema)
	assert.Empty(t, out.Directives)
	assert.Empty(t, out.Extensions)

	t.Run("输出可以重新解析且结果不变", func(t *testing.T) {
		again, err := FocusDocument(mustSchema(t, Print(out, DEFAULT_INDENT)), []string{"Query"})
		require.NoError(t, err)
		assert.Equal(t, Print(out, DEFAULT_INDENT), Print(again, DEFAULT_INDENT))
	})
}

func TestFocusDepth(t *testing.T) {
	doc := mustSchema(t, `
type A { b: B }
type B { c: C }
type C { d: D }
type D { x: Int }
`)
	_, err := Focus(doc, []string{"A"}, WithLimit(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDepthExceeded))

	closure, err := Focus(doc, []string{"A"}, WithLimit(0))
	require.NoError(t, err)
	assert.Len(t, closure.Types, 4)
}
