package gql

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func prune(t *testing.T, schema, query string, ops ...Option) *ast.SchemaDocument {
	t.Helper()
	out, err := PruneDocument(mustSchema(t, schema), mustQuery(t, query), ops...)
	require.NoError(t, err)
	return out
}

func TestPrune(t *testing.T) {
	t.Run("只保留使用到的字段", func(t *testing.T) {
		out := prune(t, `
type Query { user(id: ID!): User posts: [Post] }
type User { id: ID! name: String email: String }
type Post { title: String }
`, `query User { user(id: 1) { id name } }`)

		assert.Equal(t, []string{"Query", "User"}, definitionNames(out))
		assert.Equal(t, []string{"user"}, fieldNames(t, out, "Query"))
		assert.Equal(t, []string{"id", "name"}, fieldNames(t, out, "User"))
	})

	t.Run("根类型不存在时输出为空", func(t *testing.T) {
		out := prune(t, `
type Query { a: Int }
`, `mutation { createUser }`)
		assert.Empty(t, out.Definitions)
		assert.Equal(t, "", Print(out, DEFAULT_INDENT))
	})

	t.Run("内联片段保留接口字段与子类型字段", func(t *testing.T) {
		out := prune(t, `
type Query { node: Node }
interface Node { id: ID! label: String }
type SubType implements Node { id: ID! label: String f: String g: String }
type Other implements Node { id: ID! label: String h: String }
`, `{ node { id ... on SubType { f } } }`)

		assert.Equal(t, []string{"Query", "Node", "SubType", "Other"}, definitionNames(out))
		assert.Equal(t, []string{"id"}, fieldNames(t, out, "Node"))
		assert.Equal(t, []string{"id", "f"}, fieldNames(t, out, "SubType"))
		assert.Equal(t, []string{"id"}, fieldNames(t, out, "Other"))
	})

	t.Run("片段互相引用可以终止", func(t *testing.T) {
		out := prune(t, `
type Query { user: User }
type User { id: ID! name: String email: String }
`, `
query { user { ...A } }
fragment A on User { id ...B }
fragment B on User { name ...A }
`)
		assert.Equal(t, []string{"id", "name"}, fieldNames(t, out, "User"))
	})

	t.Run("未知片段与未知字段被忽略", func(t *testing.T) {
		out := prune(t, `
type Query { user: User }
type User { id: ID! }
`, `{ user { nope ...Missing } }`)
		assert.Equal(t, []string{"Query", "User"}, definitionNames(out))
		assert.Empty(t, fieldNames(t, out, "User"))
	})

	t.Run("参数的输入类型整体保留", func(t *testing.T) {
		out := prune(t, `
type Query { users(filter: UserFilter): [User] }
type User { id: ID! name: String }
input UserFilter { name: String role: Role nested: Nested }
input Nested { deep: Int }
enum Role { ADMIN MEMBER }
input Unused { x: Int }
`, `{ users { id } }`)
		assert.ElementsMatch(t, []string{"Query", "User", "UserFilter", "Nested", "Role"}, definitionNames(out))
		assert.Equal(t, []string{"name", "role", "nested"}, fieldNames(t, out, "UserFilter"))
		assert.Equal(t, []string{"id"}, fieldNames(t, out, "User"))
	})

	t.Run("联合类型保留全部成员", func(t *testing.T) {
		out := prune(t, `
type Query { search: [Result] }
union Result = User | Post
type User { id: ID! name: String }
type Post { title: String }
`, `{ search { ... on User { id } } }`)
		assert.Equal(t, []string{"Query", "Result", "User", "Post"}, definitionNames(out))
		assert.Equal(t, []string{"id"}, fieldNames(t, out, "User"))
		assert.Empty(t, fieldNames(t, out, "Post"))
	})

	t.Run("只因被实现而保留的接口不拉入其它实现者", func(t *testing.T) {
		out := prune(t, `
type Query { user: User }
interface Node { id: ID! }
type User implements Node { id: ID! name: String }
type Post implements Node { id: ID! }
`, `{ user { name } }`)
		assert.Equal(t, []string{"Query", "Node", "User"}, definitionNames(out))
		assert.Empty(t, fieldNames(t, out, "Node"))
		assert.Equal(t, []string{"name"}, fieldNames(t, out, "User"))
	})

	t.Run("非类型定义原样保留", func(t *testing.T) {
		out := prune(t, `
schema { query: RootQuery }
directive @cached on FIELD_DEFINITION
type RootQuery { a: A @cached b: Int }
type A { x: Int y: Int }
extend type A { z: Int }
`, `{ a { x } }`)
		assert.Equal(t, []string{"RootQuery", "A"}, definitionNames(out))
		assert.Equal(t, []string{"a"}, fieldNames(t, out, "RootQuery"))
		assert.Len(t, out.Schema, 1)
		assert.Len(t, out.Directives, 1)
		assert.Len(t, out.Extensions, 1)
	})

	t.Run("不修改输入文档", func(t *testing.T) {
		schema := mustSchema(t, `
type Query { user: User }
type User { id: ID! name: String }
`)
		_, err := PruneDocument(schema, mustQuery(t, `{ user { id } }`))
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, fieldNames(t, schema, "User"))
	})
}

func TestPruneIdempotent(t *testing.T) {
	schema := `
schema { query: Query mutation: Mutation }
type Query { node(id: ID!): Node search(filter: Filter): [Result] viewer: User }
type Mutation { rename(id: ID!, name: String): User }
interface Node { id: ID! }
type User implements Node { id: ID! name: String friends: [User] posts: [Post] }
type Post implements Node { id: ID! title: String author: User }
union Result = User | Post
input Filter { term: String kind: Kind }
enum Kind { USER POST }
type Unused { x: Int }
`
	query := `
query Q { viewer { ...UserParts friends { name } } search { ... on Post { title } } }
mutation M { rename(id: 1, name: "x") { id } }
fragment UserParts on User { id posts { author { name } } }
`
	first := Print(prune(t, schema, query), DEFAULT_INDENT)
	second := Print(prune(t, first, query), DEFAULT_INDENT)
	assert.Equal(t, first, second)
	assert.NotContains(t, first, "Unused")
}

func TestPruneDepth(t *testing.T) {
	schema := mustSchema(t, `
type Query { user: User }
type User { profile: Profile id: ID! }
type Profile { owner: User }
`)
	query := mustQuery(t, `{ user { profile { owner { id } } } }`)

	_, err := Prune(schema, query, WithLimit(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDepthExceeded))

	_, err = Prune(schema, query, WithLimit(10))
	require.NoError(t, err)
}

func TestRootsOf(t *testing.T) {
	doc := mustSchema(t, `
schema { query: Root }
extend schema { subscription: Events }
type Root { a: Int }
`)
	roots := RootsOf(doc)
	assert.Equal(t, "Root", roots[ast.Query])
	assert.Equal(t, ROOT_MUTATION, roots[ast.Mutation])
	assert.Equal(t, "Events", roots[ast.Subscription])
}

func TestClosureUsage(t *testing.T) {
	schema := mustSchema(t, `
type Query { user: User }
type User { id: ID! name: String email: String }
enum Unused { A }
`)
	closure, err := Prune(schema, mustQuery(t, `{ user { email id } }`))
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"Query": {"user"},
		"User":  {"id", "email"},
	}, closure.Usage(schema))
}

func TestPruneKeepsOrder(t *testing.T) {
	schema := mustSchema(t, "type Q { a: Int b: Int }\ndirective @d on FIELD\nschema { query: Q }")
	out, err := PruneDocument(schema, mustQuery(t, `{ a }`))
	require.NoError(t, err)

	printed := Print(out, DEFAULT_INDENT)
	assert.Less(t, strings.Index(printed, "type Q"), strings.Index(printed, "directive @d"))
	assert.Less(t, strings.Index(printed, "directive @d"), strings.Index(printed, "schema"))
	assert.NotContains(t, printed, "b: Int")
}
