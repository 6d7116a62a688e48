package gql

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func mustSchema(t *testing.T, input string) *ast.SchemaDocument {
	t.Helper()
	doc, err := ParseSchema("schema.graphql", input)
	require.NoError(t, err)
	return doc
}

func mustQuery(t *testing.T, input string) *ast.QueryDocument {
	t.Helper()
	doc, err := ParseQuery("query.graphql", input)
	require.NoError(t, err)
	return doc
}

func definitionNames(doc *ast.SchemaDocument) []string {
	return lo.Map(doc.Definitions, func(def *ast.Definition, _ int) string {
		return def.Name
	})
}

func fieldNames(t *testing.T, doc *ast.SchemaDocument, name string) []string {
	t.Helper()
	def, ok := NewIndex(doc).Lookup(name)
	require.True(t, ok, "类型 %s 不存在", name)
	return lo.Map(def.Fields, func(f *ast.FieldDefinition, _ int) string {
		return f.Name
	})
}
