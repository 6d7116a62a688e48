package utl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSource(t *testing.T) {
	t.Run("读取文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.graphql")
		require.NoError(t, os.WriteFile(path, []byte("type A { x: Int }"), 0644))

		src, err := ReadSource(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "type A { x: Int }", src)
		assert.Equal(t, path, SourceName(path))
	})

	t.Run("读取标准输入", func(t *testing.T) {
		src, err := ReadSource(STDIN, strings.NewReader("{ a }"))
		require.NoError(t, err)
		assert.Equal(t, "{ a }", src)
		assert.Equal(t, "<stdin>", SourceName(STDIN))
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := ReadSource(filepath.Join(t.TempDir(), "missing"), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"User", "Post", "Comment"}, SplitNames("User,Post", " Comment ", "User"))
	assert.Empty(t, SplitNames(" , "))
}

func TestJSON(t *testing.T) {
	data, err := MarshalJSON(map[string][]string{"b": {"y"}, "a": {"x"}})
	require.NoError(t, err)
	assert.Equal(t, `{"a":["x"],"b":["y"]}`, string(data))

	var out map[string][]string
	require.NoError(t, UnmarshalJSON(data, &out))
	assert.Equal(t, []string{"x"}, out["a"])

	indented, err := MarshalIndentJSON(map[string]int{"a": 1}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(indented))
}

