package table

import (
	"testing"
	"unique"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	ast := assert.New(t)

	t.Run("get", func(t *testing.T) {
		tbl := New[string, string](1)
		tbl.Put("ruby", "hello")

		val, ok := tbl.Get("ruby")
		ast.True(ok)
		ast.Equal("hello", val)

		val, ok = tbl.Get("none")
		ast.False(ok)
		ast.Equal("", val)
	})

	t.Run("overwrite", func(t *testing.T) {
		tbl := New[string, int](1)
		tbl.Put("key", 1)
		tbl.Put("key", 2)

		ast.Equal(1, tbl.Len())
		val, ok := tbl.Get("key")
		ast.True(ok)
		ast.Equal(2, val)
	})

	t.Run("interned-keys", func(t *testing.T) {
		tbl := New[unique.Handle[string], string](1)
		tbl.Put(unique.Make("ruby"), "hello")

		val, ok := tbl.Get(unique.Make("ruby"))
		ast.True(ok)
		ast.Equal("hello", val)

		_, ok = tbl.Get(unique.Make("rails"))
		ast.False(ok)
	})

	t.Run("integer-keys", func(t *testing.T) {
		tbl := New[int, string](1)
		tbl.Put(42, "hello")

		val, ok := tbl.Get(42)
		ast.True(ok)
		ast.Equal("hello", val)

		_, ok = tbl.Get(43)
		ast.False(ok)
	})
}
