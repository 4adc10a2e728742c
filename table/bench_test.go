package table

import (
	"testing"
	"unique"
)

func BenchmarkGet(b *testing.B) {
	b.Run("text", func(b *testing.B) {
		tbl := New[string, string](1)
		tbl.Put("ruby", "hello")
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tbl.Get("ruby")
		}
	})
	b.Run("interned", func(b *testing.B) {
		tbl := New[unique.Handle[string], string](1)
		key := unique.Make("ruby")
		tbl.Put(key, "hello")
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tbl.Get(key)
		}
	})
	b.Run("integer", func(b *testing.B) {
		tbl := New[int, string](1)
		tbl.Put(42, "hello")
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tbl.Get(42)
		}
	})
	b.Run("stdmap", func(b *testing.B) {
		m := map[string]string{"ruby": "hello"}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = m["ruby"]
		}
	})
}
