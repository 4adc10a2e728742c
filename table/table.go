package table

import (
	"github.com/cockroachdb/swiss"
)

// Table is a read-mostly lookup table. It takes any comparable key type,
// so one implementation serves text, interned and integer keys.
type Table[K comparable, V any] struct {
	data *swiss.Map[K, V]
}

func New[K comparable, V any](sizeHint int) *Table[K, V] {
	return &Table[K, V]{
		data: swiss.New[K, V](sizeHint),
	}
}

func (t *Table[K, V]) Put(key K, val V) {
	t.data.Put(key, val)
}

func (t *Table[K, V]) Get(key K) (V, bool) {
	return t.data.Get(key)
}

func (t *Table[K, V]) Len() int {
	return t.data.Len()
}
