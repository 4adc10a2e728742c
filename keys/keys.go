// Package keys defines the three key kinds keybench compares and exposes
// the runtime identity of each, so the benchmark can show which kinds the
// Go runtime canonicalizes and which it copies.
package keys

import (
	"strings"
	"unique"
	"unsafe"
)

// Kind tags the comparison semantics of a lookup key.
type Kind uint8

const (
	Text Kind = iota + 1 // compared by content
	Interned             // compared by canonical identity
	Integer              // compared by value
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "TextKey"
	case Interned:
		return "InternedKey"
	case Integer:
		return "IntegerKey"
	}
	return "UnknownKey"
}

// Intern returns the canonical handle for s. Equal strings always come
// back as the same handle, so comparing handles is a single pointer
// compare no matter how long the string is.
func Intern(s string) unique.Handle[string] {
	return unique.Make(s)
}

// Materialize copies s into its own backing array. The linker dedups
// identical string constants, so this is the only way to get two equal
// strings with distinct identities from one literal.
func Materialize(s string) string {
	return strings.Clone(s)
}

// TextToken reports the address of the string's backing array as its
// identity. Equal literals may share an address, materialized copies
// never do.
func TextToken(s string) uintptr {
	return uintptr(unsafe.Pointer(unsafe.StringData(s)))
}

// InternToken reports the canonical pointer held by the handle. Handles
// made from equal strings carry the same pointer for the life of the
// process.
func InternToken(h unique.Handle[string]) uintptr {
	return *(*uintptr)(unsafe.Pointer(&h))
}

type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// IntToken reports the data word of the boxed value. The runtime backs
// boxed integers below 256 with a static table, so equal small values
// share one cell and larger values get a fresh allocation per boxing.
func IntToken(v int) uintptr {
	var a any = v
	return uintptr((*eface)(unsafe.Pointer(&a)).data)
}
