// Package abi is the boundary to the runtime that owns the string view
// layout. Exactly three entry points operate on the view storage by
// reference; no other code touches the storage words.
package abi

import "unsafe"

// Storage matches the in-memory layout of the foreign view type: two
// machine words. The first word stays typed as an unsafe.Pointer so that
// views over Go-managed buffers remain visible to the garbage collector.
type Storage struct {
	data unsafe.Pointer
	size uintptr
}

// Runtime initializes and queries view storage. Init must leave the
// storage describing the byte range [data, data+size); Data and Length
// read it back. All three are O(1) and infallible. If size > 0, data must
// address size readable bytes; if size == 0, data may be any value
// including nil.
type Runtime interface {
	Init(s *Storage, data unsafe.Pointer, size uintptr)
	Data(s *Storage) unsafe.Pointer
	Length(s *Storage) uintptr
}

// Portable implements Runtime without loading any foreign code. It writes
// the data pointer and length directly into the two storage words, which
// is the layout libc++, libstdc++ and MSVC all use for their string_view
// types. A zero Storage reads back as an empty view.
type Portable struct{}

func (Portable) Init(s *Storage, data unsafe.Pointer, size uintptr) {
	s.data = data
	s.size = size
}

func (Portable) Data(s *Storage) unsafe.Pointer {
	return s.data
}

func (Portable) Length(s *Storage) uintptr {
	return s.size
}
