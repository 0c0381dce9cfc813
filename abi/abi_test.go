package abi

import (
	"testing"
	"unsafe"
)

// The foreign side static-asserts the same thing; see shim/strview_shim.cc.
func TestStorageLayout(t *testing.T) {
	word := unsafe.Sizeof(uintptr(0))
	if got := unsafe.Sizeof(Storage{}); got != 2*word {
		t.Fatalf("Storage size = %d, want %d", got, 2*word)
	}
	if got := unsafe.Alignof(Storage{}); got != unsafe.Alignof(uintptr(0)) {
		t.Fatalf("Storage alignment = %d, want %d", got, unsafe.Alignof(uintptr(0)))
	}
}

func TestPortableRoundTrip(t *testing.T) {
	b := []byte("boundary bytes")
	rt := Portable{}

	var s Storage
	rt.Init(&s, unsafe.Pointer(&b[0]), uintptr(len(b)))

	if got := rt.Length(&s); got != uintptr(len(b)) {
		t.Fatalf("Length = %d, want %d", got, len(b))
	}
	if got := rt.Data(&s); got != unsafe.Pointer(&b[0]) {
		t.Fatalf("Data = %p, want %p", got, &b[0])
	}
}

func TestPortableNilData(t *testing.T) {
	rt := Portable{}

	var s Storage
	rt.Init(&s, nil, 0)

	if got := rt.Data(&s); got != nil {
		t.Fatalf("Data = %p, want nil", got)
	}
	if got := rt.Length(&s); got != 0 {
		t.Fatalf("Length = %d, want 0", got)
	}
}

func TestZeroStorageReadsEmpty(t *testing.T) {
	rt := Portable{}

	var s Storage
	if got := rt.Length(&s); got != 0 {
		t.Fatalf("Length of zero storage = %d, want 0", got)
	}
	if got := rt.Data(&s); got != nil {
		t.Fatalf("Data of zero storage = %p, want nil", got)
	}
}
