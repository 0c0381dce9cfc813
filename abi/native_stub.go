//go:build !(darwin || freebsd || linux)

package abi

import (
	"errors"
	"unsafe"
)

// Native is unavailable on this platform; OpenNative always fails, so the
// methods below are unreachable.
type Native struct{}

func OpenNative(path string) (*Native, error) {
	return nil, errors.New("native runtime is not supported on this platform")
}

func (n *Native) Path() string {
	return ""
}

func (n *Native) Init(s *Storage, data unsafe.Pointer, size uintptr) {}

func (n *Native) Data(s *Storage) unsafe.Pointer {
	return nil
}

func (n *Native) Length(s *Storage) uintptr {
	return 0
}
