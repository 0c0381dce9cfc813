//go:build darwin || freebsd || linux

package abi

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// Symbols the shim library must export. See shim/strview_shim.cc for the
// C++ side of the contract.
const (
	symInit   = "strview_init"
	symData   = "strview_data"
	symLength = "strview_length"
)

// Native delegates all three entry points to a shim library loaded at
// runtime, so the storage layout is owned entirely by the foreign side.
type Native struct {
	path   string
	init   func(s *Storage, data unsafe.Pointer, size uintptr)
	data   func(s *Storage) unsafe.Pointer
	length func(s *Storage) uintptr
}

// OpenNative loads the shim library at path and resolves the three entry
// points. The library stays loaded for the life of the process.
func OpenNative(path string) (n *Native, err error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("failed to load runtime library %s: %v", path, err)
	}

	// RegisterLibFunc panics on a missing symbol.
	defer func() {
		if r := recover(); r != nil {
			n, err = nil, fmt.Errorf("failed to resolve runtime symbols in %s: %v", path, r)
		}
	}()

	n = &Native{path: path}
	purego.RegisterLibFunc(&n.init, lib, symInit)
	purego.RegisterLibFunc(&n.data, lib, symData)
	purego.RegisterLibFunc(&n.length, lib, symLength)

	logrus.Infof("Native runtime loaded: %s", path)
	return n, nil
}

func (n *Native) Path() string {
	return n.path
}

func (n *Native) Init(s *Storage, data unsafe.Pointer, size uintptr) {
	n.init(s, data, size)
}

func (n *Native) Data(s *Storage) unsafe.Pointer {
	return n.data(s)
}

func (n *Native) Length(s *Storage) uintptr {
	return n.length(s)
}
