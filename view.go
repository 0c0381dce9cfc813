// Package strview provides borrowed, read-only views over byte ranges
// whose layout is owned by a foreign native runtime. A View never copies
// and never owns: it stays valid only as long as the backing buffer is
// alive and unmodified, which is a caller contract this package cannot
// check at runtime.
package strview

import (
	"bytes"
	"strconv"
	"unsafe"

	"StrView/abi"
	"StrView/utf8x"

	"github.com/cespare/xxhash/v2"
)

// DefaultRuntime backs views built with Empty, New and FromString.
// Replace it (or use NewIn) to route view storage through a runtime
// loaded with abi.OpenNative.
var DefaultRuntime abi.Runtime = abi.Portable{}

// placeholder donates a non-nil address for views whose runtime reports a
// nil data pointer. Its contents are never read.
var placeholder byte

// View is a non-owning view over a contiguous byte range. The storage
// region matches the foreign view type's two-word layout and is touched
// only through the runtime's three entry points. The zero value is an
// empty view.
type View struct {
	storage abi.Storage
	rt      abi.Runtime
}

// Empty returns a zero-length view. The data pointer is unspecified,
// matching the permissive default construction of the foreign view type.
func Empty() View {
	return New(nil)
}

// New returns a view over b's existing memory, without copying. The
// caller must keep b alive, in place and unmodified for as long as the
// view (or anything derived from Bytes or Text) is in use.
func New(b []byte) View {
	return NewIn(DefaultRuntime, b)
}

// FromString returns a view over s's bytes, without copying. Strings are
// immutable, so only the lifetime half of the New contract applies.
func FromString(s string) View {
	return fromRawParts(DefaultRuntime, unsafe.Pointer(unsafe.StringData(s)), uintptr(len(s)))
}

// NewIn is New against an explicit runtime.
func NewIn(rt abi.Runtime, b []byte) View {
	return fromRawParts(rt, unsafe.Pointer(unsafe.SliceData(b)), uintptr(len(b)))
}

// fromRawParts is the single point that performs the foreign init call.
// If n > 0, data must address n readable bytes for the life of the view.
func fromRawParts(rt abi.Runtime, data unsafe.Pointer, n uintptr) View {
	v := View{rt: rt}
	rt.Init(&v.storage, data, n)
	return v
}

func (v View) runtime() abi.Runtime {
	if v.rt == nil {
		return abi.Portable{}
	}
	return v.rt
}

// Len returns the view's length in bytes, as reported by the runtime.
func (v View) Len() int {
	return int(v.runtime().Length(&v.storage))
}

func (v View) IsEmpty() bool {
	return v.Len() == 0
}

// Data returns the raw start-of-data pointer. The referenced bytes may
// contain embedded zero bytes and are not NUL-terminated, so the pointer
// is only meaningful together with Len.
func (v View) Data() unsafe.Pointer {
	return v.runtime().Data(&v.storage)
}

// Bytes returns the viewed bytes as a borrowed slice, without copying.
// This is the one place the nil-data/zero-length case is normalized: a
// nil data word is substituted with a placeholder address instead of
// forming a slice over address zero. Every other operation derives from
// Bytes. The caller must not mutate the result.
func (v View) Bytes() []byte {
	rt := v.runtime()
	data := rt.Data(&v.storage)
	n := rt.Length(&v.storage)
	if data == nil {
		// only legal when n == 0; anything else is a runtime
		// contract violation
		data = unsafe.Pointer(&placeholder)
	}
	return unsafe.Slice((*byte)(data), n)
}

// Text validates the viewed bytes as UTF-8 and returns them as a string
// sharing the view's memory, so the New lifetime contract extends to the
// result. On failure it returns a *utf8x.DecodeError locating the first
// malformed sequence. No allocation either way.
func (v View) Text() (string, error) {
	b := v.Bytes()
	if err := utf8x.Validate(b); err != nil {
		return "", err
	}
	return borrowString(b), nil
}

// LossyText returns the viewed bytes as text, substituting one U+FFFD for
// each maximal invalid subsequence. Valid input is returned zero-copy
// under the same lifetime contract as Text; invalid input allocates.
func (v View) LossyText() string {
	b := v.Bytes()
	if utf8x.Valid(b) {
		return borrowString(b)
	}
	return utf8x.Lossy(b)
}

// Equal reports whether two views see identical bytes, regardless of
// which buffers or runtimes back them.
func (v View) Equal(w View) bool {
	return bytes.Equal(v.Bytes(), w.Bytes())
}

func (v View) EqualBytes(b []byte) bool {
	return bytes.Equal(v.Bytes(), b)
}

func (v View) EqualString(s string) bool {
	return string(v.Bytes()) == s
}

func (v View) EqualOwned(o *Owned) bool {
	return bytes.Equal(v.Bytes(), o.buf)
}

// Compare orders views byte-lexicographically, like bytes.Compare.
func (v View) Compare(w View) int {
	return bytes.Compare(v.Bytes(), w.Bytes())
}

// Sum64 hashes the view's content, so views over different buffers with
// equal bytes hash identically.
func (v View) Sum64() uint64 {
	return xxhash.Sum64(v.Bytes())
}

// String implements fmt.Stringer via the lossy conversion; it never fails
// regardless of byte content.
func (v View) String() string {
	return v.LossyText()
}

// GoString implements fmt.GoStringer for %#v.
func (v View) GoString() string {
	return "strview.New(" + strconv.Quote(v.LossyText()) + ")"
}

// borrowString reinterprets b as a string sharing its memory. b must not
// be mutated afterwards.
func borrowString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
