package strview

import "bytes"

// Owned is a string whose bytes live in storage managed by this package
// rather than borrowed from a caller, modeling the runtime-owned side of
// a boundary crossing. It never aliases caller memory.
type Owned struct {
	buf []byte
}

func NewOwned(s string) *Owned {
	return &Owned{buf: []byte(s)}
}

func OwnedBytes(b []byte) *Owned {
	return &Owned{buf: CloneBytes(b)}
}

func (o *Owned) Len() int {
	return len(o.buf)
}

// Bytes returns a copy to prevent external mutation of the owned storage.
func (o *Owned) Bytes() []byte {
	return CloneBytes(o.buf)
}

func (o *Owned) String() string {
	return string(o.buf)
}

// View borrows the owned bytes without copying. The view (and anything
// derived from it) must not outlive o.
func (o *Owned) View() View {
	return New(o.buf)
}

func (o *Owned) Equal(p *Owned) bool {
	return bytes.Equal(o.buf, p.buf)
}

func (o *Owned) EqualView(v View) bool {
	return v.EqualOwned(o)
}

func (o *Owned) EqualString(s string) bool {
	return string(o.buf) == s
}

// CloneBytes copies b into fresh storage.
func CloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
