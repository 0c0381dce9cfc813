// Package utf8x validates and lossily decodes UTF-8 byte ranges. Unlike
// unicode/utf8 it reports where validation failed and how long the
// malformed sequence is, and its lossy decoder replaces maximal invalid
// subsequences per the Unicode recommended practice instead of replacing
// byte by byte.
package utf8x

import (
	"fmt"
	"strings"
)

// Replacement is the text substituted for each maximal invalid
// subsequence, U+FFFD.
const Replacement = "�"

// DecodeError describes the first malformed sequence in a byte range.
// Offset is the index of its first byte. Len is the number of bytes in
// the maximal invalid subpart (1 to 3); it is 0 when the input ended in
// the middle of a sequence that could still have become valid.
type DecodeError struct {
	Offset int
	Len    int
}

func (e *DecodeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("invalid utf-8: incomplete sequence at byte %d", e.Offset)
	}
	return fmt.Sprintf("invalid utf-8: malformed sequence of %d byte(s) at byte %d", e.Len, e.Offset)
}

// Validate scans p and returns nil if it is valid UTF-8, otherwise a
// DecodeError for the first malformed sequence. Overlong encodings,
// surrogate code points and out-of-range leads are rejected at the byte
// that rules them out, so the reported subpart is maximal.
func Validate(p []byte) *DecodeError {
	i, n := 0, len(p)
	for i < n {
		c := p[i]
		if c < 0x80 {
			i++
			continue
		}

		var size int
		lo, hi := byte(0x80), byte(0xBF)
		switch {
		case c < 0xC2:
			// continuation byte or overlong 2-byte lead
			return &DecodeError{Offset: i, Len: 1}
		case c <= 0xDF:
			size = 2
		case c <= 0xEF:
			size = 3
			if c == 0xE0 {
				lo = 0xA0 // reject overlong
			} else if c == 0xED {
				hi = 0x9F // reject surrogates
			}
		case c <= 0xF4:
			size = 4
			if c == 0xF0 {
				lo = 0x90 // reject overlong
			} else if c == 0xF4 {
				hi = 0x8F // reject > U+10FFFF
			}
		default:
			return &DecodeError{Offset: i, Len: 1}
		}

		// The second byte carries the lead-specific range restriction.
		if i+1 >= n {
			return &DecodeError{Offset: i, Len: 0}
		}
		if b := p[i+1]; b < lo || b > hi {
			return &DecodeError{Offset: i, Len: 1}
		}
		for j := 2; j < size; j++ {
			if i+j >= n {
				return &DecodeError{Offset: i, Len: 0}
			}
			if b := p[i+j]; b < 0x80 || b > 0xBF {
				return &DecodeError{Offset: i, Len: j}
			}
		}
		i += size
	}
	return nil
}

func Valid(p []byte) bool {
	return Validate(p) == nil
}

// Lossy decodes p, replacing each maximal invalid subsequence with one
// U+FFFD. It never fails; valid input is returned as a plain copy.
func Lossy(p []byte) string {
	e := Validate(p)
	if e == nil {
		return string(p)
	}

	var sb strings.Builder
	sb.Grow(len(p) + 2*len(Replacement))
	for e != nil {
		sb.Write(p[:e.Offset])
		sb.WriteString(Replacement)
		skip := e.Offset + e.Len
		if e.Len == 0 {
			// truncated tail: the rest is one subpart
			skip = len(p)
		}
		p = p[skip:]
		e = Validate(p)
	}
	sb.Write(p)
	return sb.String()
}
