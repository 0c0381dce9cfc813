package utf8x

import "testing"

func TestValidateValid(t *testing.T) {
	for _, in := range []string{
		"",
		"hello",
		"A string from C++",
		"\x00embedded\x00nul",
		"é€\U00010348",
		"\xEF\xBF\xBD", // U+FFFD itself
	} {
		if err := Validate([]byte(in)); err != nil {
			t.Fatalf("Validate(%q) = %v, want nil", in, err)
		}
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		in     string
		offset int
		length int
	}{
		{"\xFF", 0, 1},
		{"\xFF\xFE", 0, 1},
		{"ab\x80", 2, 1},          // stray continuation
		{"\xC0\xAF", 0, 1},        // overlong 2-byte
		{"\xC2", 0, 0},            // truncated 2-byte
		{"\xC2\x41", 0, 1},        // bad continuation
		{"\xE2\x82", 0, 0},        // truncated 3-byte
		{"\xE2\x41", 0, 1},        // bad second byte
		{"\xE2\x82\x41", 0, 2},    // bad third byte
		{"\xE0\x80\x80", 0, 1},    // overlong 3-byte
		{"\xED\xA0\x80", 0, 1},    // surrogate
		{"\xF0\x80\x80", 0, 1},    // overlong 4-byte
		{"\xF4\x90\x80\x80", 0, 1}, // above U+10FFFF
		{"\xF1\x80\x80", 0, 0},    // truncated 4-byte
		{"\xF1\x80\x41", 0, 2},
		{"\xF1\x80\x80\x41", 0, 3},
		{"ok\xE2\x82\xAC\xFFtail", 5, 1},
	}

	for _, tt := range tests {
		err := Validate([]byte(tt.in))
		if err == nil {
			t.Fatalf("Validate(%q) = nil, want error", tt.in)
		}
		if err.Offset != tt.offset || err.Len != tt.length {
			t.Fatalf("Validate(%q) = offset %d len %d, want offset %d len %d",
				tt.in, err.Offset, err.Len, tt.offset, tt.length)
		}
	}
}

func TestLossy(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello", "hello"},
		{"€", "€"},
		{"\xFF\xFE", "��"},
		{"\xF0\x80\x80", "���"},   // one subpart per byte
		{"\xE2\x82", "�"},                   // truncated tail is one subpart
		{"\xF1\x80\x80\x41", "�A"},          // maximal subpart, not per byte
		{"hello\xC2world", "hello�world"},
		{"a\xED\xA0\x80b", "a���b"}, // surrogate
		{"\xF1\x80\x80", "�"},
	}

	for _, tt := range tests {
		if got := Lossy([]byte(tt.in)); got != tt.want {
			t.Fatalf("Lossy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	e := &DecodeError{Offset: 3, Len: 2}
	if got := e.Error(); got != "invalid utf-8: malformed sequence of 2 byte(s) at byte 3" {
		t.Fatalf("unexpected message: %s", got)
	}

	e = &DecodeError{Offset: 7}
	if got := e.Error(); got != "invalid utf-8: incomplete sequence at byte 7" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func BenchmarkValidateASCII(b *testing.B) {
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte('a' + i%26)
	}

	for b.Loop() {
		Validate(buf)
	}
}
