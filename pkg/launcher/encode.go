package launcher

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Native argument encodings. Every array has one extra trailing nil entry so
// the callee sees argv[argc] == NULL. A string containing NUL is truncated
// there by the callee, as any C string would be.

// cString returns s as a NUL-terminated byte string.
func cString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

func cStringArray(argv []string) []*byte {
	out := make([]*byte, len(argv)+1)
	for i, s := range argv {
		out[i] = cString(s)
	}
	return out
}

// utf16String returns s as a NUL-terminated UTF-16 string (Windows wchar_t).
func utf16String(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

func utf16StringArray(argv []string) []*uint16 {
	out := make([]*uint16, len(argv)+1)
	for i, s := range argv {
		out[i] = &utf16String(s)[0]
	}
	return out
}

// utf32String returns s as a NUL-terminated UTF-32 string (wchar_t on unix).
// Invalid UTF-8 bytes become U+FFFD.
func utf32String(s string) []int32 {
	out := make([]int32, 0, utf8.RuneCountInString(s)+1)
	for _, r := range s {
		out = append(out, r)
	}
	return append(out, 0)
}
