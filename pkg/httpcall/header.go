package httpcall

import "strings"

// HeaderEntry is a single validated header pair. Entries keep their input
// order and duplicates; no casing normalization or de-duplication happens
// before the wire.
type HeaderEntry struct {
	Name  string
	Value string
}

// NewHeaderEntry validates an explicit (name, value) pair against HTTP
// grammar and returns it as an entry.
func NewHeaderEntry(name, value string) (HeaderEntry, error) {
	if !validHeaderName(name) {
		return HeaderEntry{}, newError(KindInvalidHeader, "invalid header name %q", name)
	}
	if !validHeaderValue(value) {
		return HeaderEntry{}, newError(KindInvalidHeader, "invalid value for header %q", name)
	}
	return HeaderEntry{Name: name, Value: value}, nil
}

// ParseHeaderString parses a raw "Name: Value" header line. Both sides are
// trimmed of surrounding whitespace before validation.
func ParseHeaderString(raw string) (HeaderEntry, error) {
	name, value, ok := strings.Cut(raw, ":")
	if !ok {
		return HeaderEntry{}, newError(KindInvalidHeader, "%s is not a valid header", raw)
	}
	return NewHeaderEntry(strings.TrimSpace(name), strings.TrimSpace(value))
}

// validHeaderName reports whether s is a non-empty RFC 9110 token.
func validHeaderName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return false
		}
	}
	return true
}

// validHeaderValue reports whether s contains only visible ASCII plus
// space and horizontal tab.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\t' {
			continue
		}
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// isTokenChar reports whether b is a tchar: visible ASCII excluding
// delimiters.
func isTokenChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
