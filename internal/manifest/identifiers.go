package manifest

import (
	"fmt"
	"strings"
)

// wordDelimiters separate words for Namespace capitalization.
const wordDelimiters = " \t\r\n\f\v"

// Identifiers splits the manifest name into vendor and project. Segments past
// the second are ignored. An empty, "." or ".." vendor or project segment is
// an ErrInvalidManifest, since both become directory names.
func (m *Manifest) Identifiers() (*Identifiers, error) {
	tokens := strings.Split(m.Name, "/")
	if len(tokens) < 2 || !validSegment(tokens[0]) || !validSegment(tokens[1]) {
		return nil, fmt.Errorf("%w: name %q is not of the form vendor/project", ErrInvalidManifest, m.Name)
	}
	return &Identifiers{
		Vendor:    tokens[0],
		Project:   tokens[1],
		Namespace: Namespace(tokens[0]),
	}, nil
}

func validSegment(s string) bool {
	return s != "" && s != "." && s != ".."
}

// Namespace upper-cases the first letter of every whitespace-separated word in
// vendor and leaves the rest as written: "acme" → "Acme", "my-vendor" →
// "My-vendor". Only ASCII a-z are changed; other bytes pass through.
func Namespace(vendor string) string {
	b := []byte(vendor)
	wordStart := true
	for i, c := range b {
		if wordStart && c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
		wordStart = strings.IndexByte(wordDelimiters, c) >= 0
	}
	return string(b)
}
