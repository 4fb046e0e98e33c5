// Package gitignore merges the entries a PDT project needs into an existing
// .gitignore without disturbing what the user already ignores.
package gitignore

import (
	"strings"
)

// FileName is the ignore-list file at the project root.
const FileName = ".gitignore"

// Required lists the entries every generated project ignores, in output order:
// both descriptors, the settings directory, Composer's vendor directory, and
// its lockfile.
var Required = []string{
	".buildpath",
	".project",
	".settings",
	"vendor",
	"composer.lock",
}

// ParseLines splits ignore-file content into lines. Line terminators
// (\n or \r\n) are stripped and empty lines are dropped; every other line is
// kept verbatim, including comments and surrounding whitespace.
func ParseLines(content []byte) []string {
	var lines []string
	for _, l := range strings.Split(string(content), "\n") {
		l = strings.TrimSuffix(l, "\r")
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// Merge returns required followed by existing, keeping only the first
// occurrence of each exact string.
func Merge(required, existing []string) []string {
	seen := make(map[string]bool, len(required)+len(existing))
	merged := make([]string, 0, len(required)+len(existing))
	for _, group := range [][]string{required, existing} {
		for _, l := range group {
			if seen[l] {
				continue
			}
			seen[l] = true
			merged = append(merged, l)
		}
	}
	return merged
}

// Render joins lines into file content, terminating every line with \n.
func Render(lines []string) []byte {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// MergeContent merges the Required entries into existing file content. A nil
// or empty input yields just the required entries.
func MergeContent(existing []byte) []byte {
	return Render(Merge(Required, ParseLines(existing)))
}
