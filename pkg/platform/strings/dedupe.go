// Package strings holds small helpers for user-supplied string lists.
package strings

import (
	"strings"
)

// DedupeAndTrim normalizes a list of labels such as tag names. Each value is
// trimmed and inner whitespace runs collapse to one space; blanks are dropped
// and the first occurrence of a repeated value wins. The result is never nil.
func DedupeAndTrim(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		label := strings.Join(strings.Fields(v), " ")
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}
