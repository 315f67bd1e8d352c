// Package forms holds the input handling shared by every edit form in the
// portal. The only rule the portal enforces anywhere is "non-empty after
// trimming"; a value that fails it is skipped silently.
package forms

import "strings"

// AppendTrimmed returns list with the trimmed value appended, and true.
// When the trimmed value is empty it returns list unchanged and false.
// The result never shares a backing array with list.
func AppendTrimmed(list []string, value string) ([]string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return list, false
	}

	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, value), true
}

// SplitList parses a comma-separated form field into its trimmed,
// non-empty parts. It always returns a non-nil slice.
func SplitList(csv string) []string {
	out := []string{}
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinList is the inverse of SplitList for pre-filling a form field.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
