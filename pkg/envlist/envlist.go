package envlist

import "strings"

// Separator divides entries in a list value.
const Separator = ";"

// Split decodes raw into its non-empty entries.
func Split(raw string) []string {
	segments := strings.Split(raw, Separator)
	entries := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			entries = append(entries, s)
		}
	}
	return entries
}

// SplitRaw decodes raw keeping empty segments.
func SplitRaw(raw string) []string {
	return strings.Split(raw, Separator)
}

// Join encodes entries into a list value.
func Join(entries []string) string {
	return strings.Join(entries, Separator)
}

// Contains reports whether value is exactly equal to one of entries.
func Contains(entries []string, value string) bool {
	for _, e := range entries {
		if e == value {
			return true
		}
	}
	return false
}

// Remove returns entries without any element equal to value, along with the
// number of elements dropped. The input slice is not modified.
func Remove(entries []string, value string) ([]string, int) {
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != value {
			kept = append(kept, e)
		}
	}
	return kept, len(entries) - len(kept)
}

// Insert returns entries with value added at the front or the back.
func Insert(entries []string, value string, front bool) []string {
	if front {
		return append([]string{value}, entries...)
	}
	out := make([]string, len(entries), len(entries)+1)
	copy(out, entries)
	return append(out, value)
}
