package pp

import "strings"

// EnglishAlternatives lists items in a sentence: "(none)", "a", "a or b", "a, b, or c".
// It is used to tell users which values are accepted.
func EnglishAlternatives(items []string) string {
	var b strings.Builder
	for i, item := range items {
		switch {
		case i == 0:
		case len(items) == 2:
			b.WriteString(" or ")
		case i == len(items)-1:
			b.WriteString(", or ")
		default:
			b.WriteString(", ")
		}
		b.WriteString(item)
	}

	if b.Len() == 0 {
		return "(none)"
	}
	return b.String()
}
