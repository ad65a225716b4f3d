package layout

// Truncate shortens a display name that exceeds max runes, appending
// the two-character ellipsis marker. Names at or under the threshold
// pass through untouched.
func Truncate(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	if max < 1 {
		return ".."
	}
	return string(runes[:max]) + ".."
}

// titleCase upper-cases the first rune of a display word, leaving the
// rest alone ("split-complementary" stays lowercase after the S).
func titleCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	if runes[0] >= 'a' && runes[0] <= 'z' {
		runes[0] = runes[0] - 'a' + 'A'
	}
	return string(runes)
}
