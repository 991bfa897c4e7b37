package domain

import "strings"

// NormalizeSearch prepares text for case-insensitive substring matching:
// lowercased, trimmed, and with every whitespace run collapsed to a single
// space. Punctuation such as "@", "." and "-" is kept so emails still match.
func NormalizeSearch(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
