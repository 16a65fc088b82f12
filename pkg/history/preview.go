package history

import "strings"

// PreviewMaxLen is the display length used for previews computed on read.
const PreviewMaxLen = 100

// Preview collapses content into a bounded single-line summary. Lines are
// trimmed, empty lines dropped, and the survivors joined with single spaces.
// The result is truncated to maxLen runes (with a "..." suffix) when longer.
// Truncation counts runes, not bytes, so multi-byte text is never split
// mid-code-point.
func Preview(content string, maxLen int) string {
	var parts []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	singleLine := strings.Join(parts, " ")

	runes := []rune(singleLine)
	if len(runes) <= maxLen {
		return singleLine
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
