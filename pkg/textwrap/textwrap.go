// Package textwrap provides the word-wrap used for free-form receipt notes.
package textwrap

import "strings"

// Split breaks text into at most maxParts lines of at most maxWidth
// characters. Tokens are separated by any whitespace (spaces, tabs, newlines,
// carriage returns) and accumulated greedily; once maxParts lines have been
// produced the remaining tokens are dropped without an ellipsis or error.
//
// The transformation is pure: identical input always yields identical lines.
func Split(text string, maxWidth, maxParts int) []string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return nil
	}

	lines := make([]string, 0, maxParts)
	current := ""
	for _, token := range strings.Fields(clean) {
		// current keeps its trailing space; the budget check counts it.
		if len(current)+len(token)+1 <= maxWidth {
			current += token + " "
		} else {
			lines = append(lines, strings.TrimSpace(current))
			current = token + " "
		}
		if len(lines) == maxParts {
			return lines
		}
	}
	if current != "" && len(lines) < maxParts {
		lines = append(lines, strings.TrimSpace(current))
	}
	return lines
}
