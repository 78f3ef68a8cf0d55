// Package matcher scans text line by line and returns the lines containing the query
package matcher

import (
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// Search returns every line of contents containing query, in source order.
// Returned lines are substrings of contents and keep their original case.
func Search(query, contents string, policy model.CasePolicy) []string {
	result := []string{}

	if policy == model.Insensitive { // -i
		query = strings.ToLower(query)
	}

	for _, line := range Lines(contents) {
		candidate := line
		if policy == model.Insensitive {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			result = append(result, line)
		}
	}

	return result
}

// Lines splits contents on '\n', dropping one trailing '\r' from each line.
// A final line without a line break is kept, an empty tail after the last '\n' is not.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for len(contents) > 0 {
		var line string
		i := strings.IndexByte(contents, '\n')
		switch i {
		case -1:
			line, contents = contents, ""
		default:
			line, contents = contents[:i], contents[i+1:]
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}
