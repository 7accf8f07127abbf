package extract

import (
	"regexp"
	"strings"

	"github.com/lyubolp/py2uml/internal/model"
)

// matchingLines returns, in source order, every line of the block that
// matches the given declaration pattern after trimming surrounding
// whitespace. Each line is returned at most once per call.
func matchingLines(block model.ClassBlock, pattern *regexp.Regexp) []string {
	var matched []string
	for _, line := range block {
		trimmed := strings.TrimSpace(line)
		if pattern.MatchString(trimmed) {
			matched = append(matched, trimmed)
		}
	}
	return matched
}

// markedDeclarations returns the trimmed line following each line that
// contains the given decorator marker. This is a one-line lookahead, not a
// decorator-stack parser: a marker is assumed to sit immediately above the
// declaration it decorates. A method carrying both the static and the
// abstract marker is reported by both scans.
func markedDeclarations(block model.ClassBlock, marker string) []string {
	var matched []string
	for i, line := range block {
		if strings.Contains(line, marker) && i+1 < len(block) {
			matched = append(matched, strings.TrimSpace(block[i+1]))
		}
	}
	return matched
}
