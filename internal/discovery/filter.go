package discovery

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test files by name pattern.
// Patterns with a slash ("**/payment/*Test.java") match the slash-separated path,
// other wildcard patterns ("*UserTest.java", "*Payment*") match the file name,
// and plain text matches any file name containing it.
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	hasWildcard := strings.ContainsAny(pattern, "*?[{")
	var filtered []string

	for _, test := range tests {
		testName := filepath.Base(test)

		switch {
		case strings.Contains(pattern, "/"):
			if ok, _ := doublestar.Match(pattern, filepath.ToSlash(test)); ok {
				filtered = append(filtered, test)
			}
		case hasWildcard:
			if ok, _ := doublestar.Match(pattern, testName); ok {
				filtered = append(filtered, test)
			}
		default:
			if strings.Contains(testName, pattern) {
				filtered = append(filtered, test)
			}
		}
	}

	return filtered
}
