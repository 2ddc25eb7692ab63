package detection

import (
	"regexp"

	"ngrun/internal/domain"
)

var (
	// public class Foo {
	testClassPattern = regexp.MustCompile(
		`^\s*public\s+class\s+(` + domain.IdentifierPattern + `)\s*\{?\s*$`)
	// public void testFoo() throws Exception {
	testMethodPattern = regexp.MustCompile(
		`^\s*public\s+void\s+(` + domain.IdentifierPattern + `)\s*\(\s*\)(?:\s*throws\s+\S+)?\s*\{?\s*$`)
)

// Match is the result of classifying one source line
type Match struct {
	Kind       domain.MatchKind
	Identifier string
}

// Matched reports whether the line declared a test class or method
func (m Match) Matched() bool {
	return m.Kind != domain.NoMatch
}

// Detector recognizes test class and test method declarations on a single line.
// Both patterns must consume the whole line.
type Detector struct{}

// NewDetector creates a new Detector
func NewDetector() *Detector {
	return &Detector{}
}

// Classify returns ClassMatch or MethodMatch with the declared identifier, or NoMatch.
// The class pattern is checked first.
func (d *Detector) Classify(line string) Match {
	if m := testClassPattern.FindStringSubmatch(line); m != nil {
		return Match{Kind: domain.ClassMatch, Identifier: m[1]}
	}
	if m := testMethodPattern.FindStringSubmatch(line); m != nil {
		return Match{Kind: domain.MethodMatch, Identifier: m[1]}
	}
	return Match{Kind: domain.NoMatch}
}

// MayRun reports whether a run action can be offered for the line
func (d *Detector) MayRun(line string) bool {
	return testClassPattern.MatchString(line) || testMethodPattern.MatchString(line)
}
