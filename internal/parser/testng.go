package parser

import (
	"regexp"
	"strconv"
	"strings"

	"ngrun/internal/domain"
)

var (
	// Total tests run: 3, Passes: 2, Failures: 1, Skips: 0 (Passes is absent before TestNG 7)
	totalPattern = regexp.MustCompile(`Total tests run:\s*(\d+)(?:,\s*Passes:\s*(\d+))?,\s*Failures:\s*(\d+),\s*Skips:\s*(\d+)`)
	// FAILED: com.x.FooTest.testBar
	resultPattern = regexp.MustCompile(`^(PASSED|FAILED|SKIPPED)(?: CONFIGURATION)?:\s*(.+?)\s*$`)
)

// TestNGParser parses TestNG console output
type TestNGParser struct{}

// NewTestNGParser creates a new TestNGParser
func NewTestNGParser() *TestNGParser {
	return &TestNGParser{}
}

// ParseSummary extracts the suite totals. The second result is false when the
// output has no totals line, e.g. when the JVM failed to start.
func (p *TestNGParser) ParseSummary(output string) (domain.RunSummary, bool) {
	all := totalPattern.FindAllStringSubmatch(output, -1)
	if len(all) == 0 {
		return domain.RunSummary{}, false
	}
	// The last totals line belongs to the outermost suite
	m := all[len(all)-1]

	var s domain.RunSummary
	s.Total, _ = strconv.Atoi(m[1])
	s.Failures, _ = strconv.Atoi(m[3])
	s.Skips, _ = strconv.Atoi(m[4])
	if m[2] != "" {
		s.Passed, _ = strconv.Atoi(m[2])
	} else if s.Total >= s.Failures+s.Skips {
		s.Passed = s.Total - s.Failures - s.Skips
	}
	return s, true
}

// ParseFailures returns the FAILED and SKIPPED methods with the exception
// message and stack trace printed after them (verbose level 2).
func (p *TestNGParser) ParseFailures(output string) []domain.TestFailure {
	var failures []domain.TestFailure
	lines := strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")

	for i := 0; i < len(lines); i++ {
		m := resultPattern.FindStringSubmatch(lines[i])
		if m == nil || m[1] == "PASSED" {
			continue
		}

		failure := domain.TestFailure{
			TestName:   m[2],
			Status:     m[1],
			StackTrace: []string{},
		}

		j := i + 1
		for ; j < len(lines); j++ {
			line := lines[j]
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || resultPattern.MatchString(line) || strings.HasPrefix(trimmed, "====") {
				break
			}
			if strings.HasPrefix(trimmed, "at ") || strings.HasPrefix(trimmed, "... ") {
				failure.StackTrace = append(failure.StackTrace, trimmed)
				continue
			}
			if failure.Message == "" {
				failure.Message = trimmed
			} else if len(failure.StackTrace) == 0 {
				failure.Message += "\n" + trimmed
			}
		}

		failures = append(failures, failure)
		i = j - 1
	}

	return failures
}
