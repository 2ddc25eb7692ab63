package parser

import "ngrun/internal/domain"

// Parser extracts the outcome of a run from the runner's console output
type Parser interface {
	ParseSummary(output string) (domain.RunSummary, bool)
	ParseFailures(output string) []domain.TestFailure
}
