package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"ngrun/internal/config"
	"ngrun/internal/discovery"
	"ngrun/internal/domain"
)

// progressThreshold is the number of files above which scanning shows a progress bar
const progressThreshold = 20

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
		out:    os.Stdout,
	}
}

// SetOutput redirects the formatter's output
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

func (f *Formatter) relPath(path string) string {
	if rel, err := filepath.Rel(f.config.ProjectPath, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// CollectTestCases returns the declarations of every file, keyed by file.
// A progress bar is shown for large scans.
func (f *Formatter) CollectTestCases(tests []string) (map[string][]domain.TestCase, error) {
	var progress *ProgressBar
	if len(tests) > progressThreshold {
		progress = NewProgressBar(len(tests))
	}

	found := 0
	cases := make(map[string][]domain.TestCase, len(tests))
	for i, test := range tests {
		tc, err := f.parser.FindTestCases(test)
		if err != nil {
			return nil, err
		}
		cases[test] = tc
		found += len(tc)
		if progress != nil {
			progress.Update(i+1, found)
		}
	}
	if progress != nil {
		progress.Finish()
	}
	return cases, nil
}

// PrintTestList prints a list of test files, optionally with their test classes and methods
func (f *Formatter) PrintTestList(tests []string, showTestCases bool) error {
	if !showTestCases {
		color.New(color.FgGreen).Fprintf(f.out, "Found %d test file(s):\n\n", len(tests))
		for i, test := range tests {
			branch := "├── "
			if i == len(tests)-1 {
				branch = "└── "
			}
			color.New(color.FgCyan).Fprintf(f.out, "%s%s\n", branch, f.relPath(test))
		}
		return nil
	}

	cases, err := f.CollectTestCases(tests)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(f.out, "Found %d test file(s) with test declarations:\n\n", len(tests))
	for i, test := range tests {
		isLastFile := i == len(tests)-1
		branch, indent := "├── ", "│   "
		if isLastFile {
			branch, indent = "└── ", "    "
		}
		color.New(color.FgCyan).Fprintf(f.out, "%s%s\n", branch, f.relPath(test))

		testCases := cases[test]
		if len(testCases) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(no test declarations found)"))
		}
		for j, tc := range testCases {
			caseBranch := "├── "
			if j == len(testCases)-1 {
				caseBranch = "└── "
			}
			label := color.YellowString(tc.Name)
			if tc.Kind == domain.ClassMatch {
				label = color.New(color.FgYellow, color.Bold).Sprint(tc.Name)
			}
			fmt.Fprintf(f.out, "%s%s%s %s\n", indent, caseBranch, label, color.HiBlackString(":%d", tc.Line))
		}

		// Add spacing between files (except for the last one)
		if !isLastFile {
			fmt.Fprintln(f.out)
		}
	}
	return nil
}

// PrintDetection prints the classification of one line
func (f *Formatter) PrintDetection(file string, line int, kind domain.MatchKind, identifier string) {
	location := fmt.Sprintf("%s:%d", f.relPath(file), line)
	if kind == domain.NoMatch {
		color.New(color.FgYellow).Fprintf(f.out, "%s: no test declaration\n", location)
		return
	}
	fmt.Fprintf(f.out, "%s: %s %s\n", location, color.CyanString("test %s", kind), color.YellowString(identifier))
}

// PrintRunConfig prints a run configuration and the command line that runs it
func (f *Formatter) PrintRunConfig(rc *domain.RunConfig, command []string) {
	bold := color.New(color.Bold)
	bold.Fprintf(f.out, "%s\n", rc.Name)
	fmt.Fprintf(f.out, "  %-10s %s\n", "provider", rc.Provider)
	fmt.Fprintf(f.out, "  %-10s %s\n", "class", rc.Target.ClassName)
	if !rc.Target.IsWholeClass() {
		fmt.Fprintf(f.out, "  %-10s %s\n", "methods", strings.Join(rc.Target.Methods, ", "))
	}
	fmt.Fprintf(f.out, "  %-10s %s\n", "suite", f.relPath(rc.SuitePath))
	if len(command) > 0 {
		fmt.Fprintf(f.out, "  %-10s %s\n", "command", color.CyanString(strings.Join(command, " ")))
	}
}

// PrintSavedConfigs prints saved run configurations
func (f *Formatter) PrintSavedConfigs(saved *domain.SavedConfigs) {
	if len(saved.Configs) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No saved run configurations")
		return
	}
	color.New(color.FgGreen).Fprintf(f.out, "%d saved run configuration(s):\n\n", len(saved.Configs))
	for _, rc := range saved.Configs {
		created := ""
		if !rc.CreatedAt.IsZero() {
			created = rc.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(f.out, "  %s  %s\n", color.CyanString("%-16s", created), rc.Name)
	}
}

// PrintRunSummary prints the outcome of a run
func (f *Formatter) PrintRunSummary(result domain.RunResult, summary domain.RunSummary, hasSummary bool, failures []domain.TestFailure) {
	fmt.Fprintln(f.out)
	if hasSummary {
		fmt.Fprintf(f.out, "Tests: %d  %s  %s  %s  (%.2fs)\n",
			summary.Total,
			color.GreenString("passed: %d", summary.Passed),
			color.RedString("failed: %d", summary.Failures),
			color.YellowString("skipped: %d", summary.Skips),
			result.Duration.Seconds(),
		)
	}

	for _, failure := range failures {
		c := color.New(color.FgRed)
		if failure.Status == "SKIPPED" {
			c = color.New(color.FgYellow)
		}
		c.Fprintf(f.out, "  %s %s\n", failure.Status, failure.TestName)
		if failure.Message != "" {
			fmt.Fprintf(f.out, "    %s\n", failure.Message)
		}
	}

	switch {
	case result.Success && (!hasSummary || summary.Failures == 0):
		color.New(color.FgGreen).Fprintln(f.out, "✓ Run passed")
	case result.Error != nil && !hasSummary:
		color.New(color.FgRed).Fprintf(f.out, "✗ Runner failed: %v\n", result.Error)
	default:
		color.New(color.FgRed).Fprintln(f.out, "✗ Run failed")
	}
}
