package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ngrun/internal/config"
	"ngrun/internal/discovery"
	"ngrun/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := scanTests(lc.config, lc.filter)
	if err != nil {
		return err
	}

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	return lc.formatter.PrintTestList(tests, lc.config.Flags.TestCases)
}

// scanTests finds the test files under the test path that match the name filter
func scanTests(cfg *config.Config, filter *discovery.Filter) ([]string, error) {
	scanner := discovery.NewScanner(cfg.PathsToIgnore, cfg.TestFileGlob)
	tests, err := scanner.Scan(cfg.GetTestPath())
	if err != nil {
		return nil, err
	}
	return filter.FilterByName(tests, cfg.Flags.NameFilter), nil
}
