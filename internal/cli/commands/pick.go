package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ngrun/internal/discovery"
	"ngrun/internal/domain"
	"ngrun/internal/suite"
	"ngrun/internal/ui"
)

// PickCommand handles the pick command
type PickCommand struct {
	host      *host
	filter    *discovery.Filter
	formatter *ui.Formatter
	generator *suite.Generator
	selector  ui.Selector
}

// NewPickCommand creates a new PickCommand
func NewPickCommand(h *host, filter *discovery.Filter, formatter *ui.Formatter, generator *suite.Generator) *PickCommand {
	pc := &PickCommand{
		host:      h,
		filter:    filter,
		formatter: formatter,
		generator: generator,
	}
	pc.selector = ui.NewPicker(pc.preview)
	return pc
}

// Execute shows the detected declarations and generates the chosen one
func (pc *PickCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := scanTests(pc.host.config, pc.filter)
	if err != nil {
		return err
	}
	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	byFile, err := pc.formatter.CollectTestCases(tests)
	if err != nil {
		return err
	}
	cases := flattenCases(byFile)

	chosen, err := pc.selector.Select(cases)
	if err != nil || chosen == nil {
		return err
	}

	rc, err := pc.host.createConfig(chosen.FilePath, chosen.Line, 0)
	if err != nil {
		return err
	}

	if !pc.host.config.Flags.Run {
		pc.formatter.PrintRunConfig(rc, pc.host.runner.Command(rc, classpathPlaceholder))
		pc.host.logger.Success("Saved run configuration %s", rc.Name)
		return nil
	}

	pc.formatter.PrintRunConfig(rc, nil)
	pc.host.runner.SetOutput(os.Stdout)
	return pc.host.launch(cmd.Context(), rc, pc.formatter)
}

// preview renders the suite file the declaration would produce
func (pc *PickCommand) preview(tc domain.TestCase) string {
	project, err := pc.host.project()
	if err != nil {
		return err.Error()
	}
	className, err := project.Resolver.ClassName(tc.FilePath)
	if err != nil {
		return fmt.Sprintf("%v", err)
	}

	target := domain.RunTarget{ClassName: className}
	if tc.Kind == domain.MethodMatch {
		target.Methods = []string{tc.Name}
	}
	return string(pc.generator.Render(target.Name(), target.ClassName, target.Methods))
}

// flattenCases orders declarations by file, then by line
func flattenCases(byFile map[string][]domain.TestCase) []domain.TestCase {
	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	var cases []domain.TestCase
	for _, file := range files {
		cases = append(cases, byFile[file]...)
	}
	return cases
}
