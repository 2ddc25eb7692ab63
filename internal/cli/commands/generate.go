package commands

import (
	"github.com/spf13/cobra"

	"ngrun/internal/ui"
)

// classpathPlaceholder stands in for the classpath, which is only resolved when running
const classpathPlaceholder = "<classpath>"

// GenerateCommand handles the generate command
type GenerateCommand struct {
	host      *host
	formatter *ui.Formatter
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(h *host, formatter *ui.Formatter) *GenerateCommand {
	return &GenerateCommand{
		host:      h,
		formatter: formatter,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	lineNo, err := parseLine(args[1])
	if err != nil {
		return err
	}

	rc, err := gc.host.createConfig(args[0], lineNo, gc.host.config.Flags.Col)
	if err != nil {
		return err
	}

	gc.formatter.PrintRunConfig(rc, gc.host.runner.Command(rc, classpathPlaceholder))
	gc.host.logger.Success("Saved run configuration %s", rc.Name)
	return nil
}
