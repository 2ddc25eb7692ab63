package commands

import (
	"os"

	"github.com/spf13/cobra"

	"ngrun/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	host      *host
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(h *host, formatter *ui.Formatter) *RunCommand {
	return &RunCommand{
		host:      h,
		formatter: formatter,
	}
}

// Execute generates the configuration for the line and runs it
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	lineNo, err := parseLine(args[1])
	if err != nil {
		return err
	}

	runCfg, err := rc.host.createConfig(args[0], lineNo, rc.host.config.Flags.Col)
	if err != nil {
		return err
	}
	rc.formatter.PrintRunConfig(runCfg, nil)

	// Stream the JVM output while it runs
	rc.host.runner.SetOutput(os.Stdout)
	return rc.host.launch(cmd.Context(), runCfg, rc.formatter)
}
