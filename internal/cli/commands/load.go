package commands

import (
	"os"

	"github.com/spf13/cobra"

	"ngrun/internal/ui"
)

// LoadCommand handles the load command
type LoadCommand struct {
	host      *host
	formatter *ui.Formatter
}

// NewLoadCommand creates a new LoadCommand
func NewLoadCommand(h *host, formatter *ui.Formatter) *LoadCommand {
	return &LoadCommand{
		host:      h,
		formatter: formatter,
	}
}

// Execute restores the named configuration from its suite file
func (lc *LoadCommand) Execute(cmd *cobra.Command, args []string) error {
	rc, err := lc.host.loadConfig(args[0])
	if err != nil {
		return err
	}

	if !lc.host.config.Flags.Run {
		lc.formatter.PrintRunConfig(rc, lc.host.runner.Command(rc, classpathPlaceholder))
		return nil
	}

	lc.formatter.PrintRunConfig(rc, nil)
	lc.host.runner.SetOutput(os.Stdout)
	return lc.host.launch(cmd.Context(), rc, lc.formatter)
}
