package commands

import (
	"github.com/spf13/cobra"

	"ngrun/internal/ui"
)

// ConfigsCommand handles the configs command
type ConfigsCommand struct {
	host      *host
	formatter *ui.Formatter
}

// NewConfigsCommand creates a new ConfigsCommand
func NewConfigsCommand(h *host, formatter *ui.Formatter) *ConfigsCommand {
	return &ConfigsCommand{
		host:      h,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *ConfigsCommand) Execute(cmd *cobra.Command, args []string) error {
	saved, err := cc.host.storage.Load()
	if err != nil {
		return err
	}
	cc.formatter.PrintSavedConfigs(saved)
	return nil
}
