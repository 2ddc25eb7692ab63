package main

import (
	"os"

	"ngrun/internal/cli"
	"ngrun/internal/cli/commands"
	"ngrun/internal/config"
	"ngrun/internal/runconfig"
	"ngrun/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "ngrun",
		Short:         "TestNG run configurations from source lines",
		Long:          `Detect the TestNG test class or method declared on a line of Java source, write a suite file for it and launch TestNG with that suite.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults; the root command reloads it once
	// --project and --config are parsed
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	logger := ui.NewLogger(false)

	// Providers are registered explicitly at startup
	registry := runconfig.NewRegistry()
	if err := runconfig.Register(registry); err != nil {
		logger.Error("Error: %v", err)
		os.Exit(1)
	}

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, registry, logger)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Error: %v", err)
		os.Exit(1)
	}
}
