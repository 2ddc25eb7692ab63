package commands

import (
	"ngrun/internal/cli"
	"ngrun/internal/config"
	"ngrun/internal/detection"
	"ngrun/internal/discovery"
	"ngrun/internal/execution"
	"ngrun/internal/parser"
	"ngrun/internal/runconfig"
	"ngrun/internal/storage"
	"ngrun/internal/suite"
	"ngrun/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Detect   *DetectCommand
	Generate *GenerateCommand
	Run      *RunCommand
	Load     *LoadCommand
	List     *ListCommand
	Configs  *ConfigsCommand
	Pick     *PickCommand

	logger    *ui.Logger
	formatter *ui.Formatter
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, registry *runconfig.Registry, logger *ui.Logger) *Commands {
	// Initialize dependencies
	detector := detection.NewDetector()
	filter := discovery.NewFilter()
	testCaseParser := discovery.NewParser(detector)
	formatter := ui.NewFormatter(cfg, testCaseParser)
	runner := execution.NewRunner(cfg)
	h := &host{
		config:   cfg,
		registry: registry,
		storage:  storage.NewJSONStorage(cfg),
		runner:   runner,
		parser:   parser.NewTestNGParser(),
		logger:   logger,
	}

	return &Commands{
		Detect:   NewDetectCommand(detector, formatter),
		Generate: NewGenerateCommand(h, formatter),
		Run:      NewRunCommand(h, formatter),
		Load:     NewLoadCommand(h, formatter),
		List:     NewListCommand(cfg, filter, formatter),
		Configs:  NewConfigsCommand(h, formatter),
		Pick:     NewPickCommand(h, filter, formatter, suite.NewGenerator()),

		logger:    logger,
		formatter: formatter,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.Project, "project", "C", "", "Project root directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Configuration file (default: ngrun.yaml in the project)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.Project, flags.ConfigFile)
		if err != nil {
			return err
		}
		// Commands hold cfg, so update it in place
		*cfg = *loaded
		c.logger.SetVerbose(flags.Verbose)
		if cfg.Source != "" {
			c.logger.Debug("config loaded from %s", cfg.Source)
		}
		return nil
	}

	// Update config with flags after parsing
	syncFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	// Detect command
	detectCmd := &cobra.Command{
		Use:     "detect FILE LINE",
		Short:   "Classify a source line",
		Long:    "Report whether a line of a Java file declares a TestNG test class or test method",
		Args:    cobra.ExactArgs(2),
		RunE:    c.Detect.Execute,
		PreRunE: syncFlags,
	}
	detectCmd.Flags().IntVar(&flags.Col, "col", 0, "Cursor column on the line")
	rootCmd.AddCommand(detectCmd)

	// Generate command
	generateCmd := &cobra.Command{
		Use:     "generate FILE LINE",
		Short:   "Create a run configuration",
		Long:    "Detect the test at a line, write its TestNG suite file and save the run configuration",
		Args:    cobra.ExactArgs(2),
		RunE:    c.Generate.Execute,
		PreRunE: syncFlags,
	}
	generateCmd.Flags().IntVar(&flags.Col, "col", 0, "Cursor column on the line")
	rootCmd.AddCommand(generateCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run FILE LINE",
		Short:   "Create a run configuration and run it",
		Long:    "Generate the run configuration for the test at a line and launch TestNG with it",
		Args:    cobra.ExactArgs(2),
		RunE:    c.Run.Execute,
		PreRunE: syncFlags,
	}
	runCmd.Flags().IntVar(&flags.Col, "col", 0, "Cursor column on the line")
	rootCmd.AddCommand(runCmd)

	// Load command
	loadCmd := &cobra.Command{
		Use:     "load NAME",
		Short:   "Restore a saved run configuration",
		Long:    "Rebuild a run configuration from its existing suite file, optionally running it",
		Args:    cobra.ExactArgs(1),
		RunE:    c.Load.Execute,
		PreRunE: syncFlags,
	}
	loadCmd.Flags().BoolVar(&flags.Run, "run", false, "Run the restored configuration")
	rootCmd.AddCommand(loadCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered tests",
		Long:    "Scan and list Java test files, or their TestNG classes and methods",
		RunE:    c.List.Execute,
		PreRunE: syncFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., '**/*ServiceTest.java' or '*Payment*')")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test classes and methods instead of test files")
	rootCmd.AddCommand(listCmd)

	// Configs command
	configsCmd := &cobra.Command{
		Use:     "configs",
		Short:   "List saved run configurations",
		RunE:    c.Configs.Execute,
		PreRunE: syncFlags,
	}
	rootCmd.AddCommand(configsCmd)

	// Pick command
	pickCmd := &cobra.Command{
		Use:     "pick",
		Short:   "Browse tests interactively",
		Long:    "Browse detected test classes and methods and generate a run configuration for the selected one",
		RunE:    c.Pick.Execute,
		PreRunE: syncFlags,
	}
	pickCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	pickCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern")
	pickCmd.Flags().BoolVar(&flags.Run, "run", false, "Run the selected test after generating it")
	rootCmd.AddCommand(pickCmd)
}
