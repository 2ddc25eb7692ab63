package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"ngrun/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string   `koanf:"-"`
	TestPath    string   `koanf:"test_path"`
	SettingsDir string   `koanf:"settings_dir"`
	SourceRoots []string `koanf:"source_roots"`
	Resolver    string   `koanf:"resolver"`

	// Launch settings
	JavaBin     string   `koanf:"java_bin"`
	RunnerClass string   `koanf:"runner_class"`
	JVMArgs     []string `koanf:"jvm_args"`
	BuildTool   string   `koanf:"build_tool"`
	MavenBin    string   `koanf:"maven_bin"`
	Classpath   []string `koanf:"classpath"`

	// Paths to ignore when scanning
	PathsToIgnore []string `koanf:"paths_to_ignore"`
	TestFileGlob  string   `koanf:"test_file_glob"`

	// File the configuration was read from, empty for defaults
	Source string `koanf:"-"`

	// Command flags
	Flags Flags `koanf:"-"`
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	Verbose    bool
	TestPath   string
	NameFilter string
	TestCases  bool
	Col        int
	Run        bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:  DefaultProjectPath,
		TestPath:     DefaultTestPath,
		SettingsDir:  DefaultSettingsDir,
		Resolver:     DefaultResolver,
		JavaBin:      DefaultJavaBin,
		RunnerClass:  DefaultRunnerClass,
		BuildTool:    DefaultBuildTool,
		MavenBin:     DefaultMavenBin,
		TestFileGlob: DefaultTestFileGlob,
	}
	// Copy defaults so callers can't mutate the package slices
	cfg.SourceRoots = append([]string(nil), DefaultSourceRoots...)
	cfg.PathsToIgnore = append([]string(nil), DefaultPathsToIgnore...)
	return cfg
}

// Load builds the configuration for a project: defaults, then the project's
// .env, then the config file, then NGRUN_* environment variables.
func Load(projectPath, configFile string) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}

	// .env is optional
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	path := configFile
	if path == "" {
		path = cfg.findConfigFile()
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) findConfigFile() string {
	for _, name := range DefaultConfigNames {
		path := filepath.Join(c.ProjectPath, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (c *Config) loadFile(path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return fmt.Errorf("unsupported config format: %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	c.Source = path
	return nil
}

func (c *Config) applyEnv() {
	strs := map[string]*string{
		"NGRUN_SETTINGS_DIR": &c.SettingsDir,
		"NGRUN_RESOLVER":     &c.Resolver,
		"NGRUN_JAVA_BIN":     &c.JavaBin,
		"NGRUN_RUNNER_CLASS": &c.RunnerClass,
		"NGRUN_BUILD_TOOL":   &c.BuildTool,
		"NGRUN_MAVEN_BIN":    &c.MavenBin,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	if v := os.Getenv("NGRUN_CLASSPATH"); v != "" {
		c.Classpath = filepath.SplitList(v)
	}
}

// GetTestPath returns the test path, using flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		// Relative flag values are resolved against the project path
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}

	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetSettingsDir returns the absolute settings directory
func (c *Config) GetSettingsDir() string {
	p := c.SettingsDir
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// EnsureSettingsDir creates the settings directory if it does not exist
func (c *Config) EnsureSettingsDir() error {
	if err := os.MkdirAll(c.GetSettingsDir(), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	return nil
}

// GetSavedConfigsPath returns the path of the saved run configurations file
func (c *Config) GetSavedConfigsPath() string {
	return filepath.Join(c.GetSettingsDir(), DefaultSavedConfigsFile)
}

// GetSourceRoots returns the source roots resolved against the project path
func (c *Config) GetSourceRoots() []string {
	roots := make([]string, len(c.SourceRoots))
	for i, r := range c.SourceRoots {
		if filepath.IsAbs(r) {
			roots[i] = r
		} else {
			roots[i] = filepath.Join(c.ProjectPath, r)
		}
	}
	return roots
}

// Project returns the project context for run configuration providers
func (c *Config) Project(resolver domain.ClassResolver) *domain.Project {
	root := c.ProjectPath
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &domain.Project{
		Root:        root,
		SettingsDir: c.GetSettingsDir(),
		SourceRoots: c.GetSourceRoots(),
		Resolver:    resolver,
		RunnerClass: c.RunnerClass,
	}
}
