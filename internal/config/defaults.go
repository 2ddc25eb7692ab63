package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default directory test discovery starts from
	DefaultTestPath = "."
	// DefaultSettingsDir holds generated suite files and saved configurations
	DefaultSettingsDir = ".ngrun"
	// DefaultSavedConfigsFile is the saved run configurations file name
	DefaultSavedConfigsFile = "run-configurations.json"
	// DefaultResolver is the default file to class name resolver
	DefaultResolver = "source"
	// DefaultJavaBin is the default java launcher
	DefaultJavaBin = "java"
	// DefaultRunnerClass is the default TestNG entry point
	DefaultRunnerClass = "org.testng.TestNG"
	// DefaultBuildTool is the default classpath provider
	DefaultBuildTool = "maven"
	// DefaultMavenBin is the default mvn binary
	DefaultMavenBin = "mvn"
	// DefaultTestFileGlob matches Java test sources
	DefaultTestFileGlob = "*Test.java"
)

// DefaultSourceRoots are tried in order when deriving class names from paths
var DefaultSourceRoots = []string{
	"src/test/java",
	"src/main/java",
	"src",
}

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"target",
	"build",
	"out",
	"bin",
	"node_modules",
}

// DefaultConfigNames are searched for in the project root, in order
var DefaultConfigNames = []string{
	"ngrun.yaml",
	"ngrun.yml",
	"ngrun.toml",
	"ngrun.json",
	".ngrun.yaml",
	".ngrun.yml",
	".ngrun.toml",
	".ngrun.json",
}
