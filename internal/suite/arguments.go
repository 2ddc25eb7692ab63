package suite

import "ngrun/internal/domain"

// RunnerClass is the TestNG command line entry point.
const RunnerClass = "org.testng.TestNG"

// Arguments accepted by the TestNG runner.
var (
	SuiteArgument = domain.ProgramArgument{
		Label:       "Suite-file",
		Description: "Path to the suite.xml file",
		Template:    domain.ValuePlaceholder,
	}
)

// LaunchSpecFor builds the runner arguments for a suite file.
func LaunchSpecFor(suitePath string) domain.LaunchSpec {
	return domain.LaunchSpec{SuiteArgument.Build(suitePath)}
}
