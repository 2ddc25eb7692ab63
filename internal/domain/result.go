package domain

import "time"

// RunResult represents the result of launching the runner for one configuration
type RunResult struct {
	Config   string        // Name of the run configuration
	Command  []string      // Full command line that was executed
	Success  bool          // Whether the runner exited cleanly
	Output   string        // Raw console output of the runner
	Error    error         // Error if execution failed
	Duration time.Duration // Time taken to execute
}

// RunSummary holds the counts TestNG prints at the end of a run.
type RunSummary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Failures int `json:"failures"`
	Skips    int `json:"skips"`
}

// SavedConfigs is the on-disk record of created run configurations.
type SavedConfigs struct {
	Configs []RunConfig `json:"configs"`
}
