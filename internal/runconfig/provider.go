package runconfig

import (
	"ngrun/internal/buildtool"
	"ngrun/internal/domain"
)

// Request carries what the host knows at the cursor when a run is requested.
type Request struct {
	Line      string
	Col       int
	File      string
	Project   *domain.Project
	BuildTool buildtool.BuildTool
}

// Provider creates run configurations for one test framework.
type Provider interface {
	// ID is the fixed identifier the provider is registered under.
	ID() string
	// MayRun reports whether the provider can offer a run action for the line.
	MayRun(line string, col int) bool
	// CreateConfig builds a new configuration, writing whatever files it needs.
	CreateConfig(req Request) (*domain.RunConfig, error)
	// LoadConfig restores a previously created configuration from its name.
	LoadConfig(name string, project *domain.Project) (*domain.RunConfig, error)
}
