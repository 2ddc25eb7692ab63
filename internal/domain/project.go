package domain

import "path/filepath"

// Project is the context a run configuration is created in.
type Project struct {
	Root        string
	SettingsDir string
	SourceRoots []string
	Resolver    ClassResolver
	// RunnerClass overrides the runner main class when set
	RunnerClass string
}

// ClassResolver maps a Java source file to its fully-qualified class name.
type ClassResolver interface {
	ClassName(sourceFile string) (string, error)
}

// SuitePath returns the descriptor path for a configuration name.
func (p *Project) SuitePath(name string) string {
	return filepath.Join(p.SettingsDir, name+SuiteFileSuffix)
}

// SuiteFileSuffix is appended to a configuration name to form its descriptor file name.
const SuiteFileSuffix = "_suite.xml"
