package runconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"ngrun/internal/detection"
	"ngrun/internal/domain"
	"ngrun/internal/suite"
)

// TestNGProviderID is the identifier of the TestNG provider.
const TestNGProviderID = "TestNGTest"

// TestNGProvider turns a test class or test method declaration into a TestNG
// run configuration backed by a generated suite file.
type TestNGProvider struct {
	detector  *detection.Detector
	generator *suite.Generator
	now       func() time.Time
}

// NewTestNGProvider creates a new TestNGProvider
func NewTestNGProvider(detector *detection.Detector, generator *suite.Generator) *TestNGProvider {
	return &TestNGProvider{
		detector:  detector,
		generator: generator,
		now:       time.Now,
	}
}

// ID implements Provider
func (p *TestNGProvider) ID() string {
	return TestNGProviderID
}

// MayRun implements Provider. The column is not used.
func (p *TestNGProvider) MayRun(line string, col int) bool {
	return p.detector.MayRun(line)
}

// CreateConfig implements Provider. Method runs are named class$method so they
// never share a suite file with the whole-class run.
func (p *TestNGProvider) CreateConfig(req Request) (*domain.RunConfig, error) {
	match := p.detector.Classify(req.Line)
	if !match.Matched() {
		return nil, fmt.Errorf("%w: %q", domain.ErrNoTestDeclaration, req.Line)
	}
	if req.Project == nil || req.Project.Resolver == nil {
		return nil, fmt.Errorf("%w: project has no class resolver", domain.ErrClassResolution)
	}

	className, err := req.Project.Resolver.ClassName(req.File)
	if err != nil {
		if errors.Is(err, domain.ErrClassResolution) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrClassResolution, err)
	}

	target := domain.RunTarget{ClassName: className}
	if match.Kind == domain.MethodMatch {
		target.Methods = []string{match.Identifier}
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	project := req.Project
	name := target.Name()
	args, err := p.generator.Generate(name, project, target.ClassName, target.Methods)
	if err != nil {
		return nil, err
	}

	return &domain.RunConfig{
		Name:      name,
		Provider:  TestNGProviderID,
		MainClass: runnerClass(project),
		Target:    target,
		SuitePath: args[0].Value,
		Args:      args,
		Source:    req.File,
		CreatedAt: p.now(),
		Project:   project,
	}, nil
}

// LoadConfig implements Provider. The stored suite file is read as-is and
// never regenerated.
func (p *TestNGProvider) LoadConfig(name string, project *domain.Project) (*domain.RunConfig, error) {
	if err := suite.ValidateName(name); err != nil {
		return nil, err
	}
	path := project.SuitePath(name)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	desc, err := suite.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, name)
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	target, err := desc.Target()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	return &domain.RunConfig{
		Name:      name,
		Provider:  TestNGProviderID,
		MainClass: runnerClass(project),
		Target:    target,
		SuitePath: path,
		Args:      suite.LaunchSpecFor(path),
		Project:   project,
	}, nil
}

// runnerClass returns the project's configured runner main class, or TestNG's
func runnerClass(project *domain.Project) string {
	if project != nil && project.RunnerClass != "" {
		return project.RunnerClass
	}
	return suite.RunnerClass
}

// Register registers the TestNG provider with a registry.
func Register(r *Registry) error {
	return r.Register(NewTestNGProvider(detection.NewDetector(), suite.NewGenerator()))
}
