package commands

import (
	"context"
	"fmt"
	"strconv"

	"ngrun/internal/buildtool"
	"ngrun/internal/config"
	"ngrun/internal/discovery"
	"ngrun/internal/domain"
	"ngrun/internal/execution"
	"ngrun/internal/parser"
	"ngrun/internal/resolver"
	"ngrun/internal/runconfig"
	"ngrun/internal/storage"
	"ngrun/internal/ui"
)

// host plays the IDE's part: it owns project settings, the provider registry,
// saved configurations and process launching.
type host struct {
	config   *config.Config
	registry *runconfig.Registry
	storage  storage.Storage
	runner   *execution.Runner
	parser   parser.Parser
	logger   *ui.Logger
}

// project builds the project context from the loaded configuration
func (h *host) project() (*domain.Project, error) {
	r, err := resolver.New(h.config.Resolver, h.config.GetSourceRoots())
	if err != nil {
		return nil, err
	}
	return h.config.Project(r), nil
}

func (h *host) buildTool() (buildtool.BuildTool, error) {
	return buildtool.New(h.config.BuildTool, h.config.MavenBin, h.config.Classpath)
}

// provider returns the provider a saved configuration was created by
func (h *host) provider(name string) (runconfig.Provider, error) {
	id := runconfig.TestNGProviderID
	if saved, err := h.storage.Find(name); err == nil && saved.Provider != "" {
		id = saved.Provider
	}
	return h.registry.Lookup(id)
}

// createConfig detects the declaration at file:line and creates its run configuration
func (h *host) createConfig(file string, lineNo, col int) (*domain.RunConfig, error) {
	line, err := discovery.ReadLine(file, lineNo)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("line %d: %q", lineNo, line)

	project, err := h.project()
	if err != nil {
		return nil, err
	}
	tool, err := h.buildTool()
	if err != nil {
		return nil, err
	}
	if err := h.config.EnsureSettingsDir(); err != nil {
		return nil, err
	}

	rc, err := h.registry.Create(runconfig.Request{
		Line:      line,
		Col:       col,
		File:      file,
		Project:   project,
		BuildTool: tool,
	})
	if err != nil {
		return nil, err
	}
	rc.Line = lineNo
	h.logger.Debug("wrote %s", rc.SuitePath)

	if err := h.storage.Save(rc); err != nil {
		return nil, fmt.Errorf("failed to save run configuration: %w", err)
	}
	return rc, nil
}

// loadConfig restores a saved run configuration by name
func (h *host) loadConfig(name string) (*domain.RunConfig, error) {
	project, err := h.project()
	if err != nil {
		return nil, err
	}
	p, err := h.provider(name)
	if err != nil {
		return nil, err
	}
	return p.LoadConfig(name, project)
}

// launch resolves the classpath, runs the configuration and prints the outcome
func (h *host) launch(ctx context.Context, rc *domain.RunConfig, formatter *ui.Formatter) error {
	tool, err := h.buildTool()
	if err != nil {
		return err
	}
	project := rc.Project
	if project == nil {
		if project, err = h.project(); err != nil {
			return err
		}
	}

	h.logger.Info("Resolving classpath with %s...", tool.Name())
	classpath, err := tool.Classpath(ctx, project)
	if err != nil {
		return fmt.Errorf("classpath resolution failed: %w", err)
	}

	h.logger.Info("Running %s", rc.Name)
	result := h.runner.Execute(ctx, rc, classpath)
	summary, ok := h.parser.ParseSummary(result.Output)
	if !ok {
		h.logger.Warn("No TestNG totals in the runner output")
	}
	formatter.PrintRunSummary(result, summary, ok, h.parser.ParseFailures(result.Output))

	if !result.Success || (ok && summary.Failures > 0) {
		return fmt.Errorf("run %s failed", rc.Name)
	}
	return nil
}

func parseLine(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid line number %q", arg)
	}
	return n, nil
}
