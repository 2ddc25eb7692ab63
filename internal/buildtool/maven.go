package buildtool

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ngrun/internal/domain"
)

// Maven resolves the test classpath with the dependency plugin.
type Maven struct {
	bin   string
	extra []string
}

// NewMaven creates a Maven build tool using the given mvn binary
func NewMaven(bin string, extra []string) *Maven {
	if bin == "" {
		bin = "mvn"
	}
	return &Maven{bin: bin, extra: extra}
}

// Name implements BuildTool
func (m *Maven) Name() string { return KindMaven }

// Args returns the mvn arguments writing the dependency classpath to outputFile.
func (m *Maven) Args(outputFile string) []string {
	return []string{
		"-q",
		"dependency:build-classpath",
		"-Dmdep.includeScope=test",
		"-Dmdep.outputFile=" + outputFile,
	}
}

// Classpath implements BuildTool. Compiled test and main classes come first.
func (m *Maven) Classpath(ctx context.Context, project *domain.Project) (string, error) {
	out, err := os.CreateTemp("", "ngrun-classpath-*.txt")
	if err != nil {
		return "", fmt.Errorf("create classpath file: %w", err)
	}
	outPath := out.Name()
	out.Close()
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, m.bin, m.Args(outPath)...)
	cmd.Dir = project.Root
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("mvn dependency:build-classpath: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	deps, err := os.ReadFile(outPath)
	if err != nil {
		return "", fmt.Errorf("read classpath file: %w", err)
	}

	entries := []string{
		filepath.Join("target", "test-classes"),
		filepath.Join("target", "classes"),
	}
	entries = append(entries, m.extra...)
	for _, dep := range strings.Split(strings.TrimSpace(string(deps)), string(os.PathListSeparator)) {
		if dep != "" {
			entries = append(entries, dep)
		}
	}
	return JoinClasspath(project.Root, entries), nil
}
