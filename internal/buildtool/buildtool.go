package buildtool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ngrun/internal/domain"
)

// BuildTool resolves the classpath a test run needs.
type BuildTool interface {
	Name() string
	Classpath(ctx context.Context, project *domain.Project) (string, error)
}

// Names accepted by New.
const (
	KindMaven  = "maven"
	KindStatic = "static"
)

// New returns the build tool configured by kind.
func New(kind, mavenBin string, extra []string) (BuildTool, error) {
	switch kind {
	case KindMaven, "":
		return NewMaven(mavenBin, extra), nil
	case KindStatic:
		return NewStatic(extra), nil
	default:
		return nil, fmt.Errorf("unknown build tool %q (want %s or %s)", kind, KindMaven, KindStatic)
	}
}

// Static returns a fixed classpath.
type Static struct {
	entries []string
}

// NewStatic creates a Static build tool
func NewStatic(entries []string) *Static {
	return &Static{entries: entries}
}

// Name implements BuildTool
func (s *Static) Name() string { return KindStatic }

// Classpath implements BuildTool. Relative entries are resolved against the project root.
func (s *Static) Classpath(ctx context.Context, project *domain.Project) (string, error) {
	if len(s.entries) == 0 {
		return "", fmt.Errorf("static classpath is empty")
	}
	return JoinClasspath(project.Root, s.entries), nil
}

// JoinClasspath joins entries with the platform list separator, resolving
// relative entries against root.
func JoinClasspath(root string, entries []string) string {
	resolved := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !filepath.IsAbs(e) && root != "" {
			e = filepath.Join(root, e)
		}
		resolved = append(resolved, e)
	}
	return strings.Join(resolved, string(os.PathListSeparator))
}
