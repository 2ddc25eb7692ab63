package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"ngrun/internal/domain"
)

// PathResolver derives the class name from the file's location below a source root,
// e.g. src/test/java/com/x/FooTest.java -> com.x.FooTest.
type PathResolver struct {
	roots []string
}

// NewPathResolver creates a PathResolver over the given source roots
func NewPathResolver(roots []string) *PathResolver {
	return &PathResolver{roots: roots}
}

// ClassName implements domain.ClassResolver
func (r *PathResolver) ClassName(sourceFile string) (string, error) {
	if filepath.Ext(sourceFile) != ".java" {
		return "", fmt.Errorf("%w: %s is not a .java file", domain.ErrClassResolution, sourceFile)
	}
	abs, err := filepath.Abs(sourceFile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrClassResolution, err)
	}

	for _, root := range r.roots {
		rootAbs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(rootAbs, abs)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), ".java")
		name = strings.ReplaceAll(name, "/", ".")
		target := domain.RunTarget{ClassName: name}
		if err := target.Validate(); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrClassResolution, err)
		}
		return name, nil
	}

	return "", fmt.Errorf("%w: %s is not below any source root", domain.ErrClassResolution, sourceFile)
}
