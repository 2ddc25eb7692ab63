package resolver

import (
	"errors"
	"fmt"

	"ngrun/internal/domain"
)

// Kind selects a resolver implementation by name.
const (
	KindSource = "source"
	KindPath   = "path"
)

// New returns the resolver configured by kind. The source resolver falls back
// to path resolution when the file declares no package.
func New(kind string, sourceRoots []string) (domain.ClassResolver, error) {
	switch kind {
	case KindSource, "":
		return Chain{NewSourceResolver(), NewPathResolver(sourceRoots)}, nil
	case KindPath:
		return NewPathResolver(sourceRoots), nil
	default:
		return nil, fmt.Errorf("unknown resolver %q (want %s or %s)", kind, KindSource, KindPath)
	}
}

// Chain tries each resolver in order and returns the first success. When all
// fail, the error joins every resolver's error.
type Chain []domain.ClassResolver

// ClassName implements domain.ClassResolver
func (c Chain) ClassName(sourceFile string) (string, error) {
	if len(c) == 0 {
		return "", fmt.Errorf("%w: no resolver configured", domain.ErrClassResolution)
	}
	var errs []error
	for _, r := range c {
		name, err := r.ClassName(sourceFile)
		if err == nil {
			return name, nil
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}
