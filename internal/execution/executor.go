package execution

import (
	"context"

	"ngrun/internal/domain"
)

// Executor launches a run configuration and returns its result
type Executor interface {
	Execute(ctx context.Context, rc *domain.RunConfig, classpath string) domain.RunResult
}
