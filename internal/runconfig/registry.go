package runconfig

import (
	"fmt"
	"sort"

	"ngrun/internal/domain"
)

// Registry holds the providers the host can query. Providers are registered
// explicitly during startup.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under its ID
func (r *Registry) Register(p Provider) error {
	id := p.ID()
	if _, ok := r.providers[id]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateProvider, id)
	}
	r.providers[id] = p
	return nil
}

// Lookup returns the provider registered under id
func (r *Registry) Lookup(id string) (Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, id)
	}
	return p, nil
}

// IDs returns the registered provider IDs in sorted order
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Offer returns the providers that can run the line, ordered by ID.
func (r *Registry) Offer(line string, col int) []Provider {
	var offered []Provider
	for _, id := range r.IDs() {
		if p := r.providers[id]; p.MayRun(line, col) {
			offered = append(offered, p)
		}
	}
	return offered
}

// Create asks the first provider able to run the line to create a configuration.
func (r *Registry) Create(req Request) (*domain.RunConfig, error) {
	offered := r.Offer(req.Line, req.Col)
	if len(offered) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrNoTestDeclaration, req.Line)
	}
	return offered[0].CreateConfig(req)
}
