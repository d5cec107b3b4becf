package source

import (
	"fmt"
	"sort"
	"strings"

	"github.com/retrolabs/retrolog/domain"
)

// Registry manages all registered commit source implementations.
type Registry struct {
	sources map[string]Factory
}

// Factory is a constructor function that creates a Source.
type Factory func() domain.Source

// NewRegistry creates an empty source registry.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]Factory),
	}
}

// Register adds a source factory under the given name (e.g. "gitcli").
func (r *Registry) Register(name string, factory Factory) {
	r.sources[name] = factory
}

// Get returns a source instance for the given name.
func (r *Registry) Get(name string) (domain.Source, error) {
	factory, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown commit source: %q (known: %s)",
			name, strings.Join(r.Names(), ", "))
	}
	return factory(), nil
}

// Names returns the sorted list of registered source names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
