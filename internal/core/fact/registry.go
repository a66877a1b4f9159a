package fact

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

var namePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Resolver computes a fact value on demand.
type Resolver interface {
	Resolve(ctx context.Context) Value
}

// ResolverFunc adapts a plain function to a Resolver.
type ResolverFunc func(ctx context.Context) Value

// Resolve calls f(ctx).
func (f ResolverFunc) Resolve(ctx context.Context) Value {
	return f(ctx)
}

// Registry maps fact names to resolvers. It is owned by the collector's
// caller and populated once at start-up. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	facts map[string]Resolver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{facts: make(map[string]Resolver)}
}

// Add registers r under name. Names must match [a-z0-9_]+ and be unique.
func (r *Registry) Add(name string, res Resolver) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid fact name %q: must match %s", name, namePattern)
	}
	if res == nil {
		return fmt.Errorf("fact %q: resolver is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.facts[name]; exists {
		return fmt.Errorf("fact %q already registered", name)
	}
	r.facts[name] = res
	return nil
}

// Get returns the resolver registered under name.
func (r *Registry) Get(name string) (Resolver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.facts[name]
	return res, ok
}

// Len returns the number of registered facts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.facts)
}

// Names returns all registered fact names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.facts))
	for name := range r.facts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Match returns the sorted names matching any of the doublestar patterns.
// With no patterns every name is returned.
func (r *Registry) Match(patterns ...string) ([]string, error) {
	names := r.Names()
	if len(patterns) == 0 {
		return names, nil
	}

	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid fact pattern %q", p)
		}
	}

	matched := make([]string, 0, len(names))
	for _, name := range names {
		if MatchAny(patterns, name) {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// MatchAny reports whether name matches at least one pattern. Invalid
// patterns never match.
func MatchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
