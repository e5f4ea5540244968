package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry resolves command names and aliases.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Command
	primary []string // registration order of canonical names
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds a command under its name and aliases. A name collision with
// an already-registered command is an error.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for _, n := range names {
		if _, taken := r.byName[n]; taken {
			return fmt.Errorf("command already registered: %s", n)
		}
	}
	for _, n := range names {
		r.byName[n] = c
	}
	r.primary = append(r.primary, c.Name())
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	return c, ok
}

// All returns the registered commands sorted by canonical name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.primary))
	copy(names, r.primary)
	sort.Strings(names)

	result := make([]Command, len(names))
	for i, n := range names {
		result[i] = r.byName[n]
	}
	return result
}

// DefaultRegistry is the registry commands self-register into.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry, panicking on collision.
// Collisions are programming errors caught at init time.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
