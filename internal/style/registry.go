package style

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/stylebox/internal/tokens"
	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

// Registry maps every prop name, canonical or alias, to its handler. It is
// immutable once built and safe for concurrent reads.
type Registry struct {
	tables  *tokens.Tables
	entries []Handler
	lookup  map[string]Handler
	order   map[string]int
}

// NewRegistry validates the canonical entries and folds their aliases into
// the lookup table. A name claimed twice is a RegistryError.
func NewRegistry(tables *tokens.Tables, entries []Handler) (*Registry, error) {
	if tables == nil {
		tables = tokens.Default()
	}

	canonical := make(map[string]Handler, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			return nil, styleboxerrors.NewRegistryError("", fmt.Errorf("handler has no name"))
		}
		if entry.Options == nil {
			return nil, styleboxerrors.NewRegistryError(entry.Name, fmt.Errorf("handler has no options"))
		}
		if _, exists := canonical[entry.Name]; exists {
			return nil, styleboxerrors.NewRegistryError(entry.Name, fmt.Errorf("handler already registered"))
		}
		canonical[entry.Name] = entry
	}

	lookup, order, err := foldAliases(entries, canonical)
	if err != nil {
		return nil, err
	}

	return &Registry{
		tables:  tables,
		entries: append([]Handler(nil), entries...),
		lookup:  lookup,
		order:   order,
	}, nil
}

func foldAliases(entries []Handler, canonical map[string]Handler) (map[string]Handler, map[string]int, error) {
	lookup := make(map[string]Handler, len(canonical))
	order := make(map[string]int, len(canonical))
	for _, entry := range entries {
		for _, name := range entry.Names() {
			if _, exists := lookup[name]; exists {
				return nil, nil, styleboxerrors.NewRegistryError(name, fmt.Errorf("name claimed by %q and %q", lookup[name].Name, entry.Name))
			}
			if owner, ok := canonical[name]; ok && owner.Name != entry.Name {
				return nil, nil, styleboxerrors.NewRegistryError(name, fmt.Errorf("alias of %q collides with a canonical handler", entry.Name))
			}
			lookup[name] = entry
			order[name] = len(order)
		}
	}
	return lookup, order, nil
}

// Lookup returns the handler for a canonical name or alias.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.lookup[name]
	return h, ok
}

// Order returns the processing position of a registered name.
func (r *Registry) Order(name string) (int, bool) {
	n, ok := r.order[name]
	return n, ok
}

// Handlers returns the canonical entries in declaration order.
func (r *Registry) Handlers() []Handler {
	return append([]Handler(nil), r.entries...)
}

// Len returns the number of dispatchable names.
func (r *Registry) Len() int {
	return len(r.lookup)
}

// Tables returns the token tables the handlers were built from.
func (r *Registry) Tables() *tokens.Tables {
	return r.tables
}

// NewBuiltinRegistry builds the standard handler set over tables.
func NewBuiltinRegistry(tables *tokens.Tables) (*Registry, error) {
	if tables == nil {
		tables = tokens.Default()
	}
	return NewRegistry(tables, Builtin(tables))
}

var (
	defaultRegistry     *Registry
	defaultRegistryErr  error
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the builtin registry over the default tokens.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry, defaultRegistryErr = NewBuiltinRegistry(tokens.Default())
	})
	if defaultRegistryErr != nil {
		panic(defaultRegistryErr)
	}
	return defaultRegistry
}
