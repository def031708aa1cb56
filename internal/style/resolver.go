// Package style compiles semantic style props into CSS-shaped style objects.
//
// A Registry maps each prop name to a Handler; a Resolver walks a Props
// value in registry order, dispatches every set key and merges the results
// as {...defaults, ...accumulated, ...result}. Props without a handler pass
// through when they are plain CSS properties and are dropped otherwise.
package style

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/stylebox/internal/color"
	"github.com/alexisbeaulieu97/stylebox/internal/logger"
	"github.com/alexisbeaulieu97/stylebox/internal/tokens"
)

// DebugProp dumps the style accumulated so far to the logger.
const DebugProp = "debug"

// Resolver resolves props against a registry for one theme. It is
// immutable and safe for concurrent use.
type Resolver struct {
	registry    *Registry
	adjuster    *color.Adjuster
	theme       tokens.ThemeName
	log         *logger.Logger
	diagnostics bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRegistry resolves against reg instead of the default registry.
func WithRegistry(reg *Registry) Option {
	return func(r *Resolver) {
		r.registry = reg
	}
}

// WithTheme selects the theme used for colour aliases.
func WithTheme(theme tokens.ThemeName) Option {
	return func(r *Resolver) {
		r.theme = theme
	}
}

// WithLogger sets the logger used by the debug prop and diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}

// WithDiagnostics enables warnings for dropped props and unknown colours.
func WithDiagnostics(enabled bool) Option {
	return func(r *Resolver) {
		r.diagnostics = enabled
	}
}

// NewResolver builds a resolver. Without options it uses the default
// registry and the light theme.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{theme: tokens.ThemeLight}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = DefaultRegistry()
	}
	r.adjuster = color.New(r.registry.Tables())
	return r
}

// Theme returns the active theme.
func (r *Resolver) Theme() tokens.ThemeName {
	return r.theme
}

// Registry returns the registry the resolver dispatches to.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Adjuster returns the colour adjuster bound to the registry's tables.
func (r *Resolver) Adjuster() *color.Adjuster {
	return r.adjuster
}

// ForTheme returns a copy of r bound to another theme.
func (r *Resolver) ForTheme(theme tokens.ThemeName) *Resolver {
	clone := *r
	clone.theme = theme
	return &clone
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return NewResolver()
})

// Resolve compiles props with the default registry and the light theme.
func Resolve(props Props) *Style {
	return defaultResolver().Resolve(props)
}

type step struct {
	prop    string
	handler Handler
	order   int
}

type plan struct {
	handled []step
	raw     []string
	dropped []string
	debug   bool
}

// Resolve compiles props into a style. Handled props are processed in
// registry order, then pass-through CSS in allow-list order, so when two
// props emit the same property the later-processed one wins.
func (r *Resolver) Resolve(props Props) *Style {
	p := r.plan(props)
	acc := NewStyle()

	for _, s := range p.handled {
		value, _ := props.Get(s.prop)
		result := r.apply(s.handler, s.prop, value, props)

		next := NewStyle()
		next.Merge(s.handler.Defaults)
		next.Merge(acc)
		next.Merge(result)
		acc = next
	}

	for _, name := range p.raw {
		value, _ := props.Get(name)
		acc.Set(name, value)
	}

	if r.diagnostics {
		r.reportDropped(p, props)
	}
	if p.debug {
		r.log.DebugFields("resolved style", map[string]any{
			"props": len(props.Keys()),
			"style": acc.ToMap(),
			"theme": string(r.theme),
		})
	}
	return acc
}

func (r *Resolver) plan(props Props) plan {
	var p plan
	for _, name := range props.Keys() {
		if name == DebugProp {
			value, _ := props.Get(name)
			p.debug = value != false && value != nil
			continue
		}
		if h, ok := r.registry.Lookup(name); ok {
			order, _ := r.registry.Order(name)
			p.handled = append(p.handled, step{prop: name, handler: h, order: order})
			continue
		}
		if IsRawCSS(name) {
			p.raw = append(p.raw, name)
			continue
		}
		p.dropped = append(p.dropped, name)
	}

	sort.Slice(p.handled, func(i, j int) bool { return p.handled[i].order < p.handled[j].order })
	sort.Slice(p.raw, func(i, j int) bool { return rawCSSOrder[p.raw[i]] < rawCSSOrder[p.raw[j]] })
	return p
}

func (r *Resolver) apply(h Handler, prop string, value any, props Props) *Style {
	switch opts := h.Options.(type) {
	case TableLookup:
		if key, ok := tableKey(value); ok {
			if mapped, found := opts[key]; found {
				return Of(prop, mapped)
			}
		}
		return Of(prop, value)
	case ComputedResolver:
		return opts(Input{
			Prop:     prop,
			Value:    value,
			Theme:    r.theme,
			siblings: pick(props, h.SiblingsFor(prop)),
			resolver: r,
		})
	default:
		return nil
	}
}

func pick(props Props, names []string) Props {
	out := make(Props, len(names))
	for _, name := range names {
		if v, ok := props.Get(name); ok {
			out[name] = v
		}
	}
	return out
}

// reportDropped warns about props that were neither dispatched nor read as
// a sibling by a dispatched handler.
func (r *Resolver) reportDropped(p plan, props Props) {
	if len(p.dropped) == 0 {
		return
	}
	read := map[string]bool{}
	for _, s := range p.handled {
		for _, name := range s.handler.SiblingsFor(s.prop) {
			read[name] = true
		}
	}
	for _, name := range p.dropped {
		if read[name] {
			continue
		}
		r.diagnose("dropped unknown prop", map[string]any{"prop": name})
	}
}

func (r *Resolver) diagnose(msg string, fields map[string]any) {
	if !r.diagnostics {
		return
	}
	r.log.WarnFields(msg, fields)
}
