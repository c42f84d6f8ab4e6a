// Package factory maps building types to engines and builds buildings from
// configurations and named templates.
package factory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/engine"
	"github.com/alexiusacademia/gosteel/internal/strategy"
)

// Registry associates each building type with one engine and holds the
// named templates. It is filled during start-up and sealed; a sealed
// registry is read-only and safe for concurrent use.
type Registry struct {
	engines   map[building.Type]engine.Engine
	templates map[string]Template
	sealed    bool
	log       zerolog.Logger
}

// NewRegistry creates an empty, unsealed registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		engines:   make(map[building.Type]engine.Engine),
		templates: make(map[string]Template),
		log:       log,
	}
}

// NewDefault creates a sealed registry with the sloped and canopy engines,
// their strategies and the built-in templates. opts are passed to both
// engines.
func NewDefault(log zerolog.Logger, opts ...engine.Option) *Registry {
	opts = append([]engine.Option{engine.WithLogger(log)}, opts...)
	r := NewRegistry(log)
	// Registration on a fresh registry cannot fail.
	_ = r.Register(building.TypeSloped, engine.NewSloped(strategy.NewSloped(), opts...))
	_ = r.Register(building.TypeCanopy, engine.NewCanopy(strategy.NewCanopy(strategy.DefaultSolarAssumptions), opts...))
	for _, t := range BuiltinTemplates {
		_ = r.RegisterTemplate(t)
	}
	r.Seal()
	return r
}

// Default returns the process-wide registry, created on first use.
var Default = sync.OnceValue(func() *Registry {
	return NewDefault(zerolog.Nop())
})

// Register associates t with e. The last registration of a type wins.
func (r *Registry) Register(t building.Type, e engine.Engine) error {
	if r.sealed {
		return ErrRegistrySealed
	}
	if e == nil {
		return fmt.Errorf("factory: nil engine for %q", t)
	}
	if e.Type() != t {
		return fmt.Errorf("factory: %s engine registered as %q", e.Type(), t)
	}
	r.engines[t] = e
	r.log.Debug().Str("type", string(t)).Msg("engine registered")
	return nil
}

// RegisterTemplate adds or replaces a named template.
func (r *Registry) RegisterTemplate(t Template) error {
	if r.sealed {
		return ErrRegistrySealed
	}
	if t.Name == "" {
		return fmt.Errorf("factory: template without a name")
	}
	t.Config = t.Config.Clone()
	r.templates[t.Name] = t
	return nil
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.sealed = true
}

// Engine returns the engine registered for t.
func (r *Registry) Engine(t building.Type) (engine.Engine, error) {
	e, ok := r.engines[t]
	if !ok {
		return nil, &UnsupportedTypeError{Type: t, Supported: r.SupportedTypes()}
	}
	return e, nil
}

// IsTypeSupported reports whether an engine is registered for t.
func (r *Registry) IsTypeSupported(t building.Type) bool {
	_, ok := r.engines[t]
	return ok
}

// SupportedTypes returns the registered types in sorted order.
func (r *Registry) SupportedTypes() []building.Type {
	types := make([]building.Type, 0, len(r.engines))
	for t := range r.engines {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Templates returns the registered templates sorted by name.
func (r *Registry) Templates() []Template {
	out := make([]Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, Template{Name: t.Name, Description: t.Description, Config: t.Config.Clone()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Template returns the template called name.
func (r *Registry) Template(name string) (Template, error) {
	t, ok := r.templates[name]
	if !ok {
		return Template{}, &TemplateNotFoundError{Name: name, Available: r.templateNames()}
	}
	t.Config = t.Config.Clone()
	return t, nil
}

func (r *Registry) templateNames() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolve returns the engine for cfg, bound to s when s is given and
// differs from the registered strategy. The registered engine is never
// modified. An untyped cfg takes the type of its dimensions.
func (r *Registry) resolve(cfg building.Config, s strategy.Strategy) (engine.Engine, building.Config, error) {
	if cfg.Type == "" && cfg.Dimensions != nil {
		cfg.Type = cfg.Dimensions.BuildingType()
	}
	e, err := r.Engine(cfg.Type)
	if err != nil {
		return nil, cfg, err
	}
	if s != nil && s != e.Strategy() {
		e = e.WithStrategy(s)
		r.log.Debug().Str("type", string(cfg.Type)).Str("strategy", s.Name()).Msg("strategy rebound")
	}
	return e, cfg, nil
}

// Create builds cfg with the engine registered for its type. A non-nil s
// replaces the engine's calculation strategy for this call only.
func (r *Registry) Create(cfg building.Config, s strategy.Strategy) (*building.Building, error) {
	e, cfg, err := r.resolve(cfg, s)
	if err != nil {
		return nil, err
	}
	return engine.Create(e, cfg)
}

// CreateFromTemplate builds the named template with overrides merged on
// top: dimensions and parameters field by field, other fields replace.
func (r *Registry) CreateFromTemplate(name string, overrides building.Config) (*building.Building, error) {
	t, err := r.Template(name)
	if err != nil {
		return nil, err
	}
	r.log.Debug().Str("template", name).Msg("building from template")
	return r.Create(applyOverrides(t.Config, overrides), nil)
}

// ConfigFromTemplate returns the configuration CreateFromTemplate would
// build, without building it.
func (r *Registry) ConfigFromTemplate(name string, overrides building.Config) (building.Config, error) {
	t, err := r.Template(name)
	if err != nil {
		return building.Config{}, err
	}
	return applyOverrides(t.Config, overrides), nil
}
