// Package engine generates buildings. Every engine runs the same creation
// pipeline (Create) and differs only in the structure it generates.
package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/ids"
	"github.com/alexiusacademia/gosteel/internal/strategy"
)

// ErrStrategyMissing is returned by calculations on an engine without a
// bound calculation strategy.
var ErrStrategyMissing = errors.New("engine: no calculation strategy bound")

// Engine generates buildings of one type.
type Engine interface {
	Type() building.Type
	Strategy() strategy.Strategy
	// WithStrategy returns a new engine of the same kind and options bound
	// to s. The receiver is left untouched.
	WithStrategy(s strategy.Strategy) Engine

	// Pipeline stages, run in this order by Create.
	ValidateConfig(cfg building.Config) error
	ApplyDefaults(p building.Parameters) building.Parameters
	CreateBaseBuilding(cfg building.Config, params building.Parameters) *building.Building
	GenerateStructure(b *building.Building) error
	PostProcess(b *building.Building) error

	Calculate(b *building.Building) (*strategy.FrameCalculations, error)
	Validate(b *building.Building) (building.ValidationResult, error)

	Now() time.Time
	Logger() zerolog.Logger
}

// Create runs the creation pipeline of e on cfg: validate, apply defaults,
// create the base building, generate the structure, post-process. A
// configuration error aborts before anything is generated.
func Create(e Engine, cfg building.Config) (*building.Building, error) {
	log := e.Logger().With().Str("type", string(e.Type())).Str("name", cfg.Name).Logger()

	if err := e.ValidateConfig(cfg); err != nil {
		log.Debug().Err(err).Msg("config rejected")
		return nil, err
	}
	params := e.ApplyDefaults(cfg.Parameters)

	b := e.CreateBaseBuilding(cfg, params)
	log.Debug().Str("id", b.ID).Msg("base building created")

	if err := e.GenerateStructure(b); err != nil {
		return nil, fmt.Errorf("generating %s structure: %w", e.Type(), err)
	}
	if err := e.PostProcess(b); err != nil {
		return nil, fmt.Errorf("post-processing %s building: %w", e.Type(), err)
	}

	log.Debug().Int("elements", len(b.Structure.Elements())).Msg("building generated")
	return b, nil
}

// Option configures an engine.
type Option func(*base)

// WithIDs sets the id generator. Defaults to random UUIDs.
func WithIDs(gen ids.Generator) Option {
	return func(b *base) {
		if gen != nil {
			b.ids = gen
		}
	}
}

// WithClock sets the time source. Defaults to the UTC wall clock.
func WithClock(c ids.Clock) Option {
	return func(b *base) {
		if c != nil {
			b.clock = c
		}
	}
}

// WithLogger sets the logger. Defaults to a disabled logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *base) {
		b.log = l
	}
}

// WithCalculationOptions tunes the frame calculations run by Calculate.
func WithCalculationOptions(o strategy.Options) Option {
	return func(b *base) {
		b.calc = o
	}
}

// base carries what every engine shares. Concrete engines embed it and
// inherit its no-op PostProcess.
type base struct {
	strategy strategy.Strategy
	ids      ids.Generator
	clock    ids.Clock
	log      zerolog.Logger
	calc     strategy.Options
}

func newBase(s strategy.Strategy, opts []Option) base {
	b := base{
		strategy: s,
		ids:      ids.UUIDGenerator{},
		clock:    ids.SystemClock,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Strategy returns the bound calculation strategy, possibly nil.
func (e *base) Strategy() strategy.Strategy { return e.strategy }

// Now returns the engine clock's current time.
func (e *base) Now() time.Time { return e.clock() }

// Logger returns the engine logger.
func (e *base) Logger() zerolog.Logger { return e.log }

// PostProcess is the finishing hook of the pipeline. It does nothing.
func (*base) PostProcess(*building.Building) error { return nil }

// Calculate computes the frame metrics of b with the bound strategy.
func (e *base) Calculate(b *building.Building) (*strategy.FrameCalculations, error) {
	if e.strategy == nil {
		return nil, ErrStrategyMissing
	}
	f, err := e.strategy.CalculateFrame(b.Dimensions, b.Parameters, b.Openings, e.calc)
	if err != nil {
		return nil, err
	}
	e.log.Debug().
		Str("strategy", e.strategy.Name()).
		Float64("steel_kg", f.Masses.Total).
		Int("warnings", len(f.Warnings)).
		Msg("frame calculated")
	return f, nil
}

// Validate checks the dimensions of b with the bound strategy and the
// openings against the walls they are cut in.
func (e *base) Validate(b *building.Building) (building.ValidationResult, error) {
	if e.strategy == nil {
		return building.ValidationResult{}, ErrStrategyMissing
	}
	r := e.strategy.ValidateDimensions(b.Dimensions)
	checkOpenings(b, &r)
	return r, nil
}

// newBuilding assembles the skeleton shared by every building type.
func (e *base) newBuilding(t building.Type, cfg building.Config, params building.Parameters, s building.Structure) *building.Building {
	c := cfg.Clone()
	now := e.clock()
	for i := range c.Openings {
		if c.Openings[i].ID == "" {
			c.Openings[i].ID = e.ids.NewID()
		}
	}
	return &building.Building{
		ID:         e.ids.NewID(),
		Name:       strings.TrimSpace(c.Name),
		Type:       t,
		CreatedAt:  now,
		UpdatedAt:  now,
		Dimensions: c.Dimensions,
		Parameters: params,
		Structure:  s,
		Openings:   c.Openings,
		Finishes:   c.Finishes.WithDefaults(building.DefaultFinishes),
		Metadata:   c.Metadata,
	}
}

// validateConfig holds the checks every engine runs before building.
func validateConfig(t building.Type, cfg building.Config) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return &building.InvalidConfigError{Field: "name", Reason: "must not be empty"}
	}
	if cfg.Type != "" && cfg.Type != t {
		return &building.InvalidConfigError{Field: "type", Reason: fmt.Sprintf("%q does not match a %s engine", cfg.Type, t)}
	}
	if cfg.Dimensions == nil {
		return &building.InvalidConfigError{Field: "dimensions", Reason: "are required"}
	}
	if got := cfg.Dimensions.BuildingType(); got != t {
		return fmt.Errorf("%w: %s dimensions on a %s building", building.ErrDimensionMismatch, got, t)
	}
	if err := cfg.Dimensions.Check(); err != nil {
		return err
	}
	if err := cfg.Parameters.Check(); err != nil {
		return err
	}
	for i, o := range cfg.Openings {
		if !(o.Width > 0) || !(o.Height > 0) || math.IsInf(o.Width, 0) || math.IsInf(o.Height, 0) {
			return &building.InvalidConfigError{
				Field:  fmt.Sprintf("openings[%d]", i),
				Reason: "width and height must be greater than 0",
			}
		}
	}
	return nil
}

// checkOpenings reports openings that do not fit in their wall.
func checkOpenings(b *building.Building, r *building.ValidationResult) {
	for i, o := range b.Openings {
		field := fmt.Sprintf("openings[%d]", i)
		wallLength, wallHeight, ok := wallSize(b.Dimensions, o.Wall)
		if !ok {
			r.AddWarning(field, "no %s wall on a %s building", o.Wall, b.Type)
			continue
		}
		if o.X < 0 || o.X+o.Width > wallLength {
			r.AddError(field, "%s does not fit in the %s wall (%.0f mm long)", o.Kind, o.Wall, wallLength)
		}
		if wallHeight > 0 && o.Z+o.Height > wallHeight {
			r.AddError(field, "%s top at %.0f mm exceeds the %s wall height %.0f mm", o.Kind, o.Z+o.Height, o.Wall, wallHeight)
		}
	}
}

// wallSize returns the length and the governing height of a wall. Roof
// openings report a zero height, which skips the height check.
func wallSize(dims building.Dimensions, w building.Wall) (length, height float64, ok bool) {
	d, isSloped := dims.(building.SlopedDimensions)
	if !isSloped {
		return 0, 0, false
	}
	switch w {
	case building.WallFront:
		return d.Length, d.HeightWall, true
	case building.WallBack:
		return d.Length, CalculateHeightRidge(d.HeightWall, d.Width, d.Slope), true
	case building.WallLeft, building.WallRight:
		return d.Width, d.HeightWall, true
	case building.WallRoof:
		return d.Length, 0, true
	default:
		return 0, 0, false
	}
}
