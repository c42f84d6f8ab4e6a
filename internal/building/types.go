// Package building holds the data model shared by the engines, the
// calculation strategies and the factory.
package building

import (
	"strings"

	"github.com/alexiusacademia/gosteel/internal/solar"
)

// Type tags a building family
type Type string

const (
	// TypeSloped is a single-pitch light-gauge steel building
	TypeSloped Type = "sloped"
	// TypeCanopy is a flat photovoltaic parking canopy
	TypeCanopy Type = "canopy"
)

// Config is the input of a build. It is never modified by the engines.
type Config struct {
	Name       string            `json:"name" yaml:"name"`
	Type       Type              `json:"type" yaml:"type"`
	Dimensions Dimensions        `json:"dimensions" yaml:"dimensions"`
	Parameters Parameters        `json:"parameters" yaml:"parameters"`
	Openings   []Opening         `json:"openings,omitempty" yaml:"openings,omitempty"`
	Finishes   Finishes          `json:"finishes" yaml:"finishes"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Parameters = c.Parameters.Clone()
	out.Openings = append([]Opening(nil), c.Openings...)
	out.Metadata = cloneMetadata(c.Metadata)
	return out
}

// Parameters are spacings (mm), profile designations and feature flags.
// Zero values mean "not set"; engines fill them from their default table.
type Parameters struct {
	PostSpacing   float64 `json:"post_spacing,omitempty" yaml:"post_spacing,omitempty"`
	PurlinSpacing float64 `json:"purlin_spacing,omitempty" yaml:"purlin_spacing,omitempty"`
	RailSpacing   float64 `json:"rail_spacing,omitempty" yaml:"rail_spacing,omitempty"`

	PostProfile    string `json:"post_profile,omitempty" yaml:"post_profile,omitempty"`
	RafterProfile  string `json:"rafter_profile,omitempty" yaml:"rafter_profile,omitempty"`
	BeamProfile    string `json:"beam_profile,omitempty" yaml:"beam_profile,omitempty"`
	PurlinProfile  string `json:"purlin_profile,omitempty" yaml:"purlin_profile,omitempty"`
	RailProfile    string `json:"rail_profile,omitempty" yaml:"rail_profile,omitempty"`
	BracingProfile string `json:"bracing_profile,omitempty" yaml:"bracing_profile,omitempty"`
	SteelGrade     string `json:"steel_grade,omitempty" yaml:"steel_grade,omitempty"`

	Gutters    *bool `json:"gutters,omitempty" yaml:"gutters,omitempty"`
	Downspouts *bool `json:"downspouts,omitempty" yaml:"downspouts,omitempty"`

	// Canopy only
	Solar    *solar.ArrayConfig `json:"solar,omitempty" yaml:"solar,omitempty"`
	Location *solar.Location    `json:"location,omitempty" yaml:"location,omitempty"`
}

// Check rejects spacings that are set to anything but a finite positive
// length. Zero is left for WithDefaults to fill.
func (p Parameters) Check() error {
	spacings := []struct {
		field string
		v     float64
	}{
		{"parameters.post_spacing", p.PostSpacing},
		{"parameters.purlin_spacing", p.PurlinSpacing},
		{"parameters.rail_spacing", p.RailSpacing},
	}
	for _, s := range spacings {
		if s.v == 0 {
			continue
		}
		if err := positive(s.field, s.v); err != nil {
			return err
		}
	}
	return nil
}

// Merge returns p with every set field of o applied on top.
func (p Parameters) Merge(o Parameters) Parameters {
	out := p.Clone()
	if o.PostSpacing != 0 {
		out.PostSpacing = o.PostSpacing
	}
	if o.PurlinSpacing != 0 {
		out.PurlinSpacing = o.PurlinSpacing
	}
	if o.RailSpacing != 0 {
		out.RailSpacing = o.RailSpacing
	}
	mergeString(&out.PostProfile, o.PostProfile)
	mergeString(&out.RafterProfile, o.RafterProfile)
	mergeString(&out.BeamProfile, o.BeamProfile)
	mergeString(&out.PurlinProfile, o.PurlinProfile)
	mergeString(&out.RailProfile, o.RailProfile)
	mergeString(&out.BracingProfile, o.BracingProfile)
	mergeString(&out.SteelGrade, o.SteelGrade)
	if o.Gutters != nil {
		out.Gutters = Bool(*o.Gutters)
	}
	if o.Downspouts != nil {
		out.Downspouts = Bool(*o.Downspouts)
	}
	if o.Solar != nil {
		s := *o.Solar
		out.Solar = &s
	}
	if o.Location != nil {
		l := *o.Location
		out.Location = &l
	}
	return out
}

// WithDefaults fills every unset field of p from defaults. Explicit values
// in p always win.
func (p Parameters) WithDefaults(defaults Parameters) Parameters {
	return defaults.Merge(p)
}

// Clone returns a deep copy of p.
func (p Parameters) Clone() Parameters {
	out := p
	if p.Gutters != nil {
		out.Gutters = Bool(*p.Gutters)
	}
	if p.Downspouts != nil {
		out.Downspouts = Bool(*p.Downspouts)
	}
	if p.Solar != nil {
		s := *p.Solar
		out.Solar = &s
	}
	if p.Location != nil {
		l := *p.Location
		out.Location = &l
	}
	return out
}

// Bool returns a pointer to v, for optional flags.
func Bool(v bool) *bool { return &v }

func mergeString(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}

// Wall identifies where an opening is cut
type Wall string

const (
	WallFront Wall = "front" // low eave side, y = 0
	WallBack  Wall = "back"  // high eave side, y = width
	WallLeft  Wall = "left"  // gable, x = 0
	WallRight Wall = "right" // gable, x = length
	WallRoof  Wall = "roof"
)

// Opening is a door, window or skylight deducted from cladding or roofing
type Opening struct {
	ID     string  `json:"id,omitempty" yaml:"id,omitempty"`
	Kind   string  `json:"kind" yaml:"kind"` // door, window, sectional-door, skylight
	Wall   Wall    `json:"wall" yaml:"wall"`
	Width  float64 `json:"width" yaml:"width"`   // mm
	Height float64 `json:"height" yaml:"height"` // mm
	X      float64 `json:"x" yaml:"x"`           // offset along the wall (mm)
	Z      float64 `json:"z" yaml:"z"`           // sill height (mm)
}

// Area returns the opening area in m².
func (o Opening) Area() float64 {
	return o.Width * o.Height / 1e6
}

// Finishes are cladding and colour choices
type Finishes struct {
	RoofCladding string `json:"roof_cladding,omitempty" yaml:"roof_cladding,omitempty"`
	WallCladding string `json:"wall_cladding,omitempty" yaml:"wall_cladding,omitempty"`
	RoofColor    string `json:"roof_color,omitempty" yaml:"roof_color,omitempty"`
	WallColor    string `json:"wall_color,omitempty" yaml:"wall_color,omitempty"`
	TrimColor    string `json:"trim_color,omitempty" yaml:"trim_color,omitempty"`
	Insulated    bool   `json:"insulated,omitempty" yaml:"insulated,omitempty"`
}

// WithDefaults fills unset finish fields from defaults.
func (f Finishes) WithDefaults(defaults Finishes) Finishes {
	mergeString(&defaults.RoofCladding, f.RoofCladding)
	mergeString(&defaults.WallCladding, f.WallCladding)
	mergeString(&defaults.RoofColor, f.RoofColor)
	mergeString(&defaults.WallColor, f.WallColor)
	mergeString(&defaults.TrimColor, f.TrimColor)
	defaults.Insulated = defaults.Insulated || f.Insulated
	return defaults
}

func cloneMetadata(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
