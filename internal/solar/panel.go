package solar

import (
	"fmt"
	"sort"
	"strings"
)

// Orientation of a panel relative to the canopy length axis
type Orientation string

const (
	// Landscape puts the panel long side along the canopy length
	Landscape Orientation = "landscape"
	// Portrait puts the panel long side across the canopy width
	Portrait Orientation = "portrait"
)

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	return o == Landscape || o == Portrait
}

// PanelSpec is a photovoltaic module datasheet
type PanelSpec struct {
	Manufacturer string  `json:"manufacturer" yaml:"manufacturer"`
	Model        string  `json:"model" yaml:"model"`
	PowerWc      float64 `json:"power_wc" yaml:"power_wc"`   // peak power (Wc)
	Length       float64 `json:"length" yaml:"length"`       // long side (mm)
	Width        float64 `json:"width" yaml:"width"`         // short side (mm)
	Thickness    float64 `json:"thickness" yaml:"thickness"` // frame depth (mm)
	Weight       float64 `json:"weight" yaml:"weight"`       // kg
	Efficiency   float64 `json:"efficiency" yaml:"efficiency"`

	// Electrical characteristics at STC
	Voc float64 `json:"voc" yaml:"voc"` // open-circuit voltage (V)
	Vmp float64 `json:"vmp" yaml:"vmp"` // voltage at max power (V)
	Isc float64 `json:"isc" yaml:"isc"` // short-circuit current (A)
	Imp float64 `json:"imp" yaml:"imp"` // current at max power (A)
}

// Area returns the panel surface in m²
func (p PanelSpec) Area() float64 {
	return p.Length * p.Width / 1e6
}

// Footprint returns the plan dimensions (along length, along width) in mm
// for the given orientation.
func (p PanelSpec) Footprint(o Orientation) (float64, float64) {
	if o == Portrait {
		return p.Width, p.Length
	}
	return p.Length, p.Width
}

// Validate checks that the datasheet can be laid out.
func (p PanelSpec) Validate() error {
	if p.Length <= 0 || p.Width <= 0 {
		return fmt.Errorf("invalid panel dimensions: length=%.0f, width=%.0f", p.Length, p.Width)
	}
	if p.PowerWc <= 0 {
		return fmt.Errorf("invalid panel power: %.0f Wc", p.PowerWc)
	}
	return nil
}

// Panels is the built-in module catalogue
var Panels = map[string]PanelSpec{
	"generic-540": {
		Manufacturer: "Generic",
		Model:        "M10-144HC-540",
		PowerWc:      540,
		Length:       2278,
		Width:        1134,
		Thickness:    35,
		Weight:       27.5,
		Efficiency:   0.209,
		Voc:          49.5,
		Vmp:          41.6,
		Isc:          13.85,
		Imp:          12.98,
	},
	"generic-450": {
		Manufacturer: "Generic",
		Model:        "M6-144HC-450",
		PowerWc:      450,
		Length:       2094,
		Width:        1038,
		Thickness:    35,
		Weight:       23.5,
		Efficiency:   0.207,
		Voc:          49.3,
		Vmp:          41.0,
		Isc:          11.6,
		Imp:          10.98,
	},
	"generic-400": {
		Manufacturer: "Generic",
		Model:        "M10-108HC-400",
		PowerWc:      400,
		Length:       1722,
		Width:        1134,
		Thickness:    30,
		Weight:       21.0,
		Efficiency:   0.205,
		Voc:          37.1,
		Vmp:          31.0,
		Isc:          13.7,
		Imp:          12.9,
	},
}

// DefaultPanel is the catalogue key used when an array has no panel
const DefaultPanel = "generic-540"

// LookupPanel resolves a catalogue entry by key.
func LookupPanel(key string) (PanelSpec, error) {
	p, ok := Panels[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return PanelSpec{}, fmt.Errorf("unknown panel %q (available: %s)", key, strings.Join(PanelKeys(), ", "))
	}
	return p, nil
}

// PanelKeys returns the catalogue keys in sorted order.
func PanelKeys() []string {
	keys := make([]string, 0, len(Panels))
	for k := range Panels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
