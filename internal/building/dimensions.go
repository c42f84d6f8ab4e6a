package building

import "math"

// Dimensions is the closed set of per-type dimension variants:
// SlopedDimensions and CanopyDimensions. All lengths are in mm.
type Dimensions interface {
	// BuildingType returns the building type the variant belongs to.
	BuildingType() Type
	// Check verifies the non-negotiable invariants (positive lengths).
	// Range checks belong to the calculation strategies.
	Check() error
	// Footprint returns plan length and width.
	Footprint() (length, width float64)

	isDimensions()
}

// SlopedDimensions describes a single-pitch (monopente) building
type SlopedDimensions struct {
	Length     float64 `json:"length" yaml:"length"`
	Width      float64 `json:"width" yaml:"width"`             // span
	HeightWall float64 `json:"height_wall" yaml:"height_wall"` // eave height, low side
	Slope      float64 `json:"slope" yaml:"slope"`             // percent
}

// BuildingType implements Dimensions.
func (SlopedDimensions) BuildingType() Type { return TypeSloped }

// Footprint implements Dimensions.
func (d SlopedDimensions) Footprint() (float64, float64) { return d.Length, d.Width }

// Check implements Dimensions.
func (d SlopedDimensions) Check() error {
	return firstError(
		positive("dimensions.length", d.Length),
		positive("dimensions.width", d.Width),
		positive("dimensions.height_wall", d.HeightWall),
		finite("dimensions.slope", d.Slope),
	)
}

// Merge returns d with every non-zero field of o applied on top.
func (d SlopedDimensions) Merge(o SlopedDimensions) SlopedDimensions {
	if o.Length != 0 {
		d.Length = o.Length
	}
	if o.Width != 0 {
		d.Width = o.Width
	}
	if o.HeightWall != 0 {
		d.HeightWall = o.HeightWall
	}
	if o.Slope != 0 {
		d.Slope = o.Slope
	}
	return d
}

func (SlopedDimensions) isDimensions() {}

// CanopyDimensions describes a flat photovoltaic parking canopy (ombrière)
type CanopyDimensions struct {
	Length      float64 `json:"length" yaml:"length"`
	Width       float64 `json:"width" yaml:"width"`
	ClearHeight float64 `json:"clear_height" yaml:"clear_height"` // under beams
	Tilt        float64 `json:"tilt" yaml:"tilt"`                 // panel tilt, degrees
	Slope       float64 `json:"slope" yaml:"slope"`               // always 0 for flat canopies

	// Parking layout
	ParkingSpaceLength float64 `json:"parking_space_length" yaml:"parking_space_length"`
	ParkingSpaceWidth  float64 `json:"parking_space_width" yaml:"parking_space_width"`
	ParkingSpaces      int     `json:"parking_spaces" yaml:"parking_spaces"` // requested count, 0 = none
}

// Default parking space size (mm)
const (
	DefaultParkingSpaceLength = 5000.0
	DefaultParkingSpaceWidth  = 2500.0
)

// BuildingType implements Dimensions.
func (CanopyDimensions) BuildingType() Type { return TypeCanopy }

// Footprint implements Dimensions.
func (d CanopyDimensions) Footprint() (float64, float64) { return d.Length, d.Width }

// Check implements Dimensions.
func (d CanopyDimensions) Check() error {
	return firstError(
		positive("dimensions.length", d.Length),
		positive("dimensions.width", d.Width),
		positive("dimensions.clear_height", d.ClearHeight),
		finite("dimensions.tilt", d.Tilt),
		finite("dimensions.slope", d.Slope),
		finite("dimensions.parking_space_length", d.ParkingSpaceLength),
		finite("dimensions.parking_space_width", d.ParkingSpaceWidth),
	)
}

// ParkingSpaceSize returns the parking space length and width, falling back
// to the defaults for unset values.
func (d CanopyDimensions) ParkingSpaceSize() (float64, float64) {
	l, w := d.ParkingSpaceLength, d.ParkingSpaceWidth
	if l <= 0 {
		l = DefaultParkingSpaceLength
	}
	if w <= 0 {
		w = DefaultParkingSpaceWidth
	}
	return l, w
}

// Merge returns d with every non-zero field of o applied on top.
func (d CanopyDimensions) Merge(o CanopyDimensions) CanopyDimensions {
	if o.Length != 0 {
		d.Length = o.Length
	}
	if o.Width != 0 {
		d.Width = o.Width
	}
	if o.ClearHeight != 0 {
		d.ClearHeight = o.ClearHeight
	}
	if o.Tilt != 0 {
		d.Tilt = o.Tilt
	}
	if o.Slope != 0 {
		d.Slope = o.Slope
	}
	if o.ParkingSpaceLength != 0 {
		d.ParkingSpaceLength = o.ParkingSpaceLength
	}
	if o.ParkingSpaceWidth != 0 {
		d.ParkingSpaceWidth = o.ParkingSpaceWidth
	}
	if o.ParkingSpaces != 0 {
		d.ParkingSpaces = o.ParkingSpaces
	}
	return d
}

func (CanopyDimensions) isDimensions() {}

// MergeDimensions merges override onto base field by field when both are
// the same variant. A nil override keeps base; a different variant
// replaces base entirely.
func MergeDimensions(base, override Dimensions) Dimensions {
	if override == nil {
		return base
	}
	switch b := base.(type) {
	case SlopedDimensions:
		if o, ok := override.(SlopedDimensions); ok {
			return b.Merge(o)
		}
	case CanopyDimensions:
		if o, ok := override.(CanopyDimensions); ok {
			return b.Merge(o)
		}
	}
	return override
}

// positive rejects v unless it is a finite number greater than 0. NaN fails
// every comparison, so the test is written to let it through to the error.
func positive(field string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return &InvalidConfigError{Field: field, Reason: "must be a finite number greater than 0"}
	}
	return nil
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidConfigError{Field: field, Reason: "must be a finite number"}
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
