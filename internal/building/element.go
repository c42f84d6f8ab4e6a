package building

// ElementType is the category of a structural member
type ElementType string

const (
	ElementPost      ElementType = "POST"
	ElementRafter    ElementType = "RAFTER"
	ElementPurlin    ElementType = "PURLIN"
	ElementRail      ElementType = "RAIL"
	ElementBeam      ElementType = "BEAM"
	ElementBracing   ElementType = "BRACING"
	ElementSolarRail ElementType = "SOLAR_RAIL"
	ElementCableTray ElementType = "CABLE_TRAY"
)

// Reference prefixes used for human-readable element references
const (
	RefPost      = "POT"
	RefRafter    = "ARB"
	RefPurlin    = "PAN"
	RefRail      = "LIS"
	RefBeam      = "POU"
	RefBracing   = "CTV"
	RefSolarRail = "RS"
	RefCableTray = "CHM"
	RefPanel     = "PV"
	RefInverter  = "OND"
)

// Vec3 is a point or a set of rotations (degrees) in building coordinates:
// x along the length, y across the width, z up. Units are mm.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// StructuralElement is one generated member. Elements are not modified
// after generation.
type StructuralElement struct {
	ID        string      `json:"id"`
	Type      ElementType `json:"type"`
	Profile   string      `json:"profile"`
	Length    float64     `json:"length"` // mm
	Position  Vec3        `json:"position"`
	Rotation  Vec3        `json:"rotation"` // degrees
	Weight    float64     `json:"weight"`   // kg
	Reference string      `json:"reference"`
}

// Inverter is a sized string inverter on a canopy
type Inverter struct {
	ID           string  `json:"id"`
	Reference    string  `json:"reference"`
	RatedPowerKw float64 `json:"rated_power_kw"`
	Strings      int     `json:"strings"`
	Panels       int     `json:"panels"`
	Position     Vec3    `json:"position"`
}

// SumWeight totals the weight of elements.
func SumWeight(elements []StructuralElement) float64 {
	var total float64
	for _, e := range elements {
		total += e.Weight
	}
	return total
}

// SumLength totals the length of elements (mm).
func SumLength(elements []StructuralElement) float64 {
	var total float64
	for _, e := range elements {
		total += e.Length
	}
	return total
}
