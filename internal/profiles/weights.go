package profiles

import "strings"

// DefaultLinearMass is used for designations missing from the table (kg/m).
// Weight is advisory in this tool, so unknown profiles degrade to a
// conservative value instead of failing.
const DefaultLinearMass = 30.0

// linearMass maps a profile designation to its linear mass in kg/m.
var linearMass = map[string]float64{
	// Hot-rolled I sections (EN 10365)
	"IPE80":  6.0,
	"IPE100": 8.1,
	"IPE120": 10.4,
	"IPE140": 12.9,
	"IPE160": 15.8,
	"IPE180": 18.8,
	"IPE200": 22.4,
	"IPE220": 26.2,
	"IPE240": 30.7,
	"IPE270": 36.1,
	"IPE300": 42.2,
	"IPE330": 49.1,
	"IPE360": 57.1,
	"IPE400": 66.3,
	"IPE450": 77.6,
	"IPE500": 90.7,

	// Wide-flange H sections
	"HEA100": 16.7,
	"HEA120": 19.9,
	"HEA140": 24.7,
	"HEA160": 30.4,
	"HEA180": 35.5,
	"HEA200": 42.3,
	"HEA220": 50.5,
	"HEA240": 60.3,
	"HEA260": 68.2,
	"HEA280": 76.4,
	"HEA300": 88.3,
	"HEB100": 20.4,
	"HEB120": 26.7,
	"HEB140": 33.7,
	"HEB160": 42.6,
	"HEB200": 61.3,

	// Cold-formed light-gauge sections
	"C100":     3.2,
	"C120":     3.9,
	"C140":     4.5,
	"C150":     4.9,
	"C160":     5.2,
	"C180":     5.8,
	"C200":     6.5,
	"C250":     8.2,
	"Z120":     3.8,
	"Z140":     4.4,
	"Z160":     5.1,
	"Z200":     6.3,
	"Z250":     7.9,
	"SIGMA200": 7.2,
	"SIGMA250": 8.6,

	// Hollow sections and bracing
	"RHS100X50X4":   8.6,
	"RHS120X80X5":   14.4,
	"SHS80X80X4":    9.2,
	"SHS100X100X5":  14.4,
	"CHS48.3X3.2":   3.6,
	"CHS60.3X3.2":   4.5,
	"L50X50X5":      3.8,
	"L60X60X6":      5.4,
	"ROUND16":       1.6,
	"ROUND20":       2.5,

	// Solar mounting rails and cable trays
	"RAIL-SOLAR-40": 0.9,
	"RAIL-SOLAR-60": 1.3,
	"TRAY-100":      2.1,
	"TRAY-200":      3.4,
}

// normalize upper-cases a designation and strips blanks so "IPE 200",
// "ipe200" and "IPE200" resolve to the same entry.
func normalize(designation string) string {
	d := strings.ToUpper(strings.TrimSpace(designation))
	return strings.ReplaceAll(d, " ", "")
}

// Lookup returns the linear mass (kg/m) of a profile designation.
func Lookup(designation string) (float64, bool) {
	m, ok := linearMass[normalize(designation)]
	return m, ok
}

// LinearMass returns the linear mass of a designation, or DefaultLinearMass
// when the designation is unknown.
func LinearMass(designation string) float64 {
	if m, ok := Lookup(designation); ok {
		return m
	}
	return DefaultLinearMass
}

// Weight calculates the mass in kg of a member of the given length (mm).
func Weight(designation string, lengthMm float64) float64 {
	return LinearMass(designation) * lengthMm / 1000
}

// Known reports whether the designation is present in the table.
func Known(designation string) bool {
	_, ok := Lookup(designation)
	return ok
}
