package eurocode

import (
	"math"
	"strings"
)

// EN 1993-1-1 material constants

const (
	// Modulus of elasticity for structural steel (Section 3.2.6)
	E = 210000.0 // MPa

	// Density of steel
	Density = 7850.0 // kg/m³

	// Partial factors for resistance (Section 6.1)
	GammaM0 = 1.00 // cross-section resistance
	GammaM1 = 1.00 // member buckling
	GammaM2 = 1.25 // net section / connections

	// DefaultGrade is used when a building does not specify a steel grade
	DefaultGrade = "S235"
)

// Grade describes a structural steel grade (EN 10025-2, t ≤ 40 mm)
type Grade struct {
	Name string
	Fy   float64 // yield strength (MPa)
	Fu   float64 // ultimate tensile strength (MPa)
}

// Grades lists the steel grades accepted by the estimator
var Grades = map[string]Grade{
	"S235": {Name: "S235", Fy: 235, Fu: 360},
	"S275": {Name: "S275", Fy: 275, Fu: 430},
	"S355": {Name: "S355", Fy: 355, Fu: 490},
	"S420": {Name: "S420", Fy: 420, Fu: 520},
	"S460": {Name: "S460", Fy: 460, Fu: 540},
}

// LookupGrade resolves a grade by name, ignoring case and surrounding blanks.
func LookupGrade(name string) (Grade, bool) {
	g, ok := Grades[strings.ToUpper(strings.TrimSpace(name))]
	return g, ok
}

// Epsilon returns the material factor ε = √(235/fy) (Table 5.2)
func (g Grade) Epsilon() float64 {
	if g.Fy <= 0 {
		return 0
	}
	return math.Sqrt(235 / g.Fy)
}
