package eurocode

import "math"

// LoadCombination represents an EN 1990 load combination
// Based on EN 1990 Section 6.4.3.2 (ULS) and 6.5.3 (SLS)
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each action
	Permanent float64 // G - self weight and panels
	Snow      float64 // S - snow
	Wind      float64 // W - wind pressure (negative for uplift)
	Imposed   float64 // Q - maintenance imposed load
}

// UltimateCombinations are the fundamental ULS combinations for a light roof
var UltimateCombinations = []LoadCombination{
	{
		ID:          "ULS1",
		Description: "1.35G",
		Permanent:   1.35,
	},
	{
		ID:          "ULS2",
		Description: "1.35G + 1.5S",
		Permanent:   1.35,
		Snow:        1.5,
	},
	{
		ID:          "ULS3",
		Description: "1.35G + 1.5W",
		Permanent:   1.35,
		Wind:        1.5,
	},
	{
		ID:          "ULS4",
		Description: "1.35G + 1.5S + 0.9W",
		Permanent:   1.35,
		Snow:        1.5,
		Wind:        0.9,
	},
	{
		ID:          "ULS5",
		Description: "1.35G + 1.5W + 0.75S",
		Permanent:   1.35,
		Wind:        1.5,
		Snow:        0.75,
	},
	{
		ID:          "ULS6",
		Description: "1.0G - 1.5W (uplift)",
		Permanent:   1.0,
		Wind:        -1.5,
	},
	{
		ID:          "ULS7",
		Description: "1.35G + 1.5Q",
		Permanent:   1.35,
		Imposed:     1.5,
	},
}

// ServiceCombinations are the characteristic SLS combinations
var ServiceCombinations = []LoadCombination{
	{
		ID:          "SLS1",
		Description: "G + S",
		Permanent:   1.0,
		Snow:        1.0,
	},
	{
		ID:          "SLS2",
		Description: "G + W",
		Permanent:   1.0,
		Wind:        1.0,
	},
}

// Loads holds characteristic actions on a surface (kN/m²)
type Loads struct {
	Permanent float64
	Snow      float64
	Wind      float64
	Imposed   float64
}

// Factored calculates the design load for the combination
func (lc LoadCombination) Factored(loads Loads) float64 {
	return lc.Permanent*loads.Permanent +
		lc.Snow*loads.Snow +
		lc.Wind*loads.Wind +
		lc.Imposed*loads.Imposed
}

// GoverningCombination finds the combination with the largest factored load
// magnitude. Uplift combinations govern when their magnitude is larger.
func GoverningCombination(loads Loads, combinations []LoadCombination) (float64, LoadCombination) {
	var governing float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		q := combo.Factored(loads)
		if math.Abs(q) > math.Abs(governing) {
			governing = q
			governingCombo = combo
		}
	}

	return governing, governingCombo
}
