package solar

import "math"

const (
	// MaxSystemVoltage is the DC voltage limit of the string circuit (V)
	MaxSystemVoltage = 1000.0

	// ColdVocFactor raises Voc for the coldest expected cell temperature
	ColdVocFactor = 1.15
)

// PanelsPerString returns how many panels can be wired in series without
// exceeding MaxSystemVoltage at low temperature. A panel without Voc data
// yields a single-panel string so the grouping stays defined.
func PanelsPerString(p PanelSpec) int {
	if p.Voc <= 0 {
		return 1
	}
	n := int(math.Floor(MaxSystemVoltage / (p.Voc * ColdVocFactor)))
	if n < 1 {
		return 1
	}
	return n
}

// InverterCount returns ceil(powerKwc / (ratedKw × dcRatio)). dcRatio is the
// accepted DC/AC oversizing (1.1 = 10 %).
func InverterCount(powerKwc, ratedKw, dcRatio float64) int {
	if powerKwc <= 0 || ratedKw <= 0 {
		return 0
	}
	if dcRatio <= 0 {
		dcRatio = 1
	}
	return int(math.Ceil(powerKwc / (ratedKw * dcRatio)))
}

// AssignStrings sets the string and inverter index on each placed panel.
// Panels are taken in slice order; strings are spread round-robin over the
// inverters.
func AssignStrings(panels []PlacedPanel, perString, inverters int) int {
	if perString < 1 {
		perString = 1
	}
	if inverters < 1 {
		inverters = 1
	}
	count := 0
	for i := range panels {
		s := i / perString
		panels[i].String = s + 1
		panels[i].Inverter = s%inverters + 1
		count = s + 1
	}
	return count
}
