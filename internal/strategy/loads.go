package strategy

// Tilt correction breakpoints (degrees)
const (
	snowFlatLimit  = 15.0
	snowSteepLimit = 30.0
	snowFlatFactor = 0.8
)

// SnowFactor returns the snow shape factor for a panel tilted at tilt
// degrees: constant below 15°, linear from 15° to 30°, half of the flat
// value beyond 30°.
func SnowFactor(tilt float64) float64 {
	switch {
	case tilt < snowFlatLimit:
		return snowFlatFactor
	case tilt <= snowSteepLimit:
		t := (tilt - snowFlatLimit) / (snowSteepLimit - snowFlatLimit)
		return snowFlatFactor - t*snowFlatFactor/2
	default:
		return snowFlatFactor / 2
	}
}

// WindFactor returns the wind pressure multiplier 1 + tilt/90.
func WindFactor(tilt float64) float64 {
	return 1 + tilt/90
}
