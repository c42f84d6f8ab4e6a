// Package geometry holds the trigonometry shared by the frame engines and
// the calculation strategies. Lengths are in mm, slopes in percent.
package geometry

import "math"

// RafterLength returns the inclined length of a rafter spanning span at
// slopePercent: √(span² + (span·slope/100)²).
func RafterLength(span, slopePercent float64) float64 {
	rise := Rise(span, slopePercent)
	return math.Sqrt(span*span + rise*rise)
}

// RidgeHeight returns the high eave height: heightWall + span·slope/100.
func RidgeHeight(heightWall, span, slopePercent float64) float64 {
	return heightWall + Rise(span, slopePercent)
}

// Rise returns the vertical rise of a roof of the given span.
func Rise(span, slopePercent float64) float64 {
	return span * slopePercent / 100
}

// PitchDegrees returns the roof pitch angle for a slope in percent.
func PitchDegrees(slopePercent float64) float64 {
	return Degrees(math.Atan(slopePercent / 100))
}

// Stations returns floor(length/spacing)+1, the number of members placed
// every spacing from 0. A non-positive or non-finite input yields a single
// station.
func Stations(length, spacing float64) int {
	if !(spacing > 0) || !(length >= 0) || math.IsInf(spacing, 0) || math.IsInf(length, 0) {
		return 1
	}
	return int(math.Floor(length/spacing+1e-9)) + 1
}

// Diagonal returns the length of the diagonal of an a × b rectangle.
func Diagonal(a, b float64) float64 {
	return math.Hypot(a, b)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
