package engine

import (
	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/geometry"
	"github.com/alexiusacademia/gosteel/internal/ids"
	"github.com/alexiusacademia/gosteel/internal/profiles"
)

// GeneratePosts places a pair of posts every spacing along length, starting
// at x = 0. The low post stands at y = 0, the high post at y = width.
func GeneratePosts(seq *ids.Sequencer, length, width, heightLow, heightHigh, spacing float64, profile string) []building.StructuralElement {
	stations := geometry.Stations(length, spacing)
	posts := make([]building.StructuralElement, 0, 2*stations)
	for i := 0; i < stations; i++ {
		x := float64(i) * spacing
		posts = append(posts,
			newElement(seq, building.ElementPost, building.RefPost, profile, heightLow, building.Vec3{X: x}, building.Vec3{}),
			newElement(seq, building.ElementPost, building.RefPost, profile, heightHigh, building.Vec3{X: x, Y: width}, building.Vec3{}),
		)
	}
	return posts
}

// CalculateRafterLength returns the inclined length of a rafter over span.
func CalculateRafterLength(span, slopePercent float64) float64 {
	return geometry.RafterLength(span, slopePercent)
}

// CalculateHeightRidge returns the high eave height of a single pitch.
func CalculateHeightRidge(heightWall, span, slopePercent float64) float64 {
	return geometry.RidgeHeight(heightWall, span, slopePercent)
}

// CalculateProfileWeight returns the weight in kg of a member. Unknown
// designations fall back to profiles.DefaultLinearMass.
func CalculateProfileWeight(profile string, lengthMm float64) float64 {
	return profiles.Weight(profile, lengthMm)
}

func newElement(seq *ids.Sequencer, t building.ElementType, prefix, profile string, length float64, pos, rot building.Vec3) building.StructuralElement {
	id, ref := seq.Next(prefix)
	return building.StructuralElement{
		ID:        id,
		Type:      t,
		Profile:   profile,
		Length:    length,
		Position:  pos,
		Rotation:  rot,
		Weight:    CalculateProfileWeight(profile, length),
		Reference: ref,
	}
}
