package engine

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/ids"
)

// Patch is a partial update of a building. Zero fields are left alone;
// Dimensions and Parameters merge field by field.
type Patch struct {
	Name       string
	Dimensions building.Dimensions
	Parameters *building.Parameters
	Openings   []building.Opening
	Finishes   *building.Finishes
	Metadata   map[string]string
}

func (p Patch) reshapes() bool {
	return p.Dimensions != nil || p.Parameters != nil
}

// Update applies patch to a copy of b and returns it. The structure is
// regenerated when dimensions or parameters change; otherwise only the
// update time moves. b itself is never modified.
func Update(e Engine, b *building.Building, patch Patch) (*building.Building, error) {
	if b.Type != e.Type() {
		return nil, &building.InvalidConfigError{Field: "type", Reason: fmt.Sprintf("%q building given to a %s engine", b.Type, e.Type())}
	}
	out := b.Clone()

	if patch.Name != "" {
		out.Name = patch.Name
	}
	if patch.Dimensions != nil {
		out.Dimensions = building.MergeDimensions(out.Dimensions, patch.Dimensions)
	}
	if patch.Parameters != nil {
		out.Parameters = e.ApplyDefaults(out.Parameters.Merge(*patch.Parameters))
	}
	if patch.Openings != nil {
		out.Openings = append([]building.Opening(nil), patch.Openings...)
	}
	if patch.Finishes != nil {
		out.Finishes = patch.Finishes.WithDefaults(out.Finishes)
	}
	if len(patch.Metadata) > 0 && out.Metadata == nil {
		out.Metadata = make(map[string]string, len(patch.Metadata))
	}
	for k, v := range patch.Metadata {
		out.Metadata[k] = v
	}

	cfg := building.Config{
		Name:       out.Name,
		Type:       out.Type,
		Dimensions: out.Dimensions,
		Parameters: out.Parameters,
		Openings:   out.Openings,
	}
	if err := e.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	if patch.reshapes() {
		if err := e.GenerateStructure(out); err != nil {
			return nil, fmt.Errorf("regenerating %s structure: %w", e.Type(), err)
		}
		if err := e.PostProcess(out); err != nil {
			return nil, fmt.Errorf("post-processing %s building: %w", e.Type(), err)
		}
	}
	out.UpdatedAt = e.Now()

	log := e.Logger()
	log.Debug().Str("id", out.ID).Bool("regenerated", patch.reshapes()).Msg("building updated")
	return out, nil
}

// Clone returns a deep copy of b under a new identity: fresh building,
// element, panel, inverter and opening ids and new timestamps. References
// are kept. A nil gen or clock uses UUIDs and the wall clock.
func Clone(b *building.Building, gen ids.Generator, clock ids.Clock) *building.Building {
	if gen == nil {
		gen = ids.UUIDGenerator{}
	}
	if clock == nil {
		clock = ids.SystemClock
	}
	out := b.Clone()
	out.ID = gen.NewID()
	now := clock()
	out.CreatedAt, out.UpdatedAt = now, now

	for i := range out.Openings {
		out.Openings[i].ID = gen.NewID()
	}
	if out.Structure == nil {
		return out
	}
	out.Structure.ForEach(func(el *building.StructuralElement) {
		el.ID = gen.NewID()
	})
	if cs, ok := out.Structure.(*building.CanopyStructure); ok {
		for i := range cs.SolarPanels {
			cs.SolarPanels[i].ID = gen.NewID()
		}
		for i := range cs.Inverters {
			cs.Inverters[i].ID = gen.NewID()
		}
	}
	return out
}
