package building

import (
	"time"

	"github.com/alexiusacademia/gosteel/internal/solar"
)

// Building is the generated entity. The caller owns it; engines keep no
// reference after returning it.
type Building struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       Type              `json:"type"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Dimensions Dimensions        `json:"dimensions"`
	Parameters Parameters        `json:"parameters"`
	Structure  Structure         `json:"structure"`
	Openings   []Opening         `json:"openings,omitempty"`
	Finishes   Finishes          `json:"finishes"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Clone returns a deep copy of b with the same identity.
func (b *Building) Clone() *Building {
	out := *b
	out.Parameters = b.Parameters.Clone()
	out.Openings = append([]Opening(nil), b.Openings...)
	out.Metadata = cloneMetadata(b.Metadata)
	if b.Structure != nil {
		out.Structure = b.Structure.clone()
	}
	return &out
}

// Structure is the type-specific aggregate of generated members:
// *SlopedStructure or *CanopyStructure.
type Structure interface {
	// Elements returns every structural member in a stable order.
	Elements() []StructuralElement
	// ForEach calls fn with a pointer to every member, in Elements order.
	ForEach(fn func(*StructuralElement))

	clone() Structure
}

// SlopedStructure holds the members of a single-pitch building
type SlopedStructure struct {
	Posts   []StructuralElement `json:"posts"`
	Rafters []StructuralElement `json:"rafters"`
	Purlins []StructuralElement `json:"purlins"`
	Rails   []StructuralElement `json:"rails"`
}

// Elements implements Structure.
func (s *SlopedStructure) Elements() []StructuralElement {
	return concat(s.Posts, s.Rafters, s.Purlins, s.Rails)
}

// ForEach implements Structure.
func (s *SlopedStructure) ForEach(fn func(*StructuralElement)) {
	each(fn, s.Posts, s.Rafters, s.Purlins, s.Rails)
}

func (s *SlopedStructure) clone() Structure {
	return &SlopedStructure{
		Posts:   copyElements(s.Posts),
		Rafters: copyElements(s.Rafters),
		Purlins: copyElements(s.Purlins),
		Rails:   copyElements(s.Rails),
	}
}

// CanopyStructure holds the members and equipment of a solar canopy
type CanopyStructure struct {
	Posts        []StructuralElement `json:"posts"`
	Beams        []StructuralElement `json:"beams"`
	Purlins      []StructuralElement `json:"purlins"`
	Bracing      []StructuralElement `json:"bracing"`
	SolarPanels  []solar.PlacedPanel `json:"solar_panels"`
	SolarFraming []StructuralElement `json:"solar_framing"`
	Inverters    []Inverter          `json:"inverters"`
	CableTrays   []StructuralElement `json:"cable_trays"`
}

// Elements implements Structure. Panels and inverters are equipment and
// are not included.
func (s *CanopyStructure) Elements() []StructuralElement {
	return concat(s.Posts, s.Beams, s.Purlins, s.Bracing, s.SolarFraming, s.CableTrays)
}

// ForEach implements Structure.
func (s *CanopyStructure) ForEach(fn func(*StructuralElement)) {
	each(fn, s.Posts, s.Beams, s.Purlins, s.Bracing, s.SolarFraming, s.CableTrays)
}

func (s *CanopyStructure) clone() Structure {
	return &CanopyStructure{
		Posts:        copyElements(s.Posts),
		Beams:        copyElements(s.Beams),
		Purlins:      copyElements(s.Purlins),
		Bracing:      copyElements(s.Bracing),
		SolarPanels:  append([]solar.PlacedPanel(nil), s.SolarPanels...),
		SolarFraming: copyElements(s.SolarFraming),
		Inverters:    append([]Inverter(nil), s.Inverters...),
		CableTrays:   copyElements(s.CableTrays),
	}
}

func concat(groups ...[]StructuralElement) []StructuralElement {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]StructuralElement, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func each(fn func(*StructuralElement), groups ...[]StructuralElement) {
	for _, g := range groups {
		for i := range g {
			fn(&g[i])
		}
	}
}

func copyElements(in []StructuralElement) []StructuralElement {
	if in == nil {
		return nil
	}
	return append([]StructuralElement(nil), in...)
}
