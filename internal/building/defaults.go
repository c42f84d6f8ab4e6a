package building

// DefaultSlopedParameters is the default table for single-pitch buildings
var DefaultSlopedParameters = Parameters{
	PostSpacing:    5000,
	PurlinSpacing:  1500,
	RailSpacing:    1200,
	PostProfile:    "IPE200",
	RafterProfile:  "IPE220",
	PurlinProfile:  "Z140",
	RailProfile:    "C120",
	BracingProfile: "ROUND16",
	SteelGrade:     "S235",
	Gutters:        Bool(true),
	Downspouts:     Bool(true),
}

// DefaultCanopyParameters is the default table for solar canopies
var DefaultCanopyParameters = Parameters{
	PostSpacing:    7500,
	PurlinSpacing:  2500,
	RailSpacing:    1200,
	PostProfile:    "HEA200",
	BeamProfile:    "IPE300",
	PurlinProfile:  "C150",
	RailProfile:    "RAIL-SOLAR-40",
	BracingProfile: "L60X60X6",
	SteelGrade:     "S235",
	Gutters:        Bool(true),
	Downspouts:     Bool(true),
}

// DefaultFinishes is applied under any finishes given in a config
var DefaultFinishes = Finishes{
	RoofCladding: "steel-deck-40",
	WallCladding: "steel-sheet-30",
	RoofColor:    "RAL 7016",
	WallColor:    "RAL 9002",
	TrimColor:    "RAL 7016",
}

// DefaultParameters returns the default table of building type t.
func DefaultParameters(t Type) Parameters {
	switch t {
	case TypeCanopy:
		return DefaultCanopyParameters.Clone()
	default:
		return DefaultSlopedParameters.Clone()
	}
}
