package solar

// ArrayConfig is the requested photovoltaic array on a canopy. Rows and
// Columns left at zero are resolved by the layout optimizer.
type ArrayConfig struct {
	Panel          PanelSpec   `json:"panel,omitempty" yaml:"panel,omitempty"`
	PanelKey       string      `json:"panel_key,omitempty" yaml:"panel_key,omitempty"`
	MountingSystem string      `json:"mounting_system,omitempty" yaml:"mounting_system,omitempty"`
	Orientation    Orientation `json:"orientation" yaml:"orientation"`
	Rows           int         `json:"rows" yaml:"rows"`
	Columns        int         `json:"columns" yaml:"columns"`
	RowSpacing     float64     `json:"row_spacing" yaml:"row_spacing"`       // mm
	ColumnSpacing  float64     `json:"column_spacing" yaml:"column_spacing"` // mm
	Tilt           float64     `json:"tilt" yaml:"tilt"`                     // degrees
	// Azimuth in degrees from north; nil means DefaultAzimuth, while an
	// explicit 0 faces the array north.
	Azimuth *float64 `json:"azimuth,omitempty" yaml:"azimuth,omitempty"`
}

// DefaultAzimuth faces the array due south.
const DefaultAzimuth = 180.0

// AzimuthDegrees returns the array azimuth, DefaultAzimuth when unset.
func (a ArrayConfig) AzimuthDegrees() float64 {
	if a.Azimuth == nil {
		return DefaultAzimuth
	}
	return *a.Azimuth
}

// TotalPanels returns rows × columns.
func (a ArrayConfig) TotalPanels() int {
	if a.Rows <= 0 || a.Columns <= 0 {
		return 0
	}
	return a.Rows * a.Columns
}

// PowerKwc returns the installed peak power in kWc.
func (a ArrayConfig) PowerKwc() float64 {
	return float64(a.TotalPanels()) * a.Panel.PowerWc / 1000
}

// Resolved reports whether the grid size is known.
func (a ArrayConfig) Resolved() bool {
	return a.TotalPanels() > 0
}

// PlacedPanel is one module positioned on the canopy
type PlacedPanel struct {
	ID        string  `json:"id"`
	Reference string  `json:"reference"`
	Row       int     `json:"row"`
	Column    int     `json:"column"`
	X         float64 `json:"x"` // centre, mm
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Tilt      float64 `json:"tilt"`
	Azimuth   float64 `json:"azimuth"`
	PowerWc   float64 `json:"power_wc"`
	Weight    float64 `json:"weight"`

	// Electrical grouping
	String   int `json:"string"`
	Inverter int `json:"inverter"`
}

// Location holds site data used for yield and climatic load estimates.
type Location struct {
	Name              string  `json:"name" yaml:"name"`
	Latitude          float64 `json:"latitude" yaml:"latitude"`
	Longitude         float64 `json:"longitude" yaml:"longitude"`
	AnnualIrradiation float64 `json:"annual_irradiation" yaml:"annual_irradiation"` // kWh/m²/year on horizontal
	SnowLoad          float64 `json:"snow_load" yaml:"snow_load"`                   // characteristic ground snow (kN/m²)
	WindPressure      float64 `json:"wind_pressure" yaml:"wind_pressure"`           // peak velocity pressure (kN/m²)
}

// DefaultLocation is a mid-latitude European site
var DefaultLocation = Location{
	Name:              "default",
	Latitude:          46.5,
	Longitude:         2.5,
	AnnualIrradiation: 1300,
	SnowLoad:          0.45,
	WindPressure:      0.60,
}

// WithDefaults fills unset site values from DefaultLocation.
func (l Location) WithDefaults() Location {
	if l.AnnualIrradiation <= 0 {
		l.AnnualIrradiation = DefaultLocation.AnnualIrradiation
	}
	if l.SnowLoad <= 0 {
		l.SnowLoad = DefaultLocation.SnowLoad
	}
	if l.WindPressure <= 0 {
		l.WindPressure = DefaultLocation.WindPressure
	}
	if l.Name == "" {
		l.Name = DefaultLocation.Name
	}
	return l
}
