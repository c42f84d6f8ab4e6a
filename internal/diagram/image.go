package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/geometry"
)

// ErrNotSloped is returned when a frame elevation is asked of a building
// without a single-pitch frame.
var ErrNotSloped = errors.New("diagram: frame elevation needs a sloped building")

var memberColors = map[building.ElementType]color.Color{
	building.ElementRafter:    color.RGBA{R: 139, G: 69, B: 19, A: 255},
	building.ElementPurlin:    color.RGBA{R: 0, G: 100, B: 200, A: 255},
	building.ElementRail:      color.RGBA{R: 0, G: 150, B: 150, A: 255},
	building.ElementBeam:      color.RGBA{R: 200, G: 0, B: 0, A: 255},
	building.ElementBracing:   color.RGBA{R: 255, G: 165, B: 0, A: 255},
	building.ElementSolarRail: color.RGBA{R: 120, G: 120, B: 120, A: 255},
	building.ElementCableTray: color.RGBA{R: 0, G: 128, B: 0, A: 255},
}

// Supported image extensions; anything else is saved as PNG.
var imageFormats = map[string]bool{".png": true, ".svg": true, ".pdf": true, ".jpg": true, ".jpeg": true}

// OutputPath returns the file an export to filename writes.
func OutputPath(filename string) string {
	if imageFormats[strings.ToLower(filepath.Ext(filename))] {
		return filename
	}
	return filename + ".png"
}

// planSegment returns the plan projection of a linear member.
func planSegment(e building.StructuralElement) plotter.XYs {
	x0, y0 := e.Position.X, e.Position.Y
	if e.Type == building.ElementRafter {
		// Rafters span the width, inclined by Rotation.X.
		return plotter.XYs{{X: x0, Y: y0}, {X: x0, Y: y0 + e.Length*math.Cos(geometry.Radians(e.Rotation.X))}}
	}
	a := geometry.Radians(e.Rotation.Z)
	return plotter.XYs{{X: x0, Y: y0}, {X: x0 + e.Length*math.Cos(a), Y: y0 + e.Length*math.Sin(a)}}
}

// ExportPlan exports a top view of every member, panel and inverter of b
// to an image file. The format follows the extension of filename.
func ExportPlan(b *building.Building, filename string) error {
	if b == nil || b.Dimensions == nil || b.Structure == nil {
		return errors.New("diagram: building has no structure")
	}
	length, width := b.Dimensions.Footprint()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: plan view", b.Name)
	p.X.Label.Text = "Length (mm)"
	p.Y.Label.Text = "Width (mm)"
	p.Legend.Top = true

	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0}, {X: length, Y: 0}, {X: length, Y: width}, {X: 0, Y: width}, {X: 0, Y: 0},
	})
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(1)
	outline.LineStyle.Color = color.Gray{Y: 128}
	outline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(outline)

	var posts plotter.XYs
	seen := map[building.ElementType]bool{}
	for _, e := range b.Structure.Elements() {
		if e.Type == building.ElementPost {
			posts = append(posts, plotter.XY{X: e.Position.X, Y: e.Position.Y})
			continue
		}
		l, err := plotter.NewLine(planSegment(e))
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1)
		if c, ok := memberColors[e.Type]; ok {
			l.LineStyle.Color = c
		}
		p.Add(l)
		if !seen[e.Type] {
			seen[e.Type] = true
			p.Legend.Add(strings.ToLower(string(e.Type)), l)
		}
	}

	if cs, ok := b.Structure.(*building.CanopyStructure); ok {
		if err := addEquipment(p, cs); err != nil {
			return err
		}
	}

	if len(posts) > 0 {
		sc, err := plotter.NewScatter(posts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Color = color.Black
		p.Add(sc)
		p.Legend.Add("post", sc)
	}

	return save(p, 10*vg.Inch, 6*vg.Inch, filename)
}

func addEquipment(p *plot.Plot, s *building.CanopyStructure) error {
	if len(s.SolarPanels) > 0 {
		pts := make(plotter.XYs, len(s.SolarPanels))
		for i, pv := range s.SolarPanels {
			pts[i] = plotter.XY{X: pv.X, Y: pv.Y}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = draw.SquareGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2)
		sc.GlyphStyle.Color = color.RGBA{R: 25, G: 25, B: 112, A: 255}
		p.Add(sc)
		p.Legend.Add("panel", sc)
	}
	if len(s.Inverters) > 0 {
		pts := make(plotter.XYs, len(s.Inverters))
		for i, inv := range s.Inverters {
			pts[i] = plotter.XY{X: inv.Position.X, Y: inv.Position.Y}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = draw.TriangleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 255, A: 255}
		p.Add(sc)
		p.Legend.Add("inverter", sc)
	}
	return nil
}

// ExportFrameElevation exports the portal frame of a sloped building seen
// along its length, with purlins on the rafter and rails on the long walls.
func ExportFrameElevation(b *building.Building, filename string) error {
	if b == nil {
		return ErrNotSloped
	}
	d, ok := b.Dimensions.(building.SlopedDimensions)
	s, isSloped := b.Structure.(*building.SlopedStructure)
	if !ok || !isSloped {
		return fmt.Errorf("%w, got %s", ErrNotSloped, b.Type)
	}
	high := geometry.RidgeHeight(d.HeightWall, d.Width, d.Slope)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: portal frame", b.Name)
	p.X.Label.Text = "Span (mm)"
	p.Y.Label.Text = "Height (mm)"

	ground, err := plotter.NewLine(plotter.XYs{{X: -0.05 * d.Width, Y: 0}, {X: 1.05 * d.Width, Y: 0}})
	if err != nil {
		return err
	}
	ground.LineStyle.Color = color.Gray{Y: 128}
	ground.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(ground)

	frame, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0}, {X: 0, Y: d.HeightWall}, {X: d.Width, Y: high}, {X: d.Width, Y: 0},
	})
	if err != nil {
		return err
	}
	frame.LineStyle.Width = vg.Points(3)
	frame.LineStyle.Color = memberColors[building.ElementRafter]
	p.Add(frame)
	p.Legend.Add("frame", frame)

	if len(s.Purlins) > 0 {
		pts := make(plotter.XYs, len(s.Purlins))
		for i, e := range s.Purlins {
			pts[i] = plotter.XY{X: e.Position.Y, Y: e.Position.Z}
		}
		if err := addMarks(p, "purlin", pts, draw.SquareGlyph{}, memberColors[building.ElementPurlin]); err != nil {
			return err
		}
	}

	var rails plotter.XYs
	for _, e := range s.Rails {
		// Gable rails run across the section and do not show as points.
		if e.Rotation.Z == 0 {
			rails = append(rails, plotter.XY{X: e.Position.Y, Y: e.Position.Z})
		}
	}
	if len(rails) > 0 {
		if err := addMarks(p, "rail", rails, draw.CircleGlyph{}, memberColors[building.ElementRail]); err != nil {
			return err
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: 0, Y: d.HeightWall},
			{X: d.Width, Y: high},
			{X: d.Width / 2, Y: (d.HeightWall + high) / 2},
		},
		Labels: []string{
			fmt.Sprintf("h=%.0fmm", d.HeightWall),
			fmt.Sprintf("h=%.0fmm", high),
			fmt.Sprintf("%.1f%%", d.Slope),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

func addMarks(p *plot.Plot, name string, pts plotter.XYs, shape draw.GlyphDrawer, c color.Color) error {
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Shape = shape
	sc.GlyphStyle.Radius = vg.Points(3)
	sc.GlyphStyle.Color = c
	p.Add(sc)
	p.Legend.Add(name, sc)
	return nil
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("diagram: %w", err)
		}
	}
	return p.Save(width, height, OutputPath(filename))
}
