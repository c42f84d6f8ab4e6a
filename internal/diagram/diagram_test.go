package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/factory"
)

func fromTemplate(t *testing.T, name string) *building.Building {
	t.Helper()
	b, err := factory.Default().CreateFromTemplate(name, building.Config{})
	require.NoError(t, err)
	return b
}

func TestDrawPlanViewSloped(t *testing.T) {
	b := fromTemplate(t, "small")
	out := DrawPlanView(b)

	assert.Contains(t, out, "PLAN VIEW: Small shed (sloped)")
	assert.Contains(t, out, "12000 × 8000 mm")
	posts := b.Structure.(*building.SlopedStructure).Posts
	// One mark per post plus the legend.
	assert.Equal(t, len(posts)+1, strings.Count(out, string(markPost)))
	assert.NotContains(t, out, "Solar panel")
}

func TestDrawPlanViewCanopy(t *testing.T) {
	out := DrawPlanView(fromTemplate(t, "canopy-small"))

	assert.Contains(t, out, string(markPanel))
	assert.Contains(t, out, "Solar panel")
	assert.Contains(t, out, "Beam")
}

func TestDrawPlanViewWithoutStructure(t *testing.T) {
	assert.Contains(t, DrawPlanView(nil), "no structure")
	assert.Contains(t, DrawPlanView(&building.Building{Name: "x"}), "no structure")
}

func TestPlanGridIsClamped(t *testing.T) {
	g := newPlanGrid(10000, 100000)
	assert.Equal(t, planMaxRows, g.rows)

	row, col := g.cell(-500, 200000)
	assert.Equal(t, planMaxRows-1, row)
	assert.Equal(t, 0, col)

	g = newPlanGrid(100000, 1000)
	assert.Equal(t, planMinRows, g.rows)
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("Canopy", []string{"Area: 40 m²", "Panels: 80"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
	assert.Contains(t, out, "Area: 40 m²")
}

func TestBuildingSummary(t *testing.T) {
	lines := BuildingSummary(fromTemplate(t, "canopy-large"))
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "Type:      canopy")
	assert.Contains(t, joined, "Footprint: 60000 × 20000 mm")
	assert.Contains(t, joined, "Panels:    96")
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"plan.png":  "plan.png",
		"plan.SVG":  "plan.SVG",
		"plan.pdf":  "plan.pdf",
		"plan":      "plan.png",
		"plan.tiff": "plan.tiff.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, OutputPath(in), in)
	}
}

func TestExportPlan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"medium", "canopy-small"} {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(dir, "out", name)
			require.NoError(t, ExportPlan(fromTemplate(t, name), file))

			info, err := os.Stat(file + ".png")
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}

	assert.Error(t, ExportPlan(&building.Building{}, filepath.Join(dir, "empty.png")))
}

func TestExportFrameElevation(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "frame.svg")

	require.NoError(t, ExportFrameElevation(fromTemplate(t, "large"), file))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	err = ExportFrameElevation(fromTemplate(t, "canopy-small"), filepath.Join(dir, "canopy.svg"))
	assert.ErrorIs(t, err, ErrNotSloped)
	assert.Contains(t, err.Error(), "canopy")
	assert.ErrorIs(t, ExportFrameElevation(nil, file), ErrNotSloped)
}

func TestPlanSegment(t *testing.T) {
	beam := building.StructuralElement{Type: building.ElementBeam, Length: 5000, Position: building.Vec3{X: 1000, Y: 200}, Rotation: building.Vec3{Z: 90}}
	seg := planSegment(beam)
	assert.InDelta(t, 1000, seg[1].X, 1e-9)
	assert.InDelta(t, 5200, seg[1].Y, 1e-9)

	rafter := building.StructuralElement{Type: building.ElementRafter, Length: 1000, Rotation: building.Vec3{X: 60}}
	seg = planSegment(rafter)
	assert.InDelta(t, 0, seg[1].X, 1e-9)
	assert.InDelta(t, 500, seg[1].Y, 1e-9)
}
