package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gosteel/internal/building"
)

const (
	planCols    = 60
	planMinRows = 5
	planMaxRows = 24

	markPost  = '●'
	markPanel = '▒'
	markBeam  = '─'
)

// planGrid maps building plan coordinates (mm) onto a character grid.
// Terminal cells are roughly twice as tall as wide, so rows are halved.
type planGrid struct {
	length, width float64
	rows, cols    int
	cells         [][]rune
}

func newPlanGrid(length, width float64) *planGrid {
	rows := planMinRows
	if length > 0 {
		rows = int(math.Round(float64(planCols) * width / length / 2))
	}
	rows = min(max(rows, planMinRows), planMaxRows)

	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", planCols))
	}
	return &planGrid{length: length, width: width, rows: rows, cols: planCols, cells: cells}
}

// cell returns the grid cell of a plan point, clamped to the grid.
func (g *planGrid) cell(x, y float64) (row, col int) {
	if g.length > 0 {
		col = int(x / g.length * float64(g.cols-1))
	}
	if g.width > 0 {
		row = int(y / g.width * float64(g.rows-1))
	}
	return min(max(row, 0), g.rows-1), min(max(col, 0), g.cols-1)
}

func (g *planGrid) mark(x, y float64, r rune) {
	row, col := g.cell(x, y)
	g.cells[row][col] = r
}

// hline draws from x0 to x1 at y, leaving posts in place.
func (g *planGrid) hline(x0, x1, y float64) {
	row, c0 := g.cell(x0, y)
	_, c1 := g.cell(x1, y)
	for c := c0; c <= c1; c++ {
		if g.cells[row][c] == ' ' {
			g.cells[row][c] = markBeam
		}
	}
}

// DrawPlanView returns a top view of the building footprint: posts, and on
// canopies the longitudinal beams and the solar panels. The y axis points
// down the page.
func DrawPlanView(b *building.Building) string {
	var sb strings.Builder
	if b == nil || b.Dimensions == nil || b.Structure == nil {
		return "  (no structure)\n"
	}

	length, width := b.Dimensions.Footprint()
	g := newPlanGrid(length, width)

	switch s := b.Structure.(type) {
	case *building.CanopyStructure:
		for _, beam := range s.Beams {
			if beam.Rotation.Z == 0 {
				g.hline(beam.Position.X, beam.Position.X+beam.Length, beam.Position.Y)
			}
		}
		for _, p := range s.SolarPanels {
			g.mark(p.X, p.Y, markPanel)
		}
		for _, p := range s.Posts {
			g.mark(p.Position.X, p.Position.Y, markPost)
		}
	case *building.SlopedStructure:
		for _, p := range s.Posts {
			g.mark(p.Position.X, p.Position.Y, markPost)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  PLAN VIEW: %s (%s)\n", b.Name, b.Type))
	sb.WriteString(fmt.Sprintf("  %.0f × %.0f mm\n", length, width))
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", g.cols)))
	for _, row := range g.cells {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", g.cols)))

	sb.WriteString("\n  Legend:\n")
	sb.WriteString(fmt.Sprintf("  %c = Post\n", markPost))
	if _, ok := b.Structure.(*building.CanopyStructure); ok {
		sb.WriteString(fmt.Sprintf("  %c = Beam\n", markBeam))
		sb.WriteString(fmt.Sprintf("  %c = Solar panel\n", markPanel))
	}
	return sb.String()
}

// BuildingSummary returns the lines DrawSummaryBox shows for b.
func BuildingSummary(b *building.Building) []string {
	lines := []string{
		fmt.Sprintf("ID:        %s", b.ID),
		fmt.Sprintf("Type:      %s", b.Type),
	}
	if b.Dimensions != nil {
		length, width := b.Dimensions.Footprint()
		lines = append(lines, fmt.Sprintf("Footprint: %.0f × %.0f mm", length, width))
	}
	if b.Structure == nil {
		return lines
	}
	elements := b.Structure.Elements()
	lines = append(lines,
		fmt.Sprintf("Members:   %d", len(elements)),
		fmt.Sprintf("Steel:     %.1f kg", building.SumWeight(elements)),
	)
	if s, ok := b.Structure.(*building.CanopyStructure); ok {
		lines = append(lines,
			fmt.Sprintf("Panels:    %d", len(s.SolarPanels)),
			fmt.Sprintf("Inverters: %d", len(s.Inverters)),
		)
	}
	return lines
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	width += 4

	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, width-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, width-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes; %-*s counts bytes.
func pad(s string, n int) string {
	return s + strings.Repeat(" ", max(n-utf8.RuneCountInString(s), 0))
}
