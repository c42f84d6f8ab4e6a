package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/config"
)

// resetFlags restores every flag to its default; cobra keeps parsed values
// in the package variables between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		// nil would make cobra fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

type jsonReport struct {
	Building struct {
		Name       string         `json:"name"`
		Type       string         `json:"type"`
		Dimensions map[string]any `json:"dimensions"`
	} `json:"building"`
	Validation struct {
		IsValid bool `json:"is_valid"`
	} `json:"validation"`
	Frame *struct {
		PostCount    int `json:"post_count"`
		PostElements int `json:"post_elements"`
	} `json:"frame"`
	Solar *struct {
		TotalPanels int `json:"total_panels"`
	} `json:"solar"`
}

func decodeReport(t *testing.T, out string) jsonReport {
	t.Helper()
	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep), out)
	return rep
}

func TestRootBanner(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Go Steel Building Estimator")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gosteel v")
}

func TestTypes(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	for _, s := range []string{"canopy", "ombriere", "sloped", "monopente"} {
		assert.Contains(t, out, s)
	}
}

func TestSlopedText(t *testing.T) {
	out, err := execute(t, "sloped", "-l", "20000", "-w", "12000", "--height", "6000", "--plan")
	require.NoError(t, err)

	assert.Contains(t, out, "SLOPED BUILDING: Sloped building")
	assert.Contains(t, out, "5 (10 posts)")
	assert.Contains(t, out, "Ridge height:")
	assert.Contains(t, out, "✓ Dimensions within the strategy limits")
	assert.Contains(t, out, "PLAN VIEW")
}

func TestSlopedJSON(t *testing.T) {
	out, err := execute(t, "sloped", "-l", "20000", "-w", "12000", "--height", "6000", "--json")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, "sloped", rep.Building.Type)
	assert.True(t, rep.Validation.IsValid)
	require.NotNil(t, rep.Frame)
	assert.Equal(t, 5, rep.Frame.PostCount)
	assert.Equal(t, 10, rep.Frame.PostElements)
	assert.Nil(t, rep.Solar)
}

func TestSlopedOutOfRange(t *testing.T) {
	out, err := execute(t, "sloped", "-l", "2000", "-w", "12000", "--height", "6000")
	require.NoError(t, err)
	assert.Contains(t, out, "✗ Dimensions outside the strategy limits")
	assert.NotContains(t, out, "FRAME:")
}

func TestSlopedRequiresDimensions(t *testing.T) {
	_, err := execute(t, "sloped", "-l", "20000")
	assert.Error(t, err)
}

func TestSlopedExportsDrawings(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, "plan.svg")
	frame := filepath.Join(dir, "frame")

	out, err := execute(t, "sloped", "-l", "20000", "-w", "12000", "--height", "6000", "-o", plan, "--frame", frame)
	require.NoError(t, err)

	assert.Contains(t, out, "plan drawing saved to: "+plan)
	assert.Contains(t, out, "frame drawing saved to: "+frame+".png")
	assert.FileExists(t, plan)
	assert.FileExists(t, frame+".png")
}

func TestCanopy(t *testing.T) {
	out, err := execute(t, "canopy", "-l", "50000", "-w", "20000", "--rows", "4", "--columns", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "CANOPY BUILDING: Solar canopy")
	assert.Contains(t, out, "SOLAR:")
	assert.Contains(t, out, "Parking spaces:")

	out, err = execute(t, "canopy", "-l", "50000", "-w", "20000", "--rows", "4", "--columns", "20", "--json")
	require.NoError(t, err)
	rep := decodeReport(t, out)
	require.NotNil(t, rep.Solar)
	assert.Equal(t, 80, rep.Solar.TotalPanels)
}

func TestCanopyFrameDrawingNeedsSlopedBuilding(t *testing.T) {
	_, err := execute(t, "canopy", "-l", "50000", "-w", "20000", "--frame", filepath.Join(t.TempDir(), "f.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exporting frame")
}

func TestCreateFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Hangar
dimensions:
  length: 20000
  width: 12000
  height_wall: 6000
  slope: 10
`), 0o644))

	out, err := execute(t, "create", "-c", path, "--json")
	require.NoError(t, err)
	rep := decodeReport(t, out)
	assert.Equal(t, "Hangar", rep.Building.Name)
	assert.Equal(t, "sloped", rep.Building.Type)

	_, err = execute(t, "create", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCreateRejectsNonFiniteConfig(t *testing.T) {
	tests := map[string]string{
		"nan length":       "name: Hangar\ntype: sloped\ndimensions:\n  length: .nan\n  width: 12000\n  height_wall: 6000\n",
		"infinite length":  "name: Canopy\ntype: canopy\ndimensions:\n  length: .inf\n  width: 20000\n  clear_height: 2500\n",
		"negative spacing": "name: Hangar\ntype: sloped\ndimensions:\n  length: 20000\n  width: 12000\n  height_wall: 6000\nparameters:\n  post_spacing: -5000\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

			var err error
			require.NotPanics(t, func() { _, err = execute(t, "create", "-c", path) })
			var cfgErr *building.InvalidConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestTemplateList(t *testing.T) {
	out, err := execute(t, "template", "list")
	require.NoError(t, err)
	for _, name := range []string{"small", "medium", "large", "canopy-small", "canopy-large"} {
		assert.Contains(t, out, name)
	}
}

func TestTemplateShow(t *testing.T) {
	out, err := execute(t, "template", "show", "small")
	require.NoError(t, err)
	assert.Contains(t, out, "# small:")
	assert.Contains(t, out, "height_wall: 4000")

	_, err = execute(t, "template", "show", "cathedral")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTemplateCreateWithOverrides(t *testing.T) {
	dir := t.TempDir()
	overrides := filepath.Join(dir, "longer.yaml")
	saved := filepath.Join(dir, "out", "workshop.yaml")
	require.NoError(t, os.WriteFile(overrides, []byte("dimensions:\n  length: 30000\n"), 0o644))

	out, err := execute(t, "template", "create", "medium", "--overrides", overrides, "-n", "Workshop 2", "--save", saved, "--json")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, "Workshop 2", rep.Building.Name)
	assert.Equal(t, 30000.0, rep.Building.Dimensions["length"])
	assert.Equal(t, 15000.0, rep.Building.Dimensions["width"])

	cfg, err := config.Load(saved)
	require.NoError(t, err)
	assert.Equal(t, "Workshop 2", cfg.Name)
	assert.Equal(t, 30000.0, cfg.Dimensions.(building.SlopedDimensions).Length)
}

func TestLayout(t *testing.T) {
	out, err := execute(t, "layout", "-l", "50000", "-w", "20000", "--json")
	require.NoError(t, err)

	var res struct {
		TotalPanels int     `json:"total_panels"`
		PowerKwc    float64 `json:"power_kwc"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Positive(t, res.TotalPanels)
	assert.InDelta(t, float64(res.TotalPanels)*0.54, res.PowerKwc, 1e-9)

	out, err = execute(t, "layout", "-l", "50000", "-w", "20000", "--objective", "coverage")
	require.NoError(t, err)
	assert.Contains(t, out, "SOLAR PANEL LAYOUT")

	_, err = execute(t, "layout", "-l", "50000", "-w", "20000", "--objective", "beauty")
	assert.ErrorContains(t, err, "unknown objective")
	_, err = execute(t, "layout", "-l", "50000", "-w", "20000", "--panel", "nope")
	assert.Error(t, err)
}

func TestLoads(t *testing.T) {
	out, err := execute(t, "loads", "-g", "0.25", "-s", "0.45", "--json")
	require.NoError(t, err)

	var res struct {
		LimitState  string  `json:"limit_state"`
		DesignLoad  float64 `json:"design_load"`
		Combination string  `json:"combination"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "ULS", res.LimitState)
	assert.Equal(t, "ULS2", res.Combination)
	assert.InDelta(t, 1.0125, res.DesignLoad, 1e-9)

	out, err = execute(t, "loads", "-g", "0.25", "-s", "0.45", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "← GOVERNS")

	_, err = execute(t, "loads")
	assert.Error(t, err)
}
