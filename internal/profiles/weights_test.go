package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		designation string
		want        float64
		found       bool
	}{
		{"IPE200", 22.4, true},
		{"ipe 200", 22.4, true},
		{"  HEA200 ", 42.3, true},
		{"C150", 4.9, true},
		{"sigma250", 8.6, true},
		{"XYZ999", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.designation, func(t *testing.T) {
			got, ok := Lookup(tt.designation)
			assert.Equal(t, tt.found, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestWeightFallsBackToDefault(t *testing.T) {
	assert.InDelta(t, 30.0*6, Weight("UNKNOWN", 6000), 1e-9)
	assert.InDelta(t, 22.4*5, Weight("IPE200", 5000), 1e-9)
	assert.Zero(t, Weight("IPE200", 0))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("z140"))
	assert.False(t, Known("Z141"))
}
