package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemap(t *testing.T) {
	tests := []struct {
		name                            string
		v, inMin, inMax, outMin, outMax float64
		expected                        float64
	}{
		{"midpoint", 5, 0, 10, 0, 100, 50},
		{"lower edge", 0, 0, 10, -1, 1, -1},
		{"upper edge", 10, 0, 10, -1, 1, 1},
		{"outside the input range extrapolates", 20, 0, 10, 0, 1, 2},
		{"inverted output range", 2.5, 0, 10, 10, 0, 7.5},
		{"zero-width input range", 3, 4, 4, 7, 9, 7},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Remap(tt.v, tt.inMin, tt.inMax, tt.outMin, tt.outMax), 1e-9, tt.name)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, 0, Clamp(-3, 0, 5))
	assert.Equal(t, 3, Clamp(3, 0, 5))
	assert.Equal(t, 1.5, Clamp(1.5, 0.0, 2.0))
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 0.0, Lerp(0.0, 10.0, 0.0), 1e-9)
	assert.InDelta(t, 10.0, Lerp(0.0, 10.0, 1.0), 1e-9)
	assert.InDelta(t, 2.5, Lerp(0.0, 10.0, 0.25), 1e-9)
}
