package intersect

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testEpsilon = 1e-9

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		v              mgl64.Vec2
		expected       mgl64.Vec2
		expectedLength float64
	}{
		{
			name:           "unit vector stays put",
			v:              mgl64.Vec2{1, 0},
			expected:       mgl64.Vec2{1, 0},
			expectedLength: 1,
		},
		{
			name:           "axis-aligned",
			v:              mgl64.Vec2{0, 5},
			expected:       mgl64.Vec2{0, 1},
			expectedLength: 5,
		},
		{
			name:           "3-4-5 triangle",
			v:              mgl64.Vec2{3, 4},
			expected:       mgl64.Vec2{0.6, 0.8},
			expectedLength: 5,
		},
		{
			name:           "negative components",
			v:              mgl64.Vec2{-2, 0},
			expected:       mgl64.Vec2{-1, 0},
			expectedLength: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, length := Normalize(tt.v)
			if !unit.ApproxEqualThreshold(tt.expected, testEpsilon) {
				t.Errorf("Expected unit vector %v, got %v", tt.expected, unit)
			}
			if !mgl64.FloatEqualThreshold(length, tt.expectedLength, testEpsilon) {
				t.Errorf("Expected length %v, got %v", tt.expectedLength, length)
			}
		})
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	unit, length := Normalize(mgl64.Vec2{0, 0})

	if length != 0 {
		t.Errorf("Expected length 0 for zero vector, got %v", length)
	}
	// The zero vector must come back untouched, not as NaN components
	if unit.X() != 0 || unit.Y() != 0 {
		t.Errorf("Expected zero vector to stay (0,0), got %v", unit)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"negative", -5, -1},
		{"small negative", -1e-12, -1},
		{"zero maps to +1", 0, 1},
		{"positive", 3, 1},
		{"positive infinity", math.Inf(1), 1},
		{"negative infinity", math.Inf(-1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sign(tt.v); got != tt.expected {
				t.Errorf("Expected sign(%v) = %v, got %v", tt.v, tt.expected, got)
			}
		})
	}
}
