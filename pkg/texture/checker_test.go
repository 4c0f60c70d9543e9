package texture

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestGlslMod(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{name: "Positive below divisor", x: 1, y: 2, expected: 1},
		{name: "Positive above divisor", x: 3, y: 2, expected: 1},
		{name: "Exact multiple", x: 4, y: 2, expected: 0},
		{name: "Negative odd", x: -1, y: 2, expected: 1},
		{name: "Negative even", x: -2, y: 2, expected: 0},
		{name: "Negative fractional", x: -0.5, y: 2, expected: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := glslMod(tt.x, tt.y)

			const tolerance = 1e-9
			if diff := result - tt.expected; diff > tolerance || diff < -tolerance {
				t.Errorf("glslMod(%v, %v) = %v, want %v", tt.x, tt.y, result, tt.expected)
			}
		})
	}
}

func TestPlanarChecker_Evaluate(t *testing.T) {
	color1 := mgl64.Vec3{0.8, 0.8, 0.8}
	color2 := mgl64.Vec3{0.3, 0.3, 0.3}
	checker := NewPlanarChecker(color1, color2, 1.5)

	zNormal := mgl64.Vec3{0, 0, 1}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		normal   mgl64.Vec3
		expected mgl64.Vec3
	}{
		{
			name:     "Origin tile",
			point:    mgl64.Vec3{0.1, 0.1, -2},
			normal:   zNormal,
			expected: color1,
		},
		{
			name:     "Adjacent tile alternates",
			point:    mgl64.Vec3{0.8, 0.1, -2},
			normal:   zNormal,
			expected: color2,
		},
		{
			// floor(-0.25*1.5) = -1; a sign-preserving mod would flip this
			// tile to color1.
			name:     "Negative coordinate keeps alternation",
			point:    mgl64.Vec3{0, -0.25, -2},
			normal:   zNormal,
			expected: color2,
		},
		{
			name:     "Pattern repeats after two tiles",
			point:    mgl64.Vec3{0.1 + 4.0/3.0, 0.1, -2},
			normal:   zNormal,
			expected: color1,
		},
		{
			name:     "Pattern repeats on the second axis too",
			point:    mgl64.Vec3{0.1, 0.1 + 4.0/3.0, -2},
			normal:   zNormal,
			expected: color1,
		},
		{
			name:     "Y normal projects onto XZ",
			point:    mgl64.Vec3{0.2, 5, 0.7},
			normal:   mgl64.Vec3{0, 1, 0},
			expected: color2,
		},
		{
			name:     "X normal projects onto YZ",
			point:    mgl64.Vec3{5, 0.2, 0.7},
			normal:   mgl64.Vec3{1, 0, 0},
			expected: color2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checker.Evaluate(tt.point, tt.normal)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSolid_Evaluate(t *testing.T) {
	color := mgl64.Vec3{0.25, 0.5, 0.75}
	solid := NewSolid(color)

	points := []mgl64.Vec3{
		{0, 0, 0},
		{-3, 7, 12},
		{0.001, -0.001, 1e6},
	}
	for _, point := range points {
		if result := solid.Evaluate(point, mgl64.Vec3{0, 1, 0}); result != color {
			t.Errorf("Expected %v at %v, got %v", color, point, result)
		}
	}
}
