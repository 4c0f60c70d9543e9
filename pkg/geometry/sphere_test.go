package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/core"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(mgl64.Vec3{0, 0, 0}, 1.0, mgl64.Vec3{1, 0, 0}, 0.5)

	tests := []struct {
		name       string
		ray        core.Ray
		wantHit    bool
		wantT      float64
		wantPoint  mgl64.Vec3
		wantNormal mgl64.Vec3
	}{
		{
			name:       "Direct hit from outside",
			ray:        core.Ray{Origin: mgl64.Vec3{0, 0, 5}, Direction: mgl64.Vec3{0, 0, -1}},
			wantHit:    true,
			wantT:      4,
			wantPoint:  mgl64.Vec3{0, 0, 1},
			wantNormal: mgl64.Vec3{0, 0, 1},
		},
		{
			name:    "Miss to the side",
			ray:     core.Ray{Origin: mgl64.Vec3{0, 3, 5}, Direction: mgl64.Vec3{0, 0, -1}},
			wantHit: false,
		},
		{
			name:    "Sphere behind the origin",
			ray:     core.Ray{Origin: mgl64.Vec3{0, 0, 5}, Direction: mgl64.Vec3{0, 0, 1}},
			wantHit: false,
		},
		{
			// The near root is behind the origin, so the ray exits through
			// the far side and the outward normal faces along the ray.
			name:       "Origin inside sphere exits through far root",
			ray:        core.Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, -1}},
			wantHit:    true,
			wantT:      1,
			wantPoint:  mgl64.Vec3{0, 0, -1},
			wantNormal: mgl64.Vec3{0, 0, -1},
		},
		{
			// A near root at t=0 is within Epsilon and is skipped in favor
			// of the far root, as happens to rays restarted on the surface.
			name:       "Origin on surface skips the near root",
			ray:        core.Ray{Origin: mgl64.Vec3{0, 0, 1}, Direction: mgl64.Vec3{0, 0, -1}},
			wantHit:    true,
			wantT:      2,
			wantPoint:  mgl64.Vec3{0, 0, -1},
			wantNormal: mgl64.Vec3{0, 0, -1},
		},
		{
			name:       "Tangent ray grazes the surface",
			ray:        core.Ray{Origin: mgl64.Vec3{1, 0, 5}, Direction: mgl64.Vec3{0, 0, -1}},
			wantHit:    true,
			wantT:      5,
			wantPoint:  mgl64.Vec3{1, 0, 0},
			wantNormal: mgl64.Vec3{1, 0, 0},
		},
		{
			// The parameter scales with the direction length.
			name:       "Unnormalized direction",
			ray:        core.Ray{Origin: mgl64.Vec3{0, 0, 5}, Direction: mgl64.Vec3{0, 0, -2}},
			wantHit:    true,
			wantT:      2,
			wantPoint:  mgl64.Vec3{0, 0, 1},
			wantNormal: mgl64.Vec3{0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, got := sphere.Hit(tt.ray)
			if got != tt.wantHit {
				t.Fatalf("Hit returned %v, want %v", got, tt.wantHit)
			}
			if !got {
				return
			}

			const tolerance = 1e-9
			if diff := hit.T - tt.wantT; diff > tolerance || diff < -tolerance {
				t.Errorf("T = %v, want %v", hit.T, tt.wantT)
			}
			if hit.Point.Sub(tt.wantPoint).Len() > tolerance {
				t.Errorf("Point = %v, want %v", hit.Point, tt.wantPoint)
			}
			if hit.Normal.Sub(tt.wantNormal).Len() > tolerance {
				t.Errorf("Normal = %v, want %v", hit.Normal, tt.wantNormal)
			}
			if hit.Color != sphere.Color {
				t.Errorf("Color = %v, want %v", hit.Color, sphere.Color)
			}
			if hit.Alpha != sphere.Alpha {
				t.Errorf("Alpha = %v, want %v", hit.Alpha, sphere.Alpha)
			}
		})
	}
}
