package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/core"
	"github.com/glasscast/glasscast/pkg/texture"
)

// Plane represents an infinite opaque plane satisfying dot(p, Normal) = D
type Plane struct {
	Normal  mgl64.Vec3      // Unit normal of the plane
	D       float64         // Signed offset along the normal
	Texture texture.Texture // Surface color of the plane
}

// NewPlane creates a new plane, normalizing the normal
func NewPlane(normal mgl64.Vec3, d float64, tex texture.Texture) *Plane {
	return &Plane{
		Normal:  normal.Normalize(),
		D:       d,
		Texture: tex,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (Hit, bool) {
	// A denominator near zero means the ray runs parallel to the plane
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) <= Epsilon {
		return Hit{}, false
	}

	t := (p.D - ray.Origin.Dot(p.Normal)) / denom
	if t <= Epsilon {
		return Hit{}, false
	}

	point := ray.At(t)
	return Hit{
		T:      t,
		Point:  point,
		Normal: p.Normal,
		Color:  p.Texture.Evaluate(point, p.Normal),
		Alpha:  1,
	}, true
}
