package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/core"
)

// Sphere represents a semi-transparent sphere
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
	Color  mgl64.Vec3
	Alpha  float64
}

// NewSphere creates a new sphere
func NewSphere(center mgl64.Vec3, radius float64, color mgl64.Vec3, alpha float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
		Alpha:  alpha,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (Hit, bool) {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// Prefer the near root. A ray that starts inside the sphere has its near
	// root behind the origin and takes the far root, hitting the inside of
	// the surface on the way out.
	var t float64
	switch {
	case t1 > Epsilon && (t1 < t2 || t2 < Epsilon):
		t = t1
	case t2 > Epsilon:
		t = t2
	default:
		return Hit{}, false
	}

	point := ray.At(t)
	return Hit{
		T:      t,
		Point:  point,
		Normal: point.Sub(s.Center).Normalize(),
		Color:  s.Color,
		Alpha:  s.Alpha,
	}, true
}
