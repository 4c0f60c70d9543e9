package texture

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlanarChecker provides a checkerboard pattern projected onto the dominant
// plane of the surface normal. Each tile spans 1/Scale world units.
type PlanarChecker struct {
	Color1 mgl64.Vec3 // Color of the tile containing the origin
	Color2 mgl64.Vec3
	Scale  float64
}

// NewPlanarChecker creates a new checkerboard texture
func NewPlanarChecker(color1, color2 mgl64.Vec3, scale float64) *PlanarChecker {
	return &PlanarChecker{
		Color1: color1,
		Color2: color2,
		Scale:  scale,
	}
}

// Evaluate returns the checker color at a world-space point
func (c *PlanarChecker) Evaluate(point, normal mgl64.Vec3) mgl64.Vec3 {
	u, v := projectToPlane(point, normal)
	pattern := glslMod(math.Floor(u*c.Scale)+math.Floor(v*c.Scale), 2)
	if pattern < 0.5 {
		return c.Color1
	}
	return c.Color2
}

// projectToPlane returns the two coordinates of point spanning the plane
// perpendicular to the dominant component of the normal
func projectToPlane(point, normal mgl64.Vec3) (float64, float64) {
	switch {
	case math.Abs(normal.Z()) > 0.99:
		return point.X(), point.Y()
	case math.Abs(normal.Y()) > 0.99:
		return point.X(), point.Z()
	default:
		return point.Y(), point.Z()
	}
}

// glslMod is the GLSL mod(): x - y*floor(x/y). Unlike math.Mod it is
// non-negative for positive y, which keeps the checker pattern continuous
// across negative coordinates.
func glslMod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}
