// Package geometry provides analytic ray intersection tests for the
// primitive shapes the tracer composites.
package geometry

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the minimum ray parameter an intersection may have. Hits closer
// than this are self-intersections of a ray restarted on a surface and are
// discarded.
const Epsilon = 0.001

// Hit describes a ray-surface intersection
type Hit struct {
	T      float64    // Ray parameter of the intersection, always > Epsilon
	Point  mgl64.Vec3 // Intersection point in world space
	Normal mgl64.Vec3 // Outward unit normal at the point
	Color  mgl64.Vec3 // Surface color at the point
	Alpha  float64    // Surface opacity in [0, 1]
}
