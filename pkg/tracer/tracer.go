// Package tracer composites analytic ray intersections front to back.
package tracer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/core"
	"github.com/glasscast/glasscast/pkg/geometry"
	"github.com/glasscast/glasscast/pkg/scene"
)

const (
	// DefaultMaxBounces bounds how many translucent surfaces one ray composites
	DefaultMaxBounces = 3
	// DefaultMinTransmission ends a ray once the remaining contribution is negligible
	DefaultMinTransmission = 0.01
)

// Tracer composites ray hits against a fixed scene. Aside from the read-only
// scene it holds no state, so a single Tracer serves all workers.
type Tracer struct {
	Scene           *scene.Scene
	MaxBounces      int     // Translucent surfaces followed per ray
	MinTransmission float64 // Remaining contribution below this is dropped
}

// New creates a tracer with the default bounce budget
func New(sc *scene.Scene) *Tracer {
	return &Tracer{
		Scene:           sc,
		MaxBounces:      DefaultMaxBounces,
		MinTransmission: DefaultMinTransmission,
	}
}

// Trace returns the composited color seen along a ray. Each translucent hit
// adds its weighted color and attenuates what lies behind it; the first miss
// resolves against the backdrop plane or the background and ends the ray. A
// ray that spends its whole bounce budget on surfaces keeps whatever it
// accumulated, so the leftover transmission is dropped rather than filled
// with background.
func (tr *Tracer) Trace(ray core.Ray) mgl64.Vec3 {
	var accumulated mgl64.Vec3
	transmission := 1.0
	current := ray

	for bounce := 0; bounce < tr.MaxBounces; bounce++ {
		if transmission < tr.MinTransmission {
			break
		}

		hit, ok := tr.nearestObjectHit(current)
		if !ok {
			accumulated = accumulated.Add(tr.missColor(current).Mul(transmission))
			break
		}

		surface := tr.surfaceColor(hit, current)
		accumulated = accumulated.Add(surface.Mul(transmission * hit.Alpha))
		transmission *= 1 - hit.Alpha

		// Restart just past the surface along the unchanged direction, far
		// enough that the same surface cannot be hit again.
		current.Origin = current.At(hit.T + 2*geometry.Epsilon)
	}

	return accumulated
}

// nearestObjectHit tests every object and keeps the strictly nearest hit, so
// earlier objects win exact ties.
func (tr *Tracer) nearestObjectHit(ray core.Ray) (geometry.Hit, bool) {
	var nearest geometry.Hit
	found := false

	for _, obj := range tr.Scene.Objects {
		hit, ok := obj.Hit(ray)
		if !ok {
			continue
		}
		if !found || hit.T < nearest.T {
			nearest = hit
			found = true
		}
	}
	return nearest, found
}

// missColor resolves a ray that cleared every object: the opaque backdrop
// if the ray reaches it, the background otherwise.
func (tr *Tracer) missColor(ray core.Ray) mgl64.Vec3 {
	if tr.Scene.Plane != nil {
		if hit, ok := tr.Scene.Plane.Hit(ray); ok {
			return hit.Color
		}
	}
	return tr.Scene.Background
}

// surfaceColor shades an object hit: the flat surface color, or the Phong
// model when the scene carries a light. The backdrop plane stays flat either
// way.
func (tr *Tracer) surfaceColor(hit geometry.Hit, ray core.Ray) mgl64.Vec3 {
	if tr.Scene.Light == nil {
		return hit.Color
	}
	return Shade(hit, ray.Direction.Mul(-1), tr.Scene.Light)
}
