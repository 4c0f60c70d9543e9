package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/core"
)

// Box represents a semi-transparent axis-aligned box
type Box struct {
	Min   mgl64.Vec3
	Max   mgl64.Vec3
	Color mgl64.Vec3
	Alpha float64
}

// NewBox creates a new axis-aligned box from its min and max corners
func NewBox(min, max mgl64.Vec3, color mgl64.Vec3, alpha float64) *Box {
	return &Box{
		Min:   min,
		Max:   max,
		Color: color,
		Alpha: alpha,
	}
}

// Hit tests if a ray enters the box, using the slab method. Only the entry
// face counts: a ray that starts inside the box reports no hit and passes
// through the far face without compositing it.
func (b *Box) Hit(ray core.Ray) (Hit, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	// Clip the ray against the three slabs. A zero direction component
	// divides to ±Inf, which drops out of the near/far comparison unless the
	// origin lies outside that slab.
	for axis := 0; axis < 3; axis++ {
		t1 := (b.Min[axis] - ray.Origin[axis]) / ray.Direction[axis]
		t2 := (b.Max[axis] - ray.Origin[axis]) / ray.Direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
	}

	if tNear >= tFar || tFar <= Epsilon || tNear <= Epsilon {
		return Hit{}, false
	}

	point := ray.At(tNear)
	return Hit{
		T:      tNear,
		Point:  point,
		Normal: b.normalAt(point),
		Color:  b.Color,
		Alpha:  b.Alpha,
	}, true
}

// normalAt recovers the face normal from a point on the box surface by
// taking the dominant axis of the point relative to the box center.
func (b *Box) normalAt(point mgl64.Vec3) mgl64.Vec3 {
	center := b.Min.Add(b.Max).Mul(0.5)
	local := point.Sub(center)

	ax := math.Abs(local[0])
	ay := math.Abs(local[1])
	az := math.Abs(local[2])

	switch {
	case ax > ay && ax > az:
		return mgl64.Vec3{sign(local[0]), 0, 0}
	case ay > az:
		return mgl64.Vec3{0, sign(local[1]), 0}
	default:
		return mgl64.Vec3{0, 0, sign(local[2])}
	}
}

// sign matches GLSL sign(): -1, 0 or +1 by the sign of x
func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
