package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/core"
	"github.com/glasscast/glasscast/pkg/scene"
)

// Camera generates primary rays for a viewport
type Camera struct {
	position mgl64.Vec3
	forward  mgl64.Vec3
	right    mgl64.Vec3
	up       mgl64.Vec3
	focal    float64
	width    float64
	height   float64
}

// NewCamera precomputes the camera basis for the given viewport size
func NewCamera(cfg scene.CameraConfig, width, height int) *Camera {
	forward := cfg.LookAt.Sub(cfg.Position).Normalize()
	right := forward.Cross(cfg.Up).Normalize()
	up := right.Cross(forward).Normalize()

	return &Camera{
		position: cfg.Position,
		forward:  forward,
		right:    right,
		up:       up,
		focal:    1 / math.Tan(mgl64.DegToRad(cfg.VFov)/2),
		width:    float64(width),
		height:   float64(height),
	}
}

// RayAt returns the ray through the center of pixel (px, py), with py
// counted from the top image row
func (c *Camera) RayAt(px, py int) core.Ray {
	// Sample pixel centers, flipping rows to the bottom-up order the
	// projection is derived in. Both axes divide by the viewport height, so
	// the field of view is vertical and the aspect ratio falls out of the
	// width.
	fx := float64(px) + 0.5
	fy := c.height - 1 - float64(py) + 0.5
	u := (2*fx - c.width) / c.height
	v := (2*fy - c.height) / c.height

	direction := c.right.Mul(u).
		Add(c.up.Mul(v)).
		Add(c.forward.Mul(c.focal)).
		Normalize()

	return core.Ray{Origin: c.position, Direction: direction}
}
