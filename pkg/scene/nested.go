package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/geometry"
	"github.com/glasscast/glasscast/pkg/texture"
)

// NewNestedScene creates four concentric translucent spheres. A ray through
// the center crosses more surfaces than the tracer follows, so the innermost
// layers and the backdrop fade out toward the middle of the image.
func NewNestedScene() *Scene {
	checker := texture.NewPlanarChecker(
		mgl64.Vec3{0.8, 0.8, 0.8},
		mgl64.Vec3{0.3, 0.3, 0.3},
		1.5,
	)

	center := mgl64.Vec3{0, 0, 0}
	return &Scene{
		Objects: []Object{
			geometry.NewSphere(center, 1.0, mgl64.Vec3{1.0, 0.4, 0.4}, 0.3),
			geometry.NewSphere(center, 0.75, mgl64.Vec3{0.4, 1.0, 0.4}, 0.3),
			geometry.NewSphere(center, 0.5, mgl64.Vec3{0.4, 0.4, 1.0}, 0.3),
			geometry.NewSphere(center, 0.25, mgl64.Vec3{1.0, 1.0, 0.4}, 0.3),
		},
		Plane:      geometry.NewPlane(mgl64.Vec3{0, 0, 1}, -2, checker),
		Background: mgl64.Vec3{0.1, 0.1, 0.15},
		Camera: CameraConfig{
			Position: mgl64.Vec3{0, 0.5, 4},
			LookAt:   mgl64.Vec3{0, 0, 0},
			Up:       mgl64.Vec3{0, 1, 0},
			VFov:     60,
		},
		Width:  800,
		Height: 600,
	}
}
