package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/geometry"
	"github.com/glasscast/glasscast/pkg/texture"
)

// NewDemoScene creates the classic demo: a translucent red sphere and blue
// box floating in front of a checkered backdrop.
func NewDemoScene() *Scene {
	checker := texture.NewPlanarChecker(
		mgl64.Vec3{0.8, 0.8, 0.8},
		mgl64.Vec3{0.3, 0.3, 0.3},
		1.5,
	)

	return &Scene{
		Objects: []Object{
			geometry.NewSphere(mgl64.Vec3{-0.8, 0, 0}, 0.7, mgl64.Vec3{1.0, 0.3, 0.3}, 0.5),
			geometry.NewBox(mgl64.Vec3{0.4, -0.6, -0.4}, mgl64.Vec3{1.4, 0.6, 0.6}, mgl64.Vec3{0.3, 0.3, 1.0}, 0.65),
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
