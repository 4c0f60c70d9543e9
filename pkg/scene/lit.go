package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/geometry"
	"github.com/glasscast/glasscast/pkg/texture"
)

// NewLitScene creates the demo geometry lit by a white point light, so
// object hits are Phong shaded instead of taking their flat surface color.
func NewLitScene() *Scene {
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
		Light: &PointLight{
			Position:  mgl64.Vec3{1.2, 1.0, 2.0},
			Color:     mgl64.Vec3{1, 1, 1},
			Shininess: 32,
		},
		Width:  800,
		Height: 600,
	}
}
