package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/geometry"
	"github.com/glasscast/glasscast/pkg/texture"
)

// noiseSeed keeps the marble backdrop identical between renders
const noiseSeed = 1

// NewNoiseScene creates the demo geometry over a Perlin marble backdrop
// instead of the checkerboard.
func NewNoiseScene() *Scene {
	marble := texture.NewNoise(
		mgl64.Vec3{0.85, 0.85, 0.9},
		mgl64.Vec3{0.25, 0.3, 0.4},
		1.5,
		noiseSeed,
	)

	return &Scene{
		Objects: []Object{
			geometry.NewSphere(mgl64.Vec3{-0.8, 0, 0}, 0.7, mgl64.Vec3{1.0, 0.3, 0.3}, 0.5),
			geometry.NewBox(mgl64.Vec3{0.4, -0.6, -0.4}, mgl64.Vec3{1.4, 0.6, 0.6}, mgl64.Vec3{0.3, 0.3, 1.0}, 0.65),
		},
		Plane:      geometry.NewPlane(mgl64.Vec3{0, 0, 1}, -2, marble),
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
