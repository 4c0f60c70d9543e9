// Package scene defines the world model: the semi-transparent primitives a
// frame composites, the opaque backdrop, and the camera parameters.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/core"
	"github.com/glasscast/glasscast/pkg/geometry"
)

// Object is a semi-transparent primitive the tracer composites front to
// back. Spheres and boxes implement it; list order breaks exact ties.
type Object interface {
	Hit(ray core.Ray) (geometry.Hit, bool)
}

// CameraConfig contains the camera parameters for a scene
type CameraConfig struct {
	Position mgl64.Vec3 // Eye position
	LookAt   mgl64.Vec3 // Point the camera looks at
	Up       mgl64.Vec3 // World up used to build the camera basis
	VFov     float64    // Vertical field of view in degrees
}

// PointLight lights scenes that shade hits with the Phong model. Scenes
// without one render flat surface colors.
type PointLight struct {
	Position  mgl64.Vec3
	Color     mgl64.Vec3
	Shininess float64 // Specular exponent
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Objects    []Object        // Semi-transparent objects, tested in order
	Plane      *geometry.Plane // Opaque backdrop; nil shades escaping rays as Background
	Background mgl64.Vec3      // Color for rays that miss everything
	Camera     CameraConfig
	Light      *PointLight // Optional Phong light
	Width      int         // Default viewport size
	Height     int
}
