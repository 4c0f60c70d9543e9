package tracer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/core"
	"github.com/glasscast/glasscast/pkg/geometry"
	"github.com/glasscast/glasscast/pkg/scene"
)

// Phong strengths shared by every lit scene
const (
	ambientStrength  = 0.1
	specularStrength = 0.5
)

// Shade evaluates the Phong model at a hit: ambient plus diffuse plus
// specular, all tinted by the light color and scaled by the surface color.
// view is the unit vector from the hit point toward the viewer.
func Shade(hit geometry.Hit, view mgl64.Vec3, light *scene.PointLight) mgl64.Vec3 {
	lightDir := light.Position.Sub(hit.Point).Normalize()

	ambient := light.Color.Mul(ambientStrength)

	diff := math.Max(hit.Normal.Dot(lightDir), 0)
	diffuse := light.Color.Mul(diff)

	reflectDir := Reflect(lightDir.Mul(-1), hit.Normal)
	spec := math.Pow(math.Max(view.Dot(reflectDir), 0), light.Shininess)
	specular := light.Color.Mul(specularStrength * spec)

	lighting := ambient.Add(diffuse).Add(specular)
	return core.MulElem(lighting, hit.Color)
}

// Reflect mirrors v around the unit normal n, matching GLSL reflect()
func Reflect(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}
