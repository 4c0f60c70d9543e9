package texture

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/core"
)

// Perlin generator parameters, the library defaults
const (
	noiseAlpha      = 2
	noiseBeta       = 2
	noiseIterations = 3
)

// Noise blends between two colors by Perlin noise, projected onto the
// dominant plane of the surface normal like the checker pattern.
type Noise struct {
	Color1 mgl64.Vec3
	Color2 mgl64.Vec3
	Scale  float64
	noise  *perlin.Perlin
}

// NewNoise creates a new Perlin noise texture. The same seed always produces
// the same pattern.
func NewNoise(color1, color2 mgl64.Vec3, scale float64, seed int64) *Noise {
	return &Noise{
		Color1: color1,
		Color2: color2,
		Scale:  scale,
		noise:  perlin.NewPerlin(noiseAlpha, noiseBeta, noiseIterations, seed),
	}
}

// Evaluate returns the noise color at a world-space point
func (n *Noise) Evaluate(point, normal mgl64.Vec3) mgl64.Vec3 {
	u, v := projectToPlane(point, normal)
	// Noise2D returns roughly [-1, 1]; remap it to a blend factor
	t := core.Clamp01(0.5 * (n.noise.Noise2D(u*n.Scale, v*n.Scale) + 1))
	return core.Lerp(n.Color1, n.Color2, t)
}
