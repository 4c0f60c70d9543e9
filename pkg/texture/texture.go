// Package texture provides spatially-varying surface colors.
package texture

import "github.com/go-gl/mathgl/mgl64"

// Texture provides spatially-varying colors for surfaces
type Texture interface {
	// Evaluate returns the color at a world-space point. The surface normal
	// selects the projection plane for patterns that need one; solid colors
	// ignore both arguments.
	Evaluate(point, normal mgl64.Vec3) mgl64.Vec3
}

// Solid provides a uniform color
type Solid struct {
	Color mgl64.Vec3
}

// NewSolid creates a new solid color texture
func NewSolid(color mgl64.Vec3) *Solid {
	return &Solid{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *Solid) Evaluate(point, normal mgl64.Vec3) mgl64.Vec3 {
	return s.Color
}
