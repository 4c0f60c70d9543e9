package core

import "github.com/go-gl/mathgl/mgl64"

// Lerp interpolates between a and b by t, with t=0 returning a and t=1
// returning b
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// MulElem returns the component-wise product of a and b
func MulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Clamp01 clamps x to the [0, 1] range
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
