package solarvibe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	deg2rad = math.Pi / 180
	twoPi   = 2 * math.Pi
)

// Deg2rad converts degrees to radians without wrapping.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees without wrapping.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}

// normalizeDegrees wraps an angle into [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 { // -1e-17 + 360 rounds up
		a = 0
	}
	return a
}

// WrapAngle wraps an angle in radians into [0, 2π). It works for either sign.
func WrapAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// isZeroVec returns whether v is numerically the null vector.
func isZeroVec(v mgl64.Vec3) bool {
	return scalar.EqualWithinAbs(v.Dot(v), 0, 1e-24)
}

// unit returns the unit vector of v, or the null vector if v has no length.
func unit(v mgl64.Vec3) mgl64.Vec3 {
	if isZeroVec(v) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / v.Len())
}

// withLength returns v rescaled to length l. The null vector stays null.
func withLength(v mgl64.Vec3, l float64) mgl64.Vec3 {
	return unit(v).Mul(l)
}
