package solarvibe

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const eps = 1e-9

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// vectorsEqual returns whether two vectors are equal within an absolute tolerance.
func vectorsEqual(a, b mgl64.Vec3, tol float64) bool {
	return floats.EqualApprox(a[:], b[:], tol)
}

// anglesEqual returns whether two angles in radians are equal, modulo 2π.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Abs(WrapAngle(a) - WrapAngle(b))
	if diff < eps || math.Abs(diff-2*math.Pi) < eps {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10fπ", diff/math.Pi)
}

func TestAngles(t *testing.T) {
	for _, a := range []float64{0, 45, 90, 180, 270, 359.9, -90, 720.5} {
		if !scalar.EqualWithinAbs(Rad2deg(Deg2rad(a)), a, eps) {
			t.Fatalf("deg -> rad -> deg failed for %f", a)
		}
	}
	for _, c := range []struct{ in, out float64 }{
		{0, 0}, {360, 0}, {-1, 359}, {725, 5}, {-725, 355}, {359.5, 359.5},
	} {
		if got := normalizeDegrees(c.in); !scalar.EqualWithinAbs(got, c.out, eps) {
			t.Fatalf("normalizeDegrees(%f) = %f, want %f", c.in, got, c.out)
		}
	}
	if got := normalizeDegrees(-1e-17); got < 0 || got >= 360 {
		t.Fatalf("normalizeDegrees out of range: %f", got)
	}
	for _, a := range []float64{-100, -twoPi, -1e-15, 0, 1, twoPi, 3 * twoPi, 1e6} {
		w := WrapAngle(a)
		if w < 0 || w >= twoPi {
			t.Fatalf("WrapAngle(%f) = %f out of [0, 2π)", a, w)
		}
		if ok, err := anglesEqual(math.Mod(a, twoPi), w); !ok {
			t.Fatalf("WrapAngle(%f): %s", a, err)
		}
	}
}

func TestVectorHelpers(t *testing.T) {
	if !isZeroVec(mgl64.Vec3{}) || isZeroVec(mgl64.Vec3{1e-6, 0, 0}) {
		t.Fatal("isZeroVec failed")
	}
	if u := unit(mgl64.Vec3{}); u != (mgl64.Vec3{}) {
		t.Fatalf("unit of null vector should be null, got %v", u)
	}
	v := withLength(mgl64.Vec3{3, 0, 4}, 10)
	if !vectorsEqual(v, mgl64.Vec3{6, 0, 8}, eps) {
		t.Fatalf("withLength failed: %v", v)
	}
	if got := clamp(5, 0, 1); got != 1 {
		t.Fatalf("clamp high failed: %f", got)
	}
	if got := clamp(-5, 0, 1); got != 0 {
		t.Fatalf("clamp low failed: %f", got)
	}
	if got := lerp(2, 6, 0.25); got != 3 {
		t.Fatalf("lerp failed: %f", got)
	}
}
