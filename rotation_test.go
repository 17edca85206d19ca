package solarvibe

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

func TestR1R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r3 := R3(x)
	// Test items equal to 1.
	if r1.At(0, 0) != r3.At(2, 2) || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R3.At(2, 2) = 1")
	}
	// Test items equal to 0.
	if r1.At(0, 1) != r1.At(0, 2) || r1.At(1, 0) != r1.At(2, 0) || r1.At(0, 1) != 0 {
		t.Fatal("misplaced zeros in R1")
	}
	if r3.At(2, 0) != r3.At(2, 1) || r3.At(0, 2) != r3.At(1, 2) || r3.At(1, 2) != 0 {
		t.Fatal("misplaced zeros in R3")
	}
	if r1.At(1, 1) != r1.At(2, 2) || r1.At(2, 2) != c {
		t.Fatal("expected R1 cosines misplaced")
	}
	if r1.At(2, 1) != -r1.At(1, 2) || r1.At(1, 2) != s {
		t.Fatal("expected R1 sines misplaced")
	}
	if r3.At(1, 1) != r3.At(0, 0) || r3.At(0, 0) != c {
		t.Fatal("expected R3 cosines misplaced")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced")
	}
}

func TestPQW2Ecliptic(t *testing.T) {
	if !mat.EqualApprox(PQW2Ecliptic(0, 0, 0), mat.NewDiagDense(3, []float64{1, 1, 1}), eps) {
		t.Fatal("null angles should give the identity")
	}
	for _, angles := range [][3]float64{{0.1, 0.2, 0.3}, {1.5, 4, 6}, {math.Pi, 0, 2}} {
		m := PQW2Ecliptic(angles[0], angles[1], angles[2])
		if !scalar.EqualWithinAbs(mat.Det(m), 1, eps) {
			t.Fatalf("DCM determinant should be 1, got %f", mat.Det(m))
		}
		var mmT mat.Dense
		mmT.Mul(m, m.T())
		if !mat.EqualApprox(&mmT, mat.NewDiagDense(3, []float64{1, 1, 1}), eps) {
			t.Fatalf("DCM is not orthogonal for %v", angles)
		}
	}
	// A pure node rotation of 90° takes the periapsis direction onto the ecliptic y axis.
	p := MxV33(PQW2Ecliptic(0, 0, math.Pi/2), [3]float64{1, 0, 0})
	if !floats.EqualApprox(p[:], []float64{0, 1, 0}, eps) {
		t.Fatalf("unexpected rotation: %v", p)
	}
}

func TestEclipticToWorld(t *testing.T) {
	if w := EclipticToWorld([3]float64{1, 2, 3}); w != (mgl64.Vec3{1, 3, -2}) {
		t.Fatalf("unexpected axis remap: %v", w)
	}
}

func TestRotation(t *testing.T) {
	id := IdentityRotation()
	v := mgl64.Vec3{1, 2, 3}
	if !vectorsEqual(id.Apply(v), v, eps) || id.Angle() != 0 {
		t.Fatal("identity rotation changed the vector")
	}
	r := AxisAngle(math.Pi/2, mgl64.Vec3{0, 0, 5})
	if !vectorsEqual(r.Apply(mgl64.Vec3{1, 0, 0}), mgl64.Vec3{0, 1, 0}, eps) {
		t.Fatalf("unexpected rotation: %v", r.Apply(mgl64.Vec3{1, 0, 0}))
	}
	if !scalar.EqualWithinAbs(r.Angle(), math.Pi/2, eps) {
		t.Fatalf("unexpected angle %f", r.Angle())
	}
	if !scalar.EqualWithinAbs(r.Apply(v).Len(), v.Len(), eps) {
		t.Fatal("rotation changed the length")
	}
}

func TestEarthInitialRotation(t *testing.T) {
	for _, c := range []struct {
		hour int
		deg  float64
	}{{0, 90}, {12, 269.503634996}, {6, 359.751817498}} {
		dt := time.Date(2024, 3, 20, c.hour, 0, 0, 0, time.UTC)
		if got := EarthInitialRotation(dt); !scalar.EqualWithinAbs(got, c.deg, 1e-6) {
			t.Fatalf("%s: got %f want %f", dt, got, c.deg)
		}
	}
	// Only the UTC time of day matters.
	paris := time.FixedZone("CET", 3600)
	a := EarthInitialRotation(time.Date(2024, 1, 1, 13, 0, 0, 0, paris))
	b := EarthInitialRotation(time.Date(1999, 7, 4, 12, 0, 0, 0, time.UTC))
	if !scalar.EqualWithinAbs(a, b, 1e-9) {
		t.Fatalf("%f != %f", a, b)
	}
}
