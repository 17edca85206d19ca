package solarvibe

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"
)

// j2000 is the J2000 epoch as a UTC instant.
var j2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

var testElements = OrbitElements{
	SemiMajorAxisAU:        1.523679,
	Eccentricity:           0.0934,
	InclinationDeg:         1.85,
	LongitudeAscendingNode: 49.558,
	ArgumentOfPeriapsis:    286.502,
	MeanAnomalyAtEpoch:     19.373,
	PeriodDays:             686.98,
}

func TestElapsedDays(t *testing.T) {
	if d := ElapsedDays(j2000); !scalar.EqualWithinAbs(d, 0, 1e-8) {
		t.Fatalf("elapsed days at epoch = %f", d)
	}
	if d := ElapsedDays(j2000.Add(-36 * time.Hour)); !scalar.EqualWithinAbs(d, -1.5, 1e-8) {
		t.Fatalf("elapsed days before epoch = %f", d)
	}
}

func TestSolveKepler(t *testing.T) {
	for e := 0.0; e <= 0.9; e += 0.05 {
		for M := 0.0; M < twoPi; M += 0.01 {
			E := SolveKepler(M, e)
			if res := E - e*math.Sin(E) - M; math.Abs(res) > 1e-6 {
				t.Fatalf("e=%f M=%f: residual %e", e, M, res)
			}
		}
	}
	for _, M := range []float64{0, 1, math.Pi, 5} {
		if E := SolveKepler(M, 0); E != M {
			t.Fatalf("circular orbit should give E = M, got %f for %f", E, M)
		}
		if ok, err := anglesEqual(TrueAnomaly(M, 0), M); !ok {
			t.Fatalf("circular orbit should give ν = E: %s", err)
		}
	}
}

func TestOrbitPeriod(t *testing.T) {
	el := OrbitElements{SemiMajorAxisAU: 1}
	if !scalar.EqualWithinAbs(el.Period(), SiderealYearDays, 1e-9) {
		t.Fatalf("derived period %f", el.Period())
	}
	el.SemiMajorAxisAU = 4
	if !scalar.EqualWithinAbs(el.Period(), 8*SiderealYearDays, 1e-9) {
		t.Fatalf("derived period %f", el.Period())
	}
	el.PeriodDays = 12
	if el.Period() != 12 {
		t.Fatal("provided period not used")
	}
	if !scalar.EqualWithinAbs(testElements.Periapsis(), 1.523679*(1-0.0934), eps) ||
		!scalar.EqualWithinAbs(testElements.Apoapsis(), 1.523679*(1+0.0934), eps) {
		t.Fatal("incorrect apsides")
	}
}

func TestOrbitDeterministic(t *testing.T) {
	o := NewOrbit(testElements)
	dt := time.Date(2031, 5, 17, 3, 14, 0, 0, time.UTC)
	first := o.Position(dt)
	o.Position(dt.Add(-1000 * 24 * time.Hour))
	o.Position(dt.Add(5 * time.Hour))
	if again := o.Position(dt); again != first {
		t.Fatalf("position depends on call history: %v != %v", again, first)
	}
	if other := SolvePosition(testElements, dt); other != first {
		t.Fatalf("SolvePosition differs: %v != %v", other, first)
	}
}

func TestOrbitCircularRadius(t *testing.T) {
	el := testElements
	el.Eccentricity = 0
	o := NewOrbit(el)
	for d := -5000; d < 5000; d += 37 {
		s := o.State(j2000.Add(time.Duration(d) * 24 * time.Hour))
		if s.R != el.SemiMajorAxisAU {
			t.Fatalf("day %d: radius %f != a", d, s.R)
		}
	}
	for ν := 0.0; ν < twoPi; ν += 0.1 {
		if r := o.ConicRadius(ν); r != el.SemiMajorAxisAU {
			t.Fatalf("ν=%f: conic radius %f != a", ν, r)
		}
	}
}

func TestOrbitEarthAtEpoch(t *testing.T) {
	earth, err := SolarSystem().Body("earth")
	if err != nil {
		t.Fatal(err)
	}
	o := NewOrbit(*earth.Orbit)
	s := o.State(j2000)
	M := Deg2rad(earth.Orbit.MeanAnomalyAtEpoch)
	if !scalar.EqualWithinAbs(s.M, M, 1e-9) {
		t.Fatalf("mean anomaly at epoch %f != %f", s.M, M)
	}
	if math.Abs(s.E-M) > Deg2rad(1) {
		t.Fatalf("eccentric anomaly %f too far from %f", s.E, M)
	}
	if ν := WrapAngle(s.TrueAnomaly()); math.Abs(ν-M) > Deg2rad(1) {
		t.Fatalf("true anomaly %f too far from %f", ν, M)
	}
	if math.Abs(s.R-1) > 0.017 {
		t.Fatalf("radius %f not within 1.7%% of 1 AU", s.R)
	}
	if !scalar.EqualWithinAbs(o.Position(j2000).Len(), s.R, 1e-12) {
		t.Fatal("position norm differs from radius")
	}
}

// TestOrbitRotationComposition checks the matrix composition against the
// expanded direction cosines.
func TestOrbitRotationComposition(t *testing.T) {
	o := NewOrbit(testElements)
	ω, i, Ω := Deg2rad(testElements.ArgumentOfPeriapsis), Deg2rad(testElements.InclinationDeg), Deg2rad(testElements.LongitudeAscendingNode)
	sΩ, cΩ := math.Sincos(Ω)
	si, ci := math.Sincos(i)
	sω, cω := math.Sincos(ω)
	for ν := 0.0; ν < twoPi; ν += 0.3 {
		r := o.ConicRadius(ν)
		xo, yo := r*math.Cos(ν), r*math.Sin(ν)
		x := (cΩ*cω-sΩ*sω*ci)*xo + (-cΩ*sω-sΩ*cω*ci)*yo
		y := (sΩ*cω+cΩ*sω*ci)*xo + (-sΩ*sω+cΩ*cω*ci)*yo
		z := sω*si*xo + cω*si*yo
		if got := o.PolarToWorld(r, ν); !vectorsEqual(got, mgl64.Vec3{x, z, -y}, 1e-12) {
			t.Fatalf("ν=%f: %v != %v", ν, got, mgl64.Vec3{x, z, -y})
		}
	}
}

func TestOrbitPeriodicAndReversible(t *testing.T) {
	o := NewOrbit(testElements)
	dt := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	p0 := o.Position(dt)
	period := time.Duration(testElements.PeriodDays * 24 * float64(time.Hour))
	if p1 := o.Position(dt.Add(period)); !vectorsEqual(p0, p1, 1e-9) {
		t.Fatalf("position not periodic: %v != %v", p0, p1)
	}
	n := OrbitNormal(testElements)
	step := 24 * time.Hour
	fwd := p0.Cross(o.Position(dt.Add(step)))
	bwd := p0.Cross(o.Position(dt.Add(-step)))
	if fwd.Dot(n) <= 0 || bwd.Dot(n) >= 0 {
		t.Fatalf("traversal direction does not reverse with time: %f %f", fwd.Dot(n), bwd.Dot(n))
	}
}
