package solarvibe

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"gonum.org/v1/gonum/mat"
)

const (
	// KmInAU is one astronomical unit in kilometers.
	KmInAU = 149597870.7
	// SiderealYearDays is the length of the sidereal year, used to derive
	// missing periods from Kepler's third law around one solar mass.
	SiderealYearDays = 365.256363004
	// KeplerIterations is the fixed number of Newton-Raphson steps.
	KeplerIterations = 6
)

// OrbitElements are the osculating Keplerian elements of a body at the J2000 epoch.
// Angles are in degrees, distances in AU.
type OrbitElements struct {
	SemiMajorAxisAU        float64 `json:"semiMajorAxisAu"`
	Eccentricity           float64 `json:"eccentricity"`
	InclinationDeg         float64 `json:"inclinationDeg"`
	LongitudeAscendingNode float64 `json:"longitudeAscendingNodeDeg"`
	ArgumentOfPeriapsis    float64 `json:"argumentOfPeriapsisDeg"`
	MeanAnomalyAtEpoch     float64 `json:"meanAnomalyAtEpochDeg"`
	PeriodDays             float64 `json:"periodDays,omitempty"` // Zero means derived from a.
}

// Period returns the orbital period in days, derived from the semi-major axis
// when the elements do not provide it.
func (el OrbitElements) Period() float64 {
	if el.PeriodDays != 0 {
		return el.PeriodDays
	}
	return math.Sqrt(math.Pow(el.SemiMajorAxisAU, 3)) * SiderealYearDays
}

// Periapsis returns the periapsis distance in AU.
func (el OrbitElements) Periapsis() float64 {
	return el.SemiMajorAxisAU * (1 - el.Eccentricity)
}

// Apoapsis returns the apoapsis distance in AU.
func (el OrbitElements) Apoapsis() float64 {
	return el.SemiMajorAxisAU * (1 + el.Eccentricity)
}

// String implements the stringer interface.
func (el OrbitElements) String() string {
	return fmt.Sprintf("a=%.6f e=%.5f i=%.3f Ω=%.3f ω=%.3f M0=%.3f", el.SemiMajorAxisAU, el.Eccentricity,
		el.InclinationDeg, el.LongitudeAscendingNode, el.ArgumentOfPeriapsis, el.MeanAnomalyAtEpoch)
}

// ElapsedDays returns the number of days between the J2000 epoch and dt.
// It is negative before the epoch.
func ElapsedDays(dt time.Time) float64 {
	return julian.TimeToJD(dt) - base.J2000
}

// SolveKepler solves Kepler's equation E - e·sin(E) = M for the eccentric anomaly,
// with a fixed number of Newton-Raphson iterations starting from E = M.
// Angles are in radians.
func SolveKepler(M, e float64) (E float64) {
	E = M
	for i := 0; i < KeplerIterations; i++ {
		E -= (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
	}
	return
}

// TrueAnomaly returns the true anomaly from the eccentric anomaly using the
// half-angle tangent formula.
func TrueAnomaly(E, e float64) float64 {
	return 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
}

// OrbitState is the solved position of a body on its orbit at a given instant.
type OrbitState struct {
	M, E, ν float64 // Mean, eccentric and true anomalies in radians.
	R       float64 // Distance from the focus in AU.
}

// TrueAnomaly returns ν in radians.
func (s OrbitState) TrueAnomaly() float64 {
	return s.ν
}

// Orbit is a set of elements with the period and the perifocal to ecliptic
// matrix precomputed. It holds no time dependent state: positions are a pure
// function of the elements and the instant, so time may run in either direction.
type Orbit struct {
	OrbitElements
	period float64
	dcm    *mat.Dense
}

// NewOrbit prepares the provided elements for repeated evaluation.
func NewOrbit(el OrbitElements) *Orbit {
	return &Orbit{
		OrbitElements: el,
		period:        el.Period(),
		dcm:           PQW2Ecliptic(Deg2rad(el.InclinationDeg), Deg2rad(el.ArgumentOfPeriapsis), Deg2rad(el.LongitudeAscendingNode)),
	}
}

// MeanAnomaly returns the mean anomaly in radians at dt, wrapped into [0, 2π).
func (o *Orbit) MeanAnomaly(dt time.Time) float64 {
	M := o.MeanAnomalyAtEpoch + (360/o.period)*ElapsedDays(dt)
	return Deg2rad(normalizeDegrees(M))
}

// State solves the anomalies and the radius at dt.
func (o *Orbit) State(dt time.Time) OrbitState {
	M := o.MeanAnomaly(dt)
	e := o.Eccentricity
	E := SolveKepler(M, e)
	return OrbitState{M: M, E: E, ν: TrueAnomaly(E, e), R: o.SemiMajorAxisAU * (1 - e*math.Cos(E))}
}

// Position returns the body centric position in AU at dt, in world axes.
func (o *Orbit) Position(dt time.Time) mgl64.Vec3 {
	s := o.State(dt)
	return o.PolarToWorld(s.R, s.ν)
}

// ConicRadius returns the distance from the focus in AU at the true anomaly ν.
func (o *Orbit) ConicRadius(ν float64) float64 {
	e := o.Eccentricity
	return o.SemiMajorAxisAU * (1 - e*e) / (1 + e*math.Cos(ν))
}

// PolarToWorld rotates the in-plane polar coordinates (r, ν) through the 3-1-3
// orbital rotations and remaps the result to world axes.
func (o *Orbit) PolarToWorld(r, ν float64) mgl64.Vec3 {
	sinν, cosν := math.Sincos(ν)
	return EclipticToWorld(MxV33(o.dcm, [3]float64{r * cosν, r * sinν, 0}))
}

// SolvePosition returns the position in AU of a body on the provided elements
// at dt, relative to the body it orbits and in world axes.
func SolvePosition(el OrbitElements, dt time.Time) mgl64.Vec3 {
	return NewOrbit(el).Position(dt)
}
