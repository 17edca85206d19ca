package solarvibe

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// earthSiderealHours is the Earth sidereal rotation period.
const earthSiderealHours = 23.934

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// PQW2Ecliptic returns the DCM taking a vector from the perifocal frame to the
// ecliptic frame for the given inclination, argument of periapsis and longitude
// of the ascending node (all in radians): R3(-Ω)·R1(-i)·R3(-ω).
func PQW2Ecliptic(i, ω, Ω float64) *mat.Dense {
	var m mat.Dense
	m.Mul(R3(-Ω), R1(-i))
	m.Mul(&m, R3(-ω))
	return &m
}

// MxV33 multiplies a 3x3 matrix with a 3-vector. There is no dimension check.
func MxV33(m mat.Matrix, v [3]float64) [3]float64 {
	var r mat.VecDense
	r.MulVec(m, mat.NewVecDense(3, v[:]))
	return [3]float64{r.AtVec(0), r.AtVec(1), r.AtVec(2)}
}

// EclipticToWorld remaps right-handed ecliptic coordinates (z towards the ecliptic
// north pole) onto the y-up world axes used by the renderer: (x, y, z) -> (x, z, -y).
// Every position and path sample goes through this function.
func EclipticToWorld(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[2], -v[1]}
}

// Rotation is a unit quaternion applied to world vectors.
// The zero value is not usable, use IdentityRotation.
type Rotation struct {
	q mgl64.Quat
}

// IdentityRotation returns the rotation which leaves vectors unchanged.
func IdentityRotation() Rotation {
	return Rotation{mgl64.QuatIdent()}
}

// AxisAngle returns the rotation of angle radians about axis.
func AxisAngle(angle float64, axis mgl64.Vec3) Rotation {
	return Rotation{mgl64.QuatRotate(angle, unit(axis)).Normalize()}
}

// Apply rotates v.
func (r Rotation) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return r.q.Rotate(v)
}

// Quat returns the underlying quaternion, for renderers.
func (r Rotation) Quat() mgl64.Quat {
	return r.q
}

// Angle returns the rotation angle in [0, π].
func (r Rotation) Angle() float64 {
	w := clamp(math.Abs(r.q.W), 0, 1)
	return 2 * math.Acos(w)
}

// EarthInitialRotation returns the Earth's spin angle in degrees at the given
// instant, in [0, 360), such that the meridian facing the Sun follows the UTC
// time of day.
func EarthInitialRotation(t time.Time) float64 {
	u := t.UTC()
	seconds := float64(u.Hour()*3600+u.Minute()*60+u.Second()) + float64(u.Nanosecond())/1e9
	speed := twoPi / (earthSiderealHours * 3600)
	return Rad2deg(WrapAngle(math.Pi/2 - speed*seconds))
}
