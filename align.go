package solarvibe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// alignedDot is the cosine above which two normals are considered identical.
	alignedDot = 0.9999
	// minAxisLen2 is the squared length under which a rotation axis is degenerate.
	minAxisLen2 = 1e-6
)

// worldUp is the normal of the ecliptic in world axes.
var worldUp = mgl64.Vec3{0, 1, 0}

// OrbitNormal returns the unit normal of the orbital plane in world axes, from the
// positions at true anomalies 0 and 90°. A degenerate orbit returns the world up axis.
func OrbitNormal(el OrbitElements) mgl64.Vec3 {
	if el.SemiMajorAxisAU == 0 {
		return worldUp
	}
	o := NewOrbit(el)
	p0 := o.PolarToWorld(o.ConicRadius(0), 0)
	p1 := o.PolarToWorld(o.ConicRadius(math.Pi/2), math.Pi/2)
	n := p0.Cross(p1)
	if isZeroVec(n) {
		return worldUp
	}
	return n.Normalize()
}

// RingNormal returns the normal of the ring plane of a planet whose spin axis
// is tilted by tiltDeg about the world x axis. A non-zero nodeDeg tilts the
// ring out of the equator by that angle, about the planet's own z axis, as it
// is drawn.
func RingNormal(tiltDeg, nodeDeg float64) mgl64.Vec3 {
	st, ct := math.Sincos(Deg2rad(tiltDeg))
	sn, cn := math.Sincos(Deg2rad(nodeDeg))
	return mgl64.Vec3{-sn, cn * ct, cn * st}
}

// ComputeAlignment returns the rotation taking the orbital plane of el onto the
// plane of normal ref. The boolean is false when no correction is needed, either
// because the planes already match or because a normal is degenerate.
func ComputeAlignment(el OrbitElements, ref mgl64.Vec3) (Rotation, bool) {
	n := OrbitNormal(el)
	if isZeroVec(ref) {
		return IdentityRotation(), false
	}
	ref = ref.Normalize()
	dot := n.Dot(ref)
	switch {
	case dot >= alignedDot:
		return IdentityRotation(), false
	case dot <= -alignedDot:
		axis := mgl64.Vec3{1, 0, 0}.Cross(n)
		if axis.Dot(axis) < minAxisLen2 {
			axis = worldUp
		}
		return AxisAngle(math.Pi, axis), true
	default:
		return Rotation{mgl64.QuatBetweenVectors(n, ref).Normalize()}, true
	}
}
