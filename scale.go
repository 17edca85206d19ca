package solarvibe

import (
	"fmt"
	"math"
)

// MoonClass selects the radius policy of a body.
type MoonClass uint8

const (
	// NotAMoon is any body which does not orbit a planet.
	NotAMoon MoonClass = iota
	// RegularMoon uses the plain exaggerated radius.
	RegularMoon
	// RockyMoon orbits a small inner planet and is scaled down with it.
	RockyMoon
	// GiantMoon orbits a gas giant, is scaled up and has its own floor.
	GiantMoon
)

func (c MoonClass) String() string {
	switch c {
	case NotAMoon:
		return "none"
	case RegularMoon:
		return "regular"
	case RockyMoon:
		return "rocky"
	case GiantMoon:
		return "giant"
	default:
		return fmt.Sprintf("moonclass(%d)", uint8(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c MoonClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Placement is the rule which chose the orbit scale of a body.
type Placement uint8

const (
	// FixedPlacement keeps the catalogue orbit scale (1 unless overridden).
	FixedPlacement Placement = iota
	// ClearancePlacement only guarantees the moon clears its parent.
	ClearancePlacement
	// MultiplierPlacement puts the moon at a fixed number of parent radii above the surface.
	MultiplierPlacement
	// RingPlacement spreads the moon between the ring edge and the outer limit.
	RingPlacement
	// SurfacePlacement spreads the moon over a range of parent radii above the surface.
	SurfacePlacement
)

func (p Placement) String() string {
	switch p {
	case FixedPlacement:
		return "fixed"
	case ClearancePlacement:
		return "clearance"
	case MultiplierPlacement:
		return "multiplier"
	case RingPlacement:
		return "ring"
	case SurfacePlacement:
		return "surface"
	default:
		return fmt.Sprintf("placement(%d)", uint8(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// BodyScale is the setup time visual scale of a body.
type BodyScale struct {
	ID           string    `json:"id"`
	Class        MoonClass `json:"class"`
	Placement    Placement `json:"placement"`
	VisualRadius float64   `json:"visualRadius"`
	OrbitScale   float64   `json:"orbitScale"`
	// MinDistance is the smallest allowed distance to the parent centre, zero for non moons.
	MinDistance float64 `json:"minDistance"`
	Raised      bool    `json:"raised,omitempty"`  // Orbit scale raised to clear the parent.
	Clamped     bool    `json:"clamped,omitempty"` // Orbit scale clamped to the moon range.
}

// ScalePlan maps every body of a catalogue to its visual scale.
type ScalePlan struct {
	bodies []BodyScale // Same order as the catalogue.
	index  map[string]int
}

// Body returns the scale of the provided body.
func (p *ScalePlan) Body(id string) (BodyScale, error) {
	i, ok := p.index[id]
	if !ok {
		return BodyScale{}, fmt.Errorf("%w: '%s'", ErrUnknownBody, id)
	}
	return p.bodies[i], nil
}

// Bodies returns the scales in catalogue order. The slice must not be modified.
func (p *ScalePlan) Bodies() []BodyScale {
	return p.bodies
}

// distanceSpread is the range of unscaled moon distances around an outer planet.
type distanceSpread struct {
	min, max     float64
	parentRadius float64
}

// normalize returns the position of d within the spread, in [0, 1].
// A spread of zero width normalizes everything to 0.
func (s distanceSpread) normalize(d float64) float64 {
	if s.max <= s.min {
		return 0
	}
	return clamp((d-s.min)/(s.max-s.min), 0, 1)
}

// classify returns the radius policy of the body.
func (cfg ScaleConfig) classify(d BodyDefinition) MoonClass {
	if d.Category != Moon {
		return NotAMoon
	}
	switch {
	case contains(cfg.GiantMoonParents, d.ParentID):
		return GiantMoon
	case contains(cfg.RockyMoonParents, d.ParentID):
		return RockyMoon
	default:
		return RegularMoon
	}
}

// visualRadius applies the radius policy of the class.
func (cfg ScaleConfig) visualRadius(d BodyDefinition, class MoonClass) float64 {
	r := d.RenderRadius
	if r == 0 {
		r = d.RadiusKm / KmInAU * cfg.DistanceScale * cfg.SizeMultiplier
	}
	switch class {
	case RockyMoon:
		r *= cfg.RockyMoonScale
	case GiantMoon:
		r = math.Max(r*cfg.GiantMoonScale, cfg.GiantMoonMinRadius)
	}
	if d.RenderRadius == 0 && class != GiantMoon {
		r = math.Max(r, cfg.MinBodyRadius)
	}
	return r
}

// baseDistance returns the unscaled scene distance of a moon to its parent.
func (cfg ScaleConfig) baseDistance(el *OrbitElements) float64 {
	if el == nil {
		return 0
	}
	return el.SemiMajorAxisAU * cfg.DistanceScale
}

// PlanScale derives the visual radius and orbit scale of every body of the catalogue.
// It is a pure function of its arguments.
func PlanScale(cat *Catalogue, cfg ScaleConfig) *ScalePlan {
	defs := cat.Bodies()
	p := &ScalePlan{bodies: make([]BodyScale, len(defs)), index: make(map[string]int, len(defs))}

	for i, d := range defs {
		class := cfg.classify(d)
		p.bodies[i] = BodyScale{ID: d.ID, Class: class, VisualRadius: cfg.visualRadius(d, class), OrbitScale: 1}
		p.index[d.ID] = i
	}
	radius := func(id string) float64 {
		return p.bodies[p.index[id]].VisualRadius
	}

	spreads := make(map[string]*distanceSpread)
	for _, d := range defs {
		if d.Category != Moon || d.IsRoot() || !contains(cfg.OuterPlanets, d.ParentID) {
			continue
		}
		base := cfg.baseDistance(d.Orbit)
		if base <= 0 {
			continue
		}
		s, ok := spreads[d.ParentID]
		if !ok {
			spreads[d.ParentID] = &distanceSpread{min: base, max: base, parentRadius: radius(d.ParentID)}
			continue
		}
		s.min = math.Min(s.min, base)
		s.max = math.Max(s.max, base)
	}

	for i, d := range defs {
		b := &p.bodies[i]
		if d.Category != Moon || d.Orbit == nil || d.IsRoot() {
			if d.OrbitScale != 0 {
				b.OrbitScale = d.OrbitScale
			}
			continue
		}
		parent, _ := cat.Parent(d)
		parentRadius := radius(parent.ID)
		b.MinDistance = parentRadius + b.VisualRadius + cfg.MoonClearance
		b.Placement = ClearancePlacement

		if base := cfg.baseDistance(d.Orbit); base > 0 {
			if s, ok := spreads[parent.ID]; ok && s.max > 0 {
				var target float64
				target, b.Placement = cfg.outerTarget(d, parent, *s, base)
				b.OrbitScale = target / base
			}
			if periapsis := base * (1 - d.Orbit.Eccentricity); periapsis > 0 {
				if clearance := b.MinDistance / periapsis; b.OrbitScale < clearance {
					b.OrbitScale = clearance
					b.Raised = true
				}
			}
		}

		clamped := clamp(b.OrbitScale, cfg.MinMoonOrbitScale, cfg.MaxMoonOrbitScale)
		b.Clamped = clamped != b.OrbitScale
		b.OrbitScale = clamped
	}
	return p
}

// outerTarget returns the target centre distance of a moon of an outer planet.
func (cfg ScaleConfig) outerTarget(d, parent BodyDefinition, s distanceSpread, base float64) (float64, Placement) {
	R := s.parentRadius
	if mult, ok := cfg.SurfaceMultipliers[d.ID]; ok {
		return R * (1 + mult), MultiplierPlacement
	}
	n := s.normalize(base)
	if parent.Ring != nil {
		near := R*parent.Ring.Outer() + R*cfg.RingBuffer
		far := math.Max(near, R*cfg.RingMaxFactor)
		return lerp(near, far, n), RingPlacement
	}
	factor := lerp(cfg.OuterSurfaceFactorMin, cfg.OuterSurfaceFactorMax, n)
	return R + factor*R, SurfacePlacement
}
