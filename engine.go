package solarvibe

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/soniakeys/meeus/v3/julian"
)

// VisualBody is the derived, per frame state of a catalogue body. It is owned
// by the Engine and mutated in place by Update.
type VisualBody struct {
	def           BodyDefinition
	parent        int // Index of the parent in the engine, -1 for the root.
	orbit         *Orbit
	scale         BodyScale
	alignment     Rotation
	aligned       bool
	rotationSpeed float64 // rad/s, signed.
	position      mgl64.Vec3
	rotation      float64 // rad, in [0, 2π).
}

// ID returns the catalogue identifier.
func (b *VisualBody) ID() string { return b.def.ID }

// Definition returns the catalogue entry.
func (b *VisualBody) Definition() BodyDefinition { return b.def }

// Position returns the world position after the last update.
func (b *VisualBody) Position() mgl64.Vec3 { return b.position }

// RotationAngle returns the spin angle in radians, in [0, 2π).
func (b *VisualBody) RotationAngle() float64 { return b.rotation }

// RotationSpeed returns the spin rate in rad/s. It is negative for retrograde spins.
func (b *VisualBody) RotationSpeed() float64 { return b.rotationSpeed }

// Scale returns the setup time visual scale.
func (b *VisualBody) Scale() BodyScale { return b.scale }

// Alignment returns the orbital plane correction, if any.
func (b *VisualBody) Alignment() (Rotation, bool) { return b.alignment, b.aligned }

// RotationSpeed returns the spin rate in rad/s of a body with the provided
// signed rotation period. No period means no spin.
func RotationSpeed(periodHours float64) float64 {
	if periodHours == 0 {
		return 0
	}
	return twoPi / (periodHours * 3600)
}

// relative places the polar coordinates (r, ν) of the body's orbit in the scene,
// relative to its parent centre. It returns whether the minimum distance applied.
func (b *VisualBody) relative(r, ν float64, distanceScale float64) (mgl64.Vec3, bool) {
	p := b.orbit.PolarToWorld(r, ν).Mul(distanceScale * b.scale.OrbitScale)
	if b.aligned {
		p = b.alignment.Apply(p)
	}
	if md := b.scale.MinDistance; md > 0 && p.Len() < md {
		return withLength(p, md), true
	}
	return p, false
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger of the engine.
func WithLogger(logger kitlog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics sets the collectors updated by every frame.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// minPathSegments is the smallest path that still encloses an area.
const minPathSegments = 3

// WithPathSegments sets the number of segments of the orbit paths. Values
// below three are ignored.
func WithPathSegments(n int) Option {
	return func(e *Engine) {
		if n >= minPathSegments {
			e.segments = n
		}
	}
}

// WithInitialRotation overrides the initial spin angle, in degrees, of a body.
func WithInitialRotation(id string, deg float64) Option {
	return func(e *Engine) {
		e.initialRotation[id] = deg
	}
}

// Engine owns the visual bodies of a catalogue and updates them frame by frame.
// It is not safe for concurrent use.
type Engine struct {
	cat             *Catalogue
	cfg             ScaleConfig
	plan            *ScalePlan
	bodies          []VisualBody
	segments        int
	initialRotation map[string]float64
	instant         time.Time
	logger          kitlog.Logger
	metrics         *Metrics
}

// NewEngine plans the visual scale of the catalogue and builds its bodies, in
// catalogue order. Positions are at the origin until the first Update.
func NewEngine(cat *Catalogue, cfg ScaleConfig, opts ...Option) *Engine {
	e := &Engine{
		cat:             cat,
		cfg:             cfg,
		segments:        512,
		initialRotation: make(map[string]float64),
		logger:          kitlog.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = kitlog.With(e.logger, "subsys", "engine")
	e.plan = PlanScale(cat, cfg)

	defs := cat.Bodies()
	e.bodies = make([]VisualBody, len(defs))
	for i, d := range defs {
		b := &e.bodies[i]
		b.def = d
		b.parent = -1
		b.scale = e.plan.bodies[i]
		b.alignment = IdentityRotation()
		b.rotationSpeed = RotationSpeed(d.RotationPeriodHours)
		deg, ok := e.initialRotation[d.ID]
		if !ok {
			deg = d.InitialRotationDeg
		}
		b.rotation = WrapAngle(Deg2rad(deg))
		if d.Orbit != nil {
			b.orbit = NewOrbit(*d.Orbit)
		}
		if parent, ok := cat.Parent(d); ok {
			b.parent, _ = cat.Index(parent.ID)
			if d.Orbit != nil && d.Category == Moon && parent.Ring != nil {
				b.alignment, b.aligned = ComputeAlignment(*d.Orbit, RingNormal(parent.AxialTiltDeg, parent.Ring.NodeDeg))
			}
		}
		level.Debug(e.logger).Log("body", d.ID, "class", b.scale.Class, "placement", b.scale.Placement,
			"radius", b.scale.VisualRadius, "orbitScale", b.scale.OrbitScale, "minDistance", b.scale.MinDistance,
			"raised", b.scale.Raised, "clamped", b.scale.Clamped, "aligned", b.aligned)
	}
	level.Info(e.logger).Log("status", "ready", "bodies", len(e.bodies))
	return e
}

// Catalogue returns the catalogue the engine was built from.
func (e *Engine) Catalogue() *Catalogue { return e.cat }

// Bodies returns the visual bodies, parents first.
func (e *Engine) Bodies() []*VisualBody {
	bodies := make([]*VisualBody, len(e.bodies))
	for i := range e.bodies {
		bodies[i] = &e.bodies[i]
	}
	return bodies
}

// Body returns the visual body of the provided identifier.
func (e *Engine) Body(id string) (*VisualBody, error) {
	i, ok := e.cat.Index(id)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownBody, id)
	}
	return &e.bodies[i], nil
}

// Instant returns the simulated instant of the last update.
func (e *Engine) Instant() time.Time { return e.instant }

// Update moves every body to its position at t and advances the spins by
// simDelta simulated seconds, which is negative when time runs backward.
// Parents are always updated before their children.
func (e *Engine) Update(t time.Time, simDelta float64) {
	start := time.Now()
	for i := range e.bodies {
		b := &e.bodies[i]
		if b.orbit == nil {
			b.position = mgl64.Vec3{}
		} else {
			s := b.orbit.State(t)
			p, floored := b.relative(s.R, s.ν, e.cfg.DistanceScale)
			if floored {
				e.metrics.floorClamp(b.def.ID)
			}
			if b.parent >= 0 {
				p = p.Add(e.bodies[b.parent].position)
			}
			b.position = p
		}
		if b.rotationSpeed != 0 && simDelta != 0 {
			b.rotation = WrapAngle(b.rotation + b.rotationSpeed*simDelta)
		}
	}
	e.instant = t
	e.metrics.observeFrame(time.Since(start), ElapsedDays(t))
}

// BodyState is the per frame output of a body.
type BodyState struct {
	ID       string     `json:"id"`
	Position mgl64.Vec3 `json:"position"`
	Rotation float64    `json:"rotation"`
}

// Snapshot is a read only copy of every body after an update.
type Snapshot struct {
	Instant   time.Time   `json:"instant"`
	JulianDay float64     `json:"jd"`
	Bodies    []BodyState `json:"bodies"`
}

// Snapshot copies the state of the last update.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{Instant: e.instant, JulianDay: julian.TimeToJD(e.instant), Bodies: make([]BodyState, len(e.bodies))}
	for i, b := range e.bodies {
		s.Bodies[i] = BodyState{ID: b.def.ID, Position: b.position, Rotation: b.rotation}
	}
	return s
}

// BodyPlan is the setup time output of a body.
type BodyPlan struct {
	BodyScale
	RotationSpeed float64     `json:"rotationSpeed"`
	Alignment     *mgl64.Quat `json:"alignment,omitempty"`
}

// Plan returns the setup time outputs of every body, in catalogue order.
func (e *Engine) Plan() []BodyPlan {
	plan := make([]BodyPlan, len(e.bodies))
	for i, b := range e.bodies {
		plan[i] = BodyPlan{BodyScale: b.scale, RotationSpeed: b.rotationSpeed}
		if b.aligned {
			q := b.alignment.Quat()
			plan[i].Alignment = &q
		}
	}
	return plan
}
