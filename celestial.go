package solarvibe

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Category is the kind of a celestial body.
type Category uint8

const (
	// Star is the root of the catalogue.
	Star Category = iota + 1
	// Planet orbits the star.
	Planet
	// Moon orbits a planet.
	Moon
	// DwarfPlanet orbits the star.
	DwarfPlanet
)

func (c Category) String() string {
	switch c {
	case Star:
		return "star"
	case Planet:
		return "planet"
	case Moon:
		return "moon"
	case DwarfPlanet:
		return "dwarf-planet"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// CategoryFromString returns the category from its name.
func CategoryFromString(name string) (Category, error) {
	switch strings.ToLower(name) {
	case "star":
		return Star, nil
	case "planet":
		return Planet, nil
	case "moon":
		return Moon, nil
	case "dwarf-planet", "dwarf planet", "dwarf":
		return DwarfPlanet, nil
	default:
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownCategory, name)
	}
}

// Default ring geometry, in multiples of the parent visual radius.
const (
	defaultRingInner   = 1.35
	defaultRingOuter   = 2.25
	defaultRingOpacity = 0.3
)

// RingSpec describes a planetary ring. Radii are multiples of the parent visual radius.
type RingSpec struct {
	InnerScale float64
	OuterScale float64
	Color      colorful.Color
	Opacity    float64
	NodeDeg    float64
}

// Inner returns the inner ring scale, defaulted.
func (r RingSpec) Inner() float64 {
	if r.InnerScale == 0 {
		return defaultRingInner
	}
	return r.InnerScale
}

// Outer returns the outer ring scale, defaulted.
func (r RingSpec) Outer() float64 {
	if r.OuterScale == 0 {
		return defaultRingOuter
	}
	return r.OuterScale
}

// Alpha returns the ring opacity, defaulted.
func (r RingSpec) Alpha() float64 {
	if r.Opacity == 0 {
		return defaultRingOpacity
	}
	return r.Opacity
}

// BodyDefinition is the immutable catalogue entry of a body.
// Zero values of the optional numeric fields mean "absent".
type BodyDefinition struct {
	ID                  string
	Name                string
	Category            Category
	RadiusKm            float64
	RenderRadius        float64 // Fixed display radius, overrides the computed one.
	Color               colorful.Color
	ParentID            string
	Orbit               *OrbitElements
	AxialTiltDeg        float64
	RotationPeriodHours float64 // Negative is retrograde.
	Ring                *RingSpec
	OrbitScale          float64 // Fixed orbit scale of non-moons, 1 if absent.
	InitialRotationDeg  float64
}

// String implements the Stringer interface.
func (d BodyDefinition) String() string {
	return d.Name + " (" + d.Category.String() + ")"
}

// IsRoot returns whether the body has no parent.
func (d BodyDefinition) IsRoot() bool {
	return d.ParentID == ""
}

var (
	// ErrDuplicateBody is returned when two definitions share an identifier.
	ErrDuplicateBody = errors.New("duplicate body")
	// ErrUnknownParent is returned when a parent identifier is not in the catalogue.
	ErrUnknownParent = errors.New("unknown parent")
	// ErrTreeDepth is returned when the body tree is deeper than star, planet, moon.
	ErrTreeDepth = errors.New("body tree deeper than two levels")
	// ErrNoRoot is returned when the catalogue has no single parentless star.
	ErrNoRoot = errors.New("catalogue needs exactly one root star")
	// ErrUnknownBody is returned by lookups of an identifier not in the catalogue.
	ErrUnknownBody = errors.New("unknown body")
	// ErrUnknownCategory is returned when parsing a category name fails.
	ErrUnknownCategory = errors.New("unknown category")
)

// Catalogue is an immutable table of bodies, ordered so that every parent
// precedes its children.
type Catalogue struct {
	defs  []BodyDefinition
	index map[string]int
}

// NewCatalogue validates the provided definitions and orders them parent first.
// The relative order of siblings is kept.
func NewCatalogue(defs []BodyDefinition) (*Catalogue, error) {
	byID := make(map[string]BodyDefinition, len(defs))
	roots := 0
	for _, d := range defs {
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateBody, d.ID)
		}
		byID[d.ID] = d
		if d.IsRoot() {
			if d.Category != Star {
				return nil, fmt.Errorf("%w: '%s' has no parent but is a %s", ErrNoRoot, d.ID, d.Category)
			}
			roots++
		}
	}
	if roots != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoRoot, roots)
	}
	depth := func(d BodyDefinition) (int, error) {
		n := 0
		for !d.IsRoot() {
			p, ok := byID[d.ParentID]
			if !ok {
				return 0, fmt.Errorf("%w: '%s' of '%s'", ErrUnknownParent, d.ParentID, d.ID)
			}
			n++
			if n > 2 {
				return 0, fmt.Errorf("%w: '%s'", ErrTreeDepth, d.ID)
			}
			d = p
		}
		return n, nil
	}
	// Depth is at most two, so bucketing by depth is a topological order.
	levels := make([][]BodyDefinition, 3)
	for _, d := range defs {
		n, err := depth(d)
		if err != nil {
			return nil, err
		}
		levels[n] = append(levels[n], d)
	}
	c := &Catalogue{defs: make([]BodyDefinition, 0, len(defs)), index: make(map[string]int, len(defs))}
	for _, level := range levels {
		for _, d := range level {
			c.index[d.ID] = len(c.defs)
			c.defs = append(c.defs, d)
		}
	}
	return c, nil
}

// Len returns the number of bodies.
func (c *Catalogue) Len() int {
	return len(c.defs)
}

// Bodies returns the definitions, parents first. The slice must not be modified.
func (c *Catalogue) Bodies() []BodyDefinition {
	return c.defs
}

// Index returns the position of the body in Bodies.
func (c *Catalogue) Index(id string) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Body returns the definition of the provided body.
func (c *Catalogue) Body(id string) (BodyDefinition, error) {
	i, ok := c.index[id]
	if !ok {
		return BodyDefinition{}, fmt.Errorf("%w: '%s'", ErrUnknownBody, id)
	}
	return c.defs[i], nil
}

// Parent returns the parent definition of the body, if any.
func (c *Catalogue) Parent(d BodyDefinition) (BodyDefinition, bool) {
	if d.IsRoot() {
		return BodyDefinition{}, false
	}
	return c.defs[c.index[d.ParentID]], true
}

// Children returns the direct children of the provided body.
func (c *Catalogue) Children(id string) []BodyDefinition {
	var children []BodyDefinition
	for _, d := range c.defs {
		if d.ParentID == id {
			children = append(children, d)
		}
	}
	return children
}

// mustHex parses a static colour.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Errorf("invalid colour %s: %s", s, err))
	}
	return c
}
