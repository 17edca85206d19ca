package solarvibe

import (
	"errors"
	"fmt"
	"iter"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNoOrbit is returned when a path is requested for a body which does not orbit.
var ErrNoOrbit = errors.New("body has no orbit")

// Path returns the closed orbit of the body as segments+1 points relative to its
// parent centre, the last point repeating the first. Samples are spaced in true
// anomaly and placed exactly like the per frame positions, so the sequence does
// not depend on the simulated time and may be iterated any number of times.
func (e *Engine) Path(id string) (iter.Seq[mgl64.Vec3], error) {
	b, err := e.Body(id)
	if err != nil {
		return nil, err
	}
	if b.orbit == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrNoOrbit, id)
	}
	segments, ds := e.segments, e.cfg.DistanceScale
	return func(yield func(mgl64.Vec3) bool) {
		for i := 0; i <= segments; i++ {
			ν := float64(i%segments) / float64(segments) * twoPi
			p, _ := b.relative(b.orbit.ConicRadius(ν), ν, ds)
			if !yield(p) {
				return
			}
		}
	}, nil
}
