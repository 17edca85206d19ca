package solarvibe

import (
	"math"
	"time"
)

// Manual time steps, in seconds.
const (
	HourSeconds  = 3600
	DaySeconds   = 86400
	WeekSeconds  = 7 * DaySeconds
	MonthSeconds = 30 * DaySeconds     // Fixed 30 days.
	YearSeconds  = 365.25 * DaySeconds // Julian year.
	maxChunk     = 1e9                 // Seconds, well within a time.Duration.
)

// JumpSeconds returns the manual time step bound to a key: upper case moves
// forward and lower case backward. The second value is false for unbound keys.
func JumpSeconds(key rune) (float64, bool) {
	switch key {
	case 'H':
		return HourSeconds, true
	case 'h':
		return -HourSeconds, true
	case 'D', 'P':
		return DaySeconds, true
	case 'd', 'p':
		return -DaySeconds, true
	case 'W', 'V':
		return WeekSeconds, true
	case 'w', 'v':
		return -WeekSeconds, true
	case 'M', 'K':
		return MonthSeconds, true
	case 'm', 'k':
		return -MonthSeconds, true
	case 'Y', 'U':
		return YearSeconds, true
	case 'y', 'u':
		return -YearSeconds, true
	}
	return 0, false
}

// AddSeconds returns t moved by a possibly huge number of seconds, without
// overflowing time.Duration.
func AddSeconds(t time.Time, seconds float64) time.Time {
	for math.Abs(seconds) > maxChunk {
		chunk := math.Copysign(maxChunk, seconds)
		t = t.Add(time.Duration(chunk) * time.Second)
		seconds -= chunk
	}
	return t.Add(time.Duration(math.Round(seconds * float64(time.Second))))
}

// Clock owns the simulated instant, the speed multiplier and the pause flag.
// It is not safe for concurrent use.
type Clock struct {
	steps  []float64
	step   int
	paused bool
	sim    time.Time
	wall   func() time.Time
}

// NewClock returns a running clock set to the current wall time.
// A nil wall function uses time.Now.
func NewClock(cfg ClockConfig, wall func() time.Time) *Clock {
	if wall == nil {
		wall = time.Now
	}
	steps := cfg.SpeedSteps
	if len(steps) == 0 {
		steps = DefaultConfig().Clock.SpeedSteps
	}
	c := &Clock{steps: steps, wall: wall, sim: wall()}
	c.SetStep(cfg.InitialStep)
	return c
}

// Instant returns the simulated instant.
func (c *Clock) Instant() time.Time { return c.sim }

// Set moves the simulated instant to t.
func (c *Clock) Set(t time.Time) { c.sim = t }

// Now snaps the simulated instant to the wall clock.
func (c *Clock) Now() time.Time {
	c.sim = c.wall()
	return c.sim
}

// Jump moves the simulated instant by the provided number of seconds, paused or not.
func (c *Clock) Jump(seconds float64) time.Time {
	c.sim = AddSeconds(c.sim, seconds)
	return c.sim
}

// Play resumes the clock.
func (c *Clock) Play() { c.paused = false }

// Pause freezes the clock. Jumps still apply.
func (c *Clock) Pause() { c.paused = true }

// Paused returns whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Step returns the index of the current speed step.
func (c *Clock) Step() int { return c.step }

// Steps returns the number of speed steps.
func (c *Clock) Steps() int { return len(c.steps) }

// SetStep selects a speed step, clamped to the table, and returns the multiplier.
func (c *Clock) SetStep(i int) float64 {
	c.step = max(0, min(len(c.steps)-1, i))
	return c.Multiplier()
}

// Faster selects the next speed step.
func (c *Clock) Faster() float64 { return c.SetStep(c.step + 1) }

// Slower selects the previous speed step.
func (c *Clock) Slower() float64 { return c.SetStep(c.step - 1) }

// Multiplier returns the simulated seconds per wall second.
func (c *Clock) Multiplier() float64 { return c.steps[c.step] }

// HandleKey applies a speed key ('[' slower, ']' faster) or a manual time step
// key, and returns whether the key is bound.
func (c *Clock) HandleKey(key rune) bool {
	switch key {
	case '[':
		c.Slower()
		return true
	case ']':
		c.Faster()
		return true
	}
	if s, ok := JumpSeconds(key); ok {
		c.Jump(s)
		return true
	}
	return false
}

// Tick advances the simulated instant by wallDelta times the multiplier and
// returns it together with the elapsed simulated seconds, zero while paused.
func (c *Clock) Tick(wallDelta time.Duration) (time.Time, float64) {
	if c.paused {
		return c.sim, 0
	}
	simDelta := wallDelta.Seconds() * c.Multiplier()
	c.sim = AddSeconds(c.sim, simDelta)
	return c.sim, simDelta
}
