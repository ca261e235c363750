// Package eye animates an iris sprite over an eyeball.
//
// Each Animator keeps the iris position, eases it toward a target every
// tick and picks a new random target once a random dwell time has passed.
// The iris moves a fixed fraction of the remaining distance per tick, so it
// slows down as it approaches the target; pixel truncation makes it appear
// to arrive.
package eye

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/flavioheleno/st7789/sprite"
)

// Point is a position in display pixels. Fractional parts are kept between
// ticks and dropped when drawing.
type Point struct {
	X, Y float64
}

// Centered returns the top-left corner that centers a sprite of the given
// size on a display of the given size, using integer division.
func Centered(screen, size image.Point) Point {
	return Point{
		X: float64(screen.X/2 - size.X/2),
		Y: float64(screen.Y/2 - size.Y/2),
	}
}

// Config holds the animation parameters. It is copied by New and never
// changes afterwards.
type Config struct {
	// EaseFactor is the fraction of the remaining distance covered per tick,
	// in (0, 1].
	EaseFactor float64

	// MinDwell and MaxDwell bound the random time spent before choosing a
	// new target. 0 < MinDwell <= MaxDwell.
	MinDwell time.Duration
	MaxDwell time.Duration

	// Center is the iris position when looking straight ahead.
	Center Point

	// Radius is the largest offset from Center on each axis. Targets are
	// drawn from the square Center ± Radius, not a disc.
	Radius float64
}

// DefaultConfig returns the parameters for a 110x110 iris on a 240x240
// panel.
func DefaultConfig() Config {
	return Config{
		EaseFactor: 0.25,
		MinDwell:   250 * time.Millisecond,
		MaxDwell:   2 * time.Second,
		Center:     Centered(image.Pt(240, 240), image.Pt(110, 110)),
		Radius:     30,
	}
}

// Validate reports the first invalid parameter in c.
func (c Config) Validate() error {
	if !(c.EaseFactor > 0 && c.EaseFactor <= 1) {
		return fmt.Errorf("eye: ease factor %v outside (0, 1]", c.EaseFactor)
	}
	if c.MinDwell <= 0 {
		return errors.New("eye: minimum dwell must be positive")
	}
	if c.MaxDwell < c.MinDwell {
		return fmt.Errorf("eye: maximum dwell %v below minimum %v", c.MaxDwell, c.MinDwell)
	}
	if !(c.Radius >= 0) {
		return fmt.Errorf("eye: radius %v must not be negative", c.Radius)
	}
	return nil
}

// State is the mutable part of an Animator.
type State struct {
	Current      Point     // Where the iris is
	Target       Point     // Where the iris is heading
	NextRetarget time.Time // A new target is chosen on the first tick after this
}

// Surface draws the iris. sprite.Scene implements it.
type Surface interface {
	Position(id sprite.ID, x, y int) error
	Present() error
}

// Source supplies uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 implements it.
type Source interface {
	Float64() float64
}

// Opts tunes the construction of an Animator.
type Opts struct {
	// Start is the initial iris position (default: Config.Center).
	Start *Point

	// Now is the construction time (default: time.Now()). The first target
	// is chosen on the first tick after it.
	Now time.Time

	// Rand is the random source (default: a PCG with its own random seed).
	Rand Source
}

// Animator moves one iris sprite on one Surface.
//
// An Animator is not safe for concurrent use.
type Animator struct {
	s     Surface
	iris  sprite.ID
	cfg   Config
	rnd   Source
	state State
}

// New returns an Animator for the iris sprite on s.
//
// opts can be nil to start at the center, now, with a randomly seeded source.
func New(s Surface, iris sprite.ID, cfg Config, opts *Opts) (*Animator, error) {
	if s == nil {
		return nil, errors.New("eye: surface is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Opts{}
	}

	start := cfg.Center
	if opts.Start != nil {
		start = *opts.Start
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Animator{
		s:    s,
		iris: iris,
		cfg:  cfg,
		rnd:  rnd,
		state: State{
			Current:      start,
			Target:       start,
			NextRetarget: now,
		},
	}, nil
}

// Tick advances the animation to now, which must not go backwards between
// calls, then repositions the iris and presents the frame.
//
// Surface errors are returned as is; the animation state has already been
// updated when they occur.
func (a *Animator) Tick(now time.Time) error {
	e := a.cfg.EaseFactor
	a.state.Current.X += (a.state.Target.X - a.state.Current.X) * e
	a.state.Current.Y += (a.state.Target.Y - a.state.Current.Y) * e

	if now.After(a.state.NextRetarget) {
		a.retarget(now)
	}

	if err := a.s.Position(a.iris, int(a.state.Current.X), int(a.state.Current.Y)); err != nil {
		return err
	}
	return a.s.Present()
}

// retarget schedules the next retarget and picks a new target.
func (a *Animator) retarget(now time.Time) {
	dwell := a.cfg.MinDwell + time.Duration(a.rnd.Float64()*float64(a.cfg.MaxDwell-a.cfg.MinDwell))
	a.state.NextRetarget = now.Add(dwell)

	r := a.cfg.Radius
	a.state.Target = Point{
		X: a.cfg.Center.X + a.uniform(-r, r),
		Y: a.cfg.Center.Y + a.uniform(-r, r),
	}
}

// uniform returns a value in [lo, hi).
func (a *Animator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*a.rnd.Float64()
}

// State returns a copy of the animation state.
func (a *Animator) State() State {
	return a.state
}

// Config returns the animation parameters.
func (a *Animator) Config() Config {
	return a.cfg
}
