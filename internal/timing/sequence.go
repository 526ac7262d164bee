// Package timing collects a slide's animation actions and serializes them
// into one p:timing fragment.
//
// The first entrance registered is the click trigger: it starts when the
// viewer advances the slide, and any delay attached to it is ignored. Every
// later entrance follows the same click after its own delay, so entrances
// overlap rather than chain. Emphasis and motion actions are independent
// blocks started at their own delay from the same click.
package timing

import (
	"errors"
	"fmt"

	"github.com/ivlev/slideanim/internal/anim"
)

var (
	ErrNoTarget      = errors.New("animation target has no shape id")
	ErrNegativeDelay = errors.New("animation delay is negative")
	ErrNoDescriptor  = errors.New("animation has no descriptor")
)

// Trigger is how an action is started. It is derived from the action's
// position in the sequence, never chosen by the caller.
type Trigger int

const (
	ClickTrigger Trigger = iota + 1
	FollowsClick
	Independent
)

func (t Trigger) String() string {
	switch t {
	case ClickTrigger:
		return "click"
	case FollowsClick:
		return "follows-click"
	case Independent:
		return "independent"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// nodeType is the host format's nodeType for the trigger.
func (t Trigger) nodeType() string {
	if t == ClickTrigger {
		return "clickEffect"
	}
	return "withEffect"
}

// Action is one registered animation.
type Action struct {
	Target     anim.ShapeRef
	Descriptor anim.Descriptor
	DelayMs    int
	Trigger    Trigger
}

// StartDelay is the delay written to the action's start condition: 0 for
// the click trigger, DelayMs otherwise.
func (a Action) StartDelay() int {
	if a.Trigger == ClickTrigger {
		return 0
	}
	return a.DelayMs
}

// Sequence is the set of animations for one slide. It is built by one
// caller, consumed by Build or Inject, and then discarded.
type Sequence struct {
	entrances []Action
	extras    []Action
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Add registers d against target. Entrances join the ordered entrance list;
// emphasis and motion actions are kept apart as independent extras.
func (s *Sequence) Add(target anim.ShapeRef, d anim.Descriptor, delayMs int) error {
	if d == nil {
		return ErrNoDescriptor
	}
	if !target.Valid() {
		return fmt.Errorf("%s on %s: %w", d.Category(), target, ErrNoTarget)
	}
	if delayMs < 0 {
		return fmt.Errorf("%s on %s: %w: %d", d.Category(), target, ErrNegativeDelay, delayMs)
	}

	a := Action{Target: target, Descriptor: d, DelayMs: delayMs}
	if d.Category() == anim.CategoryEntrance {
		s.entrances = append(s.entrances, a)
	} else {
		s.extras = append(s.extras, a)
	}
	return nil
}

// Len is the number of registered actions.
func (s *Sequence) Len() int {
	return len(s.entrances) + len(s.extras)
}

// Entrances returns the entrance actions in registration order with their
// triggers assigned.
func (s *Sequence) Entrances() []Action {
	out := make([]Action, len(s.entrances))
	for i, a := range s.entrances {
		a.Trigger = FollowsClick
		if i == 0 {
			a.Trigger = ClickTrigger
		}
		out[i] = a
	}
	return out
}

// Extras returns the emphasis and motion actions in registration order.
func (s *Sequence) Extras() []Action {
	out := make([]Action, len(s.extras))
	for i, a := range s.extras {
		a.Trigger = Independent
		out[i] = a
	}
	return out
}

// Actions returns every action in emission order: entrances, then extras.
func (s *Sequence) Actions() []Action {
	return append(s.Entrances(), s.Extras()...)
}

func (s *Sequence) addBuilt(target anim.ShapeRef, d anim.Descriptor, err error, delayMs int) error {
	if err != nil {
		return fmt.Errorf("%s: %w", target, err)
	}
	return s.Add(target, d, delayMs)
}

// Appear reveals target with no visual effect.
func (s *Sequence) Appear(target anim.ShapeRef, delayMs int) error {
	return s.Add(target, anim.Appear(), delayMs)
}

func (s *Sequence) Fade(target anim.ShapeRef, delayMs int) error {
	d, err := anim.Fade(anim.DefaultFadeMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) FlyIn(target anim.ShapeRef, from anim.Direction, delayMs int) error {
	d, err := anim.FlyIn(from, anim.DefaultFlyInMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) FloatUp(target anim.ShapeRef, delayMs int) error {
	d, err := anim.FloatUp(anim.DefaultFloatUpMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) ZoomIn(target anim.ShapeRef, delayMs int) error {
	d, err := anim.ZoomIn(anim.DefaultZoomMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) WipeIn(target anim.ShapeRef, delayMs int) error {
	d, err := anim.WipeIn(anim.FromLeft, anim.DefaultWipeMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) SplitIn(target anim.ShapeRef, delayMs int) error {
	d, err := anim.SplitIn(anim.DefaultSplitMs)
	return s.addBuilt(target, d, err, delayMs)
}

// Grow scales target up by scalePercent and back.
func (s *Sequence) Grow(target anim.ShapeRef, scalePercent, delayMs int) error {
	d, err := anim.Grow(scalePercent, anim.DefaultGrowMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) Shrink(target anim.ShapeRef, scalePercent, delayMs int) error {
	d, err := anim.Shrink(scalePercent, anim.DefaultShrinkMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) Spin(target anim.ShapeRef, degrees, delayMs int) error {
	d, err := anim.Spin(degrees, anim.DefaultSpinMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) Pulse(target anim.ShapeRef, delayMs int) error {
	d, err := anim.Pulse(0, anim.DefaultPulseMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) Teeter(target anim.ShapeRef, delayMs int) error {
	d, err := anim.Teeter(0, anim.DefaultTeeterMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) SweepFromLeft(target anim.ShapeRef, delayMs int) error {
	d, err := anim.SweepFromLeft(anim.DefaultMotionMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) SweepFromRight(target anim.ShapeRef, delayMs int) error {
	d, err := anim.SweepFromRight(anim.DefaultMotionMs)
	return s.addBuilt(target, d, err, delayMs)
}

func (s *Sequence) SweepFromBelow(target anim.ShapeRef, delayMs int) error {
	d, err := anim.SweepFromBelow(anim.DefaultMotionMs)
	return s.addBuilt(target, d, err, delayMs)
}
