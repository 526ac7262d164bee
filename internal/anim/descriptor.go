// Package anim describes what a shape animation does: the closed set of
// entrance, emphasis and motion-path descriptors consumed by the timing
// tree builder.
//
// Every constructor validates its input and returns a *FieldError instead of
// defaulting bad values, so a Descriptor that exists is always serializable.
package anim

import (
	"errors"
	"fmt"
)

// ErrInvalidDescriptor is wrapped by every construction error.
var ErrInvalidDescriptor = errors.New("invalid animation descriptor")

// Category is the animation class a descriptor belongs to.
type Category int

const (
	CategoryEntrance Category = iota + 1
	CategoryEmphasis
	CategoryMotion
)

func (c Category) String() string {
	switch c {
	case CategoryEntrance:
		return "entrance"
	case CategoryEmphasis:
		return "emphasis"
	case CategoryMotion:
		return "motion"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Descriptor is implemented by Entrance, Emphasis and MotionPath only.
type Descriptor interface {
	Category() Category
	// Duration is the effect length in milliseconds; always positive.
	Duration() int
	// PresetID is the host format's preset number for the effect.
	PresetID() int

	descriptor()
}

// FieldError reports which field of which descriptor was rejected.
type FieldError struct {
	Descriptor string
	Field      string
	Value      any
	Reason     string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v: %s", e.Descriptor, e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidDescriptor
}

func fieldErr(descriptor, field string, value any, reason string) error {
	return &FieldError{Descriptor: descriptor, Field: field, Value: value, Reason: reason}
}

func checkDuration(descriptor string, ms int) error {
	if ms <= 0 {
		return fieldErr(descriptor, "duration", ms, "must be a positive number of milliseconds")
	}
	return nil
}

// ShapeRef is a handle to a shape owned by the slide document. Only SpID is
// used by the engine; Name is carried for diagnostics.
type ShapeRef struct {
	SpID int
	Name string
}

// Valid reports whether the reference carries a shape identifier.
func (s ShapeRef) Valid() bool {
	return s.SpID > 0
}

func (s ShapeRef) String() string {
	if s.Name == "" {
		return fmt.Sprintf("shape#%d", s.SpID)
	}
	return fmt.Sprintf("%s#%d", s.Name, s.SpID)
}

// Rect is a shape's frame in EMU.
type Rect struct {
	X, Y, W, H int64
}
