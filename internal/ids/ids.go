// Package ids allocates timing-node identifiers for one slide build.
package ids

// ID identifies a time node (p:cTn) inside one slide's timing tree.
type ID int

// Invalid is the zero ID; the allocator never returns it.
const Invalid ID = 0

// Baseline is the first ID handed out when the caller has not inspected the
// slide's shapes. It sits above the low numbers used by the group shape and
// placeholders.
const Baseline = 10

// Allocator hands out strictly increasing IDs. One Allocator belongs to one
// slide build; it is not safe for concurrent use and must not be shared
// between slides.
type Allocator struct {
	next ID
}

// New creates an allocator whose first ID is baseline. Values below 1 are
// raised to 1.
func New(baseline int) *Allocator {
	a := &Allocator{}
	a.Reset(baseline)
	return a
}

// Above creates an allocator starting past maxShapeID, and never below
// Baseline, so time node IDs cannot collide with the slide's shape IDs.
func Above(maxShapeID int) *Allocator {
	start := maxShapeID + 1
	if start < Baseline {
		start = Baseline
	}
	return New(start)
}

// Allocate returns the current ID and advances the counter.
func (a *Allocator) Allocate() ID {
	v := a.next
	a.next++
	return v
}

// Peek returns the ID the next Allocate call will return.
func (a *Allocator) Peek() ID {
	return a.next
}

// Reset restarts the counter at baseline for a new slide context.
func (a *Allocator) Reset(baseline int) {
	if baseline < 1 {
		baseline = 1
	}
	a.next = ID(baseline)
}
