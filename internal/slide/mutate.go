package slide

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Part names a slide child the engine may replace.
type Part string

const (
	PartTransition Part = "transition"
	PartTiming     Part = "timing"
)

// Reason classifies why a mutation was not applied.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNilTree
	ReasonEmpty
	ReasonMalformed
	ReasonWrongElement
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNilTree:
		return "nil tree"
	case ReasonEmpty:
		return "empty fragment"
	case ReasonMalformed:
		return "malformed fragment"
	case ReasonWrongElement:
		return "wrong element"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

var (
	ErrNilTree      = errors.New("no slide tree")
	ErrEmpty        = errors.New("fragment has no root element")
	ErrWrongElement = errors.New("fragment root is not the expected element")
)

// Result reports the outcome of SetTiming or SetTransition. A failed
// mutation leaves the slide without that part; everything else is intact.
type Result struct {
	Part   Part
	Reason Reason
	Err    error
}

// OK reports whether the fragment was applied.
func (r Result) OK() bool {
	return r.Reason == ReasonNone
}

func (r Result) String() string {
	if r.OK() {
		return fmt.Sprintf("%s applied", r.Part)
	}
	return fmt.Sprintf("%s not applied (%s): %v", r.Part, r.Reason, r.Err)
}

func failed(part Part, reason Reason, err error) Result {
	return Result{Part: part, Reason: reason, Err: err}
}

// SetTiming replaces the slide's p:timing with fragment. Any existing timing
// is removed first, so calling it again never accumulates siblings.
func SetTiming(t *Tree, fragment string) Result {
	if t == nil {
		return failed(PartTiming, ReasonNilTree, ErrNilTree)
	}
	root := t.root()
	removeChildren(root, PartTiming)

	el, res := parseFragment(PartTiming, fragment)
	if !res.OK() {
		return res
	}
	insertBefore(root, el, "extLst")
	return Result{Part: PartTiming}
}

// SetTransition replaces the slide's p:transition with fragment, keeping it
// ahead of p:timing whichever of the two was set first.
func SetTransition(t *Tree, fragment string) Result {
	if t == nil {
		return failed(PartTransition, ReasonNilTree, ErrNilTree)
	}
	root := t.root()
	removeChildren(root, PartTransition)

	el, res := parseFragment(PartTransition, fragment)
	if !res.OK() {
		return res
	}
	insertBefore(root, el, string(PartTiming), "extLst")
	return Result{Part: PartTransition}
}

// RemoveTiming drops the slide's timing, if any.
func RemoveTiming(t *Tree) {
	if t != nil {
		removeChildren(t.root(), PartTiming)
	}
}

// RemoveTransition drops the slide's transition, if any.
func RemoveTransition(t *Tree) {
	if t != nil {
		removeChildren(t.root(), PartTransition)
	}
}

func parseFragment(part Part, fragment string) (*etree.Element, Result) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(fragment); err != nil {
		return nil, failed(part, ReasonMalformed, fmt.Errorf("parse %s fragment: %w", part, err))
	}

	roots := doc.ChildElements()
	switch {
	case len(roots) == 0:
		return nil, failed(part, ReasonEmpty, ErrEmpty)
	case len(roots) > 1:
		return nil, failed(part, ReasonMalformed, fmt.Errorf("parse %s fragment: %d root elements", part, len(roots)))
	case roots[0].Tag != string(part) || roots[0].NamespaceURI() != NSPresentation:
		return nil, failed(part, ReasonWrongElement, fmt.Errorf("%w: got %s in %q, want p:%s", ErrWrongElement, roots[0].FullTag(), roots[0].NamespaceURI(), part))
	}
	return roots[0], Result{Part: part}
}

func removeChildren(root *etree.Element, part Part) {
	for el := root.SelectElement(string(part)); el != nil; el = root.SelectElement(string(part)) {
		root.RemoveChild(el)
	}
}

// insertBefore places el ahead of the first existing child named by one of
// tags, or appends it when there is none.
func insertBefore(root, el *etree.Element, tags ...string) {
	for _, tag := range tags {
		if next := root.SelectElement(tag); next != nil {
			root.InsertChildAt(next.Index(), el)
			return
		}
	}
	root.AddChild(el)
}
