package engine

import (
	"fmt"

	"github.com/ivlev/slideanim/internal/anim"
	"github.com/ivlev/slideanim/internal/ids"
	"github.com/ivlev/slideanim/internal/scenario"
	"github.com/ivlev/slideanim/internal/slide"
	"github.com/ivlev/slideanim/internal/timing"
)

// SlideResult is one built slide.
type SlideResult struct {
	ID         int
	Tree       *slide.Tree
	Shapes     map[string]anim.ShapeRef
	Animations int
	Transition slide.Result
	Timing     slide.Result
}

// OK reports whether both transition and timing were applied.
func (r *SlideResult) OK() bool {
	return r.Transition.OK() && r.Timing.OK()
}

// BuildSlide builds one slide synchronously: shapes first, so the document
// assigns their ids, then the transition, then the timing tree numbered
// above every shape id. A slide without animations gets no timing.
func (p *DeckProject) BuildSlide(sl scenario.Slide) (*SlideResult, error) {
	tree := slide.NewTree()
	res := &SlideResult{
		ID:     sl.ID,
		Tree:   tree,
		Shapes: make(map[string]anim.ShapeRef, len(sl.Shapes)),
	}
	for _, sh := range sl.Shapes {
		res.Shapes[sh.Name] = tree.AddShape(sh.Name)
	}

	seq := timing.NewSequence()
	for i, a := range sl.Animations {
		ref, ok := res.Shapes[a.Shape]
		if !ok {
			return nil, fmt.Errorf("animation %d: %w: %q", i+1, scenario.ErrUnknownShape, a.Shape)
		}
		d, err := sl.Descriptor(a, p.size())
		if err != nil {
			return nil, fmt.Errorf("animation %d on %q: %w", i+1, a.Shape, err)
		}
		if err := seq.Add(ref, d, a.Delay); err != nil {
			return nil, fmt.Errorf("animation %d: %w", i+1, err)
		}
	}
	res.Animations = seq.Len()

	name := sl.Transition
	if name == "" {
		name = p.Config.DefaultTransition
	}
	res.Transition = p.Transitions.Apply(tree, name)

	res.Timing = slide.Result{Part: slide.PartTiming}
	if seq.Len() > 0 {
		alloc := ids.New(max(p.Config.IDBaseline, tree.MaxShapeID()+1))
		res.Timing = timing.Inject(tree, seq, alloc)
	}
	return res, nil
}
