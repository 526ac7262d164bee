package layout

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/ivlev/slideanim/internal/scenario"
)

// DefaultRowThreshold is how far apart, in EMU, two shape tops may be and
// still count as one row (0.2in).
const DefaultRowThreshold = 182880

// Director fills in slide layouts and animations a scenario leaves out
type Director struct {
	RowThreshold int64
	logger       *zap.Logger
}

// NewDirector creates a new Director with default settings
func NewDirector(logger *zap.Logger) *Director {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Director{
		RowThreshold: DefaultRowThreshold,
		logger:       logger,
	}
}

// Direct settles every slide's layout with Pick and choreographs every slide
// without animations. Slides that list animations keep them.
func (d *Director) Direct(sc *scenario.Scenario) error {
	total := len(sc.Slides)
	for i := range sc.Slides {
		sl := &sc.Slides[i]
		layout := Pick(i+1, total, sl.Layout)
		if sl.Layout != "" && layout != Normalize(sl.Layout) {
			d.logger.Debug("requested layout replaced",
				zap.Int("slide", sl.ID),
				zap.String("requested", sl.Layout),
				zap.String("layout", layout))
		}
		sl.Layout = layout
		if len(sl.Animations) > 0 {
			continue
		}
		if err := d.Choreograph(sl); err != nil {
			return fmt.Errorf("slide %d: %w", sl.ID, err)
		}
	}
	return nil
}

// Choreograph replaces the slide's animations with its layout's cues. Shapes
// sharing a role are staggered in reading order; the result is sorted by
// start delay so the earliest cue is the one triggered by the click.
func (d *Director) Choreograph(sl *scenario.Slide) error {
	ch, err := Lookup(sl.Layout)
	if err != nil {
		return err
	}

	seen := make(map[string]int)
	var out []scenario.Animation
	for _, sh := range d.sortShapes(sl.Shapes) {
		if sh.Role == "" {
			continue
		}
		cue, ok := ch.Cues[sh.Role]
		if !ok {
			d.logger.Debug("role has no cue in layout",
				zap.Int("slide", sl.ID),
				zap.String("shape", sh.Name),
				zap.String("role", sh.Role),
				zap.String("layout", ch.Name))
			continue
		}
		n := seen[sh.Role]
		seen[sh.Role]++

		out = append(out, scenario.Animation{
			Shape:     sh.Name,
			Effect:    cue.Effect,
			Delay:     cue.delay(n),
			Magnitude: cue.Magnitude,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Delay < out[j].Delay
	})
	sl.Animations = out
	return nil
}

// sortShapes orders shapes for staggering. When every shape has a rect they
// are sorted in reading order: shapes are grouped into rows, a new row
// starting whenever a top edge is more than RowThreshold below the previous
// one, and each row runs left-to-right. Otherwise the declared order is kept.
func (d *Director) sortShapes(shapes []scenario.Shape) []scenario.Shape {
	sorted := make([]scenario.Shape, len(shapes))
	copy(sorted, shapes)

	for _, sh := range sorted {
		if sh.Rect == nil {
			return sorted
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rect.Y < sorted[j].Rect.Y
	})

	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].Rect.Y-sorted[i-1].Rect.Y <= d.RowThreshold {
			continue
		}
		row := sorted[start:i]
		sort.SliceStable(row, func(a, b int) bool {
			return row[a].Rect.X < row[b].Rect.X
		})
		start = i
	}
	return sorted
}
