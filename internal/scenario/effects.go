package scenario

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ivlev/slideanim/internal/anim"
)

var (
	ErrUnknownEffect = errors.New("unknown effect")
	ErrUnknownShape  = errors.New("unknown shape")
	ErrNoRect        = errors.New("shape has no rect")
)

// Effect names accepted in scenario documents.
const (
	EffectAppear     = "appear"
	EffectFade       = "fade"
	EffectFlyIn      = "fly-in"
	EffectFloatUp    = "float-up"
	EffectZoom       = "zoom"
	EffectWipe       = "wipe"
	EffectSplit      = "split"
	EffectGrow       = "grow"
	EffectShrink     = "shrink"
	EffectSpin       = "spin"
	EffectPulse      = "pulse"
	EffectTeeter     = "teeter"
	EffectSweepLeft  = "sweep-left"
	EffectSweepRight = "sweep-right"
	EffectSweepBelow = "sweep-below"
	EffectPath       = "path"
)

var effectAliases = map[string]string{
	"fly":   EffectFlyIn,
	"float": EffectFloatUp,
}

var entranceEffects = map[string]struct {
	kind anim.EntranceKind
	ms   int
}{
	EffectFade:    {anim.EntranceFade, anim.DefaultFadeMs},
	EffectFlyIn:   {anim.EntranceFlyIn, anim.DefaultFlyInMs},
	EffectFloatUp: {anim.EntranceFloatUp, anim.DefaultFloatUpMs},
	EffectZoom:    {anim.EntranceZoom, anim.DefaultZoomMs},
	EffectWipe:    {anim.EntranceWipe, anim.DefaultWipeMs},
	EffectSplit:   {anim.EntranceSplit, anim.DefaultSplitMs},
}

var emphasisEffects = map[string]struct {
	kind anim.EmphasisKind
	ms   int
}{
	EffectGrow:   {anim.EmphasisGrow, anim.DefaultGrowMs},
	EffectShrink: {anim.EmphasisShrink, anim.DefaultShrinkMs},
	EffectSpin:   {anim.EmphasisSpin, anim.DefaultSpinMs},
	EffectPulse:  {anim.EmphasisPulse, anim.DefaultPulseMs},
	EffectTeeter: {anim.EmphasisTeeter, anim.DefaultTeeterMs},
}

// NormalizeEffect folds case and underscores and resolves short aliases.
func NormalizeEffect(name string) string {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if alias, ok := effectAliases[n]; ok {
		return alias
	}
	return n
}

// Effects lists every effect name in order.
func Effects() []string {
	names := []string{EffectAppear, EffectSweepLeft, EffectSweepRight, EffectSweepBelow, EffectPath}
	for n := range entranceEffects {
		names = append(names, n)
	}
	for n := range emphasisEffects {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (a Animation) durationOr(def int) int {
	if a.Duration == 0 {
		return def
	}
	return a.Duration
}

// Descriptor builds the animation descriptor the effect names. A zero
// duration selects the effect's default. The path effect needs an explicit
// Path here; paths between shapes go through Slide.Descriptor.
func (a Animation) Descriptor() (anim.Descriptor, error) {
	effect := NormalizeEffect(a.Effect)

	if e, ok := entranceEffects[effect]; ok {
		return descriptor(anim.NewEntrance(e.kind, anim.Direction(a.Direction), a.durationOr(e.ms)))
	}
	if e, ok := emphasisEffects[effect]; ok {
		return descriptor(anim.NewEmphasis(e.kind, a.Magnitude, a.durationOr(e.ms)))
	}

	switch effect {
	case EffectAppear:
		return descriptor(anim.NewEntrance(anim.EntranceAppear, anim.Direction(a.Direction), 1))
	case EffectSweepLeft:
		return descriptor(anim.SweepFromLeft(a.durationOr(anim.DefaultMotionMs)))
	case EffectSweepRight:
		return descriptor(anim.SweepFromRight(a.durationOr(anim.DefaultMotionMs)))
	case EffectSweepBelow:
		return descriptor(anim.SweepFromBelow(a.durationOr(anim.DefaultMotionMs)))
	case EffectPath:
		return descriptor(anim.NewMotionPath(a.Path, a.durationOr(anim.DefaultMotionMs)))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, a.Effect)
}

// Descriptor resolves a on this slide. A path effect with From set moves
// the shape from the From shape's position to its own.
func (s *Slide) Descriptor(a Animation, size Size) (anim.Descriptor, error) {
	if NormalizeEffect(a.Effect) != EffectPath || a.From == "" || a.Path != "" {
		return a.Descriptor()
	}

	from, ok := s.Shape(a.From)
	if !ok {
		return nil, fmt.Errorf("path from %q: %w", a.From, ErrUnknownShape)
	}
	to, ok := s.Shape(a.Shape)
	if !ok {
		return nil, fmt.Errorf("path to %q: %w", a.Shape, ErrUnknownShape)
	}
	if from.Rect == nil || to.Rect == nil {
		return nil, fmt.Errorf("path from %q to %q: %w", a.From, a.Shape, ErrNoRect)
	}
	return descriptor(anim.PathBetween(from.Rect.toAnim(), to.Rect.toAnim(), size.W, size.H, a.durationOr(anim.DefaultMotionMs)))
}

func (r Rectangle) toAnim() anim.Rect {
	return anim.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// descriptor drops the zero value a failed constructor returns alongside
// its error.
func descriptor[D anim.Descriptor](d D, err error) (anim.Descriptor, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}
