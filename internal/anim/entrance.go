package anim

// EntranceKind names an entrance effect.
type EntranceKind string

const (
	EntranceAppear  EntranceKind = "appear"
	EntranceFade    EntranceKind = "fade"
	EntranceFlyIn   EntranceKind = "fly-in"
	EntranceFloatUp EntranceKind = "float-up"
	EntranceZoom    EntranceKind = "zoom"
	EntranceWipe    EntranceKind = "wipe"
	EntranceSplit   EntranceKind = "split"
)

// Direction is the side an entrance comes from.
type Direction string

const (
	DirNone    Direction = ""
	FromBottom Direction = "bottom"
	FromTop    Direction = "top"
	FromLeft   Direction = "left"
	FromRight  Direction = "right"
)

// Filter is the transition-in filter of an entrance's visual effect.
type Filter string

const (
	FilterNone      Filter = ""
	FilterFade      Filter = "fade"
	FilterWipeLeft  Filter = "wipe(left)"
	FilterWipeRight Filter = "wipe(right)"
)

// Valid reports whether f is one of the supported filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterNone, FilterFade, FilterWipeLeft, FilterWipeRight:
		return true
	}
	return false
}

// Default entrance durations in milliseconds.
const (
	DefaultFadeMs    = 500
	DefaultFlyInMs   = 600
	DefaultFloatUpMs = 650
	DefaultZoomMs    = 500
	DefaultWipeMs    = 500
	DefaultSplitMs   = 500
)

// Entrance reveals a hidden shape.
type Entrance struct {
	Kind       EntranceKind
	Preset     int
	Subtype    int
	Filter     Filter
	DurationMs int
}

func (Entrance) Category() Category { return CategoryEntrance }
func (e Entrance) Duration() int { return e.DurationMs }
func (e Entrance) PresetID() int { return e.Preset }
func (Entrance) descriptor() {}

var flySubtypes = map[Direction]int{
	FromBottom: 8,
	FromTop:    4,
	FromRight:  2,
	FromLeft:   1,
}

// NewEntrance validates and builds an entrance descriptor. dir is only
// meaningful for fly-in (default bottom) and wipe (default left); for the
// other kinds it must be empty. Appear is instantaneous and always lasts 1ms.
func NewEntrance(kind EntranceKind, dir Direction, durationMs int) (Entrance, error) {
	const name = "entrance"

	if kind == EntranceAppear {
		if dir != DirNone {
			return Entrance{}, fieldErr(name, "direction", dir, "appear takes no direction")
		}
		return Entrance{Kind: kind, Preset: 1, DurationMs: 1}, nil
	}

	if err := checkDuration(name, durationMs); err != nil {
		return Entrance{}, err
	}

	e := Entrance{Kind: kind, Filter: FilterFade, DurationMs: durationMs}
	switch kind {
	case EntranceFade:
		e.Preset = 10
	case EntranceFloatUp:
		e.Preset, e.Subtype = 2, 8
	case EntranceZoom:
		e.Preset = 18
	case EntranceSplit:
		e.Preset, e.Subtype = 27, 10
	case EntranceFlyIn:
		if dir == DirNone {
			dir = FromBottom
		}
		sub, ok := flySubtypes[dir]
		if !ok {
			return Entrance{}, fieldErr(name, "direction", dir, "fly-in comes from bottom, top, left or right")
		}
		e.Preset, e.Subtype = 2, sub
		return e, nil
	case EntranceWipe:
		e.Preset = 21
		switch dir {
		case DirNone, FromLeft:
			e.Subtype, e.Filter = 8, FilterWipeRight
		case FromRight:
			e.Subtype, e.Filter = 2, FilterWipeLeft
		default:
			return Entrance{}, fieldErr(name, "direction", dir, "wipe comes from left or right")
		}
		return e, nil
	default:
		return Entrance{}, fieldErr(name, "kind", kind, "unknown entrance effect")
	}

	if dir != DirNone {
		return Entrance{}, fieldErr(name, "direction", dir, string(kind)+" takes no direction")
	}
	return e, nil
}

// WithFilter returns a copy of e using filter f. Appear cannot carry a filter.
func (e Entrance) WithFilter(f Filter) (Entrance, error) {
	if !f.Valid() {
		return Entrance{}, fieldErr("entrance", "filter", f, "must be fade, wipe(left), wipe(right) or none")
	}
	if e.Kind == EntranceAppear && f != FilterNone {
		return Entrance{}, fieldErr("entrance", "filter", f, "appear has no visual effect")
	}
	e.Filter = f
	return e, nil
}

// Appear shows the shape without a visual effect.
func Appear() Entrance {
	e, _ := NewEntrance(EntranceAppear, DirNone, 1)
	return e
}

func Fade(durationMs int) (Entrance, error) {
	return NewEntrance(EntranceFade, DirNone, durationMs)
}

func FlyIn(dir Direction, durationMs int) (Entrance, error) {
	return NewEntrance(EntranceFlyIn, dir, durationMs)
}

func FloatUp(durationMs int) (Entrance, error) {
	return NewEntrance(EntranceFloatUp, DirNone, durationMs)
}

func ZoomIn(durationMs int) (Entrance, error) {
	return NewEntrance(EntranceZoom, DirNone, durationMs)
}

func WipeIn(dir Direction, durationMs int) (Entrance, error) {
	return NewEntrance(EntranceWipe, dir, durationMs)
}

func SplitIn(durationMs int) (Entrance, error) {
	return NewEntrance(EntranceSplit, DirNone, durationMs)
}
