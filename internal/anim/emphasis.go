package anim

import "strconv"

// EmphasisKind names an in-place emphasis effect.
type EmphasisKind string

const (
	EmphasisGrow   EmphasisKind = "grow"
	EmphasisShrink EmphasisKind = "shrink"
	EmphasisSpin   EmphasisKind = "spin"
	EmphasisPulse  EmphasisKind = "pulse"
	EmphasisTeeter EmphasisKind = "teeter"
)

// Default emphasis durations in milliseconds.
const (
	DefaultGrowMs   = 500
	DefaultShrinkMs = 500
	DefaultSpinMs   = 600
	DefaultPulseMs  = 350
	DefaultTeeterMs = 250
)

// Emphasis animates a shape in place. Magnitude is interpreted per kind:
// scale percent for grow and shrink, degrees for spin, and the number of
// oscillations for pulse and teeter.
type Emphasis struct {
	Kind       EmphasisKind
	Magnitude  int
	DurationMs int
}

type magnitudeRule struct {
	preset   int
	def      int
	min, max int
	unit     string
}

var emphasisRules = map[EmphasisKind]magnitudeRule{
	EmphasisGrow:   {preset: 150, def: 120, min: 101, max: 400, unit: "scale percent"},
	EmphasisShrink: {preset: 150, def: 80, min: 10, max: 99, unit: "scale percent"},
	EmphasisSpin:   {preset: 156, def: 360, min: -3600, max: 3600, unit: "degrees"},
	EmphasisPulse:  {preset: 150, def: 2, min: 1, max: 20, unit: "oscillations"},
	EmphasisTeeter: {preset: 32, def: 2, min: 1, max: 20, unit: "oscillations"},
}

func (Emphasis) Category() Category { return CategoryEmphasis }
func (e Emphasis) Duration() int { return e.DurationMs }
func (Emphasis) descriptor() {}

func (e Emphasis) PresetID() int {
	return emphasisRules[e.Kind].preset
}

// NewEmphasis validates and builds an emphasis descriptor. A zero magnitude
// selects the kind's documented default (grow 120%, shrink 80%, spin 360°,
// pulse and teeter 2 oscillations); any other out-of-range value is rejected.
func NewEmphasis(kind EmphasisKind, magnitude, durationMs int) (Emphasis, error) {
	const name = "emphasis"

	rule, ok := emphasisRules[kind]
	if !ok {
		return Emphasis{}, fieldErr(name, "kind", kind, "unknown emphasis effect")
	}
	if err := checkDuration(name, durationMs); err != nil {
		return Emphasis{}, err
	}
	if magnitude == 0 {
		magnitude = rule.def
	}
	if magnitude < rule.min || magnitude > rule.max {
		return Emphasis{}, fieldErr(name, "magnitude", magnitude,
			"expected "+rule.unit+" for "+string(kind)+" in range "+strconv.Itoa(rule.min)+".."+strconv.Itoa(rule.max))
	}
	return Emphasis{Kind: kind, Magnitude: magnitude, DurationMs: durationMs}, nil
}

func Grow(scalePercent, durationMs int) (Emphasis, error) {
	return NewEmphasis(EmphasisGrow, scalePercent, durationMs)
}

func Shrink(scalePercent, durationMs int) (Emphasis, error) {
	return NewEmphasis(EmphasisShrink, scalePercent, durationMs)
}

func Spin(degrees, durationMs int) (Emphasis, error) {
	return NewEmphasis(EmphasisSpin, degrees, durationMs)
}

func Pulse(count, durationMs int) (Emphasis, error) {
	return NewEmphasis(EmphasisPulse, count, durationMs)
}

func Teeter(count, durationMs int) (Emphasis, error) {
	return NewEmphasis(EmphasisTeeter, count, durationMs)
}
