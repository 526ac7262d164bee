package anim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntrancePresets(t *testing.T) {
	tests := []struct {
		kind    EntranceKind
		dir     Direction
		preset  int
		subtype int
		filter  Filter
	}{
		{EntranceFade, DirNone, 10, 0, FilterFade},
		{EntranceFlyIn, DirNone, 2, 8, FilterFade},
		{EntranceFlyIn, FromTop, 2, 4, FilterFade},
		{EntranceFlyIn, FromRight, 2, 2, FilterFade},
		{EntranceFlyIn, FromLeft, 2, 1, FilterFade},
		{EntranceFloatUp, DirNone, 2, 8, FilterFade},
		{EntranceZoom, DirNone, 18, 0, FilterFade},
		{EntranceWipe, DirNone, 21, 8, FilterWipeRight},
		{EntranceWipe, FromRight, 21, 2, FilterWipeLeft},
		{EntranceSplit, DirNone, 27, 10, FilterFade},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+string(tt.dir), func(t *testing.T) {
			e, err := NewEntrance(tt.kind, tt.dir, 400)
			require.NoError(t, err)
			assert.Equal(t, tt.preset, e.PresetID())
			assert.Equal(t, tt.subtype, e.Subtype)
			assert.Equal(t, tt.filter, e.Filter)
			assert.Equal(t, 400, e.Duration())
			assert.Equal(t, CategoryEntrance, e.Category())
		})
	}
}

func TestAppearIsInstant(t *testing.T) {
	e := Appear()
	assert.Equal(t, 1, e.PresetID())
	assert.Equal(t, 1, e.Duration())
	assert.Equal(t, FilterNone, e.Filter)
}

func TestNewEntranceRejects(t *testing.T) {
	tests := []struct {
		name  string
		kind  EntranceKind
		dir   Direction
		ms    int
		field string
	}{
		{"zero duration", EntranceFade, DirNone, 0, "duration"},
		{"negative duration", EntranceZoom, DirNone, -10, "duration"},
		{"unknown kind", EntranceKind("bounce"), DirNone, 500, "kind"},
		{"fly from nowhere", EntranceFlyIn, Direction("diagonal"), 500, "direction"},
		{"wipe from top", EntranceWipe, FromTop, 500, "direction"},
		{"fade with direction", EntranceFade, FromLeft, 500, "direction"},
		{"appear with direction", EntranceAppear, FromLeft, 1, "direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntrance(tt.kind, tt.dir, tt.ms)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDescriptor))

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestWithFilter(t *testing.T) {
	e, err := ZoomIn(DefaultZoomMs)
	require.NoError(t, err)

	wiped, err := e.WithFilter(FilterWipeLeft)
	require.NoError(t, err)
	assert.Equal(t, FilterWipeLeft, wiped.Filter)
	assert.Equal(t, FilterFade, e.Filter, "original is unchanged")

	_, err = e.WithFilter(Filter("dissolve"))
	assert.ErrorIs(t, err, ErrInvalidDescriptor)

	_, err = Appear().WithFilter(FilterFade)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestNewEmphasis(t *testing.T) {
	tests := []struct {
		name      string
		kind      EmphasisKind
		magnitude int
		want      int
		wantErr   bool
	}{
		{"grow default", EmphasisGrow, 0, 120, false},
		{"grow 150", EmphasisGrow, 150, 150, false},
		{"grow not growing", EmphasisGrow, 100, 0, true},
		{"grow too far", EmphasisGrow, 500, 0, true},
		{"shrink default", EmphasisShrink, 0, 80, false},
		{"shrink growing", EmphasisShrink, 120, 0, true},
		{"spin default", EmphasisSpin, 0, 360, false},
		{"spin backwards", EmphasisSpin, -90, -90, false},
		{"spin too many turns", EmphasisSpin, 7200, 0, true},
		{"pulse default", EmphasisPulse, 0, 2, false},
		{"pulse negative", EmphasisPulse, -1, 0, true},
		{"teeter 3", EmphasisTeeter, 3, 3, false},
		{"teeter forever", EmphasisTeeter, 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEmphasis(tt.kind, tt.magnitude, 500)
			if tt.wantErr {
				var fe *FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, "magnitude", fe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Magnitude)
			assert.Equal(t, CategoryEmphasis, e.Category())
		})
	}
}

func TestNewEmphasisRejectsUnknownKindAndDuration(t *testing.T) {
	_, err := NewEmphasis(EmphasisKind("wobble"), 0, 500)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "kind", fe.Field)

	_, err = Spin(90, 0)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "duration", fe.Field)
}

func TestPathConvention(t *testing.T) {
	assert.Equal(t, "M -0.5 0 L 0 0", PathFrom(-0.5, 0))
	assert.Equal(t, "M 0.5 0 L 0 0", PathFrom(0.5, 0))
	assert.Equal(t, "M 0 0.3 L 0 0", PathFrom(0, 0.3))

	m, err := SweepFromLeft(DefaultMotionMs)
	require.NoError(t, err)
	assert.Equal(t, "M -0.5 0 L 0 0", m.Path())
	assert.Equal(t, CategoryMotion, m.Category())
}

func TestNewMotionPath(t *testing.T) {
	m, err := NewMotionPath("M -0.25 -0.1 L 0 0", 800)
	require.NoError(t, err)
	assert.Equal(t, Point{X: -0.25, Y: -0.1}, m.From)
	assert.Equal(t, Point{}, m.To)
	assert.Equal(t, "M -0.25 -0.1 L 0 0", m.Path())

	bad := []struct {
		name string
		expr string
		ms   int
	}{
		{"zero duration", "M -0.5 0 L 0 0", 0},
		{"missing point", "M -0.5 0", 700},
		{"curve", "M 0 0 C 1 1 2 2", 700},
		{"relative moveto", "m -0.5 0 l 0 0", 700},
		{"not a number", "M left 0 L 0 0", 700},
		{"far off canvas", "M -12 0 L 0 0", 700},
		{"NaN", "M NaN 0 L 0 0", 700},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMotionPath(tt.expr, tt.ms)
			assert.ErrorIs(t, err, ErrInvalidDescriptor)
		})
	}
}

func TestNegativeZeroFormatsAsZero(t *testing.T) {
	m := MotionPath{From: Point{X: -0.0, Y: 0.2}, DurationMs: 1}
	assert.Equal(t, "M 0 0.2 L 0 0", m.Path())
}

func TestPathBetween(t *testing.T) {
	const slideW, slideH = 12192000, 6858000

	from := Rect{X: 0, Y: 3429000, W: 100, H: 100}
	to := Rect{X: 6096000, Y: 3429000, W: 100, H: 100}

	m, err := PathBetween(from, to, slideW, slideH, 600)
	require.NoError(t, err)
	assert.Equal(t, "M -0.5 0 L 0 0", m.Path())

	_, err = PathBetween(from, to, 0, slideH, 600)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestShapeRef(t *testing.T) {
	assert.False(t, ShapeRef{}.Valid())
	assert.True(t, ShapeRef{SpID: 4}.Valid())
	assert.Equal(t, "title#4", ShapeRef{SpID: 4, Name: "title"}.String())
	assert.Equal(t, "shape#7", ShapeRef{SpID: 7}.String())
}
