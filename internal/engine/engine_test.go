package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ivlev/slideanim/internal/config"
	"github.com/ivlev/slideanim/internal/scenario"
	"github.com/ivlev/slideanim/internal/slide"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(workers int) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Workers = workers
	cfg.AutoLayout = false
	return cfg
}

func newProject(t *testing.T, cfg *config.Config, logger *zap.Logger) *DeckProject {
	t.Helper()
	p, err := NewDeckProject(cfg, nil, logger)
	require.NoError(t, err)
	return p
}

func sampleDeck(n int) *scenario.Scenario {
	sc := &scenario.Scenario{Version: scenario.Version}
	for i := 1; i <= n; i++ {
		sc.Slides = append(sc.Slides, scenario.Slide{
			ID:         i,
			Transition: "push",
			Shapes: []scenario.Shape{
				{Name: "title"},
				{Name: "subtitle"},
				{Name: "logo"},
			},
			Animations: []scenario.Animation{
				{Shape: "title", Effect: "fade", Delay: 500},
				{Shape: "subtitle", Effect: "fly-in", Delay: 300},
				{Shape: "logo", Effect: "zoom", Delay: 600},
				{Shape: "logo", Effect: "grow", Delay: 1200},
				{Shape: "title", Effect: "sweep-left", Delay: 900},
			},
		})
	}
	return sc
}

func timingIDs(t *testing.T, tree *slide.Tree) []int {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(tree.PartString(slide.PartTiming)))
	var out []int
	for _, el := range doc.FindElements("//cTn") {
		id, err := strconv.Atoi(el.SelectAttrValue("id", ""))
		require.NoError(t, err)
		out = append(out, id)
	}
	return out
}

func TestBuildKeepsScenarioOrder(t *testing.T) {
	p := newProject(t, testConfig(4), nil)

	deck, err := p.Build(context.Background(), sampleDeck(12))
	require.NoError(t, err)
	require.Len(t, deck.Slides, 12)

	assert.NotEmpty(t, deck.BuildID)
	assert.Zero(t, deck.Degraded)
	for i, s := range deck.Slides {
		assert.Equal(t, i+1, s.ID)
		assert.True(t, s.OK())
		assert.Equal(t, 5, s.Animations)
		assert.Equal(t, []string{"cSld", "clrMapOvr", "transition", "timing"}, s.Tree.ChildOrder())
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	serial, err := newProject(t, testConfig(1), nil).Build(context.Background(), sampleDeck(6))
	require.NoError(t, err)
	parallel, err := newProject(t, testConfig(6), nil).Build(context.Background(), sampleDeck(6))
	require.NoError(t, err)

	assert.NotEqual(t, serial.BuildID, parallel.BuildID)
	for i := range serial.Slides {
		assert.Equal(t, serial.Slides[i].Tree.String(), parallel.Slides[i].Tree.String(), "slide %d", i+1)
	}
}

func TestTimingIDsStartAboveShapes(t *testing.T) {
	cfg := testConfig(1)
	sc := sampleDeck(1)
	for i := 0; i < 12; i++ {
		sc.Slides[0].Shapes = append(sc.Slides[0].Shapes, scenario.Shape{Name: "filler" + strconv.Itoa(i)})
	}

	deck, err := newProject(t, cfg, nil).Build(context.Background(), sc)
	require.NoError(t, err)

	tree := deck.Slides[0].Tree
	got := timingIDs(t, tree)
	require.NotEmpty(t, got)
	assert.Equal(t, tree.MaxShapeID()+1, got[0])
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1])
	}
}

func TestTimingIDsUseBaseline(t *testing.T) {
	deck, err := newProject(t, testConfig(1), nil).Build(context.Background(), sampleDeck(1))
	require.NoError(t, err)

	got := timingIDs(t, deck.Slides[0].Tree)
	require.NotEmpty(t, got)
	assert.Equal(t, 10, got[0])
}

func TestSlideWithoutAnimationsHasNoTiming(t *testing.T) {
	sc := &scenario.Scenario{Slides: []scenario.Slide{{ID: 1, Shapes: []scenario.Shape{{Name: "body"}}}}}

	deck, err := newProject(t, testConfig(1), nil).Build(context.Background(), sc)
	require.NoError(t, err)

	s := deck.Slides[0]
	assert.True(t, s.OK())
	assert.Nil(t, s.Tree.Timing())
	assert.Contains(t, s.Tree.PartString(slide.PartTransition), "<p:fade/>")
}

type brokenTransitions struct{}

func (brokenTransitions) Apply(tree *slide.Tree, name string) slide.Result {
	return slide.SetTransition(tree, `<p:transition spd="med"`)
}

func TestFailedTransitionDegradesSlide(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := newProject(t, testConfig(2), zap.New(core))
	p.Transitions = brokenTransitions{}

	deck, err := p.Build(context.Background(), sampleDeck(3))
	require.NoError(t, err)

	assert.Equal(t, 3, deck.Degraded)
	for _, s := range deck.Slides {
		assert.False(t, s.Transition.OK())
		assert.Equal(t, slide.ReasonMalformed, s.Transition.Reason)
		assert.True(t, s.Timing.OK())
		assert.Nil(t, s.Tree.Transition())
		assert.NotNil(t, s.Tree.Timing())
	}

	warned := logs.FilterMessage("slide part not applied")
	require.Equal(t, 3, warned.Len())
	assert.Equal(t, "transition", warned.All()[0].ContextMap()["part"])
}

func TestBuildRejectsInvalidScenario(t *testing.T) {
	sc := sampleDeck(2)
	sc.Slides[1].Animations = append(sc.Slides[1].Animations, scenario.Animation{Shape: "ghost", Effect: "fade"})

	_, err := newProject(t, testConfig(2), nil).Build(context.Background(), sc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scenario.ErrUnknownShape))
}

func TestBuildDoesNotModifyScenario(t *testing.T) {
	cfg := testConfig(2)
	cfg.AutoLayout = true
	sc := &scenario.Scenario{Slides: []scenario.Slide{
		{ID: 1, Shapes: []scenario.Shape{{Name: "t", Role: "title"}, {Name: "s", Role: "subtitle"}}},
	}}

	deck, err := newProject(t, cfg, nil).Build(context.Background(), sc)
	require.NoError(t, err)

	assert.Equal(t, 2, deck.Slides[0].Animations)
	assert.Empty(t, sc.Slides[0].Layout)
	assert.Empty(t, sc.Slides[0].Animations)
}

func TestBuildNilScenario(t *testing.T) {
	_, err := newProject(t, testConfig(1), nil).Build(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoSlides)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newProject(t, testConfig(2), nil).Build(ctx, sampleDeck(4))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnknownDefaultTransitionFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cfg := testConfig(1)
	cfg.DefaultTransition = "sparkle"

	p := newProject(t, cfg, zap.New(core))
	assert.Equal(t, 1, logs.FilterMessage("default transition not registered, keeping fade").Len())

	sc := &scenario.Scenario{Slides: []scenario.Slide{{ID: 1}}}
	deck, err := p.Build(context.Background(), sc)
	require.NoError(t, err)
	assert.Contains(t, deck.Slides[0].Tree.PartString(slide.PartTransition), "<p:fade/>")
}

func TestNewDeckProjectRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(0)
	_, err := NewDeckProject(cfg, nil, nil)
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	p := newProject(t, testConfig(2), nil)
	deck, err := p.Build(context.Background(), sampleDeck(3))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := p.Write(deck, dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for i, path := range paths {
		assert.Equal(t, filepath.Join(dir, SlideFileName(i+1)), path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		tree, err := slide.ParseTree(string(data))
		require.NoError(t, err)
		assert.Equal(t, deck.Slides[i].Tree.ChildOrder(), tree.ChildOrder())
	}

	_, err = p.Write(&Deck{}, dir)
	assert.ErrorIs(t, err, ErrNoSlides)
}
