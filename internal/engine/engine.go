package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/slideanim/internal/config"
	"github.com/ivlev/slideanim/internal/layout"
	"github.com/ivlev/slideanim/internal/scenario"
	"github.com/ivlev/slideanim/internal/slide"
	"github.com/ivlev/slideanim/internal/transition"
)

// Transitions installs a named transition on a slide.
type Transitions interface {
	Apply(tree *slide.Tree, name string) slide.Result
}

// DeckProject builds scenarios into decks under one configuration.
type DeckProject struct {
	Config      *config.Config
	Transitions Transitions
	Director    *layout.Director
	logger      *zap.Logger
}

// NewDeckProject wires a project from cfg. A nil registry uses the shared
// transition registry.
func NewDeckProject(cfg *config.Config, reg *transition.Registry, logger *zap.Logger) (*DeckProject, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = transition.NewRegistry(logger)
	}
	if err := reg.SetDefault(cfg.DefaultTransition); err != nil {
		logger.Warn("default transition not registered, keeping fade",
			zap.String("transition", cfg.DefaultTransition),
			zap.Error(err))
	}

	return &DeckProject{
		Config:      cfg,
		Transitions: reg,
		Director:    layout.NewDirector(logger),
		logger:      logger,
	}, nil
}

// Deck is the outcome of one build, slides in scenario order.
type Deck struct {
	BuildID  string
	Slides   []*SlideResult
	Elapsed  time.Duration
	Degraded int // slides shipped without a transition or timing
}

func (p *DeckProject) size() scenario.Size {
	return scenario.Size{W: p.Config.SlideWidth, H: p.Config.SlideHeight}
}

// Build validates sc and builds every slide on a pool of Config.Workers
// goroutines. Each slide owns its tree, sequence and id allocator, so slides
// share nothing while building. sc itself is not modified.
func (p *DeckProject) Build(ctx context.Context, sc *scenario.Scenario) (*Deck, error) {
	if sc == nil {
		return nil, fmt.Errorf("invalid scenario: %w", ErrNoSlides)
	}
	startTime := time.Now()
	buildID := uuid.NewString()
	log := p.logger.With(zap.String("build", buildID))

	work := &scenario.Scenario{Version: sc.Version, Slides: slices.Clone(sc.Slides)}
	if p.Config.AutoLayout {
		if err := p.Director.Direct(work); err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
	}
	if err := work.Validate(p.size()); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	log.Info("building deck",
		zap.Int("slides", len(work.Slides)),
		zap.Int("workers", p.Config.Workers))

	results := make([]*SlideResult, len(work.Slides))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Config.Workers)
	for i := range work.Slides {
		if gctx.Err() != nil {
			break
		}
		sl := work.Slides[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.BuildSlide(sl)
			if err != nil {
				return fmt.Errorf("slide %d: %w", sl.ID, err)
			}
			p.report(log, res)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deck := &Deck{BuildID: buildID, Slides: results, Elapsed: time.Since(startTime)}
	for _, r := range results {
		if !r.OK() {
			deck.Degraded++
		}
	}

	if p.Config.ShowStats {
		log.Info("build report",
			zap.String("version", p.Config.BuildVersion),
			zap.Int("slides", len(results)),
			zap.Int("degraded", deck.Degraded),
			zap.Duration("elapsed", deck.Elapsed))
	}
	return deck, nil
}

// report logs the mutations a slide could not apply. Those slides still
// ship, without the failed part.
func (p *DeckProject) report(log *zap.Logger, res *SlideResult) {
	for _, r := range []slide.Result{res.Transition, res.Timing} {
		if r.OK() {
			continue
		}
		log.Warn("slide part not applied",
			zap.Int("slide", res.ID),
			zap.String("part", string(r.Part)),
			zap.Stringer("reason", r.Reason),
			zap.Error(r.Err))
	}
	log.Debug("slide built",
		zap.Int("slide", res.ID),
		zap.Int("animations", res.Animations))
}

// ErrNoSlides is returned for a missing scenario or an empty deck.
var ErrNoSlides = errors.New("deck has no slides")
