package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ivlev/slideanim/internal/config"
	"github.com/ivlev/slideanim/internal/engine"
	"github.com/ivlev/slideanim/internal/layout"
	"github.com/ivlev/slideanim/internal/logging"
	"github.com/ivlev/slideanim/internal/scenario"
	"github.com/ivlev/slideanim/internal/transition"
)

// Set by -ldflags at release time.
var version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slideanim",
	Short: "Build animated slide parts from deck scenarios",
	Long: `slideanim turns a deck scenario (YAML) into PresentationML slide parts,
each carrying a slide transition and an animation timing tree.

Shapes without explicit animations are choreographed from their slide's
layout and the shapes' roles.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		cfg.BuildVersion = version

		logger, err = logging.New(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a scenario into slideN.xml parts",
	Example: `  slideanim build --scenario deck.yaml --out output/deck
  slideanim build --workers 1 --verbose   # latest scenario in the scenario dir`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var transitionsCmd = &cobra.Command{
	Use:   "transitions",
	Short: "List registered slide transitions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reg := transition.Default()
		for _, name := range reg.Names() {
			marker := ""
			if name == reg.DefaultName() {
				marker = " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, marker)
		}
	},
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List slide layouts and the roles they choreograph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range layout.Names() {
			ch, err := layout.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d roles\n", name, len(ch.Cues))
		}
		return nil
	},
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Write an example scenario to start a deck from",
	Args:  cobra.NoArgs,
	RunE:  runScaffold,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "slideanim.yaml", "Config file (missing file uses defaults)")

	buildCmd.Flags().StringP("scenario", "s", "", "Scenario file (default: latest in the scenario dir)")
	buildCmd.Flags().StringP("out", "o", "", "Output directory (default: output_dir from config)")
	buildCmd.Flags().IntP("workers", "w", 0, "Slides built in parallel (default: workers from config)")
	buildCmd.Flags().Bool("no-layout", false, "Do not choreograph slides without animations")

	scaffoldCmd.Flags().StringP("out", "o", "", "Scenario path (default: timestamped file in the scenario dir)")
	scaffoldCmd.Flags().Int("slides", 3, "Number of slides")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(transitionsCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(scaffoldCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cmd.Flags().Changed("workers") {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if noLayout, _ := cmd.Flags().GetBool("no-layout"); noLayout {
		cfg.AutoLayout = false
	}
	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	path, _ := cmd.Flags().GetString("scenario")
	if path == "" {
		latest, err := scenario.FindLatestScenario(cfg.ScenarioDir)
		if err != nil {
			return fmt.Errorf("no --scenario given: %w", err)
		}
		path = latest
		logger.Info("Using latest scenario", zap.String("path", path))
	}

	sc, err := scenario.ReadScenario(path)
	if err != nil {
		return err
	}

	project, err := engine.NewDeckProject(cfg, transition.NewRegistry(logger), logger)
	if err != nil {
		return err
	}
	deck, err := project.Build(ctx, sc)
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}
	paths, err := project.Write(deck, outDir)
	if err != nil {
		return err
	}

	logger.Info("Deck written",
		zap.String("build", deck.BuildID),
		zap.String("dir", outDir),
		zap.Int("slides", len(paths)),
		zap.Int("degraded", deck.Degraded),
		zap.Duration("elapsed", deck.Elapsed))
	fmt.Fprintf(cmd.OutOrStdout(), "%d slides written to %s\n", len(paths), outDir)
	return nil
}

func runScaffold(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("slides")
	if n < 1 {
		return fmt.Errorf("--slides must be at least 1, got %d", n)
	}
	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		path = scenario.GenerateScenarioPath(cfg.ScenarioDir)
	}

	sc := exampleScenario(n, cfg.SlideWidth, cfg.SlideHeight)
	if err := layout.NewDirector(logger).Direct(sc); err != nil {
		return err
	}
	if err := sc.Validate(scenario.Size{W: cfg.SlideWidth, H: cfg.SlideHeight}); err != nil {
		return err
	}
	if err := scenario.WriteScenario(sc, path); err != nil {
		return err
	}

	logger.Info("Scenario written", zap.String("path", path), zap.Int("slides", n))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// exampleScenario lays out n slides: a title slide, content slides with a
// card grid, and a closing slide when n > 1.
func exampleScenario(n int, w, h int64) *scenario.Scenario {
	sc := &scenario.Scenario{Version: scenario.Version}
	margin := w / 16

	for i := 1; i <= n; i++ {
		sl := scenario.Slide{ID: i}
		sl.Shapes = append(sl.Shapes,
			scenario.Shape{Name: "Accent", Role: layout.RoleAccentBar, Rect: &scenario.Rectangle{X: 0, Y: 0, W: w, H: h / 60}},
			scenario.Shape{Name: "Title", Role: layout.RoleTitle, Rect: &scenario.Rectangle{X: margin, Y: h / 8, W: w - 2*margin, H: h / 6}},
		)

		if i == 1 || i == n {
			sl.Shapes = append(sl.Shapes,
				scenario.Shape{Name: "Subtitle", Role: layout.RoleSubtitle, Rect: &scenario.Rectangle{X: margin, Y: h / 3, W: w - 2*margin, H: h / 10}})
			sc.Slides = append(sc.Slides, sl)
			continue
		}

		sl.Layout = layout.Grid
		cardW := (w - 2*margin) / 3
		for c := 0; c < 3; c++ {
			x := margin + int64(c)*cardW
			sl.Shapes = append(sl.Shapes,
				scenario.Shape{Name: fmt.Sprintf("Card %d", c+1), Role: layout.RoleCard, Rect: &scenario.Rectangle{X: x, Y: h / 2, W: cardW - margin/4, H: h / 3}},
				scenario.Shape{Name: fmt.Sprintf("Badge %d", c+1), Role: layout.RoleBadge, Rect: &scenario.Rectangle{X: x, Y: h/2 - h/20, W: h / 10, H: h / 10}},
			)
		}
		sc.Slides = append(sc.Slides, sl)
	}
	return sc
}
