package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/slideanim/internal/config"
	"github.com/ivlev/slideanim/internal/engine"
	"github.com/ivlev/slideanim/internal/layout"
	"github.com/ivlev/slideanim/internal/scenario"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestExampleScenarioValidates(t *testing.T) {
	sc := exampleScenario(4, config.WidescreenWidth, config.WidescreenHeight)
	require.NoError(t, layout.NewDirector(nil).Direct(sc))
	require.NoError(t, sc.Validate(scenario.Size{W: config.WidescreenWidth, H: config.WidescreenHeight}))

	require.Len(t, sc.Slides, 4)
	assert.Equal(t, layout.Hero, sc.Slides[0].Layout)
	assert.Equal(t, layout.Grid, sc.Slides[1].Layout)
	assert.Equal(t, layout.Hero, sc.Slides[3].Layout)
	for _, sl := range sc.Slides {
		assert.NotEmpty(t, sl.Animations, "slide %d", sl.ID)
	}
}

func TestScaffoldThenBuild(t *testing.T) {
	t.Setenv("SLIDEANIM_OUTPUT_DIR", "")
	t.Setenv("SLIDEANIM_LOG_LEVEL", "error")
	t.Setenv("SLIDEANIM_WORKERS", "")

	dir := t.TempDir()
	conf := filepath.Join(dir, "missing.yaml")
	scenarioPath := filepath.Join(dir, "deck.yaml")
	outDir := filepath.Join(dir, "out")

	out := execute(t, "scaffold", "--config", conf, "--out", scenarioPath, "--slides", "3")
	assert.Equal(t, scenarioPath, strings.TrimSpace(out))

	out = execute(t, "build", "--config", conf, "--scenario", scenarioPath, "--out", outDir, "--workers", "2")
	assert.Contains(t, out, "3 slides written")

	for i := 1; i <= 3; i++ {
		data, err := os.ReadFile(filepath.Join(outDir, engine.SlideFileName(i)))
		require.NoError(t, err)
		assert.Contains(t, string(data), "<p:timing>")
		assert.Contains(t, string(data), "<p:transition")
	}
}

func TestTransitionsCommand(t *testing.T) {
	out := execute(t, "transitions", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Contains(t, out, "fade (default)")
	assert.Contains(t, out, "morph")
}

func TestLayoutsCommand(t *testing.T) {
	out := execute(t, "layouts", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	for _, name := range layout.Names() {
		assert.Contains(t, out, name)
	}
}
