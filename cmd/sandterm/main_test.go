package main

import (
	"flag"
	"io"
	"testing"

	"sandbox/internal/app"
	"sandbox/internal/sims/sand"
	"sandbox/internal/term"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseArgs(t *testing.T, args ...string) (*flag.FlagSet, sand.Config, *app.Config) {
	t.Helper()
	fs := flag.NewFlagSet("sandterm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	simCfg := sand.DefaultConfig()
	simCfg.Bind(fs)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return fs, simCfg, cfg
}

func TestExplicitSize(t *testing.T) {
	fs, _, cfg := parseArgs(t)
	assert.False(t, explicitSize(fs, cfg.Set))

	fs, _, cfg = parseArgs(t, "-w", "40")
	assert.True(t, explicitSize(fs, cfg.Set))

	fs, _, cfg = parseArgs(t, "-set", "gravity=2")
	assert.False(t, explicitSize(fs, cfg.Set))
}

func TestSetSizeSurvivesTerminalFit(t *testing.T) {
	fs, simCfg, cfg := parseArgs(t, "-set", "w=40", "-set", "h=20")
	fit := term.FitConfig(simCfg.With(cfg.Set), 80, 25, explicitSize(fs, cfg.Set))
	assert.Equal(t, 40, fit.Width)
	assert.Equal(t, 20, fit.Height)
}
