package app

import (
	"flag"
	"fmt"
	"strings"
)

// KV collects repeatable key=value flags.
type KV map[string]string

// String implements flag.Value.
func (kv KV) String() string {
	parts := make([]string, 0, len(kv))
	for k, v := range kv {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (kv KV) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	kv[strings.TrimSpace(key)] = strings.TrimSpace(val)
	return nil
}

// Config represents the front-end command-line parameters.
type Config struct {
	Scale int
	TPS   int
	HUD   int
	Debug bool
	Set   KV
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 5, TPS: 60, HUD: 240, Set: KV{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.Var(c.Set, "set", "sim parameter override in key=value form (repeatable)")
}
