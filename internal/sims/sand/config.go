package sand

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Fill selects how Reset populates the grid.
type Fill string

const (
	// FillEmpty starts from an all-air grid.
	FillEmpty Fill = "empty"
	// FillTestPattern seeds random sand and water above a wood shelf.
	FillTestPattern Fill = "test"
)

// ErrUnknownFill is returned for an unrecognized fill policy name.
var ErrUnknownFill = errors.New("unknown fill policy")

// ParseFill resolves a fill policy name.
func ParseFill(s string) (Fill, error) {
	switch Fill(strings.ToLower(strings.TrimSpace(s))) {
	case FillEmpty, "":
		return FillEmpty, nil
	case FillTestPattern, "pattern":
		return FillTestPattern, nil
	}
	return FillEmpty, fmt.Errorf("parse fill %q: %w", s, ErrUnknownFill)
}

// String implements flag.Value.
func (f *Fill) String() string { return string(*f) }

// Set implements flag.Value.
func (f *Fill) Set(s string) error {
	parsed, err := ParseFill(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Config controls grid dimensions, physics constants and brush limits.
type Config struct {
	Width  int
	Height int

	Seed int64
	Fill Fill

	// Gravity is added to vertical velocity every tick, in rows per tick.
	Gravity float32
	// MaxVelocity bounds |vy| so one tick never walks further than this.
	MaxVelocity float32

	BrushRadius float64
	BrushMin    float64
	BrushMax    float64
	// Material is the brush selection at startup.
	Material Material

	// Alternate flips column scan order and the water spread preference on
	// odd ticks. When false, scans run left to right and water tries left first.
	Alternate bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       160,
		Height:      120,
		Seed:        1337,
		Fill:        FillEmpty,
		Gravity:     1,
		MaxVelocity: 8,
		BrushRadius: 10,
		BrushMin:    5,
		BrushMax:    25,
		Material:    Sand,
		Alternate:   true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	return c.With(cfg)
}

// With returns c with the entries of cfg applied on top.
func (c Config) With(cfg map[string]string) Config {
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := ParseFill(v); err == nil {
			c.Fill = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Gravity = float32(parsed)
		}
	}
	if v, ok := cfg["max_velocity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 1 {
			c.MaxVelocity = float32(parsed)
		}
	}
	if v, ok := cfg["brush_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.BrushMin = parsed
		}
	}
	if v, ok := cfg["brush_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.BrushMax = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.BrushRadius = parsed
		}
	}
	if v, ok := cfg["material"]; ok {
		if parsed, err := parseBrushMaterial(v); err == nil {
			c.Material = parsed
		}
	}
	if v, ok := cfg["alternate"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Alternate = parsed
		}
	}
	return c.normalized()
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the test pattern fill")
	fs.Var(&c.Fill, "fill", "initial fill policy (empty|test)")
	fs.Func("gravity", "rows per tick added to vertical velocity", func(s string) error {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		c.Gravity = float32(v)
		return nil
	})
	fs.Float64Var(&c.BrushRadius, "brush", c.BrushRadius, "initial brush radius")
	fs.Func("material", "initial brush material (sand|water|wood)", func(s string) error {
		m, err := parseBrushMaterial(s)
		if err != nil {
			return err
		}
		c.Material = m
		return nil
	})
	fs.BoolVar(&c.Alternate, "alternate", c.Alternate, "alternate scan direction by tick parity")
}

// normalized coerces the config into a usable range.
func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.MaxVelocity < 1 {
		c.MaxVelocity = 1
	}
	if c.Gravity < 0 {
		c.Gravity = 0
	}
	if c.Gravity > c.MaxVelocity {
		c.Gravity = c.MaxVelocity
	}
	if c.BrushMin <= 0 {
		c.BrushMin = 1
	}
	if c.BrushMax < c.BrushMin {
		c.BrushMax = c.BrushMin
	}
	c.BrushRadius = clampRadius(c.BrushRadius, c.BrushMin, c.BrushMax)
	if c.Material == Air || !c.Material.Valid() {
		c.Material = Sand
	}
	if c.Fill == "" {
		c.Fill = FillEmpty
	}
	return c
}

func clampRadius(r, lo, hi float64) float64 {
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}

// parseBrushMaterial resolves a material name the brush can paint with.
func parseBrushMaterial(s string) (Material, error) {
	m, err := ParseMaterial(s)
	if err != nil {
		return Air, err
	}
	if m == Air {
		return Air, fmt.Errorf("parse material %q: air cannot be painted", s)
	}
	return m, nil
}
