// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config holds the settings shared by the example programs. Values
// come from R2V_* environment variables and can be overridden by flags.
package config

import (
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "R2V"

type Config struct {
	Points      int     `envconfig:"POINTS" default:"1000"`
	Seed        int64   `envconfig:"SEED" default:"0"`
	Width       int     `envconfig:"WIDTH" default:"1000"`
	Output      string  `envconfig:"OUTPUT"`
	RelaxSteps  int     `envconfig:"RELAX_STEPS" default:"0"`
	MergeRadius float64 `envconfig:"MERGE_RADIUS" default:"0"`
	Margin      float64 `envconfig:"MARGIN" default:"0.1"`
	// FrameEvery renders one frame per that many progressive steps.
	FrameEvery int  `envconfig:"FRAME_EVERY" default:"1"`
	Debug      bool `envconfig:"DEBUG" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RegisterFlags binds command-line flags to c, using its current values as
// defaults so that flags take precedence over the environment.
func (c *Config) RegisterFlags(app *kingpin.Application) {
	app.Flag("points", "Number of random seed points.").Short('n').
		Default(strconv.Itoa(c.Points)).IntVar(&c.Points)
	app.Flag("seed", "Random seed.").Short('s').
		Default(strconv.FormatInt(c.Seed, 10)).Int64Var(&c.Seed)
	app.Flag("width", "Image width and height in pixels.").Short('w').
		Default(strconv.Itoa(c.Width)).IntVar(&c.Width)
	app.Flag("output", "Output file or directory.").Short('o').
		Default(c.Output).StringVar(&c.Output)
	app.Flag("relax", "Lloyd relaxation steps.").
		Default(strconv.Itoa(c.RelaxSteps)).IntVar(&c.RelaxSteps)
	app.Flag("merge-radius", "Vertex merge radius; 0 disables merging.").
		Default(strconv.FormatFloat(c.MergeRadius, 'g', -1, 64)).Float64Var(&c.MergeRadius)
	app.Flag("margin", "Bounding region margin of the triangulation.").
		Default(strconv.FormatFloat(c.Margin, 'g', -1, 64)).Float64Var(&c.Margin)
	app.Flag("frame-every", "Render one frame per this many steps.").
		Default(strconv.Itoa(c.FrameEvery)).IntVar(&c.FrameEvery)
	app.Flag("debug", "Enable debug logging.").
		Default(strconv.FormatBool(c.Debug)).BoolVar(&c.Debug)
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch {
	case c.Points < 0:
		return errors.Errorf("config: points must not be negative, got %d", c.Points)
	case c.Width <= 0:
		return errors.Errorf("config: width must be positive, got %d", c.Width)
	case c.RelaxSteps < 0:
		return errors.Errorf("config: relax steps must not be negative, got %d", c.RelaxSteps)
	case c.MergeRadius < 0:
		return errors.Errorf("config: merge radius must not be negative, got %v", c.MergeRadius)
	case c.Margin <= 0:
		return errors.Errorf("config: margin must be positive, got %v", c.Margin)
	case c.FrameEvery <= 0:
		return errors.Errorf("config: frame-every must be positive, got %d", c.FrameEvery)
	}
	return nil
}

// OutputOr returns the configured output, or fallback when none is set.
func (c *Config) OutputOr(fallback string) string {
	if c.Output == "" {
		return fallback
	}
	return c.Output
}
