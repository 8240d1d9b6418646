// Package config provides YAML-based configuration loading for the demo.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// BounceConfig contains all configuration for the bouncing-ball demo.
type BounceConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Simulation SimulationConfig `yaml:"simulation"`
	Ball       BallConfig       `yaml:"ball"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Server     ServerConfig     `yaml:"server"`
}

// ViewportConfig is the size of the rendered raster in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SimulationConfig defines the loop parameters.
type SimulationConfig struct {
	TickRate     int `yaml:"tick_rate"`     // Ticks per second
	Capacity     int `yaml:"capacity"`      // Max live balls, oldest evicted first
	InitialBalls int `yaml:"initial_balls"` // Population after start and reset
}

// BallConfig defines how new balls are created.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	MaxSpeed    float64 `yaml:"max_speed"`    // Velocity per axis is drawn from [-max_speed, max_speed)
	SpawnMargin int     `yaml:"spawn_margin"` // Distance from the edges for random spawns
}

// ScoringConfig defines points awarded per action.
type ScoringConfig struct {
	AddBall   int `yaml:"add_ball"`   // Add-ball key
	ClickBall int `yaml:"click_ball"` // Primary pointer press
}

// ServerConfig configures the HTTP delivery server.
type ServerConfig struct {
	Address string `yaml:"address"`
	Root    string `yaml:"root"`  // Directory served for static files
	Index   string `yaml:"index"` // Optional landing page file; empty uses the built-in page
}

// Validate checks that the configuration can drive a simulation.
func (c BounceConfig) Validate() error {
	var errs []error

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Simulation.TickRate))
	}
	if c.Simulation.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("capacity must be positive, got %d", c.Simulation.Capacity))
	}
	if c.Simulation.InitialBalls < 0 || c.Simulation.InitialBalls > c.Simulation.Capacity {
		errs = append(errs, fmt.Errorf("initial_balls must be within [0, %d], got %d", c.Simulation.Capacity, c.Simulation.InitialBalls))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Ball.Radius > 0 && 2*c.Ball.Radius > float64(min(c.Viewport.Width, c.Viewport.Height)) {
		errs = append(errs, fmt.Errorf("ball diameter %g does not fit a %dx%d viewport", 2*c.Ball.Radius, c.Viewport.Width, c.Viewport.Height))
	}
	if c.Ball.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("max_speed must not be negative, got %g", c.Ball.MaxSpeed))
	}
	// spawn_margin may be smaller than the radius: clicks place balls anywhere
	// too, and the first advance clamps them back inside.
	if c.Ball.SpawnMargin < 0 ||
		2*c.Ball.SpawnMargin > c.Viewport.Width ||
		2*c.Ball.SpawnMargin > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("spawn_margin %d does not fit a %dx%d viewport", c.Ball.SpawnMargin, c.Viewport.Width, c.Viewport.Height))
	}
	if c.Scoring.AddBall < 0 || c.Scoring.ClickBall < 0 {
		errs = append(errs, fmt.Errorf("scores must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
