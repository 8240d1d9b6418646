package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultBounceConfig returns the default demo configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
		},
		Simulation: SimulationConfig{
			TickRate:     60,
			Capacity:     20,
			InitialBalls: 3,
		},
		Ball: BallConfig{
			Radius:      20,
			MaxSpeed:    5,
			SpawnMargin: 50,
		},
		Scoring: ScoringConfig{
			AddBall:   10,
			ClickBall: 5,
		},
		Server: ServerConfig{
			Address: "0.0.0.0:5000",
			Root:    ".",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBounceYAML
}
