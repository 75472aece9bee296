package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Window: Window{
			Width:  600,
			Height: 600,
		},
		Physics: Physics{
			Gravity:     0.25,
			FlapImpulse: 6,
			ScrollSpeed: 5,
		},
		Obstacles: Obstacles{
			PipeWidth:  70,
			PipeHeight: 320,
			Gap:        200,
			Band: GapBand{
				Min:  280,
				Max:  450,
				Step: 10,
			},
			SpawnIntervalMs: 800,
		},
		Avatar: Avatar{
			X:               150,
			Width:           34,
			Height:          24,
			Ceiling:         -100,
			AnimationStep:   0.1,
			AnimationFrames: 3,
		},
		Frame: Frame{
			Rate: 90,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
