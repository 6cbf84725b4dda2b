package config

import (
	_ "embed"
)

//go:embed defaults/paddle.yaml
var defaultPaddleYAML []byte

// DefaultPaddleConfig returns the built-in configuration.
// It mirrors defaults/paddle.yaml and is used when the embedded file
// cannot be parsed.
func DefaultPaddleConfig() PaddleConfig {
	return PaddleConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 500,
		},
		Ball: BallConfig{
			Radius:         8,
			InitialSpeed:   6,
			SpeedIncrement: 1.03,
			MaxSpeed:       22,
			ServeJitter:    4,
			ServeToward:    ServeTowardConceder,
		},
		Physics: PhysicsConfig{
			AirDrag:          0.9995,
			SpinInfluence:    0.08,
			SpinDecay:        0.98,
			PaddleFriction:   0.35,
			WallRestitution:  0.9,
			WallSpinFriction: 0.8,
			VerticalKick:     4,
			VerticalDrag:     0.2,
		},
		Paddle: PaddleGeometry{
			Width:         12,
			Height:        80,
			Offset:        10,
			SmoothingGain: 0.25,
		},
		AI: AIConfig{
			BaseGain:       0.12,
			ReferenceSpeed: 6,
		},
		Difficulties: DefaultDifficulties(),
		Match: MatchConfig{
			DurationSecs:   90,
			RallyMilestone: 5,
		},
		Input: InputConfig{
			KeyStep: 12,
		},
		Commentary: CommentaryConfig{
			Model:       "gemini-3-flash-preview",
			TimeoutMs:   4000,
			RatePerSec:  0.5,
			Burst:       2,
			QueueSize:   16,
			FeedSize:    5,
			Temperature: 0.9,
			TopP:        0.8,
			MaxTokens:   60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPaddleYAML
}
