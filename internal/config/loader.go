package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the simulation configuration.
// Search order: customPath -> ~/.paddle/configs/paddle.yaml -> ./configs/paddle.yaml -> embedded default.
// Files only need to name the keys they override; everything else keeps its default.
func Load(customPath string) (PaddleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PaddleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PaddleConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("paddle.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "paddle.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPaddleYAML)
	if err != nil {
		return DefaultPaddleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (PaddleConfig, error) {
	cfg := DefaultPaddleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PaddleConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PaddleConfig{}, err
	}
	return cfg, nil
}

// Validate rejects tunables that would break the simulation invariants.
func (c PaddleConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size", ErrInvalidTunable)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball.radius must be positive", ErrInvalidTunable)
	case c.Ball.InitialSpeed <= 0:
		return fmt.Errorf("%w: ball.initial_speed must be positive", ErrInvalidTunable)
	case c.Ball.MaxSpeed < c.Ball.InitialSpeed:
		return fmt.Errorf("%w: ball.max_speed below initial_speed", ErrInvalidTunable)
	case c.Ball.SpeedIncrement <= 1:
		return fmt.Errorf("%w: ball.speed_increment must be greater than 1", ErrInvalidTunable)
	case !lossFactor(c.Physics.AirDrag) || !lossFactor(c.Physics.SpinDecay):
		return fmt.Errorf("%w: air_drag and spin_decay must be in (0, 1)", ErrInvalidTunable)
	case !lossFactor(c.Physics.WallRestitution) || !lossFactor(c.Physics.WallSpinFriction):
		return fmt.Errorf("%w: wall factors must be in (0, 1)", ErrInvalidTunable)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size", ErrInvalidTunable)
	case c.Paddle.Height > c.Arena.Height:
		return fmt.Errorf("%w: paddle taller than arena", ErrInvalidTunable)
	case !unitInterval(c.Paddle.SmoothingGain):
		return fmt.Errorf("%w: paddle.smoothing_gain must be in (0, 1]", ErrInvalidTunable)
	case c.Ball.ServeToward != ServeTowardConceder && c.Ball.ServeToward != ServeTowardScorer:
		return fmt.Errorf("%w: ball.serve_toward must be conceder or scorer", ErrInvalidTunable)
	case c.Match.DurationSecs <= 0:
		return fmt.Errorf("%w: match.duration_secs must be positive", ErrInvalidTunable)
	}

	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		p, err := c.Profile(preset)
		if err != nil {
			return err
		}
		if p.Speed <= 0 || p.ErrorMargin < 0 {
			return fmt.Errorf("%w: difficulty %s", ErrInvalidTunable, preset)
		}
	}
	return nil
}

// unitInterval accepts easing gains, where 1 means snapping to the target.
func unitInterval(v float64) bool {
	return v > 0 && v <= 1
}

// lossFactor accepts per-frame multipliers that must remove energy.
func lossFactor(v float64) bool {
	return v > 0 && v < 1
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paddle", "configs", filename)
}
