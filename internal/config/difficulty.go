package config

import "fmt"

// DefaultDifficulties returns the built-in difficulty table.
// Lower error margin and higher speed make a harder opponent.
func DefaultDifficulties() map[string]DifficultyProfile {
	return map[string]DifficultyProfile{
		string(DifficultyEasy):   {Speed: 3.5, ErrorMargin: 45},
		string(DifficultyMedium): {Speed: 6.0, ErrorMargin: 20},
		string(DifficultyHard):   {Speed: 10.5, ErrorMargin: 2},
	}
}

// Profile returns the difficulty profile for a preset.
func (c PaddleConfig) Profile(preset DifficultyPreset) (DifficultyProfile, error) {
	p, ok := c.Difficulties[string(preset)]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, preset)
	}
	return p, nil
}

// TrackingGain returns the per-frame smoothing gain the opponent controller
// uses for a profile.
func (c PaddleConfig) TrackingGain(p DifficultyProfile) float64 {
	ref := c.AI.ReferenceSpeed
	if ref <= 0 {
		ref = 1
	}
	return c.AI.BaseGain * (p.Speed / ref)
}
