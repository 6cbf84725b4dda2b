// Package config provides YAML-based configuration loading for the paddle
// simulation: arena geometry, physics tunables, difficulty profiles and the
// player-facing Settings.
package config

// PaddleConfig contains every tunable of the simulation and its collaborators.
type PaddleConfig struct {
	Arena        ArenaConfig                  `yaml:"arena"`
	Ball         BallConfig                   `yaml:"ball"`
	Physics      PhysicsConfig                `yaml:"physics"`
	Paddle       PaddleGeometry               `yaml:"paddle"`
	AI           AIConfig                     `yaml:"ai"`
	Difficulties map[string]DifficultyProfile `yaml:"difficulties"`
	Match        MatchConfig                  `yaml:"match"`
	Input        InputConfig                  `yaml:"input"`
	Commentary   CommentaryConfig             `yaml:"commentary"`
}

// ArenaConfig defines the playfield size in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball and serve parameters.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Multiplier per paddle hit, > 1
	MaxSpeed       float64 `yaml:"max_speed"`
	ServeJitter    float64 `yaml:"serve_jitter"` // Width of the random vertical serve component
	ServeToward    string  `yaml:"serve_toward"` // "conceder" or "scorer"
}

// PhysicsConfig defines drag, spin and collision response.
// Multiplicative factors are per reference frame (60 Hz).
type PhysicsConfig struct {
	AirDrag          float64 `yaml:"air_drag"`
	SpinInfluence    float64 `yaml:"spin_influence"`
	SpinDecay        float64 `yaml:"spin_decay"`
	PaddleFriction   float64 `yaml:"paddle_friction"` // Paddle velocity to spin transfer
	WallRestitution  float64 `yaml:"wall_restitution"`
	WallSpinFriction float64 `yaml:"wall_spin_friction"`
	VerticalKick     float64 `yaml:"vertical_kick"` // vel.y added per unit of relative hit offset
	VerticalDrag     float64 `yaml:"vertical_drag"` // Paddle velocity to vel.y transfer
	SweptCollision   bool    `yaml:"swept_collision"`
}

// PaddleGeometry defines paddle size, placement and human control easing.
type PaddleGeometry struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Offset        float64 `yaml:"offset"`         // Distance from the side wall
	SmoothingGain float64 `yaml:"smoothing_gain"` // Fraction of the gap closed per frame
}

// AIConfig defines the opponent controller's tracking gain.
// Effective gain is BaseGain * profile.Speed / ReferenceSpeed.
type AIConfig struct {
	BaseGain       float64 `yaml:"base_gain"`
	ReferenceSpeed float64 `yaml:"reference_speed"`
}

// DifficultyProfile selects how quickly and accurately the AI tracks the ball.
type DifficultyProfile struct {
	Speed       float64 `yaml:"speed"`
	ErrorMargin float64 `yaml:"error_margin"`
}

// MatchConfig defines match clock and event cadence.
type MatchConfig struct {
	DurationSecs   int `yaml:"duration_secs"`
	RallyMilestone int `yaml:"rally_milestone"` // Commentary every N consecutive hits
}

// InputConfig defines keyboard nudging of paddle targets.
type InputConfig struct {
	KeyStep float64 `yaml:"key_step"`
}

// CommentaryConfig defines the commentary service client.
type CommentaryConfig struct {
	Endpoint    string  `yaml:"endpoint"` // Empty uses the public generateContent API
	Model       string  `yaml:"model"`
	TimeoutMs   int     `yaml:"timeout_ms"`
	RatePerSec  float64 `yaml:"rate_per_sec"`
	Burst       int     `yaml:"burst"`
	QueueSize   int     `yaml:"queue_size"`
	FeedSize    int     `yaml:"feed_size"`
	Temperature float64 `yaml:"temperature"`
	TopP        float64 `yaml:"top_p"`
	MaxTokens   int     `yaml:"max_tokens"`
}
