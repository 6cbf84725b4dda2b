package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-paddle/internal/config"
)

func TestOpponentTarget(t *testing.T) {
	cfg := config.DefaultPaddleConfig()
	exact := NewOpponent(cfg, config.DifficultyProfile{Speed: 6}, rand.New(rand.NewSource(1)))

	tests := []struct {
		name string
		side Side
		velX float64
		want float64
	}{
		{"right tracks approaching ball", SideRight, 5, 120},
		{"right recentres when ball leaves", SideRight, -5, 250},
		{"left tracks approaching ball", SideLeft, -5, 120},
		{"left recentres when ball leaves", SideLeft, 5, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Ball{Pos: Vec2{X: 400, Y: 120}, Vel: Vec2{X: tt.velX}}
			if got := exact.Target(ball, tt.side); got != tt.want {
				t.Errorf("Target = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpponentErrorBounded(t *testing.T) {
	cfg := config.DefaultPaddleConfig()
	o := NewOpponent(cfg, config.DifficultyProfile{Speed: 6, ErrorMargin: 20}, rand.New(rand.NewSource(9)))
	ball := Ball{Pos: Vec2{X: 400, Y: 300}, Vel: Vec2{X: 4}}

	for range 1000 {
		got := o.Target(ball, SideRight)
		if got < 290 || got >= 310 {
			t.Fatalf("Target = %v, want within [290, 310)", got)
		}
	}
}

func TestOpponentIdleRecentering(t *testing.T) {
	cfg := config.DefaultPaddleConfig()
	o := NewOpponent(cfg, config.DifficultyProfile{Speed: 6}, rand.New(rand.NewSource(1)))
	p := Paddle{Y: 0, Width: 12, Height: 80}
	ball := Ball{Pos: Vec2{X: 400, Y: 50}, Vel: Vec2{X: -5}}

	for range 300 {
		p = o.Move(p, ball, SideRight, 1)
	}
	if d := p.Center() - 250; d > 0.01 || d < -0.01 {
		t.Errorf("idle paddle centre = %v, want 250", p.Center())
	}
}

func TestOpponentGainScalesWithSpeed(t *testing.T) {
	cfg := config.DefaultPaddleConfig()
	ball := Ball{Pos: Vec2{X: 400, Y: 450}, Vel: Vec2{X: 5}}
	start := Paddle{Y: 0, Width: 12, Height: 80}

	slow := NewOpponent(cfg, config.DifficultyProfile{Speed: 3.5}, rand.New(rand.NewSource(1)))
	fast := NewOpponent(cfg, config.DifficultyProfile{Speed: 10.5}, rand.New(rand.NewSource(1)))

	ps := slow.Move(start, ball, SideRight, 1)
	pf := fast.Move(start, ball, SideRight, 1)
	if pf.Y <= ps.Y {
		t.Errorf("faster profile should move further: slow=%v fast=%v", ps.Y, pf.Y)
	}
	if ps.PrevY != 0 || pf.PrevY != 0 {
		t.Error("Move should record the previous position")
	}
}
