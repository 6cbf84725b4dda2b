package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-paddle/internal/commentary"
	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/core"
	"github.com/vovakirdan/neon-paddle/internal/match"
	"github.com/vovakirdan/neon-paddle/internal/sim"
)

// Arena characters
const (
	PaddleChar = '█'
	NetChar    = '┊'
	BallChar   = '●'
	TopSpin    = '◐'
	BackSpin   = '◑'
)

const (
	cellAspect    = 2.0 // Terminal cells are about twice as tall as wide
	maxFeedLines  = 5
	spinThreshold = 0.5 // |spin| above this draws a spinning ball
	minScreenW    = 24
	minScreenH    = 8
)

const helpText = "w/s move  ↑/↓ p2  space play/pause  r reset  m mode  d difficulty  c color  v voice  q quit"

// Frame is everything one rendered frame shows.
type Frame struct {
	Snapshot sim.Snapshot
	State    match.State
	Settings config.Settings
	Feed     []commentary.Line
}

// layout splits the terminal into a HUD row, the arena box, the commentary
// feed and a help row.
type layout struct {
	arena core.Rect // Box including its border
	feed  core.Rect
	help  int
}

// computeLayout fits the arena box to the terminal, keeping the arena's
// aspect ratio when there is spare width.
func computeLayout(w, h int, arenaW, arenaH float64) layout {
	feedLines := core.Clamp((h-6)/4, 1, maxFeedLines)
	boxH := max(h-2-feedLines, 3)

	innerH := boxH - 2
	innerW := w - 2
	if arenaH > 0 {
		innerW = min(innerW, int(float64(innerH)*arenaW/arenaH*cellAspect))
	}
	innerW = max(innerW, 1)
	boxW := innerW + 2

	x := max((w-boxW)/2, 0)
	return layout{
		arena: core.NewRect(x, 1, boxW, boxH),
		feed:  core.NewRect(x, 1+boxH, max(w-x, 1), feedLines),
		help:  h - 1,
	}
}

// inner returns the playfield inside the arena border.
func (l layout) inner() core.Rect {
	return l.arena.Inset(1)
}

// ballGlyph shows the spin direction.
func ballGlyph(spin float64) rune {
	switch {
	case spin > spinThreshold:
		return TopSpin
	case spin < -spinThreshold:
		return BackSpin
	default:
		return BallChar
	}
}

// DrawFrame renders a full frame into dst.
func DrawFrame(dst *core.Screen, f Frame) {
	dst.Clear()
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, clip("terminal too small", dst.Width()))
		return
	}
	l := computeLayout(dst.Width(), dst.Height(), f.Snapshot.ArenaW, f.Snapshot.ArenaH)
	theme := ThemeColor(f.Settings.Color)

	drawHUD(dst, l, f)
	drawArena(dst, l, f.Snapshot, theme)
	drawOverlay(dst, l, f)
	drawFeed(dst, l, f.Feed, theme)
	dst.DrawTextColored(0, l.help, clip(helpText, dst.Width()), core.ColorDimGray)
}

func drawHUD(dst *core.Screen, l layout, f Frame) {
	right := "P2"
	if f.Settings.Mode == config.Mode1P {
		right = "AI"
	}
	theme := ThemeColor(f.Settings.Color)

	left := fmt.Sprintf("P1 %d", f.State.Scores.Left)
	dst.DrawTextColored(l.arena.X+1, 0, left, theme)

	rightText := fmt.Sprintf("%d %s", f.State.Scores.Right, right)
	dst.DrawTextColored(l.arena.Right()-1-len([]rune(rightText)), 0, rightText, accentColor(theme))

	center := fmt.Sprintf("%s  %s", f.State.Clock(), f.State.Status)
	if f.State.Status == match.StatusPlaying && f.Snapshot.Rally > 1 {
		center = fmt.Sprintf("%s  rally %d", f.State.Clock(), f.Snapshot.Rally)
	}
	cx := l.arena.X + (l.arena.W-len([]rune(center)))/2
	dst.DrawTextColored(cx, 0, center, core.ColorWhite)
}

func drawArena(dst *core.Screen, l layout, snap sim.Snapshot, theme core.Color) {
	dst.DrawBox(l.arena)
	in := l.inner()

	netX := in.X + in.W/2
	for y := in.Y; y < in.Bottom(); y += 2 {
		dst.SetColored(netX, y, NetChar, core.ColorDimGray)
	}

	drawPaddle(dst, in, snap, snap.Left, theme)
	drawPaddle(dst, in, snap, snap.Right, accentColor(theme))

	ball := snap.Ball
	color := core.ColorWhite
	if math.Abs(ball.Spin) > spinThreshold {
		color = core.ColorYellow
	}
	bx := in.X + core.CellIndex(ball.Pos.X, snap.ArenaW, in.W)
	by := in.Y + core.CellIndex(ball.Pos.Y, snap.ArenaH, in.H)
	dst.SetColored(bx, by, ballGlyph(ball.Spin), color)
}

func drawPaddle(dst *core.Screen, in core.Rect, snap sim.Snapshot, p sim.PaddleView, c core.Color) {
	x := in.X + core.CellIndex(p.X+p.Width/2, snap.ArenaW, in.W)
	top := core.CellIndex(p.Y, snap.ArenaH, in.H)
	bottom := core.CellIndex(p.Bottom(), snap.ArenaH, in.H)
	for y := top; y <= bottom; y++ {
		dst.SetColored(x, in.Y+y, PaddleChar, c)
	}
}

// drawOverlay draws a message box over the arena when the match is not running.
func drawOverlay(dst *core.Screen, l layout, f Frame) {
	var title, subtitle string
	switch f.State.Status {
	case match.StatusStart:
		title, subtitle = "NEON PADDLE", "space to start"
	case match.StatusPaused:
		title, subtitle = "PAUSED", "space to resume"
	case match.StatusGameOver:
		title = gameOverTitle(f.State.Scores, f.Settings.Mode)
		subtitle = fmt.Sprintf("%d - %d  |  space to play again", f.State.Scores.Left, f.State.Scores.Right)
	default:
		return
	}

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	if boxW > l.arena.W || boxH > l.arena.H {
		return
	}
	box := l.arena.Centered(boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, ThemeColor(f.Settings.Color))
	dst.DrawTextColored(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorGray)
}

func gameOverTitle(s match.Scores, mode config.Mode) string {
	switch {
	case s.Left > s.Right:
		return "P1 WINS!"
	case s.Right > s.Left && mode == config.Mode1P:
		return "AI WINS!"
	case s.Right > s.Left:
		return "P2 WINS!"
	default:
		return "DRAW"
	}
}

func drawFeed(dst *core.Screen, l layout, feed []commentary.Line, theme core.Color) {
	for i, line := range feed {
		if i >= l.feed.H {
			return
		}
		c := core.ColorGray
		if i == 0 {
			c = theme
		}
		dst.DrawTextColored(l.feed.X, l.feed.Y+i, clip("» "+line.Text, l.feed.W), c)
	}
}

// clip truncates s to at most n runes.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	return string(r[:n])
}
