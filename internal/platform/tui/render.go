package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-paddle/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDimGray: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

// themeColors maps Settings.Color names to screen colors.
var themeColors = map[string]core.Color{
	"cyan":   core.ColorCyan,
	"pink":   core.ColorPink,
	"yellow": core.ColorYellow,
	"green":  core.ColorGreen,
}

// ThemeColor returns the screen color for a theme name, cyan when unknown.
func ThemeColor(name string) core.Color {
	if c, ok := themeColors[name]; ok {
		return c
	}
	return core.ColorCyan
}

// accentColor picks the opponent color so the two paddles never match.
func accentColor(theme core.Color) core.Color {
	if theme == core.ColorPink {
		return core.ColorCyan
	}
	return core.ColorPink
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
