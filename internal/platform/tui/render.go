package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/world"
)

// cellWidth is the number of screen columns one grid cell occupies:
// a 3-character value field plus room for the cursor brackets.
const cellWidth = 5

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// valueColor picks the display color for a token value.
func valueColor(v int) core.Color {
	switch {
	case v >= 32:
		return core.ColorBrightMagenta
	case v == 16:
		return core.ColorOrange
	case v == 8:
		return core.ColorYellow
	case v == 4:
		return core.ColorGreen
	case v == 2:
		return core.ColorCyan
	default:
		return core.ColorWhite
	}
}

// RenderWorld draws the viewport around the player into the screen
// buffer. The cursor offset (curDI, curDJ) is relative to the player.
// North (increasing I) is up, east (increasing J) is right.
func RenderWorld(s *core.Screen, m *world.Model, curDI, curDJ int) {
	s.Clear()

	rows := s.Height()
	cols := s.Width() / cellWidth
	player := m.Player()

	for y := 0; y < rows; y++ {
		i := player.I + (rows/2 - y)
		for x := 0; x < cols; x++ {
			j := player.J + (x - cols/2)
			c := core.C(i, j)
			drawCell(s, x*cellWidth, y, m, c, player, curDI, curDJ)
		}
	}
}

// drawCell renders one grid cell into its cellWidth-column slot: the
// value field in the middle, cursor brackets at the slot edges.
func drawCell(s *core.Screen, x, y int, m *world.Model, c, player core.Coord, curDI, curDJ int) {
	isCursor := c.Equal(player.Add(curDI, curDJ))
	near := m.IsNear(c)

	var text string
	var color core.Color
	switch {
	case c.Equal(player):
		text = " @ "
		color = core.ColorBrightWhite
	case m.CurrentValue(c) > 0:
		v := m.CurrentValue(c)
		text = padValue(v)
		color = valueColor(v)
		if !near {
			color = core.ColorGray
		}
	case near:
		text = " · "
		color = core.ColorWhite
	default:
		text = " . "
		color = core.ColorGray
	}

	s.DrawTextColored(x+1, y, text, color)
	if isCursor {
		s.SetColored(x, y, '[', core.ColorYellow)
		s.SetColored(x+cellWidth-1, y, ']', core.ColorYellow)
	}
}

// padValue centers a token value in a 3-character field.
func padValue(v int) string {
	str := strconv.Itoa(v)
	switch len(str) {
	case 1:
		return " " + str + " "
	case 2:
		return " " + str
	default:
		return str
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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
