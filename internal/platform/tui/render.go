package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-ultra/internal/core"
	"github.com/vovakirdan/snake-ultra/internal/games/snake"
)

// colorStyles maps the palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorPrimary: paletteStyle(core.ColorPrimary),
	core.ColorBody:    paletteStyle(core.ColorBody),
	core.ColorMagenta: paletteStyle(core.ColorMagenta),
	core.ColorGold:    paletteStyle(core.ColorGold),
	core.ColorShield:  paletteStyle(core.ColorShield),
	core.ColorDanger:  paletteStyle(core.ColorDanger),
	core.ColorMuted:   paletteStyle(core.ColorMuted),
	core.ColorWhite:   paletteStyle(core.ColorWhite),
}

func paletteStyle(c core.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return paletteStyle(c)
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

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// Layout rows around the board
const (
	hudRows    = 2 // score line, power-up line
	footerRows = 3 // notice, help, debug
	minWidth   = 68
)

const helpLine = "arrows move  space pause  m sound  +/- volume  q quit"

// Frame keeps the latest snapshot pushed by the engine. It is the engine's
// Renderer; drawing happens later in View.
type Frame struct {
	snap snake.Snapshot
	ok   bool
}

// Render stores the snapshot.
func (f *Frame) Render(s snake.Snapshot) {
	f.snap = s
	f.ok = true
}

// Snapshot returns the last pushed snapshot.
func (f *Frame) Snapshot() (snake.Snapshot, bool) {
	return f.snap, f.ok
}

// View is everything drawn in one frame.
type View struct {
	Snap      snake.Snapshot
	Phase     snake.Phase // Engine phase; the game-over tick pushes no snapshot
	NewHigh   bool
	SoundOn   bool
	Notice    string
	DebugLine string
}

// Board draws views onto a screen buffer, two columns per grid cell.
type Board struct {
	screen *core.Screen
	tiles  int
	left   int
}

// NewBoard sizes a screen for a grid of tileCount cells per side.
func NewBoard(tileCount int) *Board {
	boardW := tileCount*2 + 2
	w := max(boardW, minWidth)
	h := hudRows + tileCount + 2 + footerRows
	return &Board{
		screen: core.NewScreen(w, h),
		tiles:  tileCount,
		left:   (w - boardW) / 2,
	}
}

// Draw renders v and returns the buffer.
func (b *Board) Draw(v View) *core.Screen {
	s := b.screen
	s.Clear()

	b.drawHUD(v)

	border := core.ColorMuted
	if v.Snap.ShieldActive {
		border = core.ColorShield
	}
	s.DrawBox(b.left, hudRows, b.tiles*2+2, b.tiles+2, border)

	b.drawParticles(v.Snap)
	b.cell(v.Snap.Food.Pos, '◆', ' ', v.Snap.Food.Color())
	if v.Snap.Bonus != nil {
		b.cell(v.Snap.Bonus.Pos, '★', ' ', core.ColorGold)
	}
	for i := len(v.Snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			b.cell(v.Snap.Snake[i], '█', '█', core.ColorPrimary)
		} else {
			b.cell(v.Snap.Snake[i], '▓', '▓', core.ColorBody)
		}
	}

	b.drawOverlay(v)

	footer := hudRows + b.tiles + 2
	if v.Notice != "" {
		s.DrawTextCentered(footer, v.Notice, core.ColorGold)
	}
	sound := "on"
	if !v.SoundOn {
		sound = "off"
	}
	s.DrawTextCentered(footer+1, fmt.Sprintf("%s  [sound %s]", helpLine, sound), core.ColorMuted)
	if v.DebugLine != "" {
		s.DrawText(0, footer+2, v.DebugLine, core.ColorMuted)
	}
	return s
}

func (b *Board) drawHUD(v View) {
	s := b.screen
	s.DrawText(b.left, 0, fmt.Sprintf("SCORE %d  BEST %d  LEVEL %d", v.Snap.Score, v.Snap.HighScore, v.Snap.Level), core.ColorWhite)

	x := b.left
	put := func(text string, c core.Color) {
		s.DrawText(x, 1, text, c)
		x += len(text) + 2
	}
	if v.Snap.ShieldActive {
		put(fmt.Sprintf("SHIELD %d", v.Snap.ShieldTicks), core.ColorShield)
	}
	if v.Snap.SpeedActive {
		put(fmt.Sprintf("SPEED %d", v.Snap.SpeedTicks), core.ColorMagenta)
	}
	if v.Snap.Bonus != nil {
		put(fmt.Sprintf("BONUS %d", v.Snap.Bonus.Ticks), core.ColorGold)
	}
}

// drawParticles maps particle pixel positions onto cells.
func (b *Board) drawParticles(snap snake.Snapshot) {
	if snap.CellSize <= 0 {
		return
	}
	size := float64(snap.CellSize)
	for _, p := range snap.Particles {
		if p.X < 0 || p.Y < 0 {
			continue
		}
		b.cell(core.Point{X: int(p.X / size), Y: int(p.Y / size)}, '·', ' ', p.Color)
	}
}

// cell draws a grid cell; off-grid points are skipped.
func (b *Board) cell(p core.Point, left, right rune, c core.Color) {
	if !p.InBounds(b.tiles) {
		return
	}
	x := b.left + 1 + p.X*2
	y := hudRows + 1 + p.Y
	b.screen.SetCell(x, y, left, c)
	b.screen.SetCell(x+1, y, right, c)
}

func (b *Board) drawOverlay(v View) {
	var lines []string
	color := core.ColorWhite
	switch v.Phase {
	case snake.PhaseIdle:
		lines = []string{"S N A K E", "", "press enter to start"}
	case snake.PhasePaused:
		lines = []string{"PAUSED", "", "space to resume"}
	case snake.PhaseGameOver:
		color = core.ColorDanger
		lines = []string{"GAME OVER", "", fmt.Sprintf("score %d", v.Snap.Score)}
		if v.NewHigh {
			lines = append(lines, "new high score!")
		}
		lines = append(lines, "", "enter: again  t: stats")
	default:
		return
	}

	top := hudRows + 1 + (b.tiles-len(lines))/2
	for i, line := range lines {
		if line != "" {
			b.screen.DrawTextCentered(top+i, line, color)
		}
	}
}
