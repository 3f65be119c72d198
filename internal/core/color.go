package core

// Color is a hex foreground color ("#rrggbb") for a screen cell.
// The empty color means the terminal default.
type Color string

// Palette used by the engine snapshot and the renderers.
const (
	ColorDefault Color = ""
	ColorPrimary Color = "#00ff88" // snake head, normal food
	ColorBody    Color = "#00cc66"
	ColorMagenta Color = "#ff00ff" // bonus-tagged food, speed boost
	ColorGold    Color = "#FFD700" // timed bonus food
	ColorShield  Color = "#00ccff"
	ColorDanger  Color = "#ff4444"
	ColorMuted   Color = "#666666"
	ColorWhite   Color = "#ffffff"
)
