package assistant

import (
	"github.com/vovakirdan/snake-ultra/internal/games/snake"
)

const (
	longSnake  = 15
	farFood    = 10
	wallMargin = 2
)

// Advice messages.
const (
	AdviceLong = "Your snake is getting long! Plan your turns carefully."
	AdviceFar  = "Food is far away - create a safe path!"
	AdviceWall = "You're near a wall! Watch out unless you have shield."
)

// Floater rolls a uniform value in [0, 1).
type Floater interface {
	Float64() float64
}

// Advise returns every piece of advice that applies to the snapshot, most
// important first.
func Advise(snap snake.Snapshot) []string {
	if len(snap.Snake) == 0 {
		return nil
	}
	var advice []string

	if len(snap.Snake) > longSnake {
		advice = append(advice, AdviceLong)
	}

	head := snap.Head()
	if head.Manhattan(snap.Food.Pos) > farFood {
		advice = append(advice, AdviceFar)
	}

	edge := snap.TileCount - 1 - wallMargin
	if head.X <= wallMargin || head.X >= edge || head.Y <= wallMargin || head.Y >= edge {
		advice = append(advice, AdviceWall)
	}

	return advice
}

// Analyze picks the first applicable advice, shown with the given chance.
// The roll is drawn only when some advice applies.
func Analyze(snap snake.Snapshot, r Floater, chance float64) (string, bool) {
	advice := Advise(snap)
	if len(advice) == 0 || r.Float64() <= 1-chance {
		return "", false
	}
	return advice[0], true
}
