package snake

import (
	"time"

	"github.com/vovakirdan/snake-ultra/internal/core"
)

// FoodKind is the scoring category or the visual tag of a food item.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodBonus
)

func (k FoodKind) String() string {
	if k == FoodBonus {
		return "bonus"
	}
	return "normal"
}

// Food is the always-present item. Kind decides the score, Tag decides the color;
// they are rolled independently.
type Food struct {
	Pos  core.Point
	Kind FoodKind
	Tag  FoodKind
}

// Color returns the display color for the food's visual tag.
func (f Food) Color() core.Color {
	if f.Tag == FoodBonus {
		return core.ColorMagenta
	}
	return core.ColorPrimary
}

// BonusFood is the scarce timed item.
type BonusFood struct {
	Pos   core.Point
	Ticks int // Ticks left before it despawns
}

// offGrid parks food that cannot be placed.
var offGrid = core.Point{X: -1, Y: -1}

// roll reports a success with the given probability, comparing like r > 1-p.
func (e *Engine) roll(chance float64) bool {
	return e.rng.Float64() > 1-chance
}

// freeCells returns every cell not occupied by the snake or the excluded points.
func (e *Engine) freeCells(exclude ...core.Point) []core.Point {
	occupied := make(map[core.Point]bool, len(e.snake)+len(exclude))
	for _, seg := range e.snake {
		occupied[seg] = true
	}
	for _, p := range exclude {
		occupied[p] = true
	}

	cells := make([]core.Point, 0, max(0, e.tileCount*e.tileCount-len(occupied)))
	for y := range e.tileCount {
		for x := range e.tileCount {
			p := core.Point{X: x, Y: y}
			if !occupied[p] {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// spawnFood places food on a random free cell and may schedule a timed bonus.
func (e *Engine) spawnFood() {
	cells := e.freeCells()
	pos := offGrid
	if len(cells) > 0 {
		pos = cells[e.rng.Intn(len(cells))]
	}

	food := Food{Pos: pos, Kind: FoodNormal, Tag: FoodNormal}
	if e.roll(e.cfg.Food.BonusKindChance) {
		food.Kind = FoodBonus
	}
	if e.roll(e.cfg.Food.BonusTagChance) {
		food.Tag = FoodBonus
	}
	e.food = food

	// The spawn chance is always drawn, even when a bonus already exists
	if e.roll(e.cfg.Food.BonusSpawnChance) && e.bonus == nil && !e.bonusPending {
		e.bonusPending = true
		e.bonusClock = 0
	}
}

// advanceBonusClock runs the pending bonus timer by one executed tick.
func (e *Engine) advanceBonusClock(ran time.Duration) {
	if !e.bonusPending {
		return
	}
	e.bonusClock += ran
	if e.bonusClock < e.bonusDelay() {
		return
	}
	e.bonusPending = false
	e.bonusClock = 0
	e.placeBonus()
}

// bonusDelay is how much simulated time passes before a scheduled bonus appears.
func (e *Engine) bonusDelay() time.Duration {
	return time.Duration(e.cfg.Food.BonusDelayMS) * time.Millisecond
}

// placeBonus puts the timed bonus on a cell free of snake and food.
func (e *Engine) placeBonus() {
	cells := e.freeCells(e.food.Pos)
	if len(cells) == 0 {
		return
	}
	e.bonus = &BonusFood{
		Pos:   cells[e.rng.Intn(len(cells))],
		Ticks: e.cfg.Food.BonusTicks,
	}
}

// decayBonus counts the timed bonus down and removes it at zero.
func (e *Engine) decayBonus() {
	if e.bonus == nil {
		return
	}
	e.bonus.Ticks--
	if e.bonus.Ticks <= 0 {
		e.bonus = nil
	}
}
