package snake

import (
	"math"
	"testing"

	"github.com/vovakirdan/snake-ultra/internal/config"
	"github.com/vovakirdan/snake-ultra/internal/core"
)

func TestFoodSpawnValidity(t *testing.T) {
	e := New(config.DefaultSnakeConfig(), NewRandom(999))

	// Spawn food multiple times and verify it never lands on the snake
	for range 200 {
		e.spawnFood()

		if e.isSnakeAt(e.food.Pos) {
			t.Errorf("Food spawned on snake at (%d, %d)", e.food.Pos.X, e.food.Pos.Y)
		}
		if !e.food.Pos.InBounds(e.tileCount) {
			t.Errorf("Food spawned out of bounds at (%d, %d)", e.food.Pos.X, e.food.Pos.Y)
		}
	}
}

func TestFoodParkedWhenBoardFull(t *testing.T) {
	e, _ := newTestEngine()
	e.snake = e.snake[:0]
	for y := range e.tileCount {
		for x := range e.tileCount {
			e.snake = append(e.snake, core.Point{X: x, Y: y})
		}
	}

	e.spawnFood()

	if e.food.Pos != offGrid {
		t.Errorf("food = %v, expected off-grid", e.food.Pos)
	}
}

// TestFoodKindAndTagIndependent checks that scoring kind and color are separate
// rolls: each combination appears at the product of its marginals.
func TestFoodKindAndTagIndependent(t *testing.T) {
	e := New(config.DefaultSnakeConfig(), NewRandom(42))
	const n = 20000

	counts := map[[2]FoodKind]int{}
	for range n {
		e.spawnFood()
		counts[[2]FoodKind{e.food.Kind, e.food.Tag}]++
	}

	tests := []struct {
		kind, tag FoodKind
		want      float64
	}{
		{FoodNormal, FoodNormal, 0.64},
		{FoodNormal, FoodBonus, 0.16},
		{FoodBonus, FoodNormal, 0.16},
		{FoodBonus, FoodBonus, 0.04},
	}
	for _, tc := range tests {
		got := float64(counts[[2]FoodKind{tc.kind, tc.tag}]) / n
		if math.Abs(got-tc.want) > 0.015 {
			t.Errorf("kind %s / tag %s: frequency %.3f, expected about %.2f", tc.kind, tc.tag, got, tc.want)
		}
	}
}

func TestFoodRollsFollowDrawOrder(t *testing.T) {
	e, r := newTestEngine()
	// cell index, then kind, tag and bonus spawn chance
	r.ints = []int{3}
	r.floats = []float64{0.9, 0.1, 0.95}

	e.spawnFood()

	if e.food.Pos != (core.Point{X: 3, Y: 0}) {
		t.Errorf("food at %v, expected (3,0)", e.food.Pos)
	}
	if e.food.Kind != FoodBonus || e.food.Tag != FoodNormal {
		t.Errorf("food kind/tag = %s/%s, expected bonus/normal", e.food.Kind, e.food.Tag)
	}
	if e.food.Color() != core.ColorPrimary {
		t.Errorf("Color() = %q, expected the normal tag color", e.food.Color())
	}
	if !e.bonusPending {
		t.Error("bonus should be scheduled")
	}
}

func TestBonusNotScheduledWhileActive(t *testing.T) {
	e, r := newTestEngine()
	e.bonus = &BonusFood{Pos: core.Point{X: 1, Y: 1}, Ticks: 10}
	r.floats = []float64{0, 0, 0.95}

	e.spawnFood()

	if e.bonusPending {
		t.Error("bonus scheduled while another is on the board")
	}
	if len(r.floats) != 0 {
		t.Error("bonus spawn chance should still be drawn")
	}
}

func TestBonusAppearsAfterSimulatedDelay(t *testing.T) {
	e, _ := newWideEngine()
	e.Start()
	e.bonusPending = true

	// 5000ms at 100ms per tick
	for i := range 49 {
		e.Tick()
		if e.bonus != nil {
			t.Fatalf("bonus appeared early at tick %d", i+1)
		}
	}
	e.Tick()

	if e.bonus == nil {
		t.Fatal("bonus should appear after 50 ticks")
	}
	// Food holds (0,0), so the first free cell is (1,0)
	if e.bonus.Pos != (core.Point{X: 1, Y: 0}) {
		t.Errorf("bonus at %v, expected (1,0)", e.bonus.Pos)
	}
	if e.bonus.Ticks != 100 {
		t.Errorf("bonus ticks = %d, expected 100", e.bonus.Ticks)
	}
	if e.bonusPending {
		t.Error("pending flag should clear once placed")
	}
}

func TestBonusClockFreezesWhilePaused(t *testing.T) {
	e, _ := newTestEngine()
	e.Start()
	e.bonusPending = true
	e.Tick()

	e.TogglePause()
	for range 100 {
		e.Tick()
	}
	if e.bonusClock != e.Interval() {
		t.Errorf("bonus clock = %s, expected one interval", e.bonusClock)
	}
}

func TestBonusDecays(t *testing.T) {
	e, _ := newTestEngine()
	e.Start()
	e.bonus = &BonusFood{Pos: core.Point{X: 3, Y: 3}, Ticks: 2}

	e.Tick()
	if e.bonus == nil || e.bonus.Ticks != 1 {
		t.Fatalf("bonus = %+v, expected 1 tick left", e.bonus)
	}
	e.Tick()
	if e.bonus != nil {
		t.Error("bonus should despawn at zero")
	}
}

func TestResetCancelsPendingBonus(t *testing.T) {
	e, _ := newTestEngine()
	e.bonusPending = true
	e.bonus = &BonusFood{Pos: core.Point{X: 3, Y: 3}, Ticks: 50}

	e.Reset()

	if e.bonusPending || e.bonus != nil {
		t.Error("Reset() should clear the timed bonus")
	}
}

func TestBonusSkipsFoodAndSnake(t *testing.T) {
	e := New(config.DefaultSnakeConfig(), NewRandom(7))
	for range 200 {
		e.bonus = nil
		e.placeBonus()
		if e.bonus == nil {
			t.Fatal("placeBonus() found no cell")
		}
		if e.bonus.Pos == e.food.Pos || e.isSnakeAt(e.bonus.Pos) {
			t.Fatalf("bonus placed on an occupied cell %v", e.bonus.Pos)
		}
	}
}
