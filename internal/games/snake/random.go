package snake

import (
	"math/rand"
	"time"
)

// Random is the single source of randomness for the engine.
// *rand.Rand satisfies it.
//
// Draw order is fixed so scripted sources can target outcomes:
//   - particle burst: vx, vy, size for each particle
//   - food eaten: power-up chance, then power-up choice
//   - food spawn: cell index, kind, visual tag, then bonus-spawn chance
//   - timed bonus placement: cell index
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a seeded source. A zero seed picks one from the clock.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
