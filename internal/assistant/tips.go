// Package assistant provides the side features around a run: startup tips,
// keyboard easter eggs, periodic advice and play statistics.
package assistant

// Tips shown at startup.
var Tips = []string{
	"Use the shield power-up to pass through walls!",
	"Bonus food appears randomly - grab it quick!",
	"The snake moves faster as your score increases",
	"Try to keep the snake in the center area",
	"Speed boost makes every move count twice as fast!",
	"You can pause with Space",
	"Plan your route before going for risky food",
	"The shield lasts for 50 moves - use it wisely",
	"Corner trapping is a common mistake - leave escape routes!",
	"Sound on? Listen for different eating tones!",
}

// Intner picks an index.
type Intner interface {
	Intn(n int) int
}

// RandomTip returns one of the tips.
func RandomTip(r Intner) string {
	return Tips[r.Intn(len(Tips))]
}
