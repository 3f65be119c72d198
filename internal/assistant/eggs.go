package assistant

// Egg is a hidden key sequence.
type Egg struct {
	Name    string
	Code    []string
	Message string
}

// Easter egg names.
const (
	EggKonami = "konami"
	EggSpeed  = "speed"
)

// DefaultEggs returns the built-in easter eggs.
func DefaultEggs() []Egg {
	return []Egg{
		{
			Name:    EggKonami,
			Code:    []string{"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown", "ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight", "b", "a"},
			Message: "Konami Code Activated! God Mode enabled (simulated)",
		},
		{
			Name:    EggSpeed,
			Code:    []string{"s", "p", "e", "e", "d"},
			Message: "Speed theme activated!",
		},
	}
}

// Detector tracks progress through every egg's sequence.
type Detector struct {
	eggs     []Egg
	progress []int
}

// NewDetector creates a detector for eggs.
func NewDetector(eggs []Egg) *Detector {
	return &Detector{
		eggs:     eggs,
		progress: make([]int, len(eggs)),
	}
}

// Feed consumes one key name and returns the eggs it completed.
// A wrong key resets progress to 0, except when it equals the first key of
// the code: then progress restarts at 1, so "s s p e e d" still completes.
func (d *Detector) Feed(key string) []Egg {
	var done []Egg
	for i, egg := range d.eggs {
		switch {
		case key == egg.Code[d.progress[i]]:
			d.progress[i]++
		case key == egg.Code[0]:
			d.progress[i] = 1
		default:
			d.progress[i] = 0
		}

		if d.progress[i] >= len(egg.Code) {
			d.progress[i] = 0
			done = append(done, egg)
		}
	}
	return done
}
