package snake

// EventType identifies an engine notification.
type EventType int

const (
	EventStart EventType = iota
	EventEat
	EventBonusEat
	EventPowerUp
	EventLevelUp
	EventGameOver
	EventPause
	EventResume
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "start"
	case EventEat:
		return "eat"
	case EventBonusEat:
		return "bonus_eat"
	case EventPowerUp:
		return "power_up"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	default:
		return "unknown"
	}
}

// PowerUpKind names a temporary power-up.
type PowerUpKind string

const (
	PowerUpShield PowerUpKind = "shield"
	PowerUpSpeed  PowerUpKind = "speed"
)

// Event is a fire-and-forget notification. Only the fields relevant to Type are set.
type Event struct {
	Type         EventType
	BonusKind    bool        // EventEat: the food scored as bonus kind
	PowerUp      PowerUpKind // EventPowerUp
	Level        int         // EventLevelUp: the new level
	Score        int         // EventGameOver: final score
	NewHighScore bool        // EventGameOver: the high score was beaten
}

// Listener observes engine events. Implementations must not block.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Renderer receives read-only snapshots once per tick, on pause, and on reset.
type Renderer interface {
	Render(Snapshot)
}

// HighScoreKeeper persists the single high score value.
type HighScoreKeeper interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// MemoryKeeper is a HighScoreKeeper that lives for the process only.
type MemoryKeeper struct {
	best int
}

// LoadHighScore returns the best score saved so far.
func (k *MemoryKeeper) LoadHighScore() int { return k.best }

// SaveHighScore stores score.
func (k *MemoryKeeper) SaveHighScore(score int) { k.best = score }
