package snake

// timer is an active flag with a tick countdown.
type timer struct {
	active bool
	ticks  int
}

func (t *timer) start(ticks int) {
	t.active = true
	t.ticks = ticks
}

// countdown decrements an active timer and reports whether it just expired.
func (t *timer) countdown() bool {
	if !t.active {
		return false
	}
	t.ticks--
	if t.ticks <= 0 {
		t.active = false
		t.ticks = 0
		return true
	}
	return false
}

// maybeActivatePowerUp rolls the power-up chance after a normal food is eaten.
// Reactivating a running power-up restarts its countdown.
func (e *Engine) maybeActivatePowerUp() (PowerUpKind, bool) {
	if !e.roll(e.cfg.PowerUps.Chance) {
		return "", false
	}
	kinds := [...]PowerUpKind{PowerUpShield, PowerUpSpeed}
	kind := kinds[e.rng.Intn(len(kinds))]
	switch kind {
	case PowerUpShield:
		e.shield.start(e.cfg.PowerUps.ShieldTicks)
	case PowerUpSpeed:
		e.speed.start(e.cfg.PowerUps.SpeedTicks)
	}
	return kind, true
}
