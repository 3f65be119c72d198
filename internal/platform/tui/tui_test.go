package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-ultra/internal/assistant"
	"github.com/vovakirdan/snake-ultra/internal/config"
	"github.com/vovakirdan/snake-ultra/internal/core"
	"github.com/vovakirdan/snake-ultra/internal/games/snake"
	"github.com/vovakirdan/snake-ultra/internal/session"
	"github.com/vovakirdan/snake-ultra/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	sess := session.New(session.Options{Config: config.DefaultSnakeConfig(), Seed: 1})
	return NewModel(sess)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", updated)
	}
	return next, cmd
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runeKey('w'), core.ActionUp, false},
		{runeKey('s'), core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('d'), core.ActionRight, false},
		{keySpace, core.ActionPause, false},
		{keyEnter, core.ActionStart, false},
		{runeKey('r'), core.ActionStart, false},
		{runeKey('m'), core.ActionSound, false},
		{runeKey('`'), core.ActionDebug, false},
		{runeKey('t'), core.ActionStats, false},
		{runeKey('+'), core.ActionVolumeUp, false},
		{runeKey('='), core.ActionVolumeUp, false},
		{runeKey('-'), core.ActionVolumeDown, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = %s, %v; expected %s, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
		}
	}
}

func TestEggKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, "ArrowUp"},
		{tea.KeyMsg{Type: tea.KeyDown}, "ArrowDown"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "ArrowLeft"},
		{tea.KeyMsg{Type: tea.KeyRight}, "ArrowRight"},
		{runeKey('b'), "b"},
	}
	for _, tc := range tests {
		if got := km.EggKey(tc.msg); got != tc.want {
			t.Errorf("EggKey(%q) = %q, expected %q", tc.msg.String(), got, tc.want)
		}
	}
}

func TestStartSchedulesTick(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, keyEnter)

	if m.session.Engine.Phase() != snake.PhaseRunning {
		t.Fatalf("phase = %s, expected running", m.session.Engine.Phase())
	}
	if cmd == nil {
		t.Error("start should schedule a tick")
	}
}

func TestTicksRunOnlyForCurrentEpoch(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, keyEnter)
	epoch := m.session.Engine.Epoch()

	m, cmd := send(t, m, TickMsg{Epoch: epoch - 1})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if snap := m.session.Engine.Snapshot(); snap.Tick != 0 {
		t.Errorf("stale tick advanced the engine to tick %d", snap.Tick)
	}

	m, cmd = send(t, m, TickMsg{Epoch: epoch})
	if snap := m.session.Engine.Snapshot(); snap.Tick != 1 {
		t.Errorf("tick = %d, expected 1", snap.Tick)
	}
	if cmd == nil {
		t.Error("a running game should schedule the next tick")
	}
}

func TestPauseInvalidatesScheduledTick(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, keyEnter)
	scheduled := m.session.Engine.Epoch()

	m, _ = send(t, m, keySpace)
	if m.session.Engine.Phase() != snake.PhasePaused {
		t.Fatalf("phase = %s, expected paused", m.session.Engine.Phase())
	}
	m, _ = send(t, m, TickMsg{Epoch: scheduled})
	if snap := m.session.Engine.Snapshot(); snap.Tick != 0 {
		t.Error("tick scheduled before pause should be dropped")
	}

	m, cmd := send(t, m, keySpace)
	if cmd == nil {
		t.Error("resume should schedule a tick")
	}
	m, _ = send(t, m, TickMsg{Epoch: scheduled})
	if snap := m.session.Engine.Snapshot(); snap.Tick != 0 {
		t.Error("tick scheduled before pause should stay stale after resume")
	}
}

func TestDirectionKeysSteer(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, keyEnter)
	m, _ = send(t, m, runeKey('a'))
	m, _ = send(t, m, TickMsg{Epoch: m.session.Engine.Epoch()})

	if dir := m.session.Engine.Snapshot().Direction; dir != snake.DirLeft {
		t.Errorf("direction = %s, expected left", dir)
	}
}

func TestSoundToggleShowsNotice(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, runeKey('m'))

	if m.session.Sound.Settings().Enabled {
		t.Error("m should turn sound off")
	}
	if m.notice != "sound off" {
		t.Errorf("notice = %q, expected %q", m.notice, "sound off")
	}
	if cmd == nil {
		t.Error("notice should expire")
	}

	m, _ = send(t, m, clearNoticeMsg{seq: m.noticeSeq})
	if m.notice != "" {
		t.Errorf("notice = %q after expiry", m.notice)
	}
}

func TestStaleNoticeExpiryIgnored(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('m'))
	old := m.noticeSeq
	m, _ = send(t, m, runeKey('m'))

	m, _ = send(t, m, clearNoticeMsg{seq: old})
	if m.notice != "sound on" {
		t.Errorf("notice = %q, expected the newer notice to stay", m.notice)
	}
}

func TestEasterEggShowsMessage(t *testing.T) {
	m := newTestModel(t)
	for _, r := range "speed" {
		m, _ = send(t, m, runeKey(r))
	}
	if !strings.Contains(m.notice, "Speed theme") {
		t.Errorf("notice = %q, expected the egg message", m.notice)
	}
}

func TestDebugLine(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('`'))

	out := m.board.Draw(m.view()).String()
	if !strings.Contains(out, "epoch") {
		t.Error("debug line should show the epoch")
	}
}

func TestStatsScreenOpensAndCloses(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('t'))
	if m.stats == nil {
		t.Fatal("t should open stats while idle")
	}
	if !strings.Contains(m.View(), "SNAKE STATS") {
		t.Error("View() should show the stats screen")
	}

	m, cmd := send(t, m, keyEsc)
	if m.stats != nil {
		t.Error("esc should close the stats screen")
	}
	if cmd != nil {
		t.Error("closing embedded stats should not quit")
	}
}

func TestStatsNotOpenedWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, keyEnter)
	m, _ = send(t, m, runeKey('t'))
	if m.stats != nil {
		t.Error("stats should not open during a run")
	}
}

func TestBoardDraw(t *testing.T) {
	e := snake.New(config.DefaultSnakeConfig(), snake.NewRandom(1))
	snap := e.Snapshot()
	b := NewBoard(snap.TileCount)

	s := b.Draw(View{Snap: snap, Phase: snake.PhaseRunning, SoundOn: true})

	head := snap.Head()
	x, y := b.left+1+head.X*2, hudRows+1+head.Y
	if cell := s.GetCell(x, y); cell.Rune != '█' || cell.Color != core.ColorPrimary {
		t.Errorf("head cell = %q %s, expected the head glyph", cell.Rune, cell.Color)
	}
	if cell := s.GetCell(b.left, hudRows); cell.Color != core.ColorMuted {
		t.Errorf("border color = %s, expected muted", cell.Color)
	}
	if !strings.Contains(s.Row(0), "SCORE 0") {
		t.Errorf("HUD = %q, expected the score", s.Row(0))
	}

	snap.ShieldActive = true
	snap.ShieldTicks = 42
	s = b.Draw(View{Snap: snap, Phase: snake.PhaseRunning})
	if cell := s.GetCell(b.left, hudRows); cell.Color != core.ColorShield {
		t.Errorf("border color = %s, expected shield", cell.Color)
	}
	if !strings.Contains(s.Row(1), "SHIELD 42") {
		t.Errorf("power-up line = %q, expected the shield countdown", s.Row(1))
	}
}

func TestBoardParticlesUseCellSize(t *testing.T) {
	b := NewBoard(20)
	snap := snake.Snapshot{
		TileCount: 20,
		CellSize:  20,
		Food:      snake.Food{Pos: core.Point{X: -1, Y: -1}},
		Particles: []snake.Particle{
			{X: 5*20 + 3, Y: 2*20 + 19, Color: core.ColorMagenta},
			{X: -4, Y: 10, Color: core.ColorMagenta}, // off the board
		},
	}

	s := b.Draw(View{Snap: snap, Phase: snake.PhaseRunning})

	if cell := s.GetCell(b.left+1+5*2, hudRows+1+2); cell.Rune != '·' || cell.Color != core.ColorMagenta {
		t.Errorf("particle cell = %q %s, expected a magenta dot", cell.Rune, cell.Color)
	}
}

func TestBoardOverlays(t *testing.T) {
	snap := snake.New(config.DefaultSnakeConfig(), snake.NewRandom(1)).Snapshot()
	b := NewBoard(snap.TileCount)

	tests := []struct {
		phase   snake.Phase
		newHigh bool
		want    string
	}{
		{snake.PhaseIdle, false, "press enter to start"},
		{snake.PhasePaused, false, "PAUSED"},
		{snake.PhaseGameOver, false, "GAME OVER"},
		{snake.PhaseGameOver, true, "new high score!"},
	}
	for _, tc := range tests {
		out := b.Draw(View{Snap: snap, Phase: tc.phase, NewHigh: tc.newHigh}).String()
		if !strings.Contains(out, tc.want) {
			t.Errorf("%s overlay missing %q", tc.phase, tc.want)
		}
	}

	out := b.Draw(View{Snap: snap, Phase: snake.PhaseRunning}).String()
	if strings.Contains(out, "PAUSED") || strings.Contains(out, "GAME OVER") {
		t.Error("running board should have no overlay")
	}
}

func TestFrameKeepsLatestSnapshot(t *testing.T) {
	frame := &Frame{}
	if _, ok := frame.Snapshot(); ok {
		t.Error("empty frame should report no snapshot")
	}

	e := snake.New(config.DefaultSnakeConfig(), snake.NewRandom(1), snake.WithRenderer(frame))
	e.Start()
	e.Tick()

	snap, ok := frame.Snapshot()
	if !ok || snap.Tick != 1 {
		t.Errorf("frame tick = %d, %v; expected 1", snap.Tick, ok)
	}
}

func TestStatsRows(t *testing.T) {
	stored := &storage.Stats{
		GamesPlayed: 4,
		TotalScore:  200,
		HighScore:   90,
		AvgScore:    50,
	}
	tracked := &assistant.Stats{GamesPlayed: 1, TotalScore: 30, AverageScore: 30, SessionTime: 90 * time.Second}

	rows := StatsRows(stored, tracked)
	want := map[string]string{
		"Games played":  "4",
		"Total score":   "200",
		"Average score": "50",
		"High score":    "90",
		"Last played":   "never",
		"Session time":  "1m30s",
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, expected %d", len(rows), len(want))
	}
	for _, row := range rows {
		if want[row[0]] != row[1] {
			t.Errorf("%s = %q, expected %q", row[0], row[1], want[row[0]])
		}
	}

	rows = StatsRows(nil, tracked)
	if len(rows) != 4 || rows[0][1] != "1" {
		t.Errorf("session-only rows = %v", rows)
	}
	if rows := StatsRows(nil, nil); len(rows) != 0 {
		t.Errorf("StatsRows(nil, nil) = %v, expected none", rows)
	}
}

func TestDifficultyModelSelect(t *testing.T) {
	m := NewDifficultyModel(80, 24, 0)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, cmd := updated.Update(keyEnter)

	dm := updated.(DifficultyModel)
	preset, ok := dm.Selected()
	if !ok || preset != config.DifficultyHard {
		t.Errorf("Selected() = %s, %v; expected hard", preset, ok)
	}
	if cmd == nil {
		t.Error("selection should quit the selector")
	}
}

func TestDifficultyModelQuit(t *testing.T) {
	m := NewDifficultyModel(80, 24, 0)
	updated, _ := m.Update(keyEsc)

	dm := updated.(DifficultyModel)
	if !dm.IsQuitting() {
		t.Error("esc should quit")
	}
	if _, ok := dm.Selected(); ok {
		t.Error("nothing should be selected after quitting")
	}
}

func TestDifficultyCursorStartsOnStoredSpeed(t *testing.T) {
	tests := []struct {
		name   string
		stored int
		want   config.DifficultyPreset
	}{
		{"nothing stored", 0, config.DifficultyNormal},
		{"easy speed", 150, config.DifficultyEasy},
		{"hard speed", 60, config.DifficultyHard},
		{"unknown speed", 75, config.DifficultyNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewDifficultyModel(80, 24, tc.stored)
			updated, _ := m.Update(keyEnter)

			preset, ok := updated.(DifficultyModel).Selected()
			if !ok || preset != tc.want {
				t.Errorf("Selected() = %s, %v; expected %s", preset, ok, tc.want)
			}
		})
	}
}

func TestDifficultyCursorStaysInRange(t *testing.T) {
	var m tea.Model = NewDifficultyModel(80, 24, 150)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(keyEnter)

	if preset, _ := m.(DifficultyModel).Selected(); preset != config.DifficultyEasy {
		t.Errorf("Selected() = %s, expected easy", preset)
	}
}

func TestVolumeKeys(t *testing.T) {
	m := newTestModel(t)
	start := m.session.Sound.Settings().Volume

	m, cmd := send(t, m, runeKey('+'))
	if got := m.session.Sound.Settings().Volume; got < start+0.09 || got > start+0.11 {
		t.Errorf("volume = %.2f, expected %.2f", got, start+0.1)
	}
	if !strings.HasPrefix(m.notice, "volume ") || cmd == nil {
		t.Errorf("notice = %q, expected a volume notice", m.notice)
	}

	for range 20 {
		m, _ = send(t, m, runeKey('-'))
	}
	if got := m.session.Sound.Settings().Volume; got != 0 {
		t.Errorf("volume = %.2f, expected it clamped to 0", got)
	}
	if m.notice != "volume 0%" {
		t.Errorf("notice = %q, expected %q", m.notice, "volume 0%")
	}
}
