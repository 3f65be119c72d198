package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-ultra/internal/core"
	"github.com/vovakirdan/snake-ultra/internal/games/snake"
	"github.com/vovakirdan/snake-ultra/internal/session"
)

// How long notices stay on screen
const (
	tipDuration    = 10 * time.Second
	adviceDuration = 3 * time.Second
	eggDuration    = 3 * time.Second
	soundDuration  = 1500 * time.Millisecond
)

const volumeStep = 0.1

// Model is the Bubble Tea model for a snake session.
type Model struct {
	session *session.Session
	board   *Board
	frame   *Frame
	keys    *KeyMapper
	stats   *StatsModel // Non-nil while the stats screen is open

	width     int
	height    int
	notice    string
	noticeSeq int
	newHigh   bool
	debug     bool
	quitting  bool
}

// NewModel creates a model and installs itself as the engine's renderer.
func NewModel(sess *session.Session) Model {
	frame := &Frame{}
	sess.Engine.SetRenderer(frame)
	frame.Render(sess.Engine.Snapshot())

	m := Model{
		session: sess,
		board:   NewBoard(sess.Engine.TileCount()),
		frame:   frame,
		keys:    NewKeyMapper(),
	}
	if tip, ok := sess.Tip(); ok {
		m.notice = tip
		m.noticeSeq = 1
	}
	return m
}

// Init schedules the tip expiry and the advice loop. The game waits idle
// for the start key.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.notice != "" {
		cmds = append(cmds, clearNoticeCmd(tipDuration, m.noticeSeq))
	}
	cmds = append(cmds, adviceCmd(m.adviceEvery()))
	return tea.Batch(cmds...)
}

func (m Model) adviceEvery() time.Duration {
	return time.Duration(m.session.Config().Assistant.AdviceEverySec) * time.Second
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.stats != nil {
		switch msg.(type) {
		case tea.KeyMsg, tea.WindowSizeMsg:
			return m.updateStats(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case adviceMsg:
		var cmd tea.Cmd
		if text, ok := m.session.Advice(); ok {
			m, cmd = m.showNotice(text, adviceDuration)
		}
		return m, tea.Batch(cmd, adviceCmd(m.adviceEvery()))

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.stats.Update(msg)
	sm, ok := updated.(StatsModel)
	if !ok {
		m.stats = nil
		return m, cmd
	}
	switch {
	case sm.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sm.IsGoingBack():
		m.stats = nil
		return m, nil
	}
	m.stats = &sm
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if found := m.session.FeedKey(m.keys.EggKey(msg)); len(found) > 0 {
		var cmd tea.Cmd
		m, cmd = m.showNotice(found[0], eggDuration)
		cmds = append(cmds, cmd)
	}

	engine := m.session.Engine
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action.IsDirection():
		engine.SetDirection(snake.DirectionFromAction(action))

	case action == core.ActionPause:
		engine.TogglePause()
		if engine.Phase() == snake.PhaseRunning {
			cmds = append(cmds, m.schedule())
		}

	case action == core.ActionStart:
		if engine.Phase() == snake.PhaseIdle || engine.Phase() == snake.PhaseGameOver {
			m.newHigh = false
			engine.Start()
			cmds = append(cmds, m.schedule())
		}

	case action == core.ActionSound:
		state := "off"
		if m.session.Sound.Toggle() {
			state = "on"
		}
		var cmd tea.Cmd
		m, cmd = m.showNotice("sound "+state, soundDuration)
		cmds = append(cmds, cmd)

	case action == core.ActionVolumeUp, action == core.ActionVolumeDown:
		step := volumeStep
		if action == core.ActionVolumeDown {
			step = -step
		}
		sound := m.session.Sound
		sound.SetVolume(sound.Settings().Volume + step)
		var cmd tea.Cmd
		m, cmd = m.showNotice(fmt.Sprintf("volume %.0f%%", sound.Settings().Volume*100), soundDuration)
		cmds = append(cmds, cmd)

	case action == core.ActionDebug:
		m.debug = !m.debug

	case action == core.ActionStats:
		if engine.Phase() != snake.PhaseRunning {
			tracked := m.session.Stats()
			sm := NewStatsModel(m.session.Store(), &tracked, m.width, m.height)
			sm.embedded = true
			m.stats = &sm
		}
	}

	return m, tea.Batch(cmds...)
}

// schedule arms the next tick under the current epoch.
func (m Model) schedule() tea.Cmd {
	engine := m.session.Engine
	return tickCmd(engine.Interval(), engine.Epoch())
}

// handleTick runs one engine tick unless the tick is stale.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	engine := m.session.Engine
	if msg.Epoch != engine.Epoch() || engine.Phase() != snake.PhaseRunning {
		return m, nil
	}

	res := m.session.Tick()
	for _, ev := range res.Events {
		if ev.Type == snake.EventGameOver {
			m.newHigh = ev.NewHighScore
		}
	}

	if engine.Phase() != snake.PhaseRunning {
		return m, nil
	}
	return m, m.schedule()
}

func (m Model) showNotice(text string, d time.Duration) (Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = text
	return m, clearNoticeCmd(d, m.noticeSeq)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.stats != nil {
		return m.stats.View()
	}

	out := RenderScreen(m.board.Draw(m.view()))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

func (m Model) view() View {
	engine := m.session.Engine
	snap, _ := m.frame.Snapshot()
	v := View{
		Snap:    snap,
		Phase:   engine.Phase(),
		NewHigh: m.newHigh,
		SoundOn: m.session.Sound.Settings().Enabled,
		Notice:  m.notice,
	}
	v.Snap.HighScore = engine.HighScore()
	if m.debug {
		v.DebugLine = fmt.Sprintf("tick %d  interval %s  epoch %d", snap.Tick, engine.Interval(), engine.Epoch())
	}
	return v
}

// Run starts the Bubble Tea program for the session.
func Run(sess *session.Session) error {
	p := tea.NewProgram(
		NewModel(sess),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
