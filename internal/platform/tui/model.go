package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/logging"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// Recorder receives every simulated tick.
type Recorder interface {
	Record(in core.InputFrame, dt time.Duration) error
}

// pointerMapper is implemented by games that accept a mouse cursor.
type pointerMapper interface {
	WorldX(col, screenW int) float64
}

// Options configure a game session. Zero values disable the feature.
type Options struct {
	Store    *storage.Store
	Audio    audio.Player
	Logger   *log.Logger
	Recorder Recorder
	Player   string        // Name stored with finished runs
	MaxDelta time.Duration // Longest frame fed to the simulation
	MoveHold time.Duration // How long one key press keeps the paddle moving
}

// DefaultMaxDelta caps frame deltas when Options.MaxDelta is unset.
const DefaultMaxDelta = 100 * time.Millisecond

// DefaultMoveHold is used when Options.MoveHold is unset.
const DefaultMoveHold = 150 * time.Millisecond

// Model is the Bubble Tea model for running a game.
//
// Terminals report key presses but not releases, so a movement key keeps the
// paddle moving for MoveHold after the last press; key repeat extends it.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	clock      func() time.Time

	lastTick  time.Time
	moveDir   float64
	moveUntil time.Time
	played    time.Duration

	embedded   bool // Running inside a session; Back returns to the menu
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been stored
	err        error
}

// NewModel creates a new Bubble Tea model for the given game and starts a run.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Audio == nil {
		opts.Audio = audio.NopPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.MaxDelta <= 0 {
		opts.MaxDelta = DefaultMaxDelta
	}
	if opts.MoveHold <= 0 {
		opts.MoveHold = DefaultMoveHold
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		clock:      time.Now,
	}

	if err := game.Reset(cfg); err != nil {
		opts.Logger.Error("cannot start game", "game", game.ID(), "error", err)
		m.err = err
	}
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft:
		m.moveDir = -1
		m.moveUntil = m.clock().Add(m.opts.MoveHold)
	case core.ActionRight:
		m.moveDir = 1
		m.moveUntil = m.clock().Add(m.opts.MoveHold)
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			return m.leave()
		}
		m.inputFrame.Set(core.ActionPause)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse moves the paddle to the cursor; a left click launches.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pm, ok := m.game.(pointerMapper)
	if !ok {
		return m, nil
	}
	m.inputFrame.SetPointer(pm.WorldX(msg.X, m.screen.Width()))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionLaunch)
	}
	return m, nil
}

// handleResize processes window resize events. The world has a fixed size,
// so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the wall-clock delta since the
// previous tick, capped at MaxDelta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now
	dt = max(0, min(dt, m.opts.MaxDelta))

	if now.Before(m.moveUntil) {
		m.inputFrame.SetMovement(m.moveDir)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if m.opts.Recorder != nil {
		if err := m.opts.Recorder.Record(m.inputFrame, dt); err != nil {
			m.opts.Logger.Warn("recording stopped", "error", err)
			m.opts.Recorder = nil
		}
	}
	m.inputFrame.Clear()

	for _, cue := range result.Cues {
		m.opts.Audio.Play(cue)
	}
	m.logEvents(result.Events)

	if result.Err != nil {
		m.opts.Logger.Error("round aborted", "game", m.game.ID(), "error", result.Err)
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	// A restart after game over starts a new run
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.played = 0
	}
	if !m.gameState.Paused && !m.gameState.GameOver && !m.gameState.Won {
		m.played += dt
	}

	if m.gameState.GameOver {
		outcome := storage.OutcomeGameOver
		if m.gameState.Won {
			outcome = storage.OutcomeComplete
		}
		m.saveRun(outcome)
	}

	return m, tickCmd(m.config.TickRate)
}

// logEvents reports run milestones.
func (m *Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventLifeLost:
			m.opts.Logger.Debug("life lost", "lives", m.gameState.Lives)
		case core.EventWin:
			m.opts.Logger.Info("level cleared", "level", m.gameState.Level+1, "score", m.gameState.Score)
		case core.EventGameOver:
			m.opts.Logger.Info("game over", "level", m.gameState.Level+1, "score", m.gameState.Score)
		}
	}
}

// saveRun stores the current run once. Saving is best-effort.
func (m *Model) saveRun(outcome string) {
	if m.runSaved || m.gameState.Score <= 0 || m.err != nil {
		return
	}
	m.runSaved = true
	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    m.gameState.Score,
		Level:    m.gameState.Level + 1,
		Outcome:  outcome,
		Duration: m.played,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
	}
}

// leave ends the game view: back to the session menu, or quit when standalone.
func (m Model) leave() (tea.Model, tea.Cmd) {
	if !m.gameState.GameOver {
		m.saveRun(storage.OutcomeQuit)
	}
	if m.embedded {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arkanoid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Err returns the error that ended the game, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// programOptions are shared by local and SSH sessions. All-motion mouse
// reporting delivers hover events, so the paddle follows the cursor
// without a button held.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

// Run starts the Bubble Tea program with the given game.
// It returns the error that aborted the round, if any.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, programOptions()...)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
