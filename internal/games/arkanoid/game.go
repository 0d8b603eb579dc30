// Package arkanoid implements the block breaker: ball physics, block
// durability, lives and level progression. It has no terminal or audio
// dependencies; the platform feeds it input and frame deltas and consumes
// the events and sound cues each tick produces.
package arkanoid

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// Round states
const (
	StatePlaying  = "playing"  // Ball glued or in play
	StatePaused   = "paused"   // Simulation frozen
	StateWin      = "win"      // Level cleared, Confirm loads the next one
	StateComplete = "complete" // Last campaign level cleared
	StateGameOver = "gameover" // No lives left
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through the level list once
	ModeEndless                  // Cycle the level list; silver blocks keep toughening
)

// Package-level settings set via CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevel       int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLevelsDir makes new games load levels from dir instead of the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel sets the zero-based level index new games start on.
func SetStartLevel(index int) {
	if index < 0 {
		index = 0
	}
	startLevel = index
}

// LoadSettings resolves the package-level settings into a config and level list.
func LoadSettings() (config.ArkanoidConfig, []levels.Level, error) {
	cfg, err := config.LoadArkanoid(configPath)
	if err != nil {
		return cfg, nil, err
	}
	if difficultyPreset != "" {
		config.ApplyArkanoidPreset(&cfg, difficultyPreset)
	}

	loader := levels.Builtin()
	if levelsDir != "" {
		loader = levels.Dir(levelsDir)
	}
	lvls, err := loader.LoadAll()
	if err != nil {
		return cfg, nil, fmt.Errorf("%w: %w", ErrMissingAsset, err)
	}
	return cfg, lvls, nil
}

// Game implements a full Arkanoid run.
type Game struct {
	mode GameMode

	// Entities
	ball   Ball
	paddle *Paddle
	blocks *Arena[Block]

	// Run state
	state      string
	score      int
	lives      Lives
	levelIndex int
	tickCount  int
	elapsed    time.Duration

	// Per-tick queue, drained at the end of every Step
	events core.Events

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.ArkanoidConfig
	levels     []levels.Level
	first      int
	difficulty *config.DifficultyManager
	injected   bool

	// Set when the round aborted
	err error
}

// New creates a campaign game using the package-level settings.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless game using the package-level settings.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithLevels creates a game with explicit configuration and levels,
// ignoring the package-level settings. Used by tests and headless replay.
func NewWithLevels(mode GameMode, cfg config.ArkanoidConfig, lvls []levels.Level, first int) *Game {
	return &Game{
		mode:     mode,
		cfg:      cfg,
		levels:   lvls,
		first:    first,
		injected: true,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "arkanoid_endless"
	}
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Arkanoid (Endless)"
	}
	return "Arkanoid"
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

// Reset starts a new run from the first level.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime
	g.err = nil

	if !g.injected {
		cfg, lvls, err := LoadSettings()
		if err != nil {
			g.err = err
			return err
		}
		g.cfg = cfg
		g.levels = lvls
		g.first = startLevel
	}

	if err := g.cfg.Validate(); err != nil {
		g.err = fmt.Errorf("%w: %w", ErrMissingAsset, err)
		return g.err
	}
	if len(g.levels) == 0 {
		g.err = fmt.Errorf("%w: no levels", ErrMissingAsset)
		return g.err
	}
	if g.mode == ModeCampaign && g.first >= len(g.levels) {
		g.err = fmt.Errorf("%w: level %d of %d", ErrMissingAsset, g.first+1, len(g.levels))
		return g.err
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.score = 0
	g.lives = NewLives(g.cfg.Gameplay.Lives)
	g.tickCount = 0
	g.elapsed = 0
	g.blocks = NewArena[Block]()
	g.events.Drain()

	if err := g.loadLevel(g.first); err != nil {
		g.err = err
		return err
	}
	return nil
}

// loadLevel spawns a level's blocks and puts paddle and ball in serve position.
func (g *Game) loadLevel(index int) error {
	lvl := g.levelAt(index)
	g.levelIndex = index

	g.blocks.Clear()
	err := SpawnBlocks(g.blocks, lvl, Layout{
		FieldHeight: g.cfg.Window.Height,
		BlockWidth:  g.cfg.Blocks.Width,
		BlockHeight: g.cfg.Blocks.Height,
		Gap:         g.cfg.Blocks.Gap,
		TopMargin:   g.cfg.Blocks.TopMargin,
	})
	if err != nil {
		return fmt.Errorf("level %s: %w", lvl.ID, err)
	}

	g.paddle = NewPaddle(g.cfg.Paddle.Width, g.cfg.Paddle.Height, g.cfg.Paddle.Altitude, g.cfg.Paddle.Speed)
	g.ball = NewBall(g.cfg.Ball.Radius, g.cfg.Ball.Speed)
	if err := g.ball.FollowPaddle(g.paddle); err != nil {
		return err
	}

	g.state = StatePlaying
	return nil
}

// levelAt returns the layout for a level index. Endless runs wrap around.
func (g *Game) levelAt(index int) levels.Level {
	return g.levels[index%len(g.levels)]
}

// LevelCount returns the number of distinct layouts.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// LevelName returns the display name of the current layout.
func (g *Game) LevelName() string {
	if len(g.levels) == 0 {
		return ""
	}
	return g.levelAt(g.levelIndex).Name
}

// Step advances the run by dt.
//
// Order within a tick: input actions, paddle movement, ball motion and
// collision, block hits, life loss, then the win check.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.err != nil {
		return g.result()
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateComplete) {
		//nolint:errcheck // Reset records the error in g.err, reported below
		g.Reset(g.runtime)
		return g.result()
	}

	// Next level
	if in.Has(core.ActionConfirm) && g.state == StateWin {
		if err := g.loadLevel(g.levelIndex + 1); err != nil {
			g.err = err
		}
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return g.result()
	}

	g.tickCount++
	g.elapsed += dt
	secs := dt.Seconds()

	// Input actions
	if in.Has(core.ActionLaunch) && g.ball.Launch() {
		g.ball.Speed = g.difficulty.Speed(g.cfg.Ball.Speed, g.score, g.tickCount)
	}

	// Paddle
	g.paddle.Move(PaddleInput{
		Movement:   in.Movement,
		PointerX:   in.PointerX,
		HasPointer: in.HasPointer,
	}, secs, g.cfg.Window.Width)

	// Ball
	field := Field{Width: g.cfg.Window.Width, Height: g.cfg.Window.Height, Delta: secs}
	if err := ResolveMotion(field, &g.ball, g.paddle, g.blocks, &g.events); err != nil {
		g.err = err
		return g.result()
	}

	g.resolveBlockHits()
	g.checkLifeLoss()
	if g.state == StatePlaying {
		g.checkWin()
	}

	return g.result()
}

// resolveBlockHits applies this tick's BlockHit events.
func (g *Game) resolveBlockHits() {
	for _, e := range g.events.Events() {
		if e.Kind != core.EventBlockHit {
			continue
		}
		h := HandleFromID(e.Entity)
		b, ok := g.blocks.Get(h)
		if !ok {
			continue
		}

		if b.Hit(g.levelIndex) {
			g.score += b.Type.Score(g.levelIndex + 1)
			g.blocks.Remove(h)
			g.events.Play(core.CueBlockBreak)
			g.events.Emit(core.EventBlockBroken, e.Entity)
		} else {
			g.events.Play(core.CueBlockBounce)
		}
	}
}

// checkLifeLoss handles a ball below the bottom edge.
func (g *Game) checkLifeLoss() {
	if g.ball.Position.Y >= -g.cfg.Window.Height/2 {
		return
	}

	g.events.Emit(core.EventLifeLost, 0)
	if g.lives.Lose(1) {
		g.state = StateGameOver
		g.events.Play(core.CueLose)
		g.events.Emit(core.EventGameOver, 0)
		return
	}

	g.ball.Reset(g.cfg.Ball.Speed)
	//nolint:errcheck // paddle and ball shapes were checked by ResolveMotion this tick
	g.ball.FollowPaddle(g.paddle)
	g.events.Play(core.CueLoseLife)
	g.events.Emit(core.EventBallReset, 0)
}

// checkWin ends the level once only gold blocks remain.
func (g *Game) checkWin() {
	remaining := g.blocks.Count(func(b *Block) bool { return b.Type.Counts() })
	if remaining > 0 {
		return
	}

	if g.mode == ModeCampaign && g.levelIndex+1 >= len(g.levels) {
		g.state = StateComplete
	} else {
		g.state = StateWin
	}
	g.events.Play(core.CueWin)
	g.events.Emit(core.EventWin, 0)
}

// result drains the tick queue into a StepResult.
func (g *Game) result() core.StepResult {
	events, cues := g.events.Drain()
	return core.StepResult{
		State:  g.State(),
		Events: events,
		Cues:   cues,
		Err:    g.err,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives.Remaining(),
		Level:    g.levelIndex,
		GameOver: g.state == StateGameOver || g.state == StateComplete,
		Won:      g.state == StateWin || g.state == StateComplete,
		Paused:   g.state == StatePaused,
	}
}

// Err returns the error that aborted the round, if any.
func (g *Game) Err() error {
	return g.err
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Blocks returns the block arena.
func (g *Game) Blocks() *Arena[Block] {
	return g.blocks
}

// Config returns the active configuration.
func (g *Game) Config() config.ArkanoidConfig {
	return g.cfg
}

// Register the games with the registry
func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
	registry.Register("arkanoid_endless", func() registry.Game {
		return NewEndless()
	})
}
