package arkanoid

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

const tick = 100 * time.Millisecond

func row(tiles ...levels.Tile) levels.Level {
	return levels.Level{ID: "test", Name: "Test", Tiles: [][]levels.Tile{tiles}}
}

func newTestGame(t *testing.T, mode GameMode, first int, lvls ...levels.Level) *Game {
	t.Helper()
	g := NewWithLevels(mode, config.DefaultArkanoidConfig(), lvls, first)
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// firstBlock returns the position of the first live block of the given type.
func firstBlock(t *testing.T, g *Game, typ BlockType) physics.Vec2 {
	t.Helper()
	var pos physics.Vec2
	found := false
	g.Blocks().Each(func(_ Handle, b *Block) {
		if !found && b.Type == typ {
			pos = b.Position
			found = true
		}
	})
	if !found {
		t.Fatalf("no %s block in arena", typ)
	}
	return pos
}

// aimBelow frees the ball just under a block, heading straight up.
func aimBelow(g *Game, target physics.Vec2) {
	g.ball.State = BallFree
	g.ball.Speed = 300
	g.ball.Direction = physics.V(0, 1)
	g.ball.Position = physics.V(target.X, target.Y-12-8-6)
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestResetServesBallOnPaddle(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0, row(levels.TileRed))

	ball := g.Ball()
	if ball.State != BallGlued {
		t.Errorf("ball state = %s, expected glued", ball.State)
	}
	if ball.Position != physics.V(0, -180) {
		t.Errorf("ball position = %v, expected (0, -180)", ball.Position)
	}

	state := g.State()
	if state.Lives != 3 || state.Score != 0 || state.GameOver || state.Won {
		t.Errorf("initial state = %+v", state)
	}
}

func TestLaunchOnlyOnce(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0, row(levels.TileRed))

	// Glued ball ignores time passing
	g.Step(core.NewInputFrame(), tick)
	if g.Ball().State != BallGlued || g.Ball().Position != physics.V(0, -180) {
		t.Fatalf("glued ball moved: %+v", g.Ball())
	}

	g.Step(input(core.ActionLaunch), tick)
	ball := g.Ball()
	if ball.State != BallFree {
		t.Fatalf("ball state = %s, expected free after launch", ball.State)
	}
	if !near(ball.Position.Y, -150) || ball.Direction != physics.V(0, 1) {
		t.Errorf("after launch tick: pos %v dir %v", ball.Position, ball.Direction)
	}

	// Launching again does nothing
	g.ball.Speed = 123
	g.Step(input(core.ActionLaunch), tick)
	if g.Ball().Speed != 123 {
		t.Error("second launch must not touch a free ball")
	}
}

func TestGluedBallTracksPaddleMovement(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0, row(levels.TileRed))

	in := core.NewInputFrame()
	in.SetMovement(1)
	g.Step(in, tick)

	// 500 units/s for 0.1s
	if !near(g.Paddle().Position.X, 50) {
		t.Errorf("paddle x = %f, expected 50", g.Paddle().Position.X)
	}
	if !near(g.Ball().Position.X, 50) {
		t.Errorf("ball x = %f, expected to follow paddle to 50", g.Ball().Position.X)
	}
}

func TestPointerMovesAndClampsPaddle(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0, row(levels.TileRed))

	in := core.NewInputFrame()
	in.SetPointer(1000)
	g.Step(in, tick)

	// (960 - 104) / 2
	if g.Paddle().Position.X != 428 {
		t.Errorf("paddle x = %f, expected clamp to 428", g.Paddle().Position.X)
	}

	in.SetPointer(-100)
	g.Step(in, tick)
	if g.Paddle().Position.X != -100 {
		t.Errorf("paddle x = %f, expected -100", g.Paddle().Position.X)
	}
}

func TestLifeLossSequence(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0, row(levels.TileRed))

	drop := func() core.StepResult {
		g.ball.State = BallFree
		g.ball.Position = physics.V(0, -300)
		g.ball.Direction = physics.V(0, -1)
		return g.Step(core.NewInputFrame(), tick)
	}

	for want := 2; want >= 1; want-- {
		res := drop()
		if res.State.Lives != want {
			t.Fatalf("lives = %d, expected %d", res.State.Lives, want)
		}
		if res.State.GameOver {
			t.Fatal("game over too early")
		}
		if countEvents(res.Events, core.EventLifeLost) != 1 || countEvents(res.Events, core.EventBallReset) != 1 {
			t.Errorf("events = %+v, expected LifeLost and BallReset", res.Events)
		}
		if !hasCue(res.Cues, core.CueLoseLife) {
			t.Errorf("cues = %v, expected lose_life", res.Cues)
		}
		if g.Ball().State != BallGlued || g.Ball().Position != physics.V(0, -180) {
			t.Errorf("ball not served again: %+v", g.Ball())
		}
	}

	res := drop()
	if res.State.Lives != 0 || !res.State.GameOver || res.State.Won {
		t.Fatalf("final state = %+v, expected game over", res.State)
	}
	if countEvents(res.Events, core.EventGameOver) != 1 {
		t.Errorf("expected exactly one GameOver event, got %+v", res.Events)
	}
	if !hasCue(res.Cues, core.CueLose) || hasCue(res.Cues, core.CueLoseLife) {
		t.Errorf("cues = %v, expected lose only", res.Cues)
	}

	// Further ticks are inert
	for range 5 {
		res = g.Step(input(core.ActionLaunch), tick)
		if len(res.Events) != 0 || len(res.Cues) != 0 {
			t.Fatalf("game over tick produced %+v / %v", res.Events, res.Cues)
		}
	}

	// Restart begins a fresh run
	res = g.Step(input(core.ActionRestart), tick)
	if res.State.GameOver || res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("after restart: %+v", res.State)
	}
}

func TestBreakingLastBlockWinsWithGoldLeft(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0,
		row(levels.TileGold, levels.TileRed),
		row(levels.TileBlue),
	)

	aimBelow(g, firstBlock(t, g, BlockRed))
	res := g.Step(core.NewInputFrame(), tick)

	if res.State.Score != 90 {
		t.Errorf("score = %d, expected 90", res.State.Score)
	}
	if !hasCue(res.Cues, core.CueBlockBreak) || !hasCue(res.Cues, core.CueWin) {
		t.Errorf("cues = %v, expected block_break and win", res.Cues)
	}
	if countEvents(res.Events, core.EventBlockBroken) != 1 || countEvents(res.Events, core.EventWin) != 1 {
		t.Errorf("events = %+v", res.Events)
	}
	if !res.State.Won || res.State.GameOver {
		t.Errorf("state = %+v, expected level won", res.State)
	}
	if g.Blocks().Len() != 1 {
		t.Errorf("gold block should remain, arena holds %d", g.Blocks().Len())
	}
	if g.Ball().Direction != physics.V(0, -1) {
		t.Errorf("ball direction = %v, expected reflected down", g.Ball().Direction)
	}

	// Frozen until confirmed
	frozen := g.Snapshot()
	g.Step(core.NewInputFrame(), tick)
	if after := g.Snapshot(); after.Hash() != frozen.Hash() {
		t.Error("won level must not advance without confirm")
	}

	res = g.Step(input(core.ActionConfirm), tick)
	if res.State.Level != 1 || res.State.Won {
		t.Fatalf("after confirm: %+v, expected playing level 1", res.State)
	}
	if res.State.Score != 90 || res.State.Lives != 3 {
		t.Errorf("score and lives must carry over: %+v", res.State)
	}
	if g.Blocks().Len() != 1 || g.Ball().State != BallGlued {
		t.Errorf("level 1 not served: %d blocks, ball %s", g.Blocks().Len(), g.Ball().State)
	}
}

func TestSilverOnLaterLevelCompletesCampaign(t *testing.T) {
	lvl := row(levels.TileSilver)
	g := newTestGame(t, ModeCampaign, 2, lvl, lvl, lvl)

	target := firstBlock(t, g, BlockSilver)

	aimBelow(g, target)
	res := g.Step(core.NewInputFrame(), tick)
	if res.State.Score != 0 || !hasCue(res.Cues, core.CueBlockBounce) {
		t.Fatalf("first hit: score %d cues %v, expected a bounce only", res.State.Score, res.Cues)
	}
	if g.Blocks().Len() != 1 {
		t.Fatal("silver broke on first hit")
	}

	aimBelow(g, target)
	res = g.Step(core.NewInputFrame(), tick)
	// Third level: 50 * 3
	if res.State.Score != 150 {
		t.Errorf("score = %d, expected 150", res.State.Score)
	}
	if !res.State.Won || !res.State.GameOver {
		t.Errorf("state = %+v, expected campaign complete", res.State)
	}
	if g.Snapshot().State != StateComplete {
		t.Errorf("state = %s, expected %s", g.Snapshot().State, StateComplete)
	}

	// Confirm does not advance past the last level
	res = g.Step(input(core.ActionConfirm), tick)
	if res.State.Level != 2 {
		t.Errorf("level = %d, expected to stay on 2", res.State.Level)
	}
}

func TestEndlessWrapsLevels(t *testing.T) {
	g := newTestGame(t, ModeEndless, 0, row(levels.TileRed, levels.TileGreen))

	g.Blocks().Clear()
	res := g.Step(core.NewInputFrame(), tick)
	if !res.State.Won || res.State.GameOver {
		t.Fatalf("state = %+v, expected level won without completing the run", res.State)
	}

	res = g.Step(input(core.ActionConfirm), tick)
	if res.State.Level != 1 {
		t.Errorf("level = %d, expected 1", res.State.Level)
	}
	if g.Blocks().Len() != 2 {
		t.Errorf("blocks = %d, expected the layout to repeat", g.Blocks().Len())
	}
	if g.ID() != "arkanoid_endless" {
		t.Errorf("ID() = %q", g.ID())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0, row(levels.TileRed))
	g.Step(input(core.ActionLaunch), tick)

	res := g.Step(input(core.ActionPause), tick)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	before := g.Snapshot()
	g.Step(core.NewInputFrame(), tick)
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused game must not advance")
	}

	res = g.Step(input(core.ActionPause), tick)
	if res.State.Paused {
		t.Error("expected resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("tick = %d, expected %d", g.Snapshot().Tick, before.Tick+1)
	}
}

func TestDeterministicRuns(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatal(err)
	}

	run := func() uint64 {
		g := NewWithLevels(ModeCampaign, config.DefaultArkanoidConfig(), lvls, 0)
		if err := g.Reset(core.DefaultConfig()); err != nil {
			t.Fatal(err)
		}
		for i := range 900 {
			in := core.NewInputFrame()
			switch {
			case i%120 == 5:
				in.Set(core.ActionLaunch)
			case i%90 < 30:
				in.SetMovement(-1)
			case i%90 < 60:
				in.SetMovement(1)
			}
			if i%200 == 100 {
				in.SetPointer(float64(i%7-3) * 40)
			}
			g.Step(in, time.Second/60)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("hashes differ: %d vs %d", a, b)
	}
}

func TestResetErrors(t *testing.T) {
	g := NewWithLevels(ModeCampaign, config.DefaultArkanoidConfig(), nil, 0)
	err := g.Reset(core.DefaultConfig())
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("no levels: err = %v, expected ErrMissingAsset", err)
	}
	res := g.Step(input(core.ActionLaunch), tick)
	if !errors.Is(res.Err, ErrMissingAsset) {
		t.Errorf("Step().Err = %v, expected ErrMissingAsset", res.Err)
	}

	g = NewWithLevels(ModeCampaign, config.DefaultArkanoidConfig(), []levels.Level{row(levels.TileRed)}, 3)
	if err := g.Reset(core.DefaultConfig()); !errors.Is(err, ErrMissingAsset) {
		t.Errorf("start past last level: err = %v, expected ErrMissingAsset", err)
	}

	cfg := config.DefaultArkanoidConfig()
	cfg.Ball.Radius = 0
	g = NewWithLevels(ModeCampaign, cfg, []levels.Level{row(levels.TileRed)}, 0)
	if err := g.Reset(core.DefaultConfig()); !errors.Is(err, ErrMissingAsset) {
		t.Errorf("invalid config: err = %v, expected ErrMissingAsset", err)
	}
}

func TestStepAbortsOnShapeMismatch(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0, row(levels.TileRed))
	g.ball.State = BallFree
	g.ball.Collider = physics.CuboidCollider(8, 8)

	res := g.Step(core.NewInputFrame(), tick)
	if !errors.Is(res.Err, ErrShapeMismatch) {
		t.Errorf("Err = %v, expected ErrShapeMismatch", res.Err)
	}
	if !errors.Is(g.Err(), ErrShapeMismatch) {
		t.Errorf("Err() = %v", g.Err())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0, row(levels.TileRed, levels.TileGold))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Score: 0", "Lives: 3", "Level: 1/1", "Press SPACE"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.ContainsRune(out, BallChar) || !strings.ContainsRune(out, PaddleChar) {
		t.Error("render missing ball or paddle")
	}
	if !strings.ContainsRune(out, BlockChar) || !strings.ContainsRune(out, GoldChar) {
		t.Error("render missing blocks")
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("expected size warning on a small screen")
	}
}

func TestWorldXRoundTrip(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 0, row(levels.TileRed))
	if x := g.WorldX(40, 80); x != 6 {
		t.Errorf("WorldX(40, 80) = %f, expected 6", x)
	}
	if x := g.WorldX(0, 80); x != -474 {
		t.Errorf("WorldX(0, 80) = %f, expected -474", x)
	}
}
