package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

const testDT = 1.0 / 60.0

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// singleEnemyConfig places one motionless enemy straight ahead of the player.
func singleEnemyConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Enemies.Rows = 1
	cfg.Enemies.Columns = 1
	cfg.Enemies.FrontZ = 2
	cfg.Enemies.Speed = 0
	return cfg
}

func firePress() core.InputFrame {
	in := core.NewInputFrame()
	in.Press(core.ActionFire)
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%20 == 0:
			inputs[i].Press(core.ActionFire)
		case i%50 < 25:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := NewWithConfig(config.DefaultInvadersConfig())
		g.Reset(testRuntime())
		for _, in := range inputs {
			if g.Step(in, testDT).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.World.Tick != snap2.World.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.World.Tick, snap2.World.Tick)
	}
}

func TestGameReset(t *testing.T) {
	g := NewWithConfig(config.DefaultInvadersConfig())
	g.Reset(testRuntime())

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Expected score 0 after reset, got %d", state.Score)
	}
	if state.Health != 3 {
		t.Errorf("Expected health 3 after reset, got %d", state.Health)
	}
	if state.GameOver || state.Paused {
		t.Error("Game should be playing after reset")
	}
	if g.Phase() != StatePlaying {
		t.Errorf("Expected phase %q, got %q", StatePlaying, g.Phase())
	}
}

func TestSetupGrid(t *testing.T) {
	w := Setup(config.DefaultInvadersConfig())

	p, ok := w.Store.Player()
	if !ok {
		t.Fatal("Setup should spawn a player")
	}
	if p.Pos != core.V3(0, 0.5, -1.5) {
		t.Errorf("Player at %+v, expected (0, 0.5, -1.5)", p.Pos)
	}
	if w.Formation.Direction != -1 {
		t.Errorf("Direction = %v, expected -1", w.Formation.Direction)
	}

	enemies := w.Store.Enemies()
	if len(enemies) != 18 {
		t.Fatalf("Expected 18 enemies, got %d", len(enemies))
	}

	tests := []struct {
		index int
		x, z  float64
	}{
		{0, -3.0, 5.0},
		{5, 3.0, 5.0},
		{6, -3.0, 6.2},
		{17, 3.0, 7.4},
	}
	for _, tc := range tests {
		e := enemies[tc.index]
		if diff := e.Pos.X - tc.x; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("enemy %d: x = %v, expected %v", tc.index, e.Pos.X, tc.x)
		}
		if diff := e.Pos.Z - tc.z; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("enemy %d: z = %v, expected %v", tc.index, e.Pos.Z, tc.z)
		}
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := NewWithConfig(config.DefaultInvadersConfig())
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause, testDT)
	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}

	tick := g.World().Tick
	g.Step(firePress(), testDT)
	if g.World().Tick != tick {
		t.Error("Paused game should not advance the world")
	}
	if g.World().Store.BulletCount() != 0 {
		t.Error("Paused game should not fire")
	}

	g.Step(pause, testDT)
	if g.State().Paused {
		t.Error("Game should resume on second pause")
	}
}

func TestGameClearedAwardsPoints(t *testing.T) {
	g := NewWithConfig(singleEnemyConfig())
	g.Reset(testRuntime())

	g.Step(firePress(), testDT)
	for range 120 {
		if g.State().GameOver {
			break
		}
		g.Step(core.NewInputFrame(), testDT)
	}

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Fatalf("Expected cleared game, got %+v (phase %s)", state, g.Phase())
	}
	if state.Score != 10 {
		t.Errorf("Expected score 10, got %d", state.Score)
	}
	if g.Phase() != StateCleared {
		t.Errorf("Expected phase %q, got %q", StateCleared, g.Phase())
	}
}

func TestEnemySpeedProgressionIsOptIn(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		expected float64
	}{
		{"defaults keep speed constant", false, 1.0},
		{"enabled progression speeds up", true, 1.0 * (1 + 10.0/180*1.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Two enemies drifting right; the left one crosses the bullet path
			cfg := singleEnemyConfig()
			cfg.Enemies.Columns = 2
			cfg.Enemies.SpacingX = 1.0
			cfg.Enemies.Speed = 1.0
			cfg.Enemies.StartDirection = 1
			cfg.Difficulty.Enabled = tc.enabled

			g := NewWithConfig(cfg)
			g.Reset(testRuntime())
			g.Step(firePress(), testDT)
			for range 120 {
				if g.State().Score > 0 {
					break
				}
				g.Step(core.NewInputFrame(), testDT)
			}
			if g.State().Score != 10 {
				t.Fatalf("Expected one kill, score is %d", g.State().Score)
			}

			g.Step(core.NewInputFrame(), testDT)
			if got := g.World().Params.EnemySpeed; got < tc.expected-1e-9 || got > tc.expected+1e-9 {
				t.Errorf("EnemySpeed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestGameOverAndRestart(t *testing.T) {
	cfg := singleEnemyConfig()
	cfg.Player.Health = 1
	cfg.Player.MuzzleOffset = 0 // the bullet spawns inside the player
	g := NewWithConfig(cfg)
	g.Reset(testRuntime())

	g.Step(firePress(), testDT)

	state := g.State()
	if !state.GameOver || state.Won {
		t.Fatalf("Expected game over, got %+v", state)
	}
	if len(g.LastEvents().PlayerHits) != 1 {
		t.Errorf("Expected one player hit event, got %d", len(g.LastEvents().PlayerHits))
	}

	// Input is ignored once the game is over
	g.Step(firePress(), testDT)
	if g.World().Store.BulletCount() != 0 {
		t.Error("Finished game should not fire")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart, testDT)
	if g.State().GameOver || g.State().Health != 1 {
		t.Errorf("Expected fresh game after restart, got %+v", g.State())
	}
}

func TestGameCompatPolicy(t *testing.T) {
	g := NewCompat()
	if g.ID() != IDCompat {
		t.Errorf("ID() = %q, expected %q", g.ID(), IDCompat)
	}
	g.Reset(testRuntime())
	if g.Config().Collision.Policy != config.PolicyCompat {
		t.Errorf("Policy = %q, expected compat", g.Config().Collision.Policy)
	}
	if New().ID() != IDExclusive {
		t.Errorf("New().ID() = %q, expected %q", New().ID(), IDExclusive)
	}
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{IDExclusive, IDCompat} {
		if !registry.Exists(id) {
			t.Errorf("%q should be registered", id)
		}
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	g := NewWithConfig(config.DefaultInvadersConfig())
	g.Reset(testRuntime())
	g.Step(firePress(), testDT)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Enemies: 18", string(PlayerChar), string(EnemyChar), string(BulletChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("Rendered screen missing %q", want)
		}
	}

	// Player sits on the bottom field row, centered
	if screen.GetCell(40, 22).Rune != PlayerChar {
		t.Errorf("Expected player at (40, 22), screen is\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultInvadersConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Expected size warning on a small screen")
	}

	tick := g.World().Tick
	g.Step(firePress(), testDT)
	if g.World().Tick != tick {
		t.Error("Game should not advance on a too-small screen")
	}
}
