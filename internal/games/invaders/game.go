// Package invaders adapts the simulation core in invaders/sim to the
// platform's registry.Game contract: configuration, scoring, game states
// and rendering of the playfield into a character grid.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // player health reached zero
	StateCleared  = "cleared"  // every enemy destroyed
)

// Game IDs
const (
	IDExclusive = "invaders"
	IDCompat    = "invaders_compat"
)

// Minimum screen size for the renderer
const (
	minScreenW = 30
	minScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the Invaders game logic on top of a sim.World.
type Game struct {
	compat bool                   // force the compat collision policy
	fixed  *config.InvadersConfig // when set, Reset skips config loading

	world      *sim.World
	last       sim.StepResult
	state      string
	score      int
	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager

	screenTooSmall bool
}

// New creates a game using the configured collision policy (exclusive by default).
func New() *Game {
	return &Game{}
}

// NewCompat creates a game that always uses the compat collision policy.
func NewCompat() *Game {
	return &Game{compat: true}
}

// NewWithConfig creates a game that uses cfg as is on every Reset instead of
// loading configuration from disk. Used by the headless runner and tests.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{fixed: &cfg, compat: cfg.Collision.Policy == config.PolicyCompat}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.compat {
		return IDCompat
	}
	return IDExclusive
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.compat {
		return "Invaders (compat collisions)"
	}
	return "Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.InvadersConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := config.LoadInvaders(configPath)
		if err != nil {
			loaded = config.DefaultInvadersConfig()
		}
		if difficultyPreset != "" {
			config.ApplyInvadersPreset(&loaded, difficultyPreset)
		}
		cfg = loaded
	}
	if g.compat {
		cfg.Collision.Policy = config.PolicyCompat
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.world = Setup(cfg)
	g.last = sim.StepResult{}
	g.score = 0
	g.state = StatePlaying
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Resize adapts to a new screen size. The world is unaffected.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Step advances the game by one tick of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.last = sim.StepResult{}

	// Handle restart
	if in.Has(core.ActionRestart) && g.finished() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.world.Params.EnemySpeed = g.difficulty.Speed(g.cfg.Enemies.Speed, g.score, int(g.world.Tick)) //#nosec G115 -- tick count fits int
	g.last = g.world.Step(in, dt)
	g.score = g.world.Kills * g.cfg.Enemies.Points

	switch {
	case g.world.PlayerDead():
		g.state = StateGameOver
	case g.world.Cleared():
		g.state = StateCleared
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) finished() bool {
	return g.state == StateGameOver || g.state == StateCleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	health := 0
	if g.world != nil {
		if p, ok := g.world.Store.Player(); ok {
			health = p.Health
		}
	}
	return core.GameState{
		Score:    g.score,
		Health:   health,
		GameOver: g.finished(),
		Won:      g.state == StateCleared,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the state name (playing, paused, gameover, cleared).
func (g *Game) Phase() string {
	return g.state
}

// LastEvents returns the simulation events of the most recent Step.
// It is empty when the tick did not advance the world.
func (g *Game) LastEvents() sim.StepResult {
	return g.last
}

// World exposes the simulation state for inspection.
func (g *Game) World() *sim.World {
	return g.world
}

// Config returns the configuration in effect since the last Reset.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Register the games with the registry
func init() {
	registry.Register(IDExclusive, func() registry.Game {
		return New()
	})
	registry.Register(IDCompat, func() registry.Game {
		return NewCompat()
	})
}
