package replay

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Counts tallies simulation events over a run.
type Counts struct {
	Fired      int
	Culled     int
	Destroyed  int
	PlayerHits int
	Flips      int
}

// Result summarizes a finished run.
type Result struct {
	RunID  uuid.UUID
	GameID string
	Ticks  int // ticks executed, fewer than the script when the game ended early
	State  core.GameState
	Phase  string
	Hash   uint64
	Events Counts
}

// Runner plays scripts against a fixed configuration.
type Runner struct {
	cfg    config.InvadersConfig
	logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(cfg config.InvadersConfig, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run executes the script from a fresh game and stops at the end of the
// script, when the game finishes, or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, s Script) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	cfg := r.cfg
	if s.Policy != "" {
		cfg.Collision.Policy = s.Policy
	}

	g := invaders.NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: s.TickRate})

	res := Result{RunID: uuid.New(), GameID: g.ID()}
	logger := r.logger.With("run", res.RunID.String())
	logger.Info("run started", "game", res.GameID, "ticks", s.Ticks(), "tick_rate", s.TickRate)

	dt := s.Delta()
	var state core.GameState

loop:
	for _, f := range s.Frames {
		for i := range f.Repeat {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}

			state = g.Step(f.input(i == 0), dt).State
			res.Ticks++
			r.record(logger, &res.Events, g)

			if state.GameOver {
				break loop
			}
		}
	}

	snap := g.Snapshot()
	res.State = g.State()
	res.Phase = g.Phase()
	res.Hash = snap.Hash()

	logger.Info("run finished",
		"ticks", res.Ticks,
		"phase", res.Phase,
		"score", res.State.Score,
		"health", res.State.Health,
		"hash", res.Hash,
	)
	return res, nil
}

// record adds the last tick's events to counts and logs them at debug level.
func (r *Runner) record(logger *log.Logger, counts *Counts, g *invaders.Game) {
	ev := g.LastEvents()

	counts.Fired += len(ev.Fired)
	counts.Culled += len(ev.Culled)
	counts.Destroyed += len(ev.Destroyed)
	counts.PlayerHits += len(ev.PlayerHits)
	if ev.DirectionFlipped {
		counts.Flips++
		logger.Debug("formation reversed", "tick", ev.Tick, "direction", g.World().Formation.Direction)
	}

	for _, d := range ev.Destroyed {
		logger.Debug("enemy destroyed", "tick", ev.Tick, "enemy", d.EnemyID, "bullet", d.BulletID)
	}
	for _, h := range ev.PlayerHits {
		logger.Debug("player hit", "tick", ev.Tick, "bullet", h.BulletID, "health", h.HealthLeft)
	}
	for _, c := range ev.Culled {
		logger.Debug("bullet culled", "tick", ev.Tick, "bullet", c.BulletID, "z", c.Z)
	}
}
