package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// StepResult contains what happened during one tick.
type StepResult struct {
	Tick             uint64
	Fired            []BulletFiredEvent
	Culled           []BulletCulledEvent
	Destroyed        []EnemyDestroyedEvent
	PlayerHits       []PlayerHitEvent
	DirectionFlipped bool
}

// Step advances the world by one tick of dt seconds.
//
// Subsystems run to completion in a fixed order:
//  1. player movement from held keys
//  2. formation movement and boundary reversal
//  3. bullet spawning from fire press-edges
//  4. bullet advance and culling
//  5. collision resolution
//
// A negative dt is treated as zero.
func (w *World) Step(in core.InputFrame, dt float64) StepResult {
	if dt < 0 {
		dt = 0
	}
	w.Tick++

	result := StepResult{Tick: w.Tick}

	MovePlayer(w, in, dt)
	result.DirectionFlipped = MoveEnemies(w, dt)
	result.Fired = SpawnBullets(w, in.Events)
	result.Culled = AdvanceBullets(w, dt)
	result.Destroyed, result.PlayerHits = ResolveCollisions(w)

	w.Kills += len(result.Destroyed)
	return result
}

// PlayerDead reports whether the player exists and has no health left.
func (w *World) PlayerDead() bool {
	p, ok := w.Store.Player()
	return ok && p.Health <= 0
}

// Cleared reports whether every enemy has been destroyed.
func (w *World) Cleared() bool {
	return w.Store.EnemyCount() == 0
}
