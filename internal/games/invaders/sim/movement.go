package sim

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// MovePlayer advances the player along X from the held direction keys and
// clamps it inside the playfield. Left wins when both keys are held.
// It runs every tick; without input it only re-applies the clamp.
func MovePlayer(w *World, in core.InputFrame, dt float64) {
	p := w.Store.playerRef()
	if p == nil {
		return
	}

	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir = -1
	} else if in.Has(core.ActionRight) {
		dir = 1
	}

	p.Pos.X += w.Params.PlayerSpeed * dt * dir

	limit := w.Params.HalfWidth - w.Params.PlayerExtent.HalfW
	p.Pos.X = core.ClampF(p.Pos.X, -limit, limit)
}

// MoveEnemies moves the whole formation along X by the shared direction and
// reverses that direction once if any enemy reached the boundary while
// moving outward. Enemies are not clamped, so they may overshoot the limit
// for a tick. It reports whether the direction flipped.
func MoveEnemies(w *World, dt float64) bool {
	dir := w.Formation.Direction
	step := w.Params.EnemySpeed * dt * dir
	limit := w.Params.HalfWidth - w.Params.EnemyExtent.HalfW

	crossed := false
	for i := range w.Store.enemies {
		e := &w.Store.enemies[i]
		e.Pos.X += step

		// Only an enemy beyond the limit on the side it is heading to counts,
		// so an overshoot is not reflected again while the formation returns.
		if math.Abs(e.Pos.X) >= limit && e.Pos.X*dir > 0 {
			crossed = true
		}
	}

	if crossed {
		w.Formation.Direction = -dir
	}
	return crossed
}
