package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// EnemyDestroyedEvent records an enemy and the bullet that destroyed it.
type EnemyDestroyedEvent struct {
	EnemyID  EntityID
	BulletID EntityID
	Pos      core.Vec3
}

// PlayerHitEvent records a bullet that struck the player.
type PlayerHitEvent struct {
	BulletID   EntityID
	HealthLeft int
}

// ResolveCollisions sweeps every live bullet against the enemies and then the
// player.
//
// Rules per bullet, in store order:
//  1. The first enemy (store order) whose box overlaps the bullet is destroyed
//     together with the bullet; no further enemies are tested for it.
//     An enemy destroyed earlier in the sweep cannot be hit again.
//  2. The bullet is tested against the player unless it was consumed in step 1
//     and the policy is PolicyExclusive. A hit consumes the bullet and costs
//     one health point, never going below zero.
//
// Removals are collected during the sweep and applied once at the end.
func ResolveCollisions(w *World) ([]EnemyDestroyedEvent, []PlayerHitEvent) {
	bullets := w.Store.bullets
	if len(bullets) == 0 {
		return nil, nil
	}

	player := w.Store.playerRef()
	var playerBox core.Box
	if player != nil {
		playerBox = w.PlayerBox(player.Pos)
	}

	var destroyed []EnemyDestroyedEvent
	var hits []PlayerHitEvent
	dead := make(map[EntityID]struct{})

	for _, b := range bullets {
		box := w.BulletBox(b.Pos)
		consumed := false

		for _, e := range w.Store.enemies {
			if _, gone := dead[e.ID]; gone {
				continue
			}
			if box.Intersects(w.EnemyBox(e.Pos)) {
				dead[e.ID] = struct{}{}
				dead[b.ID] = struct{}{}
				consumed = true
				destroyed = append(destroyed, EnemyDestroyedEvent{EnemyID: e.ID, BulletID: b.ID, Pos: e.Pos})
				break
			}
		}

		if player == nil || (consumed && w.Params.Policy == PolicyExclusive) {
			continue
		}
		if box.Intersects(playerBox) {
			dead[b.ID] = struct{}{}
			if player.Health > 0 {
				player.Health--
			}
			hits = append(hits, PlayerHitEvent{BulletID: b.ID, HealthLeft: player.Health})
		}
	}

	w.Store.Remove(dead)
	return destroyed, hits
}
