package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// BulletFiredEvent records a bullet created from a fire press-edge.
type BulletFiredEvent struct {
	BulletID EntityID
	Pos      core.Vec3
}

// SpawnBullets creates one bullet per fire press-edge in the tick's event
// batch, in front of the player by the muzzle offset. Repeats and releases
// are ignored. Without a player nothing is spawned.
func SpawnBullets(w *World, events []core.KeyEvent) []BulletFiredEvent {
	p := w.Store.playerRef()
	if p == nil {
		return nil
	}

	var fired []BulletFiredEvent
	for _, ev := range events {
		if !ev.IsPress(core.ActionFire) {
			continue
		}
		pos := p.Pos.Add(core.V3(0, 0, w.Params.MuzzleOffset))
		id := w.Store.SpawnBullet(pos)
		fired = append(fired, BulletFiredEvent{BulletID: id, Pos: pos})
	}
	return fired
}
