package sim

// BulletCulledEvent records a bullet removed for leaving the playfield.
type BulletCulledEvent struct {
	BulletID EntityID
	Z        float64
}

// AdvanceBullets moves every bullet forward and removes, in the same tick,
// each one whose depth is past the far boundary.
func AdvanceBullets(w *World, dt float64) []BulletCulledEvent {
	step := w.Params.BulletSpeed * dt

	var culled []BulletCulledEvent
	var dead map[EntityID]struct{}
	for i := range w.Store.bullets {
		b := &w.Store.bullets[i]
		b.Pos.Z += step
		if b.Pos.Z > w.Params.FarBoundary {
			if dead == nil {
				dead = make(map[EntityID]struct{})
			}
			dead[b.ID] = struct{}{}
			culled = append(culled, BulletCulledEvent{BulletID: b.ID, Z: b.Pos.Z})
		}
	}

	w.Store.Remove(dead)
	return culled
}
