package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a flat copy of the world state for inspection and determinism checks.
type Snapshot struct {
	Tick      uint64
	Direction float64
	Kills     int

	HasPlayer bool
	PlayerX   float64
	PlayerZ   float64
	Health    int

	// Positions flattened as X, Y, Z triples in store order.
	EnemyData  []float64
	BulletData []float64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      w.Tick,
		Direction: w.Formation.Direction,
		Kills:     w.Kills,
	}

	if p, ok := w.Store.Player(); ok {
		snap.HasPlayer = true
		snap.PlayerX = p.Pos.X
		snap.PlayerZ = p.Pos.Z
		snap.Health = p.Health
	}

	snap.EnemyData = make([]float64, 0, len(w.Store.enemies)*3)
	for _, e := range w.Store.enemies {
		snap.EnemyData = append(snap.EnemyData, e.Pos.X, e.Pos.Y, e.Pos.Z)
	}

	snap.BulletData = make([]float64, 0, len(w.Store.bullets)*3)
	for _, b := range w.Store.bullets {
		snap.BulletData = append(snap.BulletData, b.Pos.X, b.Pos.Y, b.Pos.Z)
	}

	return snap
}

// Hash returns an xxhash digest of the snapshot. Equal states hash equally;
// floats are hashed by their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 64+8*(len(snap.EnemyData)+len(snap.BulletData)))

	buf = binary.LittleEndian.AppendUint64(buf, snap.Tick)
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(snap.Direction))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(snap.Kills)) //#nosec G115 -- hash computation
	if snap.HasPlayer {
		buf = append(buf, byte(KindPlayer))
	} else {
		buf = append(buf, 0)
	}
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(snap.PlayerX))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(snap.PlayerZ))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(snap.Health)) //#nosec G115 -- hash computation

	// Kind tags and counts separate the lists so moving a triple between them changes the hash.
	buf = append(buf, byte(KindEnemy))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(snap.EnemyData))) //#nosec G115 -- hash computation
	for _, v := range snap.EnemyData {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	buf = append(buf, byte(KindBullet))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(snap.BulletData))) //#nosec G115 -- hash computation
	for _, v := range snap.BulletData {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return xxhash.Sum64(buf)
}
