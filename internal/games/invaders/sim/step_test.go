package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestFireIsEdgeTriggered(t *testing.T) {
	for _, dt := range []float64{0, 0.016, 1} {
		w := newTestWorld()
		w.Store.SpawnPlayer(core.V3(0, 0.5, -1.5), 3)

		in := held(core.ActionFire)
		in.Press(core.ActionFire)
		in.Push(core.KeyEvent{Action: core.ActionFire, State: core.KeyRepeat})
		in.Push(core.KeyEvent{Action: core.ActionFire, State: core.KeyRelease})

		res := w.Step(in, dt)
		assert.Len(t, res.Fired, 1, "dt=%v", dt)
		assert.Equal(t, 1, w.Store.BulletCount(), "dt=%v", dt)

		// Holding fire without a new press spawns nothing.
		res = w.Step(held(core.ActionFire), dt)
		assert.Empty(t, res.Fired, "dt=%v", dt)
	}
}

func TestFireOnePerPress(t *testing.T) {
	w := newTestWorld()
	w.Store.SpawnPlayer(core.V3(0, 0.5, -1.5), 3)

	res := w.Step(fire(3), 0)

	require.Len(t, res.Fired, 3)
	for _, f := range res.Fired {
		assert.Equal(t, 0.0, f.Pos.X)
		assert.InDelta(t, -0.8, f.Pos.Z, 1e-9)
	}
}

func TestFireWithoutPlayer(t *testing.T) {
	w := newTestWorld()

	res := w.Step(fire(1), 0.016)

	assert.Empty(t, res.Fired)
	assert.Equal(t, 0, w.Store.BulletCount())
}

func TestSpawnedBulletAdvancesSameTick(t *testing.T) {
	w := newTestWorld()
	w.Store.SpawnPlayer(core.V3(0, 0.5, -1.5), 3)

	w.Step(fire(1), 0.1)

	require.Equal(t, 1, w.Store.BulletCount())
	assert.InDelta(t, -1.5+0.7+0.5, w.Store.Bullets()[0].Pos.Z, 1e-9)
}

func TestNegativeDeltaIsZero(t *testing.T) {
	w := newTestWorld()
	w.Store.SpawnPlayer(core.V3(1, 0.5, -1.5), 3)
	w.Store.SpawnEnemy(core.V3(0, 0.5, 5))

	res := w.Step(held(core.ActionLeft), -1)

	assert.Equal(t, uint64(1), res.Tick)
	p, _ := w.Store.Player()
	assert.Equal(t, 1.0, p.Pos.X)
	assert.Equal(t, 0.0, w.Store.Enemies()[0].Pos.X)
}

func TestStepCountsKills(t *testing.T) {
	w := newTestWorld()
	w.Store.SpawnPlayer(core.V3(0, 0.5, -1.5), 3)
	w.Store.SpawnEnemy(core.V3(0, 0.5, 0))

	for i := 0; i < 120 && !w.Cleared(); i++ {
		in := core.NewInputFrame()
		if i == 0 {
			in.Press(core.ActionFire)
		}
		w.Step(in, 1.0/60)
	}

	assert.True(t, w.Cleared())
	assert.Equal(t, 1, w.Kills)
	assert.False(t, w.PlayerDead())
}

func TestHealthNeverIncreases(t *testing.T) {
	p := testParams()
	p.MuzzleOffset = 0 // bullets spawn inside the player
	w := NewWorld(p, -1)
	w.Store.SpawnPlayer(core.V3(0, 0.5, -1.5), 3)

	prev := 3
	for range 10 {
		w.Step(fire(1), 0.01)
		pl, ok := w.Store.Player()
		require.True(t, ok)
		assert.LessOrEqual(t, pl.Health, prev)
		assert.GreaterOrEqual(t, pl.Health, 0)
		prev = pl.Health
	}
	assert.True(t, w.PlayerDead())
}

func TestDirectionAlwaysUnit(t *testing.T) {
	w := newTestWorld()
	for c := range 4 {
		w.Store.SpawnEnemy(core.V3(float64(c)-1.5, 0.5, 5))
	}
	for range 600 {
		w.Step(core.NewInputFrame(), 1.0/30)
		d := w.Formation.Direction
		require.True(t, d == 1 || d == -1, "direction %v", d)
	}
}

func scriptedRun(leftTicks int) uint64 {
	w := newTestWorld()
	w.Store.SpawnPlayer(core.V3(0, 0.5, -1.5), 3)
	for r := range 2 {
		for c := range 4 {
			w.Store.SpawnEnemy(core.V3(float64(c)*1.2-1.8, 0.5, 5+float64(r)*1.2))
		}
	}
	for i := range 200 {
		in := core.NewInputFrame()
		if i < leftTicks {
			in.Set(core.ActionLeft)
		}
		if i%15 == 0 {
			in.Press(core.ActionFire)
		}
		w.Step(in, 1.0/60)
	}
	snap := w.Snapshot()
	return snap.Hash()
}

func TestSnapshotHashDeterministic(t *testing.T) {
	assert.Equal(t, scriptedRun(20), scriptedRun(20))
	assert.NotEqual(t, scriptedRun(20), scriptedRun(21))
}

func TestSnapshotContents(t *testing.T) {
	w := newTestWorld()
	w.Store.SpawnPlayer(core.V3(1, 0.5, -1.5), 2)
	w.Store.SpawnEnemy(core.V3(0, 0.5, 5))
	w.Store.SpawnBullet(core.V3(1, 0.5, 0))

	snap := w.Snapshot()

	assert.True(t, snap.HasPlayer)
	assert.Equal(t, 1.0, snap.PlayerX)
	assert.Equal(t, 2, snap.Health)
	assert.Equal(t, -1.0, snap.Direction)
	assert.Equal(t, []float64{0, 0.5, 5}, snap.EnemyData)
	assert.Equal(t, []float64{1, 0.5, 0}, snap.BulletData)
}

func TestSnapshotHashSeparatesKinds(t *testing.T) {
	enemy := newTestWorld()
	enemy.Store.SpawnEnemy(core.V3(1, 0.5, 3))
	bullet := newTestWorld()
	bullet.Store.SpawnBullet(core.V3(1, 0.5, 3))

	a, b := enemy.Snapshot(), bullet.Snapshot()
	assert.NotEqual(t, a.Hash(), b.Hash(), "an enemy and a bullet at the same spot must hash differently")
}
