package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestBulletCulledPastFarBoundary(t *testing.T) {
	w := newTestWorld()
	id := w.Store.SpawnBullet(core.V3(0, 0.5, 0))

	// 1 s ticks at speed 5: depth 5, then 10 (not beyond 10), then 15.
	culled := AdvanceBullets(w, 1)
	require.Empty(t, culled)
	assert.Equal(t, 5.0, w.Store.Bullets()[0].Pos.Z)

	culled = AdvanceBullets(w, 1)
	require.Empty(t, culled, "a bullet exactly on the boundary survives")
	assert.Equal(t, 10.0, w.Store.Bullets()[0].Pos.Z)

	culled = AdvanceBullets(w, 1)
	require.Len(t, culled, 1)
	assert.Equal(t, id, culled[0].BulletID)
	assert.Equal(t, 15.0, culled[0].Z)
	assert.Equal(t, 0, w.Store.BulletCount())
}

func TestBulletsOnlyMoveForward(t *testing.T) {
	w := newTestWorld()
	w.Store.SpawnBullet(core.V3(-3, 0.5, -1))
	w.Store.SpawnBullet(core.V3(2, 0.5, 4))

	prev := []float64{-1, 4}
	for range 5 {
		AdvanceBullets(w, 0.1)
		for i, b := range w.Store.Bullets() {
			assert.Greater(t, b.Pos.Z, prev[i])
			prev[i] = b.Pos.Z
		}
	}
	assert.Equal(t, -3.0, w.Store.Bullets()[0].Pos.X, "bullets keep their lane")
}

func TestCullingKeepsSurvivorsInOrder(t *testing.T) {
	w := newTestWorld()
	a := w.Store.SpawnBullet(core.V3(0, 0.5, 0))
	w.Store.SpawnBullet(core.V3(0, 0.5, 9.9))
	c := w.Store.SpawnBullet(core.V3(0, 0.5, 1))

	culled := AdvanceBullets(w, 0.1)

	require.Len(t, culled, 1)
	bullets := w.Store.Bullets()
	require.Len(t, bullets, 2)
	assert.Equal(t, a, bullets[0].ID)
	assert.Equal(t, c, bullets[1].ID)
}
