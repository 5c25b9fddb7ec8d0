package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// CollisionPolicy decides whether a bullet that already hit an enemy during
// the sweep is still tested against the player.
type CollisionPolicy int

const (
	// PolicyExclusive resolves each bullet at most once.
	PolicyExclusive CollisionPolicy = iota
	// PolicyCompat tests enemies and player independently, so one bullet can
	// destroy an enemy and damage the player in the same tick.
	PolicyCompat
)

// String returns the config name of the policy.
func (p CollisionPolicy) String() string {
	if p == PolicyCompat {
		return "compat"
	}
	return "exclusive"
}

// ParsePolicy maps a config value to a policy; anything but "compat" is exclusive.
func ParsePolicy(s string) CollisionPolicy {
	if s == "compat" {
		return PolicyCompat
	}
	return PolicyExclusive
}

// Params are the constants of a running world. They are fixed at setup;
// the game adapter may adjust EnemySpeed between ticks for difficulty.
type Params struct {
	HalfWidth    float64 // playfield spans [-HalfWidth, HalfWidth] on X
	FarBoundary  float64 // bullets with Z beyond this are culled
	PlayerSpeed  float64
	EnemySpeed   float64
	BulletSpeed  float64
	MuzzleOffset float64 // forward offset of a new bullet from the player

	PlayerExtent core.Extent
	EnemyExtent  core.Extent
	BulletExtent core.Extent

	Policy CollisionPolicy
}

// Formation is the state shared by every enemy.
type Formation struct {
	Direction float64 // -1 or +1
}

// World is the complete simulation state advanced by Step.
type World struct {
	Store     *Store
	Formation Formation
	Params    Params
	Tick      uint64
	Kills     int // enemies destroyed so far
}

// NewWorld creates a world with an empty store.
// Any positive direction becomes +1, anything else -1.
func NewWorld(p Params, direction float64) *World {
	if direction > 0 {
		direction = 1
	} else {
		direction = -1
	}
	return &World{
		Store:     NewStore(),
		Formation: Formation{Direction: direction},
		Params:    p,
	}
}

// PlayerBox returns the bounding box of a player at pos.
func (w *World) PlayerBox(pos core.Vec3) core.Box {
	return core.NewBox(pos, w.Params.PlayerExtent)
}

// EnemyBox returns the bounding box of an enemy at pos.
func (w *World) EnemyBox(pos core.Vec3) core.Box {
	return core.NewBox(pos, w.Params.EnemyExtent)
}

// BulletBox returns the bounding box of a bullet at pos.
func (w *World) BulletBox(pos core.Vec3) core.Box {
	return core.NewBox(pos, w.Params.BulletExtent)
}
