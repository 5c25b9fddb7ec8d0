package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// ParamsFromConfig converts the YAML configuration into simulation parameters.
func ParamsFromConfig(cfg config.InvadersConfig) sim.Params {
	return sim.Params{
		HalfWidth:    cfg.Playfield.HalfWidth(),
		FarBoundary:  cfg.Playfield.Depth,
		PlayerSpeed:  cfg.Player.Speed,
		EnemySpeed:   cfg.Enemies.Speed,
		BulletSpeed:  cfg.Bullets.Speed,
		MuzzleOffset: cfg.Player.MuzzleOffset,
		PlayerExtent: core.Extent{HalfW: cfg.Player.HalfWidth, HalfD: cfg.Player.HalfDepth},
		EnemyExtent:  core.Extent{HalfW: cfg.Enemies.HalfWidth, HalfD: cfg.Enemies.HalfDepth},
		BulletExtent: core.Extent{HalfW: cfg.Bullets.HalfWidth, HalfD: cfg.Bullets.HalfDepth},
		Policy:       sim.ParsePolicy(cfg.Collision.Policy),
	}
}

// Setup builds the initial world: one player centered on the player row and
// a rectangular enemy grid centered on X. Row 0 sits at front_z and each
// further row is spacing_z deeper.
func Setup(cfg config.InvadersConfig) *sim.World {
	w := sim.NewWorld(ParamsFromConfig(cfg), float64(cfg.Enemies.StartDirection))

	y := cfg.Playfield.Height
	w.Store.SpawnPlayer(core.V3(0, y, cfg.Playfield.PlayerZ), cfg.Player.Health)

	en := cfg.Enemies
	left := -float64(en.Columns-1) * en.SpacingX / 2
	for row := range en.Rows {
		z := en.FrontZ + float64(row)*en.SpacingZ
		for col := range en.Columns {
			x := left + float64(col)*en.SpacingX
			w.Store.SpawnEnemy(core.V3(x, y, z))
		}
	}

	return w
}
