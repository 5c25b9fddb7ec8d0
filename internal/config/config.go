// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) by Validate for unusable configurations.
var ErrInvalid = errors.New("config: invalid")

// Collision policies.
const (
	PolicyExclusive = "exclusive" // a bullet consumed by an enemy is not tested against the player
	PolicyCompat    = "compat"    // enemy and player tests are independent (double resolution)
)

// InvadersConfig contains all configuration for the Invaders game.
type InvadersConfig struct {
	Playfield  InvadersPlayfield `yaml:"playfield"`
	Player     InvadersPlayer    `yaml:"player"`
	Enemies    InvadersEnemies   `yaml:"enemies"`
	Bullets    InvadersBullets   `yaml:"bullets"`
	Collision  InvadersCollision `yaml:"collision"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersPlayfield defines the playground on the horizontal plane.
type InvadersPlayfield struct {
	Width   float64 `yaml:"width"`    // full width along X, centered on 0
	Depth   float64 `yaml:"depth"`    // far boundary along Z
	PlayerZ float64 `yaml:"player_z"` // depth of the player row
	Height  float64 `yaml:"height"`   // Y of every entity
}

// HalfWidth returns half of the playfield width.
func (p InvadersPlayfield) HalfWidth() float64 {
	return p.Width / 2
}

// InvadersPlayer defines player parameters.
type InvadersPlayer struct {
	Speed        float64 `yaml:"speed"`
	Health       int     `yaml:"health"`
	HalfWidth    float64 `yaml:"half_width"`
	HalfDepth    float64 `yaml:"half_depth"`
	MuzzleOffset float64 `yaml:"muzzle_offset"` // forward distance from the player to a new bullet
}

// InvadersEnemies defines the enemy grid and formation movement.
type InvadersEnemies struct {
	Rows           int     `yaml:"rows"`
	Columns        int     `yaml:"columns"`
	SpacingX       float64 `yaml:"spacing_x"`
	SpacingZ       float64 `yaml:"spacing_z"`
	FrontZ         float64 `yaml:"front_z"` // depth of the row closest to the player
	Speed          float64 `yaml:"speed"`
	StartDirection int     `yaml:"start_direction"` // -1 or +1
	HalfWidth      float64 `yaml:"half_width"`
	HalfDepth      float64 `yaml:"half_depth"`
	Points         int     `yaml:"points"`
}

// InvadersBullets defines projectile parameters.
type InvadersBullets struct {
	Speed     float64 `yaml:"speed"`
	HalfWidth float64 `yaml:"half_width"`
	HalfDepth float64 `yaml:"half_depth"`
}

// InvadersCollision selects how the collision sweep treats consumed bullets.
type InvadersCollision struct {
	Policy string `yaml:"policy"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration describes a playable field.
func (c InvadersConfig) Validate() error {
	pf := c.Playfield
	if pf.Width <= 0 || pf.Depth <= 0 {
		return fmt.Errorf("%w: playfield must have positive width and depth", ErrInvalid)
	}
	if pf.PlayerZ >= pf.Depth {
		return fmt.Errorf("%w: player_z %.2f is beyond the far boundary %.2f", ErrInvalid, pf.PlayerZ, pf.Depth)
	}
	if c.Player.Speed < 0 || c.Enemies.Speed < 0 || c.Bullets.Speed <= 0 {
		return fmt.Errorf("%w: speeds must not be negative and bullet speed must be positive", ErrInvalid)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("%w: player health must be positive", ErrInvalid)
	}
	if c.Player.HalfWidth <= 0 || c.Enemies.HalfWidth <= 0 || c.Bullets.HalfWidth <= 0 ||
		c.Player.HalfDepth <= 0 || c.Enemies.HalfDepth <= 0 || c.Bullets.HalfDepth <= 0 {
		return fmt.Errorf("%w: half extents must be positive", ErrInvalid)
	}
	if c.Player.HalfWidth >= pf.HalfWidth() {
		return fmt.Errorf("%w: player is wider than the playfield", ErrInvalid)
	}
	if c.Enemies.Rows < 0 || c.Enemies.Columns < 0 {
		return fmt.Errorf("%w: enemy grid size must not be negative", ErrInvalid)
	}
	if c.Enemies.StartDirection != -1 && c.Enemies.StartDirection != 1 {
		return fmt.Errorf("%w: start_direction must be -1 or 1, got %d", ErrInvalid, c.Enemies.StartDirection)
	}
	if c.Enemies.Columns > 0 {
		span := float64(c.Enemies.Columns-1)*c.Enemies.SpacingX/2 + c.Enemies.HalfWidth
		if span > pf.HalfWidth() {
			return fmt.Errorf("%w: enemy grid (half span %.2f) does not fit the playfield", ErrInvalid, span)
		}
	}
	switch c.Collision.Policy {
	case "", PolicyExclusive, PolicyCompat:
	default:
		return fmt.Errorf("%w: unknown collision policy %q", ErrInvalid, c.Collision.Policy)
	}
	return nil
}
