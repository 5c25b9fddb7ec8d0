package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Invaders configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded copy cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: InvadersPlayfield{
			Width:   10.0,
			Depth:   10.0,
			PlayerZ: -1.5,
			Height:  0.5,
		},
		Player: InvadersPlayer{
			Speed:        4.0,
			Health:       3,
			HalfWidth:    0.5,
			HalfDepth:    0.5,
			MuzzleOffset: 0.7,
		},
		Enemies: InvadersEnemies{
			Rows:           3,
			Columns:        6,
			SpacingX:       1.2,
			SpacingZ:       1.2,
			FrontZ:         5.0,
			Speed:          1.0,
			StartDirection: -1,
			HalfWidth:      0.25,
			HalfDepth:      0.25,
			Points:         10,
		},
		Bullets: InvadersBullets{
			Speed:     5.0,
			HalfWidth: 0.05,
			HalfDepth: 0.15,
		},
		Collision: InvadersCollision{
			Policy: PolicyExclusive,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 180,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders", "invaders_compat":
		return defaultInvadersYAML
	default:
		return nil
	}
}
