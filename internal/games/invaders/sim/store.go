// Package sim is the per-frame simulation core of Invaders: entity storage,
// movement, spawning, bullet lifecycle and collision resolution.
// It has no dependencies outside internal/core and never blocks.
package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// EntityID identifies an entity for the lifetime of a Store.
// IDs are never reused, so a stale ID simply matches nothing.
type EntityID uint32

// Kind tags the entity collections held by the store. Snapshot digests
// use it to keep the collections apart.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindBullet
)

// Player is the avatar controlled by input.
type Player struct {
	ID     EntityID
	Pos    core.Vec3
	Health int
}

// Enemy is one member of the formation.
type Enemy struct {
	ID  EntityID
	Pos core.Vec3
}

// Bullet travels forward along +Z at a constant speed.
type Bullet struct {
	ID  EntityID
	Pos core.Vec3
}

// Store holds the authoritative set of live entities, one homogeneous
// collection per kind. Iteration order is creation order.
type Store struct {
	player    Player
	hasPlayer bool
	enemies   []Enemy
	bullets   []Bullet
	nextID    EntityID
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) allocID() EntityID {
	s.nextID++
	return s.nextID
}

// SpawnPlayer creates the player, replacing any existing one.
func (s *Store) SpawnPlayer(pos core.Vec3, health int) EntityID {
	id := s.allocID()
	s.player = Player{ID: id, Pos: pos, Health: health}
	s.hasPlayer = true
	return id
}

// SpawnEnemy adds an enemy at pos.
func (s *Store) SpawnEnemy(pos core.Vec3) EntityID {
	id := s.allocID()
	s.enemies = append(s.enemies, Enemy{ID: id, Pos: pos})
	return id
}

// SpawnBullet adds a bullet at pos.
func (s *Store) SpawnBullet(pos core.Vec3) EntityID {
	id := s.allocID()
	s.bullets = append(s.bullets, Bullet{ID: id, Pos: pos})
	return id
}

// Player returns a copy of the player and whether one exists.
func (s *Store) Player() (Player, bool) {
	return s.player, s.hasPlayer
}

// playerRef returns a mutable reference for the subsystems, or nil.
func (s *Store) playerRef() *Player {
	if !s.hasPlayer {
		return nil
	}
	return &s.player
}

// Enemies returns the live enemies. The slice is owned by the store and is
// only valid until the next mutation.
func (s *Store) Enemies() []Enemy {
	return s.enemies
}

// Bullets returns the live bullets. The slice is owned by the store and is
// only valid until the next mutation.
func (s *Store) Bullets() []Bullet {
	return s.bullets
}

// EnemyCount returns the number of live enemies.
func (s *Store) EnemyCount() int {
	return len(s.enemies)
}

// BulletCount returns the number of live bullets.
func (s *Store) BulletCount() int {
	return len(s.bullets)
}

// Remove despawns every enemy and bullet whose ID is in ids, preserving the
// order of the survivors. The player is never removed. Unknown IDs are ignored.
// It returns how many entities were removed.
func (s *Store) Remove(ids map[EntityID]struct{}) int {
	if len(ids) == 0 {
		return 0
	}
	before := len(s.enemies) + len(s.bullets)

	enemies := s.enemies[:0]
	for _, e := range s.enemies {
		if _, gone := ids[e.ID]; !gone {
			enemies = append(enemies, e)
		}
	}
	s.enemies = enemies

	bullets := s.bullets[:0]
	for _, b := range s.bullets {
		if _, gone := ids[b.ID]; !gone {
			bullets = append(bullets, b)
		}
	}
	s.bullets = bullets

	return before - len(s.enemies) - len(s.bullets)
}
