package invaders

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Snapshot contains the complete game state for replay and determinism checks.
type Snapshot struct {
	World sim.Snapshot
	Score int
	State string
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		World: g.world.Snapshot(),
		Score: g.score,
		State: g.state,
	}
}

// Hash returns a digest covering the world and the adapter state.
func (s *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], s.World.Hash())
	binary.LittleEndian.PutUint64(buf[8:], uint64(s.Score)) //#nosec G115 -- hash computation
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(s.State)
	return d.Sum64()
}
