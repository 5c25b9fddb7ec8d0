package replay

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

const sweepScript = `
tick_rate: 60
frames:
  - {repeat: 40, left: true, fire: 1}
  - {repeat: 30, fire: 2}
  - {repeat: 80, right: true, fire: 1}
  - {repeat: 200}
`

func TestParseScriptDefaults(t *testing.T) {
	s, err := ParseScript([]byte("frames:\n  - {fire: 1}\n  - {repeat: 3, left: true}\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTickRate, s.TickRate)
	assert.Equal(t, 1, s.Frames[0].Repeat)
	assert.Equal(t, 4, s.Ticks())
	assert.InDelta(t, 1.0/60, s.Delta(), 1e-12)
}

func TestParseScriptInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative tick rate", "tick_rate: -5\n"},
		{"unknown policy", "policy: both\n"},
		{"negative repeat", "frames:\n  - {repeat: -1}\n"},
		{"negative fire", "frames:\n  - {fire: -2}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tc.data))
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}

	_, err := ParseScript([]byte("frames: [\n"))
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sweepScript), 0o600))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 350, s.Ticks())

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunDeterministic(t *testing.T) {
	s, err := ParseScript([]byte(sweepScript))
	require.NoError(t, err)

	runner := NewRunner(config.DefaultInvadersConfig(), nil)
	first, err := runner.Run(context.Background(), s)
	require.NoError(t, err)
	second, err := runner.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
	assert.Equal(t, first.Events, second.Events)
	assert.Equal(t, first.State, second.State)
	assert.NotEqual(t, first.RunID, second.RunID, "each run gets its own id")
	assert.NotEqual(t, uuid.Nil, first.RunID)

	assert.Equal(t, 4, first.Events.Fired)
	assert.Equal(t, first.Events.Destroyed*10, first.State.Score)
}

func TestRunHeldFireFiresOnce(t *testing.T) {
	s, err := ParseScript([]byte("frames:\n  - {fire: 1, fire_held: true}\n  - {repeat: 40, fire_held: true}\n"))
	require.NoError(t, err)

	res, err := NewRunner(config.DefaultInvadersConfig(), nil).Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 41, res.Ticks)
	assert.Equal(t, 1, res.Events.Fired, "auto-repeats of a held fire key must not spawn bullets")
}

func TestRunInputChangesHash(t *testing.T) {
	a, err := ParseScript([]byte("frames:\n  - {repeat: 30, left: true}\n"))
	require.NoError(t, err)
	b, err := ParseScript([]byte("frames:\n  - {repeat: 30, right: true}\n"))
	require.NoError(t, err)

	runner := NewRunner(config.DefaultInvadersConfig(), nil)
	ra, err := runner.Run(context.Background(), a)
	require.NoError(t, err)
	rb, err := runner.Run(context.Background(), b)
	require.NoError(t, err)

	assert.NotEqual(t, ra.Hash, rb.Hash)
}

func TestRunClearsSingleEnemy(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Enemies.Rows = 1
	cfg.Enemies.Columns = 1
	cfg.Enemies.FrontZ = 2
	cfg.Enemies.Speed = 0

	s, err := ParseScript([]byte("frames:\n  - {fire: 1}\n  - {repeat: 200}\n"))
	require.NoError(t, err)

	res, err := NewRunner(cfg, nil).Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, invaders.StateCleared, res.Phase)
	assert.True(t, res.State.Won)
	assert.Equal(t, 1, res.Events.Destroyed)
	assert.Less(t, res.Ticks, 201, "the run stops once the game is over")
}

func TestRunPolicyOverride(t *testing.T) {
	s, err := ParseScript([]byte("policy: compat\nframes:\n  - {repeat: 2}\n"))
	require.NoError(t, err)

	res, err := NewRunner(config.DefaultInvadersConfig(), nil).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, invaders.IDCompat, res.GameID)
}

func TestRunLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	s, err := ParseScript([]byte("frames:\n  - {fire: 1}\n  - {repeat: 240}\n"))
	require.NoError(t, err)

	_, err = NewRunner(config.DefaultInvadersConfig(), logger).Run(context.Background(), s)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "run finished")
	assert.Contains(t, out, "formation reversed")
}

func TestRunCancelled(t *testing.T) {
	s, err := ParseScript([]byte(sweepScript))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewRunner(config.DefaultInvadersConfig(), nil).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}
