// Package replay drives a game from a scripted input sequence without a
// terminal. Ticks use a fixed delta, so a script always produces the same
// final state and snapshot hash.
package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrInvalidScript is returned (wrapped) for scripts that cannot be run.
var ErrInvalidScript = errors.New("replay: invalid script")

// DefaultTickRate is used when a script does not set tick_rate.
const DefaultTickRate = 60

// Script is a recorded input sequence.
type Script struct {
	TickRate int     `yaml:"tick_rate"`
	Policy   string  `yaml:"policy"` // overrides the config collision policy when set
	Frames   []Frame `yaml:"frames"`
}

// Frame is the input for Repeat consecutive ticks.
// Fire presses are only delivered on the first of those ticks.
type Frame struct {
	Repeat   int  `yaml:"repeat"`
	Left     bool `yaml:"left"`
	Right    bool `yaml:"right"`
	Fire     int  `yaml:"fire"`      // press-edges in the first tick
	FireHeld bool `yaml:"fire_held"` // fire auto-repeat on every tick, never fires
	Pause    bool `yaml:"pause"`
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided script path
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script, fills defaults and validates it.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}
	if s.TickRate == 0 {
		s.TickRate = DefaultTickRate
	}
	for i := range s.Frames {
		if s.Frames[i].Repeat == 0 {
			s.Frames[i].Repeat = 1
		}
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks tick rate, policy and frame counts.
func (s Script) Validate() error {
	if s.TickRate < 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidScript, s.TickRate)
	}
	switch s.Policy {
	case "", config.PolicyExclusive, config.PolicyCompat:
	default:
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidScript, s.Policy)
	}
	for i, f := range s.Frames {
		if f.Repeat < 0 || f.Fire < 0 {
			return fmt.Errorf("%w: frame %d has negative repeat or fire", ErrInvalidScript, i)
		}
	}
	return nil
}

// Ticks returns the total number of ticks the script describes.
func (s Script) Ticks() int {
	n := 0
	for _, f := range s.Frames {
		n += f.Repeat
	}
	return n
}

// Delta returns the fixed elapsed time of one tick.
func (s Script) Delta() float64 {
	return core.RuntimeConfig{TickRate: s.TickRate}.FixedDelta()
}

// input builds the frame for the given tick within f.
func (f Frame) input(first bool) core.InputFrame {
	in := core.NewInputFrame()
	if f.Left {
		in.Set(core.ActionLeft)
	}
	if f.Right {
		in.Set(core.ActionRight)
	}
	if first {
		for range f.Fire {
			in.Press(core.ActionFire)
		}
		if f.Pause {
			in.Set(core.ActionPause)
		}
	}
	if f.FireHeld {
		in.Push(core.KeyEvent{Action: core.ActionFire, State: core.KeyRepeat})
	}
	return in
}
