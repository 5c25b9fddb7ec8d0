package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// testParams is the default playground: 10 wide, 10 deep.
func testParams() Params {
	return Params{
		HalfWidth:    5.0,
		FarBoundary:  10.0,
		PlayerSpeed:  4.0,
		EnemySpeed:   1.0,
		BulletSpeed:  5.0,
		MuzzleOffset: 0.7,
		PlayerExtent: core.Extent{HalfW: 0.5, HalfD: 0.5},
		EnemyExtent:  core.Extent{HalfW: 0.25, HalfD: 0.25},
		BulletExtent: core.Extent{HalfW: 0.05, HalfD: 0.15},
		Policy:       PolicyExclusive,
	}
}

func newTestWorld() *World {
	return NewWorld(testParams(), -1)
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func fire(n int) core.InputFrame {
	in := core.NewInputFrame()
	for range n {
		in.Press(core.ActionFire)
	}
	return in
}
