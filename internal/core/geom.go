// Package core provides fundamental types and utilities for the invaders platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec3 is a position in world space. X is the horizontal axis the player and
// the enemy formation move along, Z is depth (forward is +Z), Y is height.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Extent is a half-size pair on the horizontal plane: half width along X and
// half depth along Z.
type Extent struct {
	HalfW float64 `yaml:"half_width"`
	HalfD float64 `yaml:"half_depth"`
}

// Box is an axis-aligned bounding box projected onto the X/Z plane.
type Box struct {
	Center Vec3
	Extent Extent
}

// NewBox builds the box of an entity centered at pos with the given extent.
func NewBox(pos Vec3, ext Extent) Box {
	return Box{Center: pos, Extent: ext}
}

// MinX returns the left edge.
func (b Box) MinX() float64 { return b.Center.X - b.Extent.HalfW }

// MaxX returns the right edge.
func (b Box) MaxX() float64 { return b.Center.X + b.Extent.HalfW }

// MinZ returns the near edge.
func (b Box) MinZ() float64 { return b.Center.Z - b.Extent.HalfD }

// MaxZ returns the far edge.
func (b Box) MaxZ() float64 { return b.Center.Z + b.Extent.HalfD }

// Intersects reports whether two boxes overlap on both axes.
// Intervals are closed, so boxes that only touch on an edge intersect.
func (b Box) Intersects(other Box) bool {
	if b.MinX() > other.MaxX() || other.MinX() > b.MaxX() {
		return false
	}
	if b.MinZ() > other.MaxZ() || other.MinZ() > b.MaxZ() {
		return false
	}
	return true
}

// Rect represents an integer rectangle on the character screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
