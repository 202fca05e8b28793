// Package entity defines the physical primitives shared by the
// simulation: fixed-point vectors, axis-aligned hitboxes and bodies.
package entity

import "github.com/younwookim/bossrush/internal/domain/fixed"

// Vec2 is a 2D point or velocity in 16.16 fixed-point world units.
type Vec2 struct {
	X, Y fixed.Int
}

// AABB is an axis-aligned bounding box expressed as half-extents
// around a center point.
type AABB struct {
	HalfW, HalfH fixed.Int
}

// Environment describes the medium a body currently occupies.
type Environment int

const (
	EnvAir Environment = iota
	EnvWater
	EnvLava
)

// Body is the physics-facing record of an entity: position, velocity
// and hitbox. The boss framework reads and writes its own Body directly
// (most bosses move by position edits, not velocity integration) and
// reads the player's and projectiles' bodies for overlap tests.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Hitbox AABB
	Env    Environment
}

// Overlap reports whether two center+half-extent boxes intersect.
// Touching edges do not count as overlap.
func Overlap(aPos Vec2, aBox AABB, bPos Vec2, bBox AABB) bool {
	dx := fixed.Abs(aPos.X - bPos.X)
	dy := fixed.Abs(aPos.Y - bPos.Y)
	return dx < aBox.HalfW+bBox.HalfW && dy < aBox.HalfH+bBox.HalfH
}
