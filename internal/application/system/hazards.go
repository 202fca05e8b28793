package system

import (
	"github.com/younwookim/bossrush/internal/domain/boss"
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

const poolSize = 64

// cullMargin is how far outside the arena a hazard may fly before its
// slot is reclaimed.
var hazardCullMargin = fixed.FromInt(32)

var (
	hazardGravity   = fixed.Int(0x2000) // bomb arc, 0.125 px/frame^2
	hazardHitboxBox = entity.AABB{HalfW: fixed.FromInt(3), HalfH: fixed.FromInt(3)}
)

// contactDamageFor is the damage an enemy hazard deals on contact.
var contactDamageFor = map[boss.HazardKind]int{
	boss.HazardBullet:    20,
	boss.HazardBomb:      30,
	boss.HazardFlame:     15,
	boss.HazardGlob:      25,
	boss.HazardReflected: 40,
}

type hazardOwner int

const (
	ownerEnemy hazardOwner = iota
	ownerPlayer
)

type hazard struct {
	active bool
	kind   boss.HazardKind
	owner  hazardOwner
	body   entity.Body
	damage int
}

// HazardPool is a fixed-size pool of everything in flight: boss
// hazards and player shots. It is the HazardSpawner the boss framework
// fires into.
type HazardPool struct {
	bounds Bounds
	slots  [poolSize]hazard
}

// NewHazardPool creates an empty pool bounded by the arena.
func NewHazardPool(bounds Bounds) *HazardPool {
	return &HazardPool{bounds: bounds}
}

// Spawn launches an enemy-owned hazard. It returns the slot index, or
// -1 when the pool is saturated and the hazard is dropped.
func (h *HazardPool) Spawn(kind boss.HazardKind, x, y, vx, vy fixed.Int) int {
	return h.spawn(kind, ownerEnemy, x, y, vx, vy, contactDamageFor[kind])
}

// SpawnPlayerShot launches a horizontal player shot.
func (h *HazardPool) SpawnPlayerShot(x, y, vx fixed.Int, damage int) int {
	return h.spawn(boss.HazardBullet, ownerPlayer, x, y, vx, 0, damage)
}

func (h *HazardPool) spawn(kind boss.HazardKind, owner hazardOwner, x, y, vx, vy fixed.Int, damage int) int {
	for i := range h.slots {
		if h.slots[i].active {
			continue
		}
		h.slots[i] = hazard{
			active: true,
			kind:   kind,
			owner:  owner,
			damage: damage,
		}
		h.slots[i].body.Pos = entity.Vec2{X: x, Y: y}
		h.slots[i].body.Vel = entity.Vec2{X: vx, Y: vy}
		h.slots[i].body.Hitbox = hazardHitboxBox
		return i
	}
	return -1
}

// ActiveCount returns the number of live hazards.
func (h *HazardPool) ActiveCount() int {
	n := 0
	for i := range h.slots {
		if h.slots[i].active {
			n++
		}
	}
	return n
}

// Each visits every live hazard, for rendering.
func (h *HazardPool) Each(fn func(kind boss.HazardKind, fromPlayer bool, pos entity.Vec2)) {
	for i := range h.slots {
		if h.slots[i].active {
			fn(h.slots[i].kind, h.slots[i].owner == ownerPlayer, h.slots[i].body.Pos)
		}
	}
}

// Reset clears every slot.
func (h *HazardPool) Reset() {
	for i := range h.slots {
		h.slots[i] = hazard{}
	}
}

// Update moves every live hazard one frame and resolves its contacts:
// enemy hazards against the player, player shots against the boss.
func (h *HazardPool) Update(player boss.Target, enc *boss.Encounter) {
	for i := range h.slots {
		s := &h.slots[i]
		if !s.active {
			continue
		}

		h.move(s)
		if h.outOfBounds(s) {
			s.active = false
			continue
		}

		switch s.owner {
		case ownerEnemy:
			if player == nil {
				continue
			}
			p := player.Body()
			if entity.Overlap(s.body.Pos, s.body.Hitbox, p.Pos, p.Hitbox) {
				player.Damage(s.damage)
				s.active = false
			}
		case ownerPlayer:
			if enc == nil || !enc.IsActive() {
				continue
			}
			b := enc.Boss()
			if entity.Overlap(s.body.Pos, s.body.Hitbox, b.Body.Pos, b.Body.Hitbox) {
				enc.Damage(s.damage)
				s.active = false
			}
		}
	}
}

func (h *HazardPool) move(s *hazard) {
	switch s.kind {
	case boss.HazardBomb:
		// Gravity arc
		s.body.Vel.Y += hazardGravity
	case boss.HazardFlame:
		// Slow fall: velocity is already terminal, nothing to add
	case boss.HazardGlob:
		h.bounce(s)
	}

	s.body.Pos.X += s.body.Vel.X
	s.body.Pos.Y += s.body.Vel.Y
}

// bounce reflects a glob's velocity off the arena bounds.
func (h *HazardPool) bounce(s *hazard) {
	next := s.body.Pos.X + s.body.Vel.X
	if next < h.bounds.Min.X || next > h.bounds.Max.X {
		s.body.Vel.X = -s.body.Vel.X
	}
	nextY := s.body.Pos.Y + s.body.Vel.Y
	if nextY < h.bounds.Min.Y || nextY > h.bounds.Max.Y {
		s.body.Vel.Y = -s.body.Vel.Y
	}
}

func (h *HazardPool) outOfBounds(s *hazard) bool {
	p := s.body.Pos
	return p.X < h.bounds.Min.X-hazardCullMargin ||
		p.X > h.bounds.Max.X+hazardCullMargin ||
		p.Y < h.bounds.Min.Y-hazardCullMargin ||
		p.Y > h.bounds.Max.Y+hazardCullMargin
}
