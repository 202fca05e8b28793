package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Spore Spawn: a pendulum pod attached to the ceiling.
//
// Cycle: swing on the anchor for ~5 seconds, drop toward the room
// center, open the core (not yet vulnerable), hold the core open for a
// ~2 second vulnerability window while lobbing spores at the player,
// close, rise back to the anchor, repeat. Only the open window accepts
// damage.

type ssState int

const (
	ssSwing ssState = iota
	ssDescend
	ssOpen
	ssVulnerable
	ssClose
	ssAscend
	ssDeath
)

const (
	ssHP            = 960
	ssContactDamage = 40

	ssSwingSpeed  = 3   // LUT angle units per frame
	ssSwingFrames = 300 // ~5 sec of swinging
	ssOpenFrames  = 30
	ssVulnFrames  = 120 // ~2 sec vulnerability window
	ssCloseFrames = 30
	ssDeathFrames = 60

	ssSporeInterval = 45 // frames between spore shots
)

var (
	ssHitbox       = entity.AABB{HalfW: fixed.FromInt(12), HalfH: fixed.FromInt(16)}
	ssSwingRadius  = fixed.FromInt(48) // horizontal swing extent
	ssDescendSpeed = fixed.FromInt(1)  // px/frame downward
	ssDescendDist  = fixed.FromInt(64) // how far below the anchor
	ssAscendSpeed  = fixed.FromInt(1)  // px/frame upward
	ssSporeSpeed   = fixed.FromInt(2)
)

type sporeSpawn struct {
	state ssState
	timer int

	// swingAngle is in LUT units, advanced every swing frame.
	swingAngle int

	// sporeCooldown spaces spore shots inside the open window.
	sporeCooldown int

	// anchor is the ceiling attachment point (the spawn position).
	anchor entity.Vec2
}

func (s *sporeSpawn) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = ssHP, ssHP
	b.ContactDamage = ssContactDamage
	b.Body.Hitbox = ssHitbox
	b.Vulnerable = false
	s.anchor = b.Body.Pos
}

func (s *sporeSpawn) update(e *Encounter) {
	b := &e.boss

	switch s.state {
	case ssSwing:
		// Pendulum motion: X = anchor + sin(angle) * radius
		s.swingAngle += ssSwingSpeed
		b.Body.Pos.X = s.anchor.X + fixed.Mul(fixed.Sin(s.swingAngle), ssSwingRadius)
		b.Body.Pos.Y = s.anchor.Y

		s.timer++
		if s.timer >= ssSwingFrames {
			s.state = ssDescend
			s.timer = 0
			// Center before descending
			b.Body.Pos.X = s.anchor.X
		}

	case ssDescend:
		b.Body.Pos.Y += ssDescendSpeed
		target := s.anchor.Y + ssDescendDist
		if b.Body.Pos.Y >= target {
			b.Body.Pos.Y = target
			s.state = ssOpen
			s.timer = 0
		}

	case ssOpen:
		s.timer++
		if s.timer >= ssOpenFrames {
			s.state = ssVulnerable
			s.timer = 0
			s.sporeCooldown = 0
			b.Vulnerable = true
		}

	case ssVulnerable:
		s.timer++
		s.sporeCooldown++

		if s.sporeCooldown >= ssSporeInterval {
			s.sporeCooldown = 0
			vx, vy := e.aimSign(b.Body.Pos, ssSporeSpeed)
			e.spawnHazard(HazardBullet, b.Body.Pos.X, b.Body.Pos.Y, vx, vy)
		}

		if s.timer >= ssVulnFrames {
			s.state = ssClose
			s.timer = 0
			b.Vulnerable = false
		}

	case ssClose:
		s.timer++
		if s.timer >= ssCloseFrames {
			s.state = ssAscend
			s.timer = 0
		}

	case ssAscend:
		b.Body.Pos.Y -= ssAscendSpeed
		if b.Body.Pos.Y <= s.anchor.Y {
			b.Body.Pos.Y = s.anchor.Y
			s.state = ssSwing
			s.timer = 0
			s.swingAngle = 0
		}

	case ssDeath:
		s.timer++
		if s.timer >= ssDeathFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: spore spawn in impossible state %d", s.state))
	}

	if b.Active && s.state != ssDeath {
		e.contactDamage()
	}
}

func (s *sporeSpawn) enterDeath(e *Encounter) {
	s.state = ssDeath
	s.timer = 0
}
