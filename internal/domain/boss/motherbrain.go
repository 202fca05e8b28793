package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Mother Brain: the three-phase final encounter. Each phase has its
// own HP pool and attack set; running a phase's HP to zero is caught
// by the damage pipeline and redirected into a scripted transition
// instead of a death. Only the third phase dies for real.
//
//	phase 0: the brain in its tank, guarded by turret fire
//	phase 1: the standing form that paces, takes aim, fires the big beam
//	phase 2: a broken crawl straight at the player
//
// At the end of each transition HP and HPMax are reassigned to the
// next phase's pool, Phase increments by exactly one, and the
// vulnerability window reopens.

type mbState int

const (
	mbTank mbState = iota
	mbTankBreak
	mbWalk
	mbAim
	mbBeam
	mbCollapse
	mbCrawl
	mbFinalDeath
)

const (
	mbPhase0HP = 800
	mbPhase1HP = 1200
	mbPhase2HP = 900

	mbContactDamage = 50

	mbTankBreakFrames = 180
	mbWalkFrames      = 90
	mbAimFrames       = 60
	mbBeamFrames      = 90
	mbCollapseFrames  = 240
	mbFinalFrames     = 300

	mbTurretInterval = 90
	mbSpitInterval   = 60
	mbBeamDamage     = 5
	mbBeamTick       = 10 // frames between beam damage ticks
)

var (
	mbTankHitbox  = entity.AABB{HalfW: fixed.FromInt(16), HalfH: fixed.FromInt(16)}
	mbStandHitbox = entity.AABB{HalfW: fixed.FromInt(20), HalfH: fixed.FromInt(32)}

	mbTurretSpeed = fixed.FromInt(2)
	mbWalkSpeed   = fixed.Int(0x8000) // 0.5 px/frame
	mbCrawlSpeed  = fixed.FromInt(1)
	mbSpitSpeed   = fixed.FromInt(3)
	mbBeamHalfH   = fixed.FromInt(16)
)

type motherBrain struct {
	state mbState
	timer int

	// beamRight is the beam direction, locked when aiming ends.
	beamRight bool
}

func (m *motherBrain) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = mbPhase0HP, mbPhase0HP
	b.Phase = 0
	b.ContactDamage = mbContactDamage
	b.Body.Hitbox = mbTankHitbox
	// The tank glass is already cracked open: phase 0 is a shooting
	// gallery from the first frame.
	b.Vulnerable = true
}

func (m *motherBrain) update(e *Encounter) {
	b := &e.boss

	switch m.state {
	case mbTank:
		m.timer++
		if m.timer%mbTurretInterval == 0 {
			vx, vy := e.aimSign(b.Body.Pos, mbTurretSpeed)
			e.spawnHazard(HazardBullet, b.Body.Pos.X, b.Body.Pos.Y-fixed.FromInt(24), vx, vy)
		}

	case mbTankBreak:
		m.timer++
		if m.timer >= mbTankBreakFrames {
			m.beginPhase(b, 1, mbPhase1HP, mbStandHitbox, mbWalk)
		}

	case mbWalk:
		if e.playerPos().X < b.Body.Pos.X {
			b.Body.Pos.X -= mbWalkSpeed
		} else {
			b.Body.Pos.X += mbWalkSpeed
		}

		m.timer++
		if m.timer >= mbWalkFrames {
			m.state = mbAim
			m.timer = 0
		}

	case mbAim:
		m.timer++
		if m.timer >= mbAimFrames {
			m.state = mbBeam
			m.timer = 0
			m.beamRight = e.playerPos().X >= b.Body.Pos.X
			e.shake(60, 6)
		}

	case mbBeam:
		// The beam holds the boss's eye line in the direction locked
		// at the end of the aim: anything level with it on that side
		// takes ticking damage.
		if m.timer%mbBeamTick == 0 && e.player != nil {
			p := e.player.Body().Pos
			dy := fixed.Abs(p.Y - b.Body.Pos.Y)
			inBeam := m.beamRight && p.X >= b.Body.Pos.X ||
				!m.beamRight && p.X < b.Body.Pos.X
			if dy < mbBeamHalfH && inBeam {
				e.player.DamageFrom(mbBeamDamage, b.Body.Pos.X)
			}
		}

		m.timer++
		if m.timer >= mbBeamFrames {
			m.state = mbWalk
			m.timer = 0
		}

	case mbCollapse:
		m.timer++
		if m.timer >= mbCollapseFrames {
			m.beginPhase(b, 2, mbPhase2HP, mbStandHitbox, mbCrawl)
		}

	case mbCrawl:
		if e.playerPos().X < b.Body.Pos.X {
			b.Body.Pos.X -= mbCrawlSpeed
		} else {
			b.Body.Pos.X += mbCrawlSpeed
		}

		m.timer++
		if m.timer%mbSpitInterval == 0 {
			vx, vy := e.aimSign(b.Body.Pos, mbSpitSpeed)
			e.spawnHazard(HazardBullet, b.Body.Pos.X, b.Body.Pos.Y, vx, vy)
		}

	case mbFinalDeath:
		m.timer++
		if m.timer >= mbFinalFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: mother brain in impossible state %d", m.state))
	}

	// The tank keeps the player out in phase 0; transitions and the
	// final death are scripted scenes with no contact.
	contact := m.state == mbWalk || m.state == mbAim || m.state == mbBeam || m.state == mbCrawl
	if b.Active && contact {
		e.contactDamage()
	}
}

// enterDeath intercepts phase 0 and 1 deaths as transitions; only the
// phase 2 death proceeds to the real ending.
func (m *motherBrain) enterDeath(e *Encounter) {
	switch e.boss.Phase {
	case 0:
		m.state = mbTankBreak
	case 1:
		m.state = mbCollapse
	default:
		m.state = mbFinalDeath
	}
	m.timer = 0
}

// beginPhase completes a transition: next phase index, fresh HP pool,
// new silhouette, vulnerability restored.
func (m *motherBrain) beginPhase(b *Boss, phase, hp int, hitbox entity.AABB, next mbState) {
	b.Phase = phase
	b.HP, b.HPMax = hp, hp
	b.Body.Hitbox = hitbox
	b.Vulnerable = true
	m.state = next
	m.timer = 0
}
