package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Phantoon: a ghost that circles the room unseen, materializes, opens
// its eye (the vulnerability window, raining flames) then fades out
// again. A heavy hit it survives latches rage for the rest of the
// fight: eye-open windows halve and the flame rain doubles.

type phState int

const (
	phInvisible phState = iota
	phMaterialize
	phEyeOpen
	phEyeClose
	phVanish
	phDeath
)

const (
	phHP            = 2500
	phContactDamage = 40

	phInvisibleFrames   = 120
	phMaterializeFrames = 45
	phEyeOpenFrames     = 150 // halved while enraged
	phEyeCloseFrames    = 30
	phVanishFrames      = 30
	phDeathFrames       = 90

	phFlameInterval = 30
	phDriftStep     = 2 // LUT angle units per frame while invisible
)

var (
	phHitbox      = entity.AABB{HalfW: fixed.FromInt(16), HalfH: fixed.FromInt(16)}
	phDriftRadius = fixed.FromInt(32)
	phFlameSpeed  = fixed.FromInt(1)
)

type phantoon struct {
	state phState
	timer int

	// rage is latched by the damage pipeline on a surviving heavy hit
	// and never cleared.
	rage bool

	driftAngle int
	anchor     entity.Vec2
}

func (p *phantoon) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = phHP, phHP
	b.ContactDamage = phContactDamage
	b.Body.Hitbox = phHitbox
	b.Vulnerable = false
	p.anchor = b.Body.Pos
}

func (p *phantoon) update(e *Encounter) {
	b := &e.boss

	switch p.state {
	case phInvisible:
		p.driftAngle += phDriftStep
		b.Body.Pos.X = p.anchor.X + fixed.Mul(fixed.Cos(p.driftAngle), phDriftRadius)
		b.Body.Pos.Y = p.anchor.Y + fixed.Mul(fixed.Sin(p.driftAngle), phDriftRadius)

		p.timer++
		if p.timer >= phInvisibleFrames {
			p.state = phMaterialize
			p.timer = 0
		}

	case phMaterialize:
		p.timer++
		if p.timer >= phMaterializeFrames {
			p.state = phEyeOpen
			p.timer = 0
			b.Vulnerable = true
		}

	case phEyeOpen:
		if p.timer%phFlameInterval == 0 {
			p.rainFlames(e)
		}

		p.timer++
		if p.timer >= p.eyeOpenFrames() {
			p.state = phEyeClose
			p.timer = 0
			b.Vulnerable = false
		}

	case phEyeClose:
		p.timer++
		if p.timer >= phEyeCloseFrames {
			p.state = phVanish
			p.timer = 0
		}

	case phVanish:
		p.timer++
		if p.timer >= phVanishFrames {
			p.state = phInvisible
			p.timer = 0
		}

	case phDeath:
		p.timer++
		if p.timer >= phDeathFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: phantoon in impossible state %d", p.state))
	}

	// Immaterial while invisible or mid-fade
	solid := p.state == phMaterialize || p.state == phEyeOpen || p.state == phEyeClose
	if b.Active && solid {
		e.contactDamage()
	}
}

func (p *phantoon) enterDeath(e *Encounter) {
	p.state = phDeath
	p.timer = 0
}

func (p *phantoon) eyeOpenFrames() int {
	if p.rage {
		return phEyeOpenFrames / 2
	}
	return phEyeOpenFrames
}

// rainFlames drops flames above the player; rage doubles the count.
func (p *phantoon) rainFlames(e *Encounter) {
	b := &e.boss
	px := e.playerPos().X
	top := b.Body.Pos.Y - fixed.FromInt(48)

	e.spawnHazard(HazardFlame, px, top, 0, phFlameSpeed)
	if p.rage {
		e.spawnHazard(HazardFlame, px-fixed.FromInt(24), top, 0, phFlameSpeed)
	}
}
