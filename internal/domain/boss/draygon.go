package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Draygon: an armored swooper. It hovers at one side of the room, then
// dives across in a sine arc, trading sides. Both of those are
// invulnerable; only every third pass, when it lingers mid-room to
// spit bouncing globs, does its soft underside show.

type drState int

const (
	drHover drState = iota
	drSwoop
	drSpit
	drDeath
)

const (
	drHP            = 2000
	drContactDamage = 60

	drHoverFrames = 90
	drSpitFrames  = 120
	drDeathFrames = 90

	drSpitEvery    = 3 // glob pass after every N swoops
	drGlobShots    = 3
	drGlobInterval = 30
	drArcStep      = 2 // LUT angle units per swoop frame
)

var (
	drHitbox     = entity.AABB{HalfW: fixed.FromInt(20), HalfH: fixed.FromInt(16)}
	drSwoopSpeed = fixed.FromInt(2)
	drSwoopSpan  = fixed.FromInt(160) // side-to-side distance
	drArcAmp     = fixed.FromInt(48)
	drGlobSpeed  = fixed.FromInt(2)
)

type draygon struct {
	state drState
	timer int

	swoopCount int

	// facingRight is the direction of the next swoop.
	facingRight bool

	arcAngle int
	baseY    fixed.Int
	targetX  fixed.Int

	anchor entity.Vec2
}

func (d *draygon) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = drHP, drHP
	b.ContactDamage = drContactDamage
	b.Body.Hitbox = drHitbox
	b.Vulnerable = false
	d.anchor = b.Body.Pos
	d.facingRight = true
}

func (d *draygon) update(e *Encounter) {
	b := &e.boss

	switch d.state {
	case drHover:
		d.timer++
		if d.timer >= drHoverFrames {
			if d.swoopCount > 0 && d.swoopCount%drSpitEvery == 0 {
				d.beginSpit(b)
			} else {
				d.beginSwoop(b)
			}
		}

	case drSwoop:
		d.arcAngle += drArcStep
		if d.facingRight {
			b.Body.Pos.X += drSwoopSpeed
		} else {
			b.Body.Pos.X -= drSwoopSpeed
		}
		b.Body.Pos.Y = d.baseY + fixed.Mul(fixed.Sin(d.arcAngle), drArcAmp)

		arrived := d.facingRight && b.Body.Pos.X >= d.targetX ||
			!d.facingRight && b.Body.Pos.X <= d.targetX
		if arrived {
			b.Body.Pos.X = d.targetX
			b.Body.Pos.Y = d.baseY
			d.swoopCount++
			d.facingRight = !d.facingRight
			d.state = drHover
			d.timer = 0
		}

	case drSpit:
		if d.timer%drGlobInterval == 0 && d.timer/drGlobInterval < drGlobShots {
			vx, vy := e.aimSign(b.Body.Pos, drGlobSpeed)
			e.spawnHazard(HazardGlob, b.Body.Pos.X, b.Body.Pos.Y, vx, vy)
		}

		d.timer++
		if d.timer >= drSpitFrames {
			d.swoopCount++
			b.Vulnerable = false
			d.state = drHover
			d.timer = 0
		}

	case drDeath:
		d.timer++
		if d.timer >= drDeathFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: draygon in impossible state %d", d.state))
	}

	if b.Active && d.state != drDeath {
		e.contactDamage()
	}
}

func (d *draygon) enterDeath(e *Encounter) {
	d.state = drDeath
	d.timer = 0
}

func (d *draygon) beginSwoop(b *Boss) {
	d.state = drSwoop
	d.timer = 0
	d.arcAngle = 0
	d.baseY = b.Body.Pos.Y
	if d.facingRight {
		d.targetX = b.Body.Pos.X + drSwoopSpan
	} else {
		d.targetX = b.Body.Pos.X - drSwoopSpan
	}
}

func (d *draygon) beginSpit(b *Boss) {
	d.state = drSpit
	d.timer = 0
	b.Vulnerable = true
}
