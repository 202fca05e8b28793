package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Ridley: the most aggressive flier. It traces a figure eight around
// its anchor and never stops being vulnerable once the entrance swoop
// is done. Aggression scales with missing health in four coarse bands:
// the lower the HP ratio, the shorter the pause between attacks and
// the more fireballs per volley. Every fourth attack is a dive at the
// player instead of a volley.

type rdState int

const (
	rdEntrance rdState = iota
	rdFly
	rdVolley
	rdDive
	rdDeath
)

const (
	rdHP            = 3000
	rdContactDamage = 60

	rdEntranceFrames = 60
	rdVolleyFrames   = 30
	rdDiveFrames     = 25
	rdDeathFrames    = 120

	rdDiveEvery = 4 // dive after every N attacks
	rdFlyStep   = 2 // LUT angle units per frame
)

var (
	rdHitbox        = entity.AABB{HalfW: fixed.FromInt(16), HalfH: fixed.FromInt(24)}
	rdFlyRadiusX    = fixed.FromInt(64)
	rdFlyRadiusY    = fixed.FromInt(24)
	rdEntranceSpeed = fixed.FromInt(2)
	rdFireballSpeed = fixed.FromInt(3)
	rdDiveSpeed     = fixed.FromInt(4)
)

type ridley struct {
	state rdState
	timer int

	flyAngle    int
	attackTimer int
	attackCount int

	// diveVX/diveVY are locked toward the player when the dive starts.
	diveVX, diveVY fixed.Int

	anchor entity.Vec2
}

func (r *ridley) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = rdHP, rdHP
	b.ContactDamage = rdContactDamage
	b.Body.Hitbox = rdHitbox
	b.Vulnerable = false
	r.anchor = b.Body.Pos
	r.attackTimer = r.attackInterval(b)
}

// attackInterval returns the pause between attacks for the current HP
// band. Band edges are inclusive: exactly half health is still the
// half-health band.
//
//	≥75% → 90, ≥50% → 70, ≥25% → 50, below → 35 frames
func (r *ridley) attackInterval(b *Boss) int {
	switch {
	case b.HP*4 >= b.HPMax*3:
		return 90
	case b.HP*2 >= b.HPMax:
		return 70
	case b.HP*4 >= b.HPMax:
		return 50
	default:
		return 35
	}
}

// volleyShots returns the fireball count for the current HP band:
// ≥75% → 1, ≥50% → 2, ≥25% → 3, below → 4.
func (r *ridley) volleyShots(b *Boss) int {
	switch {
	case b.HP*4 >= b.HPMax*3:
		return 1
	case b.HP*2 >= b.HPMax:
		return 2
	case b.HP*4 >= b.HPMax:
		return 3
	default:
		return 4
	}
}

func (r *ridley) update(e *Encounter) {
	b := &e.boss

	switch r.state {
	case rdEntrance:
		b.Body.Pos.Y += rdEntranceSpeed
		r.timer++
		if r.timer >= rdEntranceFrames {
			r.anchor = b.Body.Pos
			r.state = rdFly
			r.timer = 0
			b.Vulnerable = true
		}

	case rdFly:
		r.flyAngle += rdFlyStep
		// Figure eight: Y runs at double the X frequency
		b.Body.Pos.X = r.anchor.X + fixed.Mul(fixed.Sin(r.flyAngle), rdFlyRadiusX)
		b.Body.Pos.Y = r.anchor.Y + fixed.Mul(fixed.Sin(2*r.flyAngle), rdFlyRadiusY)

		r.attackTimer--
		if r.attackTimer <= 0 {
			r.attackCount++
			if r.attackCount%rdDiveEvery == 0 {
				r.beginDive(e)
			} else {
				r.state = rdVolley
				r.timer = 0
			}
		}

	case rdVolley:
		if r.timer == 0 {
			r.fireVolley(e)
		}

		r.timer++
		if r.timer >= rdVolleyFrames {
			r.state = rdFly
			r.timer = 0
			r.attackTimer = r.attackInterval(b)
		}

	case rdDive:
		b.Body.Pos.X += r.diveVX
		b.Body.Pos.Y += r.diveVY

		r.timer++
		if r.timer >= rdDiveFrames {
			r.state = rdFly
			r.timer = 0
			r.anchor = b.Body.Pos
			r.attackTimer = r.attackInterval(b)
		}

	case rdDeath:
		r.timer++
		if r.timer >= rdDeathFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: ridley in impossible state %d", r.state))
	}

	if b.Active && r.state != rdEntrance && r.state != rdDeath {
		e.contactDamage()
	}
}

func (r *ridley) enterDeath(e *Encounter) {
	r.state = rdDeath
	r.timer = 0
}

// fireVolley spreads the band's fireball count across vertical offsets
// around the sign-aimed base velocity.
func (r *ridley) fireVolley(e *Encounter) {
	b := &e.boss
	n := r.volleyShots(b)
	vx, vy := e.aimSign(b.Body.Pos, rdFireballSpeed)

	for i := 0; i < n; i++ {
		spread := fixed.FromInt(i - (n-1)/2)
		e.spawnHazard(HazardBullet, b.Body.Pos.X, b.Body.Pos.Y, vx, vy+spread)
	}
}

func (r *ridley) beginDive(e *Encounter) {
	b := &e.boss
	p := e.playerPos()

	r.diveVX = rdDiveSpeed
	if p.X < b.Body.Pos.X {
		r.diveVX = -rdDiveSpeed
	}
	r.diveVY = rdDiveSpeed >> 1
	if p.Y < b.Body.Pos.Y {
		r.diveVY = -(rdDiveSpeed >> 1)
	}

	r.state = rdDive
	r.timer = 0
}
