package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Crocomire: the push-mechanic boss. Hits shove it toward the lava pit
// instead of depleting HP; past the threshold it topples in and the
// fight is over. HP is never touched.
//
// Loop: advance on the player, stop to spit, lunge after every third
// spit, flinch backward when hit.

type crocState int

const (
	crocAdvance crocState = iota
	crocSpit
	crocFlinch
	crocLunge
	crocFalling
	crocDeath
)

const (
	// Effectively infinite; the kill condition is positional.
	crocHPDummy = 9999

	crocContactDamage = 30

	crocAdvanceDuration = 180 // frames before the next spit
	crocSpitFrames      = 40
	crocFlinchFrames    = 20
	crocLungeFrames     = 15
	crocLungeEvery      = 3 // lunge after every N spits
	crocFallFrames      = 45
	crocDeathFrames     = 90
)

var (
	crocHitbox        = entity.AABB{HalfW: fixed.FromInt(16), HalfH: fixed.FromInt(20)}
	crocAdvanceSpeed  = fixed.Int(0x4000) // 0.25 px/frame
	crocSpitSpeed     = fixed.FromInt(3)
	crocLungeSpeed    = fixed.FromInt(3)
	crocFallSpeed     = fixed.FromInt(2)
	crocPushPerHit    = fixed.FromInt(8)
	crocPushThreshold = fixed.FromInt(160) // pit distance from spawn
)

type crocomire struct {
	state crocState
	timer int

	// spitCount tracks spits since the last lunge.
	spitCount int

	// pitX is the lava threshold: spawn X + push distance.
	pitX fixed.Int
}

func (c *crocomire) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = crocHPDummy, crocHPDummy
	b.ContactDamage = crocContactDamage
	b.Body.Hitbox = crocHitbox
	// The flag stays raised for the whole fight; push acceptance is
	// gated on the terminal states instead.
	b.Vulnerable = true
	c.pitX = b.Body.Pos.X + crocPushThreshold
}

func (c *crocomire) update(e *Encounter) {
	b := &e.boss

	switch c.state {
	case crocAdvance:
		c.stepToward(b, e.playerPos().X, crocAdvanceSpeed)

		c.timer++
		if c.timer >= crocAdvanceDuration {
			if c.spitCount >= crocLungeEvery {
				c.state = crocLunge
				c.spitCount = 0
			} else {
				c.state = crocSpit
			}
			c.timer = 0
		}

	case crocSpit:
		if c.timer == 0 {
			vx, vy := e.aimSign(b.Body.Pos, crocSpitSpeed)
			// Flatter arc than the usual spit
			e.spawnHazard(HazardBullet, b.Body.Pos.X, b.Body.Pos.Y, vx, vy>>1)
			c.spitCount++
		}

		c.timer++
		if c.timer >= crocSpitFrames {
			c.state = crocAdvance
			c.timer = 0
		}

	case crocFlinch:
		c.timer++
		if c.timer >= crocFlinchFrames {
			c.state = crocAdvance
			c.timer = 0
		}

	case crocLunge:
		c.stepToward(b, e.playerPos().X, crocLungeSpeed)

		c.timer++
		if c.timer >= crocLungeFrames {
			c.state = crocAdvance
			c.timer = 0
		}

	case crocFalling:
		b.Body.Pos.Y += crocFallSpeed
		c.timer++
		if c.timer >= crocFallFrames {
			c.state = crocDeath
			c.timer = 0
		}

	case crocDeath:
		c.timer++
		if c.timer >= crocDeathFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: crocomire in impossible state %d", c.state))
	}

	if b.Active && c.state != crocFalling && c.state != crocDeath {
		e.contactDamage()
	}
}

// enterDeath is unreachable through the pipeline (HP never drops), but
// the dispatch contract requires a terminal entry.
func (c *crocomire) enterDeath(e *Encounter) {
	c.state = crocFalling
	c.timer = 0
}

// push is the damage response: shove toward the pit, flinch, and
// topple in once the threshold is reached.
func (c *crocomire) push(e *Encounter) {
	b := &e.boss

	b.Body.Pos.X += crocPushPerHit
	c.state = crocFlinch
	c.timer = 0

	if b.Body.Pos.X >= c.pitX {
		b.Body.Pos.X = c.pitX
		b.Vulnerable = false
		c.state = crocFalling
		c.timer = 0
		e.shake(30, 4)
	}
}

func (c *crocomire) stepToward(b *Boss, targetX, speed fixed.Int) {
	if targetX < b.Body.Pos.X {
		b.Body.Pos.X -= speed
	} else {
		b.Body.Pos.X += speed
	}
}
