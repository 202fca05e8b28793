package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Botwoon: a serpent that lives in the walls. It surfaces from one of
// four holes (cycling through them in a fixed order), weaves across
// the room on a sine path, the only time it can be hurt, then
// submerges. Every second crossing it pauses at the hole to spit a
// burst of aimed shots instead of hiding.

type boState int

const (
	boHidden boState = iota
	boEmerge
	boCross
	boSubmerge
	boSpit
	boDeath
)

const (
	boHP            = 1500
	boContactDamage = 30

	boHiddenFrames   = 60
	boEmergeFrames   = 30
	boSubmergeFrames = 30
	boSpitFrames     = 80
	boDeathFrames    = 75

	boSpitEvery    = 2 // spit phase after every N crossings
	boSpitShots    = 4
	boSpitInterval = 20

	boHoleCount = 4
	boWeaveStep = 6 // LUT angle units per frame while crossing
)

var (
	boHitbox     = entity.AABB{HalfW: fixed.FromInt(12), HalfH: fixed.FromInt(12)}
	boCrossSpeed = fixed.FromInt(2)
	boWeaveAmp   = fixed.FromInt(16)
	boSpitSpeed  = fixed.FromInt(3)

	// Hole positions relative to the spawn anchor, in emerge order.
	boHoles = [boHoleCount]entity.Vec2{
		{X: -fixed.FromInt(80), Y: -fixed.FromInt(40)},
		{X: fixed.FromInt(80), Y: fixed.FromInt(40)},
		{X: fixed.FromInt(80), Y: -fixed.FromInt(40)},
		{X: -fixed.FromInt(80), Y: fixed.FromInt(40)},
	}
)

type botwoon struct {
	state boState
	timer int

	// holeIdx is the hole currently occupied; crossings run from it to
	// the horizontally opposite hole.
	holeIdx    int
	crossCount int

	// weaveAngle drives the sine path; baseY is the straight-line Y.
	weaveAngle int
	baseY      fixed.Int
	targetX    fixed.Int

	anchor entity.Vec2
}

func (bo *botwoon) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = boHP, boHP
	b.ContactDamage = boContactDamage
	b.Body.Hitbox = boHitbox
	b.Vulnerable = false
	bo.anchor = b.Body.Pos
	bo.moveToHole(b, 0)
}

func (bo *botwoon) update(e *Encounter) {
	b := &e.boss

	switch bo.state {
	case boHidden:
		bo.timer++
		if bo.timer >= boHiddenFrames {
			bo.state = boEmerge
			bo.timer = 0
			bo.moveToHole(b, (bo.holeIdx+1)%boHoleCount)
		}

	case boEmerge:
		bo.timer++
		if bo.timer >= boEmergeFrames {
			bo.beginCross(b)
		}

	case boCross:
		bo.weaveAngle += boWeaveStep
		if bo.targetX > b.Body.Pos.X {
			b.Body.Pos.X += boCrossSpeed
		} else {
			b.Body.Pos.X -= boCrossSpeed
		}
		b.Body.Pos.Y = bo.baseY + fixed.Mul(fixed.Sin(bo.weaveAngle), boWeaveAmp)

		if fixed.Abs(b.Body.Pos.X-bo.targetX) < boCrossSpeed {
			b.Body.Pos.X = bo.targetX
			b.Body.Pos.Y = bo.baseY
			b.Vulnerable = false
			bo.crossCount++
			bo.state = boSubmerge
			bo.timer = 0
		}

	case boSubmerge:
		bo.timer++
		if bo.timer >= boSubmergeFrames {
			if bo.crossCount%boSpitEvery == 0 {
				bo.state = boSpit
				bo.timer = 0
				b.Vulnerable = true
			} else {
				bo.state = boHidden
				bo.timer = 0
			}
		}

	case boSpit:
		if bo.timer%boSpitInterval == 0 && bo.timer/boSpitInterval < boSpitShots {
			vx, vy := e.aimSign(b.Body.Pos, boSpitSpeed)
			e.spawnHazard(HazardBullet, b.Body.Pos.X, b.Body.Pos.Y, vx, vy)
		}

		bo.timer++
		if bo.timer >= boSpitFrames {
			bo.state = boHidden
			bo.timer = 0
			b.Vulnerable = false
		}

	case boDeath:
		bo.timer++
		if bo.timer >= boDeathFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: botwoon in impossible state %d", bo.state))
	}

	// Inside the wall (hidden/submerged) there is nothing to touch.
	visible := bo.state == boCross || bo.state == boSpit || bo.state == boEmerge
	if b.Active && visible {
		e.contactDamage()
	}
}

func (bo *botwoon) enterDeath(e *Encounter) {
	bo.state = boDeath
	bo.timer = 0
}

func (bo *botwoon) moveToHole(b *Boss, idx int) {
	bo.holeIdx = idx
	b.Body.Pos.X = bo.anchor.X + boHoles[idx].X
	b.Body.Pos.Y = bo.anchor.Y + boHoles[idx].Y
}

func (bo *botwoon) beginCross(b *Boss) {
	bo.state = boCross
	bo.timer = 0
	bo.weaveAngle = 0
	bo.baseY = b.Body.Pos.Y
	// Cross to the mirrored hole on the far wall
	bo.targetX = bo.anchor.X - boHoles[bo.holeIdx].X
	b.Vulnerable = true
}
