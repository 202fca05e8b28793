package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Kraid: a wall of a boss whose mouth gates its vulnerability. It
// rises out of the floor, then loops between an idle stance, an
// open-mouthed roar (the only window that accepts damage, spitting
// claws at the player), and a belly-spike volley after every third
// attack. Any hit it survives slams the mouth shut.

type krState int

const (
	krRise krState = iota
	krIdle
	krRoar
	krSpikes
	krFlinch
	krDeath
)

const (
	krHP            = 1000
	krContactDamage = 50

	krRiseFrames   = 120
	krIdleFrames   = 90
	krRoarFrames   = 150
	krSpikesFrames = 60
	krFlinchFrames = 30
	krDeathFrames  = 120

	krClawInterval = 40 // claw spits inside one roar
	krSpikesEvery  = 3  // spike volley after every N attacks
	krSpikeShots   = 3
	krSpikeSpacing = 20 // frames between spikes in a volley
)

var (
	krHitbox    = entity.AABB{HalfW: fixed.FromInt(24), HalfH: fixed.FromInt(40)}
	krRiseSpeed = fixed.Int(0x8000) // 0.5 px/frame upward
	krClawSpeed = fixed.FromInt(3)
	krSpikeVX   = fixed.FromInt(1)
	krSpikeVY   = -fixed.FromInt(4)
)

type kraid struct {
	state krState
	timer int

	// attackCount counts roars and volleys toward the spike cadence.
	attackCount int
}

func (k *kraid) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = krHP, krHP
	b.ContactDamage = krContactDamage
	b.Body.Hitbox = krHitbox
	// Mouth closed until the first roar
	b.Vulnerable = false
}

func (k *kraid) update(e *Encounter) {
	b := &e.boss

	switch k.state {
	case krRise:
		b.Body.Pos.Y -= krRiseSpeed
		k.timer++
		if k.timer >= krRiseFrames {
			k.state = krIdle
			k.timer = 0
		}

	case krIdle:
		k.timer++
		if k.timer >= krIdleFrames {
			if k.attackCount >= krSpikesEvery {
				k.state = krSpikes
				k.attackCount = 0
			} else {
				k.state = krRoar
				b.Vulnerable = true
			}
			k.timer = 0
		}

	case krRoar:
		// Mouth open: claws fly while the window lasts
		if k.timer%krClawInterval == 0 {
			vx := krClawSpeed
			if e.playerPos().X < b.Body.Pos.X {
				vx = -krClawSpeed
			}
			spread := fixed.FromInt(1)
			vy := -spread + fixed.FromInt((k.timer/krClawInterval)%3)
			e.spawnHazard(HazardBullet, b.Body.Pos.X, b.Body.Pos.Y-fixed.FromInt(24), vx, vy)
		}

		k.timer++
		if k.timer >= krRoarFrames {
			k.state = krIdle
			k.timer = 0
			k.attackCount++
			b.Vulnerable = false
		}

	case krSpikes:
		// Belly spikes arc up and out on both sides
		if k.timer%krSpikeSpacing == 0 && k.timer/krSpikeSpacing < krSpikeShots {
			n := fixed.FromInt(k.timer / krSpikeSpacing)
			e.spawnHazard(HazardBomb, b.Body.Pos.X, b.Body.Pos.Y, krSpikeVX+n, krSpikeVY)
			e.spawnHazard(HazardBomb, b.Body.Pos.X, b.Body.Pos.Y, -(krSpikeVX + n), krSpikeVY)
		}

		k.timer++
		if k.timer >= krSpikesFrames {
			k.state = krIdle
			k.timer = 0
			k.attackCount++
		}

	case krFlinch:
		k.timer++
		if k.timer >= krFlinchFrames {
			k.state = krIdle
			k.timer = 0
		}

	case krDeath:
		k.timer++
		if k.timer >= krDeathFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: kraid in impossible state %d", k.state))
	}

	if b.Active && k.state != krRise && k.state != krDeath {
		e.contactDamage()
	}
}

func (k *kraid) enterDeath(e *Encounter) {
	k.state = krDeath
	k.timer = 0
}

// closeMouth is the damage response while the roar window is open: the
// vulnerability window ends early and Kraid staggers.
func (k *kraid) closeMouth(e *Encounter) {
	b := &e.boss
	if k.state != krRoar {
		return
	}
	b.Vulnerable = false
	k.state = krFlinch
	k.timer = 0
	k.attackCount++
}
