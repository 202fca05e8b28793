package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Bomb Torizo: a dormant statue that wakes when the player comes close,
// then alternates arcing bomb throws with lunges. Idle durations are
// derived from a running counter, so the whole fight is deterministic.

type btState int

const (
	btStatue btState = iota
	btWake
	btIdle
	btBomb
	btLunge
	btDeath
)

const (
	btHP            = 800
	btContactDamage = 20

	btWakeFrames  = 60
	btIdleMin     = 30
	btIdleRange   = 60 // idle duration = min + (counter % range)
	btBombFrames  = 30
	btLungeFrames = 20
	btDeathFrames = 60
	btLungeEvery  = 2 // lunge after every N bomb throws
)

var (
	btHitbox     = entity.AABB{HalfW: fixed.FromInt(12), HalfH: fixed.FromInt(20)}
	btWakeDist   = fixed.FromInt(80)
	btBombVX     = fixed.FromInt(2)
	btBombVY     = -fixed.FromInt(3) // arc upward
	btLungeSpeed = fixed.FromInt(2)
)

type bombTorizo struct {
	state btState
	timer int

	// attackCount tracks bomb throws since the last lunge; throwCount
	// runs for the whole fight and seeds idle durations.
	attackCount int
	throwCount  int

	// idleFrames is the idle duration chosen for the current cycle.
	idleFrames int
}

func (t *bombTorizo) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = btHP, btHP
	b.ContactDamage = btContactDamage
	b.Body.Hitbox = btHitbox
	// Not vulnerable until awake
	b.Vulnerable = false
}

func (t *bombTorizo) update(e *Encounter) {
	b := &e.boss

	switch t.state {
	case btStatue:
		p := e.playerPos()
		dx := fixed.Abs(p.X - b.Body.Pos.X)
		dy := fixed.Abs(p.Y - b.Body.Pos.Y)
		if dx < btWakeDist && dy < btWakeDist {
			t.state = btWake
			t.timer = 0
			e.shake(15, 2)
		}

	case btWake:
		t.timer++
		if t.timer >= btWakeFrames {
			t.enterIdle(b)
			b.Vulnerable = true
		}

	case btIdle:
		t.timer++
		if t.timer >= t.idleFrames {
			if t.attackCount >= btLungeEvery {
				t.state = btLunge
				t.attackCount = 0
			} else {
				t.state = btBomb
			}
			t.timer = 0
		}

	case btBomb:
		if t.timer == 0 {
			vx := btBombVX
			if e.playerPos().X < b.Body.Pos.X {
				vx = -btBombVX
			}
			e.spawnHazard(HazardBomb, b.Body.Pos.X, b.Body.Pos.Y-fixed.FromInt(8), vx, btBombVY)
			t.attackCount++
			t.throwCount++
		}

		t.timer++
		if t.timer >= btBombFrames {
			t.enterIdle(b)
		}

	case btLunge:
		if e.playerPos().X < b.Body.Pos.X {
			b.Body.Pos.X -= btLungeSpeed
		} else {
			b.Body.Pos.X += btLungeSpeed
		}

		t.timer++
		if t.timer >= btLungeFrames {
			t.enterIdle(b)
		}

	case btDeath:
		t.timer++
		if t.timer >= btDeathFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: bomb torizo in impossible state %d", t.state))
	}

	if b.Active && t.state != btStatue && t.state != btDeath {
		e.contactDamage()
	}
}

func (t *bombTorizo) enterDeath(e *Encounter) {
	t.state = btDeath
	t.timer = 0
}

func (t *bombTorizo) enterIdle(b *Boss) {
	t.state = btIdle
	t.timer = 0
	t.idleFrames = btIdleMin + (t.throwCount % btIdleRange)
}
