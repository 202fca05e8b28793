package boss

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// Golden Torizo: the Bomb Torizo frame with sharper reflexes. Same
// statue wake and bomb/lunge loop, but a heavy shot never lands: it
// is snatched out of the air (the damage pipeline refunds the HP) and
// hurled straight back at the player.

type gtState int

const (
	gtStatue gtState = iota
	gtWake
	gtIdle
	gtBomb
	gtLunge
	gtCatch
	gtThrow
	gtDeath
)

const (
	gtHP            = 1800
	gtContactDamage = 40

	gtWakeFrames  = 60
	gtIdleMin     = 40
	gtIdleRange   = 40
	gtBombFrames  = 30
	gtLungeFrames = 20
	gtCatchFrames = 30
	gtThrowFrames = 30
	gtDeathFrames = 90
	gtLungeEvery  = 2
)

var (
	gtHitbox       = entity.AABB{HalfW: fixed.FromInt(12), HalfH: fixed.FromInt(22)}
	gtWakeDist     = fixed.FromInt(64)
	gtBombVX       = fixed.FromInt(2)
	gtBombVY       = -fixed.FromInt(3)
	gtLungeSpeed   = fixed.FromInt(3)
	gtReflectSpeed = fixed.FromInt(4)
)

type goldenTorizo struct {
	state gtState
	timer int

	attackCount int
	throwCount  int
	idleFrames  int
}

func (g *goldenTorizo) init(e *Encounter) {
	b := &e.boss
	b.HP, b.HPMax = gtHP, gtHP
	b.ContactDamage = gtContactDamage
	b.Body.Hitbox = gtHitbox
	b.Vulnerable = false
}

func (g *goldenTorizo) update(e *Encounter) {
	b := &e.boss

	switch g.state {
	case gtStatue:
		p := e.playerPos()
		dx := fixed.Abs(p.X - b.Body.Pos.X)
		dy := fixed.Abs(p.Y - b.Body.Pos.Y)
		if dx < gtWakeDist && dy < gtWakeDist {
			g.state = gtWake
			g.timer = 0
			e.shake(15, 2)
		}

	case gtWake:
		g.timer++
		if g.timer >= gtWakeFrames {
			g.enterIdle(b)
			b.Vulnerable = true
		}

	case gtIdle:
		g.timer++
		if g.timer >= g.idleFrames {
			if g.attackCount >= gtLungeEvery {
				g.state = gtLunge
				g.attackCount = 0
			} else {
				g.state = gtBomb
			}
			g.timer = 0
		}

	case gtBomb:
		if g.timer == 0 {
			vx := gtBombVX
			if e.playerPos().X < b.Body.Pos.X {
				vx = -gtBombVX
			}
			e.spawnHazard(HazardBomb, b.Body.Pos.X, b.Body.Pos.Y-fixed.FromInt(8), vx, gtBombVY)
			g.attackCount++
			g.throwCount++
		}

		g.timer++
		if g.timer >= gtBombFrames {
			g.enterIdle(b)
		}

	case gtLunge:
		if e.playerPos().X < b.Body.Pos.X {
			b.Body.Pos.X -= gtLungeSpeed
		} else {
			b.Body.Pos.X += gtLungeSpeed
		}

		g.timer++
		if g.timer >= gtLungeFrames {
			g.enterIdle(b)
		}

	case gtCatch:
		g.timer++
		if g.timer >= gtCatchFrames {
			g.state = gtThrow
			g.timer = 0
		}

	case gtThrow:
		if g.timer == 0 {
			vx := gtReflectSpeed
			if e.playerPos().X < b.Body.Pos.X {
				vx = -gtReflectSpeed
			}
			e.spawnHazard(HazardReflected, b.Body.Pos.X, b.Body.Pos.Y-fixed.FromInt(8), vx, 0)
		}

		g.timer++
		if g.timer >= gtThrowFrames {
			g.enterIdle(b)
			b.Vulnerable = true
		}

	case gtDeath:
		g.timer++
		if g.timer >= gtDeathFrames {
			b.Active = false
		}

	default:
		panic(fmt.Sprintf("boss: golden torizo in impossible state %d", g.state))
	}

	if b.Active && g.state != gtStatue && g.state != gtDeath {
		e.contactDamage()
	}
}

func (g *goldenTorizo) enterDeath(e *Encounter) {
	g.state = gtDeath
	g.timer = 0
}

func (g *goldenTorizo) enterIdle(b *Boss) {
	g.state = gtIdle
	g.timer = 0
	g.idleFrames = gtIdleMin + (g.throwCount % gtIdleRange)
}

// catching reports whether the catch/throw sequence is already running.
func (g *goldenTorizo) catching() bool {
	return g.state == gtCatch || g.state == gtThrow
}

// beginCatch is the heavy-hit damage response: snatch the shot and
// wind up the return throw. No damage lands until the throw resolves.
func (g *goldenTorizo) beginCatch(e *Encounter) {
	b := &e.boss
	g.state = gtCatch
	g.timer = 0
	b.Vulnerable = false
}
