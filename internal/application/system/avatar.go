package system

import (
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// Avatar is the player character: grounded movement with a single
// jump, two fire modes and post-hit invincibility. It is the Target
// the boss framework aims at and damages.
type Avatar struct {
	cfg    *config.PlayerConfig
	body   entity.Body
	pool   *HazardPool
	bounds Bounds

	HP    int
	MaxHP int

	FacingRight bool
	OnGround    bool

	// IframeTimer counts down post-hit invincibility frames.
	IframeTimer int

	// HeavyAmmo is the remaining heavy shots; -1 means unlimited.
	HeavyAmmo int

	shotCooldown  int
	heavyCooldown int

	moveSpeed    fixed.Int
	jumpForce    fixed.Int
	gravity      fixed.Int
	maxFallSpeed fixed.Int
}

// NewAvatar builds the avatar from config, parked at the bounds origin
// until MoveTo places it.
func NewAvatar(cfg *config.PlayerConfig, bounds Bounds, pool *HazardPool) *Avatar {
	a := &Avatar{
		cfg:    cfg,
		pool:   pool,
		bounds: bounds,

		HP:    cfg.MaxHealth,
		MaxHP: cfg.MaxHealth,

		FacingRight: true,

		moveSpeed:    fixed.FromInt(cfg.Movement.MoveSpeed),
		jumpForce:    fixed.FromInt(cfg.Movement.JumpForce),
		gravity:      fixed.Int(cfg.Movement.Gravity << 8),
		maxFallSpeed: fixed.FromInt(cfg.Movement.MaxFallSpeed),
	}

	a.HeavyAmmo = cfg.Combat.Heavy.Ammo
	if a.HeavyAmmo == 0 {
		a.HeavyAmmo = -1
	}

	a.body.Hitbox = entity.AABB{
		HalfW: fixed.FromInt(cfg.Hitbox.HalfWidth),
		HalfH: fixed.FromInt(cfg.Hitbox.HalfHeight),
	}
	a.body.Env = entity.EnvAir
	return a
}

// MoveTo teleports the avatar, clearing its velocity.
func (a *Avatar) MoveTo(x, y fixed.Int) {
	a.body.Pos = entity.Vec2{X: x, Y: y}
	a.body.Vel = entity.Vec2{}
}

// Body exposes the avatar's physics body to the boss framework.
func (a *Avatar) Body() *entity.Body { return &a.body }

// Alive reports whether the avatar can still fight.
func (a *Avatar) Alive() bool { return a.HP > 0 }

// Update advances the avatar one frame from the given inputs.
func (a *Avatar) Update(in InputFrame) {
	if a.IframeTimer > 0 {
		a.IframeTimer--
	}
	if a.shotCooldown > 0 {
		a.shotCooldown--
	}
	if a.heavyCooldown > 0 {
		a.heavyCooldown--
	}

	if !a.Alive() {
		return
	}

	// Horizontal intent wins over residual knockback
	switch {
	case in.Left && !in.Right:
		a.body.Vel.X = -a.moveSpeed
		a.FacingRight = false
	case in.Right && !in.Left:
		a.body.Vel.X = a.moveSpeed
		a.FacingRight = true
	default:
		a.body.Vel.X = 0
	}

	if in.Jump && a.OnGround {
		a.body.Vel.Y = -a.jumpForce
		a.OnGround = false
	}

	a.body.Vel.Y += a.gravity
	if a.body.Vel.Y > a.maxFallSpeed {
		a.body.Vel.Y = a.maxFallSpeed
	}

	a.body.Pos.X += a.body.Vel.X
	a.body.Pos.Y += a.body.Vel.Y
	a.clampToBounds()

	if in.Fire {
		a.fire(&a.cfg.Combat.Shot, &a.shotCooldown, false)
	}
	if in.Heavy {
		a.fire(&a.cfg.Combat.Heavy, &a.heavyCooldown, true)
	}
}

// clampToBounds keeps the hitbox inside the arena. The bottom edge is
// the floor: landing on it restores the jump.
func (a *Avatar) clampToBounds() {
	half := a.body.Hitbox

	if min := a.bounds.Min.X + half.HalfW; a.body.Pos.X < min {
		a.body.Pos.X = min
	}
	if max := a.bounds.Max.X - half.HalfW; a.body.Pos.X > max {
		a.body.Pos.X = max
	}
	if min := a.bounds.Min.Y + half.HalfH; a.body.Pos.Y < min {
		a.body.Pos.Y = min
		a.body.Vel.Y = 0
	}

	floor := a.bounds.Max.Y - half.HalfH
	if a.body.Pos.Y >= floor {
		a.body.Pos.Y = floor
		a.body.Vel.Y = 0
		a.OnGround = true
	} else {
		a.OnGround = false
	}
}

func (a *Avatar) fire(w *config.WeaponConfig, cooldown *int, heavy bool) {
	if *cooldown > 0 {
		return
	}
	if heavy {
		if a.HeavyAmmo == 0 {
			return
		}
		if a.HeavyAmmo > 0 {
			a.HeavyAmmo--
		}
	}

	vx := fixed.FromInt(w.Speed)
	if !a.FacingRight {
		vx = -vx
	}
	a.pool.SpawnPlayerShot(a.body.Pos.X, a.body.Pos.Y, vx, w.Damage)
	*cooldown = w.Cooldown
}

// Damage applies a hit, gated by the avatar's own i-frames.
func (a *Avatar) Damage(amount int) {
	a.hit(amount)
}

// DamageFrom applies a hit plus knockback away from the source.
func (a *Avatar) DamageFrom(amount int, sourceX fixed.Int) {
	if !a.hit(amount) {
		return
	}
	kb := fixed.FromInt(a.cfg.Combat.Knockback)
	if a.body.Pos.X < sourceX {
		kb = -kb
	}
	a.body.Pos.X = fixed.Clamp(a.body.Pos.X+kb,
		a.bounds.Min.X+a.body.Hitbox.HalfW, a.bounds.Max.X-a.body.Hitbox.HalfW)
	a.body.Vel.Y = -fixed.FromInt(2)
	a.OnGround = false
}

func (a *Avatar) hit(amount int) bool {
	if !a.Alive() || a.IframeTimer > 0 {
		return false
	}
	a.HP -= amount
	if a.HP < 0 {
		a.HP = 0
	}
	a.IframeTimer = a.cfg.Combat.Iframes
	return true
}
