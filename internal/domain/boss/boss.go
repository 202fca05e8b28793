// Package boss implements the boss-encounter framework: a single boss
// entity driven once per simulated frame by a type-specific state
// machine, with a shared damage/invulnerability pipeline and a thin
// presentation adapter.
//
// The package owns no global state. An Encounter is an explicit value
// created by the caller; "no boss active" is an observable state of
// that value, not an implicit flag.
package boss

import (
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// I-frames granted after every accepted hit, all boss types.
const hitInvulnFrames = 10

// heavyThreshold is the damage at which a hit counts as a heavy weapon
// (super-missile class). Phantoon's rage latch and Golden Torizo's
// catch both key off it.
const heavyThreshold = 300

// Target is the player as seen by the boss framework: a body to aim at
// and a damage entry point. The player's own invulnerability
// bookkeeping is its own concern.
type Target interface {
	Body() *entity.Body
	Damage(amount int)
	DamageFrom(amount int, sourceX fixed.Int)
}

// HazardKind selects the motion profile of a spawned hazard.
type HazardKind int

const (
	// HazardBullet flies in a straight line.
	HazardBullet HazardKind = iota
	// HazardBomb arcs under gravity.
	HazardBomb
	// HazardFlame falls slowly, drifting with its initial velocity.
	HazardFlame
	// HazardGlob bounces off the arena bounds.
	HazardGlob
	// HazardReflected is a thrown-back heavy shot: straight and fast.
	HazardReflected
)

// HazardSpawner is the external projectile pool. The boss framework
// only ever spawns enemy-owned hazards and never queries or mutates
// existing ones.
type HazardSpawner interface {
	Spawn(kind HazardKind, x, y, vx, vy fixed.Int) int
}

// SpritePlacement is one screen-space sprite request.
type SpritePlacement struct {
	X, Y     int
	Tile     int
	Palette  int
	Priority int
	FlipH    bool
	FlipV    bool
}

// Presenter receives the boss's sprite placement each frame, or Hide
// when nothing should be drawn.
type Presenter interface {
	Show(SpritePlacement)
	Hide()
}

// Boss is the single boss instance. It is overwritten on each spawn.
// Per-type state lives behind the brain interface; the shared fields
// here are the only ones the damage pipeline and presentation adapter
// touch.
type Boss struct {
	Type Type
	Body entity.Body

	HP    int
	HPMax int

	// Phase is the 0-indexed sub-encounter, used only by Mother Brain.
	Phase int

	// ContactDamage is applied to the player on overlap while the
	// current state permits contact damage.
	ContactDamage int

	Active     bool
	Vulnerable bool

	// InvulnTimer counts down post-hit i-frames once per Update call.
	InvulnTimer int

	brain brain
}

// brain is the per-type behavior: fresh state constructed on every
// spawn, initialized once, then advanced once per frame. enterDeath is
// the type-specific dispatch target when HP reaches zero.
type brain interface {
	init(e *Encounter)
	update(e *Encounter)
	enterDeath(e *Encounter)
}

// brainFactories maps each boss type to its state constructor.
var brainFactories = [typeCount]func() brain{
	TypeSporeSpawn:   func() brain { return &sporeSpawn{} },
	TypeCrocomire:    func() brain { return &crocomire{} },
	TypeBombTorizo:   func() brain { return &bombTorizo{} },
	TypeKraid:        func() brain { return &kraid{} },
	TypeBotwoon:      func() brain { return &botwoon{} },
	TypePhantoon:     func() brain { return &phantoon{} },
	TypeDraygon:      func() brain { return &draygon{} },
	TypeGoldenTorizo: func() brain { return &goldenTorizo{} },
	TypeRidley:       func() brain { return &ridley{} },
	TypeMotherBrain:  func() brain { return &motherBrain{} },
}

// Encounter owns the boss slot and its collaborator hookups.
type Encounter struct {
	boss Boss

	player  Target
	hazards HazardSpawner

	// OnShake requests camera shake. Fire-and-forget; may be nil.
	OnShake func(frames, magnitude int)

	// Presenter receives sprite placements from Render. May be nil.
	Presenter Presenter
}

// New creates an empty encounter (no boss active) wired to the given
// collaborators.
func New(player Target, hazards HazardSpawner) *Encounter {
	return &Encounter{player: player, hazards: hazards}
}

// Reset clears the boss slot. Collaborator hookups are kept.
func (e *Encounter) Reset() {
	e.boss = Boss{}
}

// Spawn overwrites the boss slot with a fresh instance of the given
// type at world position (x, y) and runs its type-specific
// initializer. The none sentinel and out-of-range types are silently
// ignored. Spawning over a live boss is a deliberate abort-and-replace.
func (e *Encounter) Spawn(t Type, x, y fixed.Int) {
	if t <= TypeNone || t >= typeCount {
		return
	}

	e.boss = Boss{
		Type:   t,
		Active: true,
		brain:  brainFactories[t](),
	}
	e.boss.Body.Pos = entity.Vec2{X: x, Y: y}
	e.boss.Body.Env = entity.EnvAir
	e.boss.brain.init(e)
}

// Update advances the boss one frame: i-frame countdown, then the
// type-specific state machine (which includes the contact-damage
// check). No-op while inactive.
func (e *Encounter) Update() {
	if !e.boss.Active {
		return
	}

	if e.boss.InvulnTimer > 0 {
		e.boss.InvulnTimer--
	}

	e.boss.brain.update(e)
}

// IsActive reports whether a boss currently occupies the slot.
func (e *Encounter) IsActive() bool {
	return e.boss.Active
}

// Boss exposes the record for HUD readout and tests. Callers must not
// mutate it; all mutation goes through Spawn, Update and Damage.
func (e *Encounter) Boss() *Boss {
	return &e.boss
}

// shake forwards a camera-shake request if anyone is listening.
func (e *Encounter) shake(frames, magnitude int) {
	if e.OnShake != nil {
		e.OnShake(frames, magnitude)
	}
}

// spawnHazard forwards a hazard spawn to the pool if one is wired.
func (e *Encounter) spawnHazard(kind HazardKind, x, y, vx, vy fixed.Int) {
	if e.hazards != nil {
		e.hazards.Spawn(kind, x, y, vx, vy)
	}
}

// contactDamage applies the boss's contact damage if its hitbox
// overlaps the player's. Each state machine decides per state whether
// to call this.
func (e *Encounter) contactDamage() {
	if e.player == nil {
		return
	}
	p := e.player.Body()
	b := &e.boss
	if entity.Overlap(b.Body.Pos, b.Body.Hitbox, p.Pos, p.Hitbox) {
		e.player.Damage(b.ContactDamage)
	}
}

// playerPos returns the player position, or the zero vector when no
// player is wired (headless tests).
func (e *Encounter) playerPos() entity.Vec2 {
	if e.player == nil {
		return entity.Vec2{}
	}
	return e.player.Body().Pos
}

// aimSign returns ±speed on each axis toward the player, with the Y
// component halved. This is the cheap sign-only aiming every simple
// spit attack uses.
func (e *Encounter) aimSign(from entity.Vec2, speed fixed.Int) (vx, vy fixed.Int) {
	p := e.playerPos()
	vx = speed
	if p.X < from.X {
		vx = -speed
	}
	vy = speed >> 1
	if p.Y < from.Y {
		vy = -(speed >> 1)
	}
	return vx, vy
}
