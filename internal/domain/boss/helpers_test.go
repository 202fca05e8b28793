package boss

import (
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
)

// stubPlayer records every damage call it receives.
type stubPlayer struct {
	body    entity.Body
	hits    []int
	sources []fixed.Int
}

func newStubPlayer(x, y int) *stubPlayer {
	p := &stubPlayer{}
	p.body.Pos = entity.Vec2{X: fixed.FromInt(x), Y: fixed.FromInt(y)}
	p.body.Hitbox = entity.AABB{HalfW: fixed.FromInt(6), HalfH: fixed.FromInt(12)}
	return p
}

func (p *stubPlayer) Body() *entity.Body { return &p.body }

func (p *stubPlayer) Damage(amount int) {
	p.hits = append(p.hits, amount)
}

func (p *stubPlayer) DamageFrom(amount int, sourceX fixed.Int) {
	p.hits = append(p.hits, amount)
	p.sources = append(p.sources, sourceX)
}

func (p *stubPlayer) moveTo(x, y int) {
	p.body.Pos = entity.Vec2{X: fixed.FromInt(x), Y: fixed.FromInt(y)}
}

type spawnedHazard struct {
	kind           HazardKind
	x, y, vx, vy   fixed.Int
}

// stubPool records every hazard spawn request.
type stubPool struct {
	spawned []spawnedHazard
}

func (s *stubPool) Spawn(kind HazardKind, x, y, vx, vy fixed.Int) int {
	s.spawned = append(s.spawned, spawnedHazard{kind, x, y, vx, vy})
	return len(s.spawned) - 1
}

// stubPresenter records the latest placement and hide calls.
type stubPresenter struct {
	placements []SpritePlacement
	hides      int
}

func (s *stubPresenter) Show(p SpritePlacement) { s.placements = append(s.placements, p) }
func (s *stubPresenter) Hide()                  { s.hides++ }

type shakeCall struct {
	frames, magnitude int
}

// newTestEncounter spawns the given boss type at (x, y) with the
// player parked far away so proximity triggers stay quiet.
func newTestEncounter(t Type, x, y int) (*Encounter, *stubPlayer, *stubPool) {
	player := newStubPlayer(2000, 2000)
	pool := &stubPool{}
	e := New(player, pool)
	e.Spawn(t, fixed.FromInt(x), fixed.FromInt(y))
	return e, player, pool
}

func stepFrames(e *Encounter, n int) {
	for i := 0; i < n; i++ {
		e.Update()
	}
}

// hitThrough lands one accepted hit and then waits out the i-frames so
// the next hit is accepted too.
func hitThrough(e *Encounter, amount int) {
	e.Damage(amount)
	for e.Boss().InvulnTimer > 0 {
		e.Update()
	}
}
