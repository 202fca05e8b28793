package system

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/domain/boss"
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// Bounds is the walkable extent of an arena in world coordinates.
type Bounds struct {
	Min, Max entity.Vec2
}

// BoundsFromConfig converts pixel bounds into world coordinates.
func BoundsFromConfig(c config.BoundsConfig) Bounds {
	return Bounds{
		Min: entity.Vec2{X: fixed.FromInt(c.MinX), Y: fixed.FromInt(c.MinY)},
		Max: entity.Vec2{X: fixed.FromInt(c.MaxX), Y: fixed.FromInt(c.MaxY)},
	}
}

// Arena is one boss fight: the avatar, the encounter and the shared
// hazard pool, stepped in a fixed order once per frame.
type Arena struct {
	Player    *Avatar
	Encounter *boss.Encounter
	Hazards   *HazardPool

	bounds Bounds

	// Frame counts completed steps since the fight started.
	Frame int
}

// NewArena builds a fight from configuration and spawns the boss.
func NewArena(game *config.GameConfig, enc *config.EncounterConfig) (*Arena, error) {
	bossType := boss.TypeByName(enc.Boss)
	if bossType == boss.TypeNone {
		return nil, fmt.Errorf("unknown boss %q in encounter %s", enc.Boss, enc.ID)
	}

	bounds := BoundsFromConfig(enc.Arena)
	pool := NewHazardPool(bounds)
	player := NewAvatar(&game.Player, bounds, pool)
	player.MoveTo(fixed.FromInt(enc.PlayerSpawn.X), fixed.FromInt(enc.PlayerSpawn.Y))

	encounter := boss.New(player, pool)
	encounter.Spawn(bossType, fixed.FromInt(enc.BossSpawn.X), fixed.FromInt(enc.BossSpawn.Y))

	return &Arena{
		Player:    player,
		Encounter: encounter,
		Hazards:   pool,
		bounds:    bounds,
	}, nil
}

// Step advances the fight one frame: avatar first, then the boss, then
// everything in flight. The order is fixed so replays stay exact.
func (a *Arena) Step(in InputFrame) {
	a.Player.Update(in)
	a.Encounter.Update()
	a.Hazards.Update(a.Player, a.Encounter)
	a.Frame++
}

// Bounds returns the arena extents, for camera clamping.
func (a *Arena) Bounds() Bounds {
	return a.bounds
}

// Over reports whether the fight has been decided either way.
func (a *Arena) Over() bool {
	return !a.Player.Alive() || !a.Encounter.IsActive()
}

// Won reports a finished fight the player walked away from.
func (a *Arena) Won() bool {
	return a.Player.Alive() && !a.Encounter.IsActive()
}
