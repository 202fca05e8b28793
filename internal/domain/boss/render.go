package boss

import "github.com/younwookim/bossrush/internal/domain/fixed"

// Logical screen dimensions the presentation layer culls against.
const (
	ScreenWidth  = 256
	ScreenHeight = 192
)

const (
	spriteHalf = 8
	cullMargin = 16
)

// tileForType maps each boss type to its placeholder sprite tile.
var tileForType = [typeCount]int{
	TypeSporeSpawn:   12,
	TypeCrocomire:    13,
	TypeBombTorizo:   14,
	TypeKraid:        15,
	TypeBotwoon:      16,
	TypePhantoon:     17,
	TypeDraygon:      18,
	TypeGoldenTorizo: 19,
	TypeRidley:       20,
	TypeMotherBrain:  21,
}

// Render converts the boss's world position into one sprite placement
// request against the given camera offset. It hides the sprite when
// the boss is inactive, off-screen, or blinking through i-frames
// (hidden on odd timer values).
func (e *Encounter) Render(camX, camY fixed.Int) {
	if e.Presenter == nil {
		return
	}

	b := &e.boss
	if !b.Active {
		e.Presenter.Hide()
		return
	}

	sx := b.Body.Pos.X.Floor() - camX.Floor() - spriteHalf
	sy := b.Body.Pos.Y.Floor() - camY.Floor() - spriteHalf

	if sx < -cullMargin || sx > ScreenWidth || sy < -cullMargin || sy > ScreenHeight {
		e.Presenter.Hide()
		return
	}

	if b.InvulnTimer > 0 && b.InvulnTimer&1 == 1 {
		e.Presenter.Hide()
		return
	}

	flipH := false
	if e.player != nil && e.player.Body().Pos.X < b.Body.Pos.X {
		flipH = true
	}

	e.Presenter.Show(SpritePlacement{
		X:        sx,
		Y:        sy,
		Tile:     tileForType[b.Type],
		Palette:  3,
		Priority: 1,
		FlipH:    flipH,
	})
}
