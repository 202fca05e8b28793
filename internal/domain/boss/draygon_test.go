package boss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bossrush/internal/domain/fixed"
)

const drSwoopTravel = 160 / 2 // span / speed, in frames

func TestDraygon_SwoopsTradeSides(t *testing.T) {
	e, _, _ := newTestEncounter(TypeDraygon, 60, 96)
	b := e.Boss()
	d := b.brain.(*draygon)

	startX := b.Body.Pos.X
	startY := b.Body.Pos.Y

	stepFrames(e, drHoverFrames)
	require.Equal(t, drSwoop, d.state)
	assert.False(t, b.Vulnerable, "armor up while swooping")

	stepFrames(e, drSwoopTravel)
	require.Equal(t, drHover, d.state)
	assert.Equal(t, startX+drSwoopSpan, b.Body.Pos.X, "landed on the far side")
	assert.Equal(t, startY, b.Body.Pos.Y, "arc returns to the hover line")
	assert.False(t, d.facingRight, "next swoop goes back")

	stepFrames(e, drHoverFrames+drSwoopTravel)
	assert.Equal(t, startX, b.Body.Pos.X)
}

func TestDraygon_EveryThirdPassIsTheSpit(t *testing.T) {
	e, _, pool := newTestEncounter(TypeDraygon, 60, 96)
	b := e.Boss()
	d := b.brain.(*draygon)

	// Full swoop count first, then the next hover ends in the glob pause
	for i := 0; i < drSpitEvery; i++ {
		stepFrames(e, drHoverFrames+drSwoopTravel)
		require.Equal(t, drHover, d.state, "swoop %d", i)
	}
	stepFrames(e, drHoverFrames)
	require.Equal(t, drSpit, d.state)
	assert.True(t, b.Vulnerable, "underside exposed only here")

	stepFrames(e, drSpitFrames)
	require.Equal(t, drHover, d.state)
	assert.False(t, b.Vulnerable)

	require.Len(t, pool.spawned, drGlobShots)
	for _, h := range pool.spawned {
		assert.Equal(t, HazardGlob, h.kind)
	}
}

func TestDraygon_SwoopIsInvulnerableToHits(t *testing.T) {
	e, _, _ := newTestEncounter(TypeDraygon, 60, 96)
	b := e.Boss()

	stepFrames(e, drHoverFrames+10)
	e.Damage(500)
	assert.Equal(t, drHP, b.HP)
}

func TestDraygon_ArcPeaksMidSwoop(t *testing.T) {
	e, _, _ := newTestEncounter(TypeDraygon, 60, 96)
	b := e.Boss()

	stepFrames(e, drHoverFrames)
	baseY := fixed.FromInt(96)

	var peak fixed.Int
	for i := 0; i < drSwoopTravel; i++ {
		e.Update()
		if dy := b.Body.Pos.Y - baseY; dy > peak {
			peak = dy
		}
	}
	assert.Greater(t, peak, drArcAmp/2, "sine arc never lifted off the hover line")
}
