package boss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drives Kraid to the opening frame of his roar window.
func kraidToRoar(t *testing.T, e *Encounter) {
	t.Helper()
	stepFrames(e, krRiseFrames+krIdleFrames)
	require.True(t, e.Boss().Vulnerable, "roar window should be open")
}

func TestKraid_HitClosesMouth(t *testing.T) {
	e, _, _ := newTestEncounter(TypeKraid, 200, 100)
	b := e.Boss()

	kraidToRoar(t, e)

	e.Damage(100)
	assert.Equal(t, krHP-100, b.HP)
	assert.False(t, b.Vulnerable, "mouth should slam shut on a surviving hit")

	// The flinch runs its course, then back to idle, then the window
	// reopens on schedule.
	stepFrames(e, krFlinchFrames+krIdleFrames)
	assert.True(t, b.Vulnerable)
}

func TestKraid_LethalHitSkipsFlinch(t *testing.T) {
	e, _, _ := newTestEncounter(TypeKraid, 200, 100)
	b := e.Boss()

	kraidToRoar(t, e)
	b.HP = 50

	e.Damage(100)
	assert.Equal(t, 0, b.HP)
	assert.False(t, b.Vulnerable)
	// Death sequence, not a flinch: runs out in exactly krDeathFrames
	stepFrames(e, krDeathFrames)
	assert.False(t, b.Active)
}

func TestPhantoon_HeavyHitLatchesRage(t *testing.T) {
	e, _, _ := newTestEncounter(TypePhantoon, 128, 80)
	b := e.Boss()
	ph := b.brain.(*phantoon)

	// Light hits never enrage
	b.Vulnerable = true
	hitThrough(e, heavyThreshold-1)
	assert.False(t, ph.rage)

	e.Damage(heavyThreshold)
	assert.True(t, ph.rage)
	assert.Equal(t, phHP-(heavyThreshold-1)-heavyThreshold, b.HP)

	// Latched for good
	assert.Equal(t, phEyeOpenFrames/2, ph.eyeOpenFrames())
}

func TestPhantoon_LethalHeavyHitDoesNotEnrage(t *testing.T) {
	e, _, _ := newTestEncounter(TypePhantoon, 128, 80)
	b := e.Boss()
	ph := b.brain.(*phantoon)

	b.Vulnerable = true
	b.HP = 100
	e.Damage(heavyThreshold)

	assert.Equal(t, 0, b.HP)
	assert.False(t, ph.rage, "a killing blow skips the rage latch")
}

func TestGoldenTorizo_CatchRefundsHeavyHit(t *testing.T) {
	e, _, pool := newTestEncounter(TypeGoldenTorizo, 128, 100)
	b := e.Boss()
	gt := b.brain.(*goldenTorizo)

	b.Vulnerable = true
	e.Damage(heavyThreshold)

	assert.Equal(t, gtHP, b.HP, "caught shot should cost nothing")
	assert.True(t, gt.catching())
	assert.False(t, b.Vulnerable)

	// Wind-up, then the reflected shot comes back
	stepFrames(e, gtCatchFrames)
	require.Equal(t, gtThrow, gt.state)
	e.Update()
	require.Len(t, pool.spawned, 1)
	assert.Equal(t, HazardReflected, pool.spawned[0].kind)

	// Throw resolves and the window reopens
	stepFrames(e, gtThrowFrames-1)
	assert.Equal(t, gtIdle, gt.state)
	assert.True(t, b.Vulnerable)
}

func TestGoldenTorizo_LightHitsLandNormally(t *testing.T) {
	e, _, _ := newTestEncounter(TypeGoldenTorizo, 128, 100)
	b := e.Boss()
	gt := b.brain.(*goldenTorizo)

	b.Vulnerable = true
	e.Damage(heavyThreshold - 1)

	assert.Equal(t, gtHP-(heavyThreshold-1), b.HP)
	assert.False(t, gt.catching())
}

func TestGoldenTorizo_NoDoubleCatch(t *testing.T) {
	e, _, _ := newTestEncounter(TypeGoldenTorizo, 128, 100)
	b := e.Boss()
	gt := b.brain.(*goldenTorizo)

	b.Vulnerable = true
	hitThrough(e, heavyThreshold)
	require.True(t, gt.catching())

	// A second heavy hit while the catch plays out would be a plain
	// hit, but the catch dropped Vulnerable, so it is simply ignored.
	e.Damage(heavyThreshold)
	assert.Equal(t, gtHP, b.HP)
}

func TestGoldenTorizo_HeavyKillingBlowIsNotCaught(t *testing.T) {
	e, _, _ := newTestEncounter(TypeGoldenTorizo, 128, 100)
	b := e.Boss()

	b.Vulnerable = true
	b.HP = heavyThreshold
	e.Damage(heavyThreshold)

	assert.Equal(t, 0, b.HP)
	assert.True(t, b.Active, "death sequence should still be playing")
	stepFrames(e, gtDeathFrames)
	assert.False(t, b.Active)
}

func TestCrocomire_PushIgnoresAmount(t *testing.T) {
	e, _, _ := newTestEncounter(TypeCrocomire, 100, 100)
	b := e.Boss()

	startX := b.Body.Pos.X
	e.Damage(1)
	first := b.Body.Pos.X - startX

	stepFrames(e, hitInvulnFrames+crocFlinchFrames)
	before := b.Body.Pos.X
	e.Damage(10000)
	assert.Equal(t, first, b.Body.Pos.X-before, "push distance must not scale with damage")
	assert.Equal(t, crocHPDummy, b.HP, "HP is never touched")
}

func TestCrocomire_TerminalStatesRefusePushes(t *testing.T) {
	e, _, _ := newTestEncounter(TypeCrocomire, 100, 100)
	b := e.Boss()
	croc := b.brain.(*crocomire)

	croc.state = crocFalling
	x := b.Body.Pos.X
	e.Damage(100)
	assert.Equal(t, x, b.Body.Pos.X)
	assert.Equal(t, 0, b.InvulnTimer, "refused pushes grant no i-frames")
}
