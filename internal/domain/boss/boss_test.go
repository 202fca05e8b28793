package boss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bossrush/internal/domain/fixed"
)

func TestTypeByName_RoundTrip(t *testing.T) {
	for typ := TypeSporeSpawn; typ < typeCount; typ++ {
		assert.Equal(t, typ, TypeByName(typ.String()), typ.String())
	}
	assert.Equal(t, TypeNone, TypeByName("none"))
	assert.Equal(t, TypeNone, TypeByName("zebes"))
	assert.Equal(t, "unknown", Type(99).String())
}

func TestSpawn_InvalidTypesIgnored(t *testing.T) {
	e := New(newStubPlayer(0, 0), &stubPool{})

	e.Spawn(TypeNone, 0, 0)
	assert.False(t, e.IsActive())

	e.Spawn(Type(-1), 0, 0)
	assert.False(t, e.IsActive())

	e.Spawn(typeCount, 0, 0)
	assert.False(t, e.IsActive())

	e.Spawn(Type(42), 0, 0)
	assert.False(t, e.IsActive())
}

func TestSpawn_InitializesRecord(t *testing.T) {
	e, _, _ := newTestEncounter(TypeSporeSpawn, 128, 64)
	b := e.Boss()

	require.True(t, e.IsActive())
	assert.Equal(t, TypeSporeSpawn, b.Type)
	assert.Equal(t, fixed.FromInt(128), b.Body.Pos.X)
	assert.Equal(t, fixed.FromInt(64), b.Body.Pos.Y)
	assert.Equal(t, ssHP, b.HP)
	assert.Equal(t, ssHP, b.HPMax)
	assert.Equal(t, 0, b.Phase)
	assert.False(t, b.Vulnerable)
	assert.Equal(t, 0, b.InvulnTimer)
}

func TestSpawn_OverwritesLiveBoss(t *testing.T) {
	e, _, _ := newTestEncounter(TypeSporeSpawn, 128, 64)
	e.Boss().InvulnTimer = 7

	e.Spawn(TypeRidley, fixed.FromInt(50), fixed.FromInt(50))
	b := e.Boss()

	assert.Equal(t, TypeRidley, b.Type)
	assert.Equal(t, rdHP, b.HP)
	// Nothing leaks from the previous occupant
	assert.Equal(t, 0, b.InvulnTimer)
	assert.Equal(t, 0, b.Phase)
}

func TestReset_ClearsSlot(t *testing.T) {
	e, _, _ := newTestEncounter(TypeKraid, 100, 100)
	require.True(t, e.IsActive())

	e.Reset()
	assert.False(t, e.IsActive())
	assert.Equal(t, TypeNone, e.Boss().Type)
}

func TestUpdate_NoOpWhileInactive(t *testing.T) {
	e := New(newStubPlayer(0, 0), &stubPool{})
	// Must not panic or spawn anything
	stepFrames(e, 10)
	assert.False(t, e.IsActive())
}

func TestInvulnTimer_DecrementsOncePerFrame(t *testing.T) {
	e, _, _ := newTestEncounter(TypeCrocomire, 100, 100)

	e.Damage(10)
	b := e.Boss()
	require.Equal(t, hitInvulnFrames, b.InvulnTimer)

	for i := hitInvulnFrames - 1; i >= 0; i-- {
		e.Update()
		assert.Equal(t, i, b.InvulnTimer)
	}

	// Stays at zero
	e.Update()
	assert.Equal(t, 0, b.InvulnTimer)
}

func TestDamage_BlockedDuringIFrames(t *testing.T) {
	e, _, _ := newTestEncounter(TypeMotherBrain, 100, 100)
	b := e.Boss()

	e.Damage(50)
	require.Equal(t, mbPhase0HP-50, b.HP)

	// Second call in the same frame: the timer the first hit raised
	// blocks it. Invulnerability is frame-granular, not call-granular.
	e.Damage(50)
	assert.Equal(t, mbPhase0HP-50, b.HP)

	// Still blocked until the timer runs out
	stepFrames(e, hitInvulnFrames-1)
	e.Damage(50)
	assert.Equal(t, mbPhase0HP-50, b.HP)

	e.Update()
	e.Damage(50)
	assert.Equal(t, mbPhase0HP-100, b.HP)
}

func TestDamage_RequiresVulnerable(t *testing.T) {
	// Spore Spawn starts in its swing: never vulnerable there
	e, _, _ := newTestEncounter(TypeSporeSpawn, 128, 64)
	b := e.Boss()

	e.Damage(500)
	assert.Equal(t, ssHP, b.HP)
	assert.Equal(t, 0, b.InvulnTimer)
}

func TestDamage_InactiveIsSilent(t *testing.T) {
	e := New(newStubPlayer(0, 0), &stubPool{})
	e.Damage(100)
	assert.False(t, e.IsActive())
}

func TestDamage_TriggersShakeOnHitAndDeath(t *testing.T) {
	e, _, _ := newTestEncounter(TypeMotherBrain, 100, 100)
	var shakes []shakeCall
	e.OnShake = func(frames, magnitude int) {
		shakes = append(shakes, shakeCall{frames, magnitude})
	}

	e.Damage(10)
	require.Equal(t, []shakeCall{{5, 2}}, shakes)

	stepFrames(e, hitInvulnFrames)
	e.Boss().HP = 1
	e.Damage(10)
	assert.Equal(t, []shakeCall{{5, 2}, {5, 2}, {30, 4}}, shakes)
}

func TestDeathDispatch_GenericBossesDeactivateOnSchedule(t *testing.T) {
	cases := []struct {
		typ         Type
		deathFrames int
	}{
		{TypeSporeSpawn, ssDeathFrames},
		{TypeBombTorizo, btDeathFrames},
		{TypeKraid, krDeathFrames},
		{TypeBotwoon, boDeathFrames},
		{TypePhantoon, phDeathFrames},
		{TypeDraygon, drDeathFrames},
		{TypeGoldenTorizo, gtDeathFrames},
		{TypeRidley, rdDeathFrames},
	}

	for _, tc := range cases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			e, _, _ := newTestEncounter(tc.typ, 100, 100)
			b := e.Boss()

			// Force an open window and a lethal hit
			b.Vulnerable = true
			b.HP = 1
			e.Damage(10)

			require.Equal(t, 0, b.HP)
			require.False(t, b.Vulnerable)
			require.True(t, b.Active, "death sequence should play out first")

			// Never deactivates before its scripted duration
			stepFrames(e, tc.deathFrames-1)
			assert.True(t, b.Active, "deactivated early")

			e.Update()
			assert.False(t, b.Active, "still active after death sequence")
		})
	}
}
