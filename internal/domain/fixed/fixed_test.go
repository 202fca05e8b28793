package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromInt_Floor(t *testing.T) {
	assert.Equal(t, Int(0x10000), FromInt(1))
	assert.Equal(t, Int(-0x20000), FromInt(-2))
	assert.Equal(t, 3, FromInt(3).Floor())
	assert.Equal(t, -3, FromInt(-3).Floor())

	// Floor truncates toward negative infinity
	assert.Equal(t, -1, (FromInt(-1) + Half).Floor())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2, (FromInt(1) + Half).Round())
	assert.Equal(t, 1, (FromInt(1) + Half - 1).Round())
	assert.Equal(t, 0, Int(0).Round())
}

func TestMul(t *testing.T) {
	// 1.5 * 2.0 = 3.0
	assert.Equal(t, FromInt(3), Mul(FromInt(1)+Half, FromInt(2)))
	// 0.5 * 0.5 = 0.25
	assert.Equal(t, Int(0x4000), Mul(Half, Half))
	// Sign handling
	assert.Equal(t, FromInt(-6), Mul(FromInt(2), FromInt(-3)))

	// Large operands must not overflow the 32-bit result prematurely
	assert.Equal(t, FromInt(10000), Mul(FromInt(100), FromInt(100)))
}

func TestDiv(t *testing.T) {
	assert.Equal(t, FromInt(2), Div(FromInt(6), FromInt(3)))
	assert.Equal(t, Half, Div(FromInt(1), FromInt(2)))
	assert.Equal(t, FromInt(-4), Div(FromInt(8), FromInt(-2)))
}

func TestAbsMinMaxClamp(t *testing.T) {
	assert.Equal(t, FromInt(5), Abs(FromInt(-5)))
	assert.Equal(t, FromInt(5), Abs(FromInt(5)))
	assert.Equal(t, FromInt(1), Min(FromInt(1), FromInt(2)))
	assert.Equal(t, FromInt(2), Max(FromInt(1), FromInt(2)))
	assert.Equal(t, FromInt(3), Clamp(FromInt(9), FromInt(0), FromInt(3)))
	assert.Equal(t, FromInt(0), Clamp(FromInt(-9), FromInt(0), FromInt(3)))
	assert.Equal(t, FromInt(2), Clamp(FromInt(2), FromInt(0), FromInt(3)))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, FromInt(0), Lerp(FromInt(0), FromInt(10), 0))
	assert.Equal(t, FromInt(10), Lerp(FromInt(0), FromInt(10), One))
	assert.Equal(t, FromInt(5), Lerp(FromInt(0), FromInt(10), Half))
}

func TestSin_CardinalAngles(t *testing.T) {
	assert.Equal(t, Int(0), Sin(0))
	assert.Equal(t, One, Sin(64))
	assert.Equal(t, Int(0), Sin(128))
	assert.Equal(t, -One, Sin(192))

	// Wraps modulo 256
	assert.Equal(t, Sin(3), Sin(259))
	assert.Equal(t, Sin(250), Sin(-6))
}

func TestCos_QuarterPhaseOfSin(t *testing.T) {
	for _, a := range []int{0, 17, 64, 100, 192, 255} {
		assert.Equal(t, Sin(a+64), Cos(a), "angle %d", a)
	}
	assert.Equal(t, One, Cos(0))
	assert.Equal(t, -One, Cos(128))
}

func TestSin_Symmetry(t *testing.T) {
	for a := 0; a < 128; a++ {
		assert.Equal(t, Sin(a), -Sin(a+128), "angle %d", a)
	}
}

func TestSqrt(t *testing.T) {
	assert.Equal(t, Int(0), Sqrt(0))
	assert.Equal(t, Int(0), Sqrt(-FromInt(4)))
	assert.Equal(t, FromInt(2), Sqrt(FromInt(4)))
	assert.Equal(t, FromInt(12), Sqrt(FromInt(144)))

	// sqrt(2) ≈ 1.41421 → 0x16A09 in 16.16, allow ±1 LSB of the
	// Newton iteration's stopping point
	got := Sqrt(FromInt(2))
	assert.InDelta(t, 0x16A09, int(got), 2)
}
