// Package fixed provides 16.16 signed fixed-point arithmetic.
//
// All simulation math in this project is integer-only: positions,
// velocities and angles are fixed.Int values. Angles are expressed in
// lookup-table units where 0 = 0°, 64 = 90°, 128 = 180°, 192 = 270°.
package fixed

// Int is a 16.16 fixed-point number.
// Upper 16 bits are the integer part, lower 16 bits the fraction.
// Range is roughly -32768.0 to +32767.99998.
type Int int32

const (
	// Shift is the number of fraction bits.
	Shift = 16
	// One is the fixed-point representation of 1.0.
	One Int = 1 << Shift
	// Half is the fixed-point representation of 0.5.
	Half Int = 1 << (Shift - 1)
)

// FromInt converts an integer to fixed-point.
func FromInt(i int) Int {
	return Int(i) << Shift
}

// Floor returns the integer part, truncating toward negative infinity.
func (f Int) Floor() int {
	return int(f >> Shift)
}

// Round returns the nearest integer.
func (f Int) Round() int {
	return int((f + Half) >> Shift)
}

// Mul multiplies two fixed-point numbers using a 64-bit intermediate.
func Mul(a, b Int) Int {
	return Int((int64(a) * int64(b)) >> Shift)
}

// Div divides a by b, shifting the numerator up first for precision.
// b must be non-zero.
func Div(a, b Int) Int {
	return Int((int64(a) << Shift) / int64(b))
}

// Abs returns the absolute value of a.
func Abs(a Int) Int {
	if a < 0 {
		return -a
	}
	return a
}

// Min returns the smaller of a and b.
func Min(a, b Int) Int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Int) Int {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi Int) Int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b; t is in [0, One].
func Lerp(a, b, t Int) Int {
	return a + Mul(t, b-a)
}

// Sin returns sin(angle) where angle is in LUT units (256 per turn).
// The result is in [-One, One].
func Sin(angle int) Int {
	return sinLUT[angle&0xFF]
}

// Cos returns cos(angle) where angle is in LUT units (256 per turn).
func Cos(angle int) Int {
	return sinLUT[(angle+64)&0xFF]
}

// Sqrt returns the square root of a in fixed-point, using Newton's
// method on a 64-bit widened value. Non-positive inputs return 0.
func Sqrt(a Int) Int {
	if a <= 0 {
		return 0
	}

	// sqrt of a 16.16 value, with a 16.16 result, is the integer
	// square root of the value shifted up by another 16 bits.
	val := uint64(a) << Shift

	var guess uint64
	if val > 1<<32 {
		guess = 1 << 24
	} else {
		guess = 1 << 16
	}

	for i := 0; i < 16; i++ {
		if guess == 0 {
			break
		}
		next := (guess + val/guess) >> 1
		if next >= guess {
			break
		}
		guess = next
	}

	return Int(guess)
}
