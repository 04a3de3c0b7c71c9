// Package floatconsts documents the limits of the IEEE 754
// single-precision (binary32) format: special values, the finite
// range, exponent bounds and the bit masks of the three encoding
// fields.
//
// Everything here is a constant or a pure function. The package is a
// namespace; there is nothing to construct.
package floatconsts

import "github.com/chewxy/math32"

const (
	// SignificandWidth is the number of logical bits in the significand
	// of a float32, including the implicit bit.
	SignificandWidth = 24

	// MaxExponent is the largest unbiased exponent a finite float32 may
	// have. It equals ilogb(MaxValue).
	MaxExponent = 127

	// MinExponent is the smallest unbiased exponent a normal float32 may
	// have. It equals ilogb(MinNormal).
	MinExponent = -126

	// MinSubExponent is the exponent the smallest positive subnormal
	// would have if it could be normalized. It equals ilogb(MinValue).
	MinSubExponent = MinExponent - (SignificandWidth - 1)

	// ExpBias is added to the unbiased exponent before it is stored.
	ExpBias = 127
)

const (
	// SignBitMask isolates the sign bit (bit 31).
	SignBitMask uint32 = 0x80000000

	// ExpBitMask isolates the exponent field (bits 30-23).
	ExpBitMask uint32 = 0x7F800000

	// SignifBitMask isolates the stored significand (bits 22-0).
	SignifBitMask uint32 = 0x007FFFFF
)

const (
	// MaxValue is the largest finite float32, (2-2^-23)*2^127.
	MaxValue float32 = 0x1.fffffep127

	// MinValue is the smallest positive subnormal float32, 2^-149.
	MinValue float32 = 0x1p-149

	// MinNormal is the smallest positive normal float32, 2^-126.
	MinNormal float32 = 0x1p-126
)

// Bit patterns of the special values.
const (
	PositiveInfinityBits uint32 = ExpBitMask
	NegativeInfinityBits uint32 = SignBitMask | ExpBitMask
	NaNBits              uint32 = ExpBitMask | (SignifBitMask+1)>>1
)

// The masks must cover every bit of a 32-bit word and must not overlap.
// Each index below is a constant that is only in range when that holds,
// so a bad edit to the masks fails the build.
func _() {
	var x [1]struct{}
	_ = x[^(SignBitMask | ExpBitMask | SignifBitMask)]
	_ = x[SignBitMask&ExpBitMask]
	_ = x[SignBitMask&SignifBitMask]
	_ = x[ExpBitMask&SignifBitMask]
}

// PositiveInfinity returns +Inf.
func PositiveInfinity() float32 { return math32.Inf(1) }

// NegativeInfinity returns -Inf.
func NegativeInfinity() float32 { return math32.Inf(-1) }

// NaN returns the canonical quiet NaN, whose bits are NaNBits.
func NaN() float32 { return math32.Float32frombits(NaNBits) }
