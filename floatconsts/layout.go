package floatconsts

// Layout holds the float32 limits as one value so the table can be
// verified, printed and serialized as a unit. Float32 returns the
// table backed by the package constants; any other Layout is
// untrusted until Verify succeeds.
type Layout struct {
	PositiveInfinity float32 `cbor:"positive_infinity"`
	NegativeInfinity float32 `cbor:"negative_infinity"`
	NaN              float32 `cbor:"nan"`
	MaxValue         float32 `cbor:"max_value"`
	MinValue         float32 `cbor:"min_value"`
	MinNormal        float32 `cbor:"min_normal"`

	SignificandWidth int `cbor:"significand_width"`
	MaxExponent      int `cbor:"max_exponent"`
	MinExponent      int `cbor:"min_exponent"`
	MinSubExponent   int `cbor:"min_sub_exponent"`
	ExpBias          int `cbor:"exp_bias"`

	SignBitMask   uint32 `cbor:"sign_bit_mask"`
	ExpBitMask    uint32 `cbor:"exp_bit_mask"`
	SignifBitMask uint32 `cbor:"signif_bit_mask"`
}

// Float32 returns the binary32 table. The result is a copy.
func Float32() Layout {
	return Layout{
		PositiveInfinity: PositiveInfinity(),
		NegativeInfinity: NegativeInfinity(),
		NaN:              NaN(),
		MaxValue:         MaxValue,
		MinValue:         MinValue,
		MinNormal:        MinNormal,
		SignificandWidth: SignificandWidth,
		MaxExponent:      MaxExponent,
		MinExponent:      MinExponent,
		MinSubExponent:   MinSubExponent,
		ExpBias:          ExpBias,
		SignBitMask:      SignBitMask,
		ExpBitMask:       ExpBitMask,
		SignifBitMask:    SignifBitMask,
	}
}

// Verify checks that the sign, exponent and significand masks cover
// all 32 bits and are pairwise disjoint. Checks run in a fixed order
// and the first failure is returned as an *InvariantViolation.
func (l Layout) Verify() error {
	if u := l.SignBitMask | l.ExpBitMask | l.SignifBitMask; u != ^uint32(0) {
		return &InvariantViolation{Check: CheckCoverage, Got: u, Want: ^uint32(0)}
	}
	if o := l.SignBitMask & l.ExpBitMask; o != 0 {
		return &InvariantViolation{Check: CheckSignExp, Got: o}
	}
	if o := l.SignBitMask & l.SignifBitMask; o != 0 {
		return &InvariantViolation{Check: CheckSignSignif, Got: o}
	}
	if o := l.ExpBitMask & l.SignifBitMask; o != 0 {
		return &InvariantViolation{Check: CheckExpSignif, Got: o}
	}
	return nil
}

func init() {
	if err := Float32().Verify(); err != nil {
		panic(err)
	}
}
