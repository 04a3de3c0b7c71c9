package floatconsts

import (
	"github.com/fxamacker/cbor/v2"
)

// layoutCBOR has Layout's fields and tags but none of its methods, so
// the codec does not call back into MarshalCBOR/UnmarshalCBOR.
type layoutCBOR Layout

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	if cborEnc, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if cborDec, err = (cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}).DecMode(); err != nil {
		panic(err)
	}
}

// MarshalCBOR encodes the table as a CBOR map keyed by snake_case
// names, using core deterministic encoding.
func (l Layout) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(layoutCBOR(l))
}

// UnmarshalCBOR decodes a table written by MarshalCBOR. The result is
// not verified.
func (l *Layout) UnmarshalCBOR(b []byte) error {
	var v layoutCBOR
	if err := cborDec.Unmarshal(b, &v); err != nil {
		return WrapError(err, "cbor")
	}
	*l = Layout(v)
	return nil
}
