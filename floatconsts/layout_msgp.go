package floatconsts

import (
	"github.com/tinylib/msgp/msgp"
)

const layoutFieldCount = 14

var (
	_ msgp.Marshaler   = Layout{}
	_ msgp.Unmarshaler = (*Layout)(nil)
	_ msgp.Sizer       = Layout{}
)

// MarshalMsg implements msgp.Marshaler. Keys match the CBOR encoding.
func (l Layout) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, l.Msgsize())
	o = msgp.AppendMapHeader(o, layoutFieldCount)
	o = msgp.AppendString(o, "positive_infinity")
	o = msgp.AppendFloat32(o, l.PositiveInfinity)
	o = msgp.AppendString(o, "negative_infinity")
	o = msgp.AppendFloat32(o, l.NegativeInfinity)
	o = msgp.AppendString(o, "nan")
	o = msgp.AppendFloat32(o, l.NaN)
	o = msgp.AppendString(o, "max_value")
	o = msgp.AppendFloat32(o, l.MaxValue)
	o = msgp.AppendString(o, "min_value")
	o = msgp.AppendFloat32(o, l.MinValue)
	o = msgp.AppendString(o, "min_normal")
	o = msgp.AppendFloat32(o, l.MinNormal)
	o = msgp.AppendString(o, "significand_width")
	o = msgp.AppendInt(o, l.SignificandWidth)
	o = msgp.AppendString(o, "max_exponent")
	o = msgp.AppendInt(o, l.MaxExponent)
	o = msgp.AppendString(o, "min_exponent")
	o = msgp.AppendInt(o, l.MinExponent)
	o = msgp.AppendString(o, "min_sub_exponent")
	o = msgp.AppendInt(o, l.MinSubExponent)
	o = msgp.AppendString(o, "exp_bias")
	o = msgp.AppendInt(o, l.ExpBias)
	o = msgp.AppendString(o, "sign_bit_mask")
	o = msgp.AppendUint32(o, l.SignBitMask)
	o = msgp.AppendString(o, "exp_bit_mask")
	o = msgp.AppendUint32(o, l.ExpBitMask)
	o = msgp.AppendString(o, "signif_bit_mask")
	o = msgp.AppendUint32(o, l.SignifBitMask)
	return o, nil
}

// UnmarshalMsg implements msgp.Unmarshaler. Unknown keys are skipped;
// the result is not verified.
func (l *Layout) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "positive_infinity":
			l.PositiveInfinity, bts, err = msgp.ReadFloat32Bytes(bts)
		case "negative_infinity":
			l.NegativeInfinity, bts, err = msgp.ReadFloat32Bytes(bts)
		case "nan":
			l.NaN, bts, err = msgp.ReadFloat32Bytes(bts)
		case "max_value":
			l.MaxValue, bts, err = msgp.ReadFloat32Bytes(bts)
		case "min_value":
			l.MinValue, bts, err = msgp.ReadFloat32Bytes(bts)
		case "min_normal":
			l.MinNormal, bts, err = msgp.ReadFloat32Bytes(bts)
		case "significand_width":
			l.SignificandWidth, bts, err = msgp.ReadIntBytes(bts)
		case "max_exponent":
			l.MaxExponent, bts, err = msgp.ReadIntBytes(bts)
		case "min_exponent":
			l.MinExponent, bts, err = msgp.ReadIntBytes(bts)
		case "min_sub_exponent":
			l.MinSubExponent, bts, err = msgp.ReadIntBytes(bts)
		case "exp_bias":
			l.ExpBias, bts, err = msgp.ReadIntBytes(bts)
		case "sign_bit_mask":
			l.SignBitMask, bts, err = msgp.ReadUint32Bytes(bts)
		case "exp_bit_mask":
			l.ExpBitMask, bts, err = msgp.ReadUint32Bytes(bts)
		case "signif_bit_mask":
			l.SignifBitMask, bts, err = msgp.ReadUint32Bytes(bts)
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			err = msgp.WrapError(err, string(field))
			return
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes
// occupied by the serialized message.
func (l Layout) Msgsize() int {
	return msgp.MapHeaderSize +
		6*(msgp.StringPrefixSize+17+msgp.Float32Size) +
		5*(msgp.StringPrefixSize+17+msgp.IntSize) +
		3*(msgp.StringPrefixSize+15+msgp.Uint32Size)
}
