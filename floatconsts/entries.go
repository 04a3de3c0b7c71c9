package floatconsts

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Kind is the Go type family of an Entry.
type Kind uint8

const (
	FloatKind Kind = iota + 1 // float32
	IntKind                   // untyped int
	MaskKind                  // uint32 bit mask
)

func (k Kind) String() string {
	switch k {
	case FloatKind:
		return "float32"
	case IntKind:
		return "int"
	case MaskKind:
		return "uint32"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Entry is one named row of a Layout.
type Entry struct {
	Name  string
	Kind  Kind
	Value string
	Bits  uint32 // IEEE bits for floats, the mask itself for masks; 0 for ints
}

// Entries returns the rows of l in declaration order. Floats are
// formatted in their shortest round-trip form and masks as 0x%08X.
func (l Layout) Entries() []Entry {
	return []Entry{
		floatEntry("PositiveInfinity", l.PositiveInfinity),
		floatEntry("NegativeInfinity", l.NegativeInfinity),
		floatEntry("NaN", l.NaN),
		floatEntry("MaxValue", l.MaxValue),
		floatEntry("MinValue", l.MinValue),
		floatEntry("MinNormal", l.MinNormal),
		intEntry("SignificandWidth", l.SignificandWidth),
		intEntry("MaxExponent", l.MaxExponent),
		intEntry("MinExponent", l.MinExponent),
		intEntry("MinSubExponent", l.MinSubExponent),
		intEntry("ExpBias", l.ExpBias),
		maskEntry("SignBitMask", l.SignBitMask),
		maskEntry("ExpBitMask", l.ExpBitMask),
		maskEntry("SignifBitMask", l.SignifBitMask),
	}
}

// Entries returns Float32().Entries().
func Entries() []Entry { return Float32().Entries() }

func floatEntry(name string, f float32) Entry {
	return Entry{
		Name:  name,
		Kind:  FloatKind,
		Value: strconv.FormatFloat(float64(f), 'g', -1, 32),
		Bits:  math32.Float32bits(f),
	}
}

func intEntry(name string, i int) Entry {
	return Entry{Name: name, Kind: IntKind, Value: strconv.Itoa(i)}
}

func maskEntry(name string, m uint32) Entry {
	return Entry{Name: name, Kind: MaskKind, Value: hex32(m), Bits: m}
}
