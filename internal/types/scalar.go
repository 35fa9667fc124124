package types

import "fmt"

// IntegerTy enumerates the integer literal types.
type IntegerTy uint8

const (
	Isize IntegerTy = iota
	I8
	I16
	I32
	I64
	I128
	Usize
	U8
	U16
	U32
	U64
	U128
)

// IsSigned reports whether the integer type is signed.
func (t IntegerTy) IsSigned() bool {
	return t <= I128
}

// BitSize returns the width of the integer type in bits. Isize and Usize
// are treated as 64-bit, matching the extraction target.
func (t IntegerTy) BitSize() uint {
	switch t {
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32:
		return 32
	case I64, U64, Isize, Usize:
		return 64
	case I128, U128:
		return 128
	default:
		return 0
	}
}

func (t IntegerTy) String() string {
	names := [...]string{"isize", "i8", "i16", "i32", "i64", "i128", "usize", "u8", "u16", "u32", "u64", "u128"}
	if int(t) < len(names) {
		return names[t]
	}
	return "int?"
}

// Uint128 is a 128-bit unsigned bit pattern. It is comparable, so it can
// key maps; variant discriminants and switch case values are compared
// through it, width-correct and sign-free.
type Uint128 struct {
	Hi uint64 `msgpack:"hi"`
	Lo uint64 `msgpack:"lo"`
}

// Uint128From builds a pattern from a 64-bit unsigned value.
func Uint128From(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Cmp returns -1, 0 or 1 comparing u and v as unsigned integers.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("%d", u.Lo)
	}
	return fmt.Sprintf("0x%x%016x", u.Hi, u.Lo)
}

// truncate masks bits down to the given width.
func (u Uint128) truncate(bits uint) Uint128 {
	switch {
	case bits >= 128:
		return u
	case bits >= 64:
		u.Hi &= (1 << (bits - 64)) - 1
		return u
	default:
		return Uint128{Lo: u.Lo & ((1 << bits) - 1)}
	}
}

// ScalarValue is a typed integer constant stored as its runtime bit
// pattern. The pattern is always truncated to the type's width, so a
// signed -1 at i8 holds the same bits as an unsigned 255 at u8.
type ScalarValue struct {
	Ty   IntegerTy `msgpack:"ty"`
	Bits Uint128   `msgpack:"bits"`
}

// ScalarFromInt encodes a signed value as a width-truncated two's
// complement bit pattern of the given type.
func ScalarFromInt(ty IntegerTy, v int64) ScalarValue {
	bits := Uint128{Lo: uint64(v)}
	if v < 0 {
		bits.Hi = ^uint64(0)
	}
	return ScalarValue{Ty: ty, Bits: bits.truncate(ty.BitSize())}
}

// ScalarFromUint encodes an unsigned value at the given type.
func ScalarFromUint(ty IntegerTy, v uint64) ScalarValue {
	return ScalarValue{Ty: ty, Bits: Uint128From(v).truncate(ty.BitSize())}
}

// ToBits returns the raw unsigned bit pattern of the value.
func (s ScalarValue) ToBits() Uint128 {
	return s.Bits
}

// LiteralTyKind discriminates LiteralTy variants.
type LiteralTyKind uint8

const (
	LitInteger LiteralTyKind = iota
	LitBool
	LitChar
)

// LiteralTy is the type of a primitive value: an integer of some width,
// bool, or char. Floating point is not supported.
type LiteralTy struct {
	Kind    LiteralTyKind `msgpack:"kind"`
	Integer IntegerTy     `msgpack:"integer"`
}

func LiteralInt(ty IntegerTy) LiteralTy {
	return LiteralTy{Kind: LitInteger, Integer: ty}
}

func LiteralBool() LiteralTy { return LiteralTy{Kind: LitBool} }
func LiteralChar() LiteralTy { return LiteralTy{Kind: LitChar} }

// LiteralKind discriminates Literal variants.
type LiteralKind uint8

const (
	LitScalar LiteralKind = iota
	LitBoolValue
	LitCharValue
)

// Literal is a primitive constant value.
type Literal struct {
	Kind   LiteralKind `msgpack:"kind"`
	Scalar ScalarValue `msgpack:"scalar"`
	Bool   bool        `msgpack:"bool"`
	Char   rune        `msgpack:"char"`
}
