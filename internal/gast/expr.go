// Package gast holds the IR shapes shared between the unstructured and
// structured body representations: places, operands, rvalues, and the
// declaration shells that are generic over the body shape.
package gast

import (
	"llbc/internal/ids"
	"llbc/internal/types"
)

// ProjElemKind discriminates place projection elements.
type ProjElemKind uint8

const (
	// ProjDeref dereferences a reference or raw pointer.
	ProjDeref ProjElemKind = iota
	// ProjDerefBox dereferences a box.
	ProjDerefBox
	// ProjField selects a field.
	ProjField
)

// FieldProjKind discriminates what a field projection projects out of.
type FieldProjKind uint8

const (
	FieldProjAdt FieldProjKind = iota
	FieldProjTuple
)

// ProjElem is one step of a place projection.
type ProjElem struct {
	Kind ProjElemKind `msgpack:"kind"`

	// Field projection payload.
	FieldKind  FieldProjKind  `msgpack:"field_kind"`
	Adt        ids.TypeDeclID `msgpack:"adt"`
	HasVariant bool           `msgpack:"has_variant"`
	Variant    ids.VariantID  `msgpack:"variant"`
	Field      ids.FieldID    `msgpack:"field"`
	TupleArity int            `msgpack:"tuple_arity"`
}

// Place is a path to a memory location: a local plus a projection.
type Place struct {
	Var        ids.VarID  `msgpack:"var"`
	Projection []ProjElem `msgpack:"projection"`
}

// LocalPlace is the place of a bare local.
func LocalPlace(v ids.VarID) Place {
	return Place{Var: v}
}

// Equal compares two places structurally.
func (p Place) Equal(other Place) bool {
	if p.Var != other.Var || len(p.Projection) != len(other.Projection) {
		return false
	}
	for i := range p.Projection {
		if p.Projection[i] != other.Projection[i] {
			return false
		}
	}
	return true
}

// OperandKind discriminates Operand variants.
type OperandKind uint8

const (
	OperandCopy OperandKind = iota
	OperandMove
	OperandConst
)

// ConstantExpr is a literal constant with its type.
type ConstantExpr struct {
	Ty    types.ETy     `msgpack:"ty"`
	Value types.Literal `msgpack:"value"`
}

// Operand is an rvalue input: a copied or moved place, or a constant.
type Operand struct {
	Kind  OperandKind  `msgpack:"kind"`
	Place Place        `msgpack:"place"`
	Const ConstantExpr `msgpack:"const"`
}

// MoveOperand moves out of a place.
func MoveOperand(p Place) Operand {
	return Operand{Kind: OperandMove, Place: p}
}

// CopyOperand copies a place.
func CopyOperand(p Place) Operand {
	return Operand{Kind: OperandCopy, Place: p}
}

// BorrowKind enumerates borrow flavors.
type BorrowKind uint8

const (
	BorrowShared BorrowKind = iota
	BorrowMut
	BorrowTwoPhase
	BorrowShallow
)

// UnOp enumerates unary operators.
type UnOp uint8

const (
	UnNot UnOp = iota
	UnNeg
)

// BinOp enumerates binary operators.
type BinOp uint8

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinEq
	BinLt
	BinLe
	BinNe
	BinGe
	BinGt
)

// RvalueKind discriminates Rvalue variants.
type RvalueKind uint8

const (
	// RvUse forwards an operand.
	RvUse RvalueKind = iota
	// RvRef borrows a place.
	RvRef
	// RvUnary applies a unary operator.
	RvUnary
	// RvBinary applies a binary operator.
	RvBinary
	// RvDiscriminant reads the runtime discriminant of an enum-typed
	// place. The normalization pass removes every occurrence; none may
	// survive in structured bodies after it runs.
	RvDiscriminant
	// RvAggregate builds an ADT, tuple or array value.
	RvAggregate
	// RvGlobal reads a global.
	RvGlobal
)

// RefRvalue is the payload of RvRef.
type RefRvalue struct {
	Place Place      `msgpack:"place"`
	Kind  BorrowKind `msgpack:"borrow_kind"`
}

// UnaryRvalue is the payload of RvUnary.
type UnaryRvalue struct {
	Op      UnOp    `msgpack:"op"`
	Operand Operand `msgpack:"operand"`
}

// BinaryRvalue is the payload of RvBinary.
type BinaryRvalue struct {
	Op    BinOp   `msgpack:"op"`
	Left  Operand `msgpack:"left"`
	Right Operand `msgpack:"right"`
}

// DiscriminantRvalue is the payload of RvDiscriminant.
type DiscriminantRvalue struct {
	Place Place          `msgpack:"place"`
	Adt   ids.TypeDeclID `msgpack:"adt"`
}

// AggregateKindTag discriminates aggregate formers.
type AggregateKindTag uint8

const (
	AggAdt AggregateKindTag = iota
	AggTuple
	AggArray
)

// AggregateKind names what an aggregate rvalue builds.
type AggregateKind struct {
	Kind       AggregateKindTag   `msgpack:"kind"`
	ID         types.TypeID       `msgpack:"id"`
	HasVariant bool               `msgpack:"has_variant"`
	Variant    ids.VariantID      `msgpack:"variant"`
	Generics   types.EGenericArgs `msgpack:"generics"`
}

// AggregateRvalue is the payload of RvAggregate.
type AggregateRvalue struct {
	Kind     AggregateKind `msgpack:"aggregate_kind"`
	Operands []Operand     `msgpack:"operands"`
}

// Rvalue is the right-hand side of an assignment.
type Rvalue struct {
	Kind RvalueKind `msgpack:"kind"`

	Use          Operand            `msgpack:"use"`
	Ref          RefRvalue          `msgpack:"ref"`
	Unary        UnaryRvalue        `msgpack:"unary"`
	Binary       BinaryRvalue       `msgpack:"binary"`
	Discriminant DiscriminantRvalue `msgpack:"discriminant"`
	Aggregate    AggregateRvalue    `msgpack:"aggregate"`
	Global       ids.GlobalDeclID   `msgpack:"global"`
}

// UseRvalue forwards an operand.
func UseRvalue(op Operand) Rvalue {
	return Rvalue{Kind: RvUse, Use: op}
}

// DiscriminantOf reads the discriminant of an enum-typed place.
func DiscriminantOf(p Place, adt ids.TypeDeclID) Rvalue {
	return Rvalue{Kind: RvDiscriminant, Discriminant: DiscriminantRvalue{Place: p, Adt: adt}}
}
