// Package types is the generic/trait data model of the IR: types,
// generic parameters and arguments, trait clauses and the witnesses that
// record how trait obligations were discharged.
//
// The package exposes construction and traversal only. It is the shared
// vocabulary of every pass; no pass-specific mutation lives here.
//
// Types are parameterized by their region representation. Signatures use
// Ty[Region] (RTy): real, possibly de-Bruijn-bound regions that later
// lifetime abstraction depends on. Bodies use Ty[ErasedRegion] (ETy):
// erased regions, cheaper to build and compare. EraseRegions is the
// one-way projection from the former to the latter.
package types

import "llbc/internal/ids"

// TypeIDKind discriminates TypeID variants.
type TypeIDKind uint8

const (
	// TypeAdt references a declared ADT (struct or enum, transparent or
	// opaque) through its TypeDeclID.
	TypeAdt TypeIDKind = iota
	// TypeTuple is the builtin tuple former (unit is the 0-tuple).
	TypeTuple
	// TypeAssumed is a builtin handled like a primitive (Box, slices...).
	TypeAssumed
)

// AssumedTy enumerates the assumed builtin types.
type AssumedTy uint8

const (
	AssumedBox AssumedTy = iota
	AssumedPtrUnique
	AssumedPtrNonNull
	AssumedArray
	AssumedSlice
	AssumedStr
)

// TypeID names the former of an ADT type: a declared ADT, a tuple, or an
// assumed builtin. Factoring the three cases here keeps the Adt variant
// of Ty uniform.
type TypeID struct {
	Kind    TypeIDKind     `msgpack:"kind"`
	Adt     ids.TypeDeclID `msgpack:"adt"`
	Assumed AssumedTy      `msgpack:"assumed"`
}

func AdtID(id ids.TypeDeclID) TypeID {
	return TypeID{Kind: TypeAdt, Adt: id}
}

func TupleID() TypeID {
	return TypeID{Kind: TypeTuple}
}

func AssumedID(a AssumedTy) TypeID {
	return TypeID{Kind: TypeAssumed, Assumed: a}
}

// RefKind distinguishes mutable from shared references and pointers.
type RefKind uint8

const (
	RefShared RefKind = iota
	RefMut
)

// TyKind discriminates Ty variants.
type TyKind uint8

const (
	// TyAdt is an ADT reference with its generic arguments.
	TyAdt TyKind = iota
	// TyTypeVar is a reference to a bound generic type variable.
	TyTypeVar
	// TyLiteral is a primitive type (integer, bool, char).
	TyLiteral
	// TyNever is the uninhabited type of diverging computations.
	TyNever
	// TyRef is a borrow: region, pointee, mutability.
	TyRef
	// TyRawPtr is a raw pointer: pointee, mutability.
	TyRawPtr
	// TyTraitType projects an associated type out of a trait reference.
	TyTraitType
	// TyArrow is a function type.
	TyArrow
)

// Ty is a type, generic over its region representation R (Region in
// signatures, ErasedRegion in bodies).
type Ty[R any] struct {
	Kind TyKind `msgpack:"kind"`

	Adt       AdtTy[R]       `msgpack:"adt"`
	TypeVar   ids.TypeVarID  `msgpack:"type_var"`
	Literal   LiteralTy      `msgpack:"literal"`
	Ref       RefTy[R]       `msgpack:"ref"`
	TraitType TraitTypeTy[R] `msgpack:"trait_type"`
	Arrow     ArrowTy[R]     `msgpack:"arrow"`
}

// RTy is a type with real regions, used in signatures and type
// declarations.
type RTy = Ty[Region]

// ETy is a type with erased regions, used in function bodies.
type ETy = Ty[ErasedRegion]

// AdtTy is the payload of TyAdt.
type AdtTy[R any] struct {
	ID       TypeID         `msgpack:"id"`
	Generics GenericArgs[R] `msgpack:"generics"`
}

// RefTy is the payload of TyRef and TyRawPtr. Region is meaningful only
// for TyRef.
type RefTy[R any] struct {
	Region  R       `msgpack:"region"`
	Pointee *Ty[R]  `msgpack:"pointee"`
	Kind    RefKind `msgpack:"ref_kind"`
}

// TraitTypeTy is the payload of TyTraitType: Trait.Item instantiated at
// Generics.
type TraitTypeTy[R any] struct {
	Trait    *TraitRef[R]   `msgpack:"trait"`
	Generics GenericArgs[R] `msgpack:"generics"`
	Item     string         `msgpack:"item"`
}

// ArrowTy is the payload of TyArrow.
type ArrowTy[R any] struct {
	Inputs []Ty[R] `msgpack:"inputs"`
	Output *Ty[R]  `msgpack:"output"`
}

// MkAdt builds an ADT type.
func MkAdt[R any](id TypeID, generics GenericArgs[R]) Ty[R] {
	return Ty[R]{Kind: TyAdt, Adt: AdtTy[R]{ID: id, Generics: generics}}
}

// MkUnit builds the unit type (0-tuple).
func MkUnit[R any]() Ty[R] {
	return MkAdt(TupleID(), EmptyGenericArgs[R]())
}

// MkLiteral builds a primitive type.
func MkLiteral[R any](lit LiteralTy) Ty[R] {
	return Ty[R]{Kind: TyLiteral, Literal: lit}
}

// MkNever builds the never type.
func MkNever[R any]() Ty[R] {
	return Ty[R]{Kind: TyNever}
}

// MkTypeVar builds a type-variable reference.
func MkTypeVar[R any](v ids.TypeVarID) Ty[R] {
	return Ty[R]{Kind: TyTypeVar, TypeVar: v}
}

// MkRef builds a reference type.
func MkRef[R any](region R, pointee Ty[R], kind RefKind) Ty[R] {
	return Ty[R]{Kind: TyRef, Ref: RefTy[R]{Region: region, Pointee: &pointee, Kind: kind}}
}

// MkRawPtr builds a raw pointer type.
func MkRawPtr[R any](pointee Ty[R], kind RefKind) Ty[R] {
	return Ty[R]{Kind: TyRawPtr, Ref: RefTy[R]{Pointee: &pointee, Kind: kind}}
}

// MkArrow builds a function type.
func MkArrow[R any](inputs []Ty[R], output Ty[R]) Ty[R] {
	return Ty[R]{Kind: TyArrow, Arrow: ArrowTy[R]{Inputs: inputs, Output: &output}}
}
