package types

import (
	"llbc/internal/ids"
	"llbc/internal/source"
)

// TraitInstanceKind discriminates TraitInstanceID variants.
//
// The declaration order below is meaningful: comparing witnesses by kind
// prefers concrete and local derivations (impls, builtins, clauses) over
// the reflexive Self witness, which sorts last among the well-formed
// variants. Clause lists that are serialized deterministically depend on
// this order.
type TraitInstanceKind uint8

const (
	// TraitInstImpl discharges the obligation with a concrete impl.
	TraitInstImpl TraitInstanceKind = iota
	// TraitInstBuiltinOrAuto is a builtin or auto trait implementation.
	TraitInstBuiltinOrAuto
	// TraitInstClause is one of the clauses local to the current item.
	TraitInstClause
	// TraitInstParentClause walks a parent-clause edge: clause Clause of
	// the trait Trait implemented by Inner.
	TraitInstParentClause
	// TraitInstItemClause walks the clause list of an associated item:
	// clause Clause of item Item of the trait Trait implemented by Inner.
	TraitInstItemClause
	// TraitInstFnPointer treats a function pointer or closure as the
	// implementer (Fn-family traits).
	TraitInstFnPointer
	// TraitInstSelf is the reflexive witness inside a trait declaration
	// or implementation. Kept after the variants above so ordering
	// prefers local clauses during resolution.
	TraitInstSelf
	// TraitInstUnsolved is an obligation registered but not yet solved.
	// None may remain in any declaration once translation completes; in
	// error-tolerant mode survivors are rewritten to TraitInstUnknown
	// before export.
	TraitInstUnsolved
	// TraitInstUnknown is the unrecoverable-error placeholder.
	TraitInstUnknown
)

// TraitInstanceID is a trait-resolution witness: a path through clause
// hierarchies describing how a trait obligation was discharged.
// Downstream consumers replay the path (e.g. to materialize a runtime
// dictionary), so the full derivation is kept rather than just a final
// impl id.
type TraitInstanceID struct {
	Kind TraitInstanceKind `msgpack:"kind"`

	// Impl: TraitInstImpl.
	Impl ids.TraitImplID `msgpack:"impl"`
	// Trait: TraitInstBuiltinOrAuto, TraitInstParentClause,
	// TraitInstItemClause, TraitInstUnsolved. For the clause walks it is
	// redundant with Inner and kept for convenience.
	Trait ids.TraitDeclID `msgpack:"trait"`
	// Clause: TraitInstClause, TraitInstParentClause, TraitInstItemClause.
	Clause ids.TraitClauseID `msgpack:"clause"`
	// Inner: TraitInstParentClause, TraitInstItemClause.
	Inner *TraitInstanceID `msgpack:"inner"`
	// Item: TraitInstItemClause.
	Item string `msgpack:"item"`
	// FnTy: TraitInstFnPointer.
	FnTy *ETy `msgpack:"fn_ty"`
	// UnsolvedArgs: TraitInstUnsolved, the arguments of the pending
	// obligation.
	UnsolvedArgs RGenericArgs `msgpack:"unsolved_args"`
	// Message: TraitInstUnknown.
	Message string `msgpack:"message"`
}

func TraitImplInstance(id ids.TraitImplID) TraitInstanceID {
	return TraitInstanceID{Kind: TraitInstImpl, Impl: id}
}

func BuiltinOrAutoInstance(id ids.TraitDeclID) TraitInstanceID {
	return TraitInstanceID{Kind: TraitInstBuiltinOrAuto, Trait: id}
}

func ClauseInstance(id ids.TraitClauseID) TraitInstanceID {
	return TraitInstanceID{Kind: TraitInstClause, Clause: id}
}

func ParentClauseInstance(inner TraitInstanceID, trait ids.TraitDeclID, clause ids.TraitClauseID) TraitInstanceID {
	return TraitInstanceID{Kind: TraitInstParentClause, Inner: &inner, Trait: trait, Clause: clause}
}

func ItemClauseInstance(inner TraitInstanceID, trait ids.TraitDeclID, item string, clause ids.TraitClauseID) TraitInstanceID {
	return TraitInstanceID{Kind: TraitInstItemClause, Inner: &inner, Trait: trait, Item: item, Clause: clause}
}

func FnPointerInstance(ty ETy) TraitInstanceID {
	return TraitInstanceID{Kind: TraitInstFnPointer, FnTy: &ty}
}

func SelfInstance() TraitInstanceID {
	return TraitInstanceID{Kind: TraitInstSelf}
}

func UnsolvedInstance(trait ids.TraitDeclID, args RGenericArgs) TraitInstanceID {
	return TraitInstanceID{Kind: TraitInstUnsolved, Trait: trait, UnsolvedArgs: args}
}

func UnknownInstance(msg string) TraitInstanceID {
	return TraitInstanceID{Kind: TraitInstUnknown, Message: msg}
}

// TraitRef is a reference to a trait instance: the witness plus the
// generic arguments it is taken at. TraitDecl names the implemented
// trait; it is derivable from the witness and kept for convenience.
type TraitRef[R any] struct {
	TraitID   TraitInstanceID `msgpack:"trait_id"`
	Generics  GenericArgs[R]  `msgpack:"generics"`
	TraitDecl TraitDeclRef[R] `msgpack:"trait_decl_ref"`
}

// RTraitRef is a trait reference with real regions.
type RTraitRef = TraitRef[Region]

// ETraitRef is a trait reference with erased regions.
type ETraitRef = TraitRef[ErasedRegion]

// TraitDeclRef references a trait declaration with its arguments. For
// `impl Foo<bool> for String`, the arguments are [String, bool]: the
// implementing type comes first.
type TraitDeclRef[R any] struct {
	TraitID  ids.TraitDeclID `msgpack:"trait_id"`
	Generics GenericArgs[R]  `msgpack:"generics"`
}

// RTraitDeclRef is a trait-declaration reference with real regions.
type RTraitDeclRef = TraitDeclRef[Region]

// ETraitDeclRef is a trait-declaration reference with erased regions.
type ETraitDeclRef = TraitDeclRef[ErasedRegion]

// TraitClause is one trait obligation carried by GenericParams. Clause
// witnesses refer to it through its position-stable ClauseID.
// The trait-refs list inside Generics is expected to be empty.
type TraitClause struct {
	ClauseID ids.TraitClauseID `msgpack:"clause_id"`
	Meta     *source.Meta      `msgpack:"meta"`
	TraitID  ids.TraitDeclID   `msgpack:"trait_id"`
	Generics RGenericArgs      `msgpack:"generics"`
}

// Equal compares two clauses, ignoring diagnostic metadata.
func (c *TraitClause) Equal(other *TraitClause) bool {
	return c.ClauseID == other.ClauseID &&
		c.TraitID == other.TraitID &&
		GenericArgsEqual(&c.Generics, &other.Generics)
}
