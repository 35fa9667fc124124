package types

// Structural equality helpers. The sum types carry payloads for every
// variant, so equality must only look at the fields the Kind selects.

// TyEqual deeply compares two types.
func TyEqual[R comparable](a, b *Ty[R]) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TyAdt:
		return a.Adt.ID == b.Adt.ID && GenericArgsEqual(&a.Adt.Generics, &b.Adt.Generics)
	case TyTypeVar:
		return a.TypeVar == b.TypeVar
	case TyLiteral:
		return a.Literal == b.Literal
	case TyNever:
		return true
	case TyRef:
		return a.Ref.Region == b.Ref.Region && a.Ref.Kind == b.Ref.Kind &&
			TyEqual(a.Ref.Pointee, b.Ref.Pointee)
	case TyRawPtr:
		return a.Ref.Kind == b.Ref.Kind && TyEqual(a.Ref.Pointee, b.Ref.Pointee)
	case TyTraitType:
		return a.TraitType.Item == b.TraitType.Item &&
			TraitRefEqual(a.TraitType.Trait, b.TraitType.Trait) &&
			GenericArgsEqual(&a.TraitType.Generics, &b.TraitType.Generics)
	case TyArrow:
		if len(a.Arrow.Inputs) != len(b.Arrow.Inputs) {
			return false
		}
		for i := range a.Arrow.Inputs {
			if !TyEqual(&a.Arrow.Inputs[i], &b.Arrow.Inputs[i]) {
				return false
			}
		}
		return TyEqual(a.Arrow.Output, b.Arrow.Output)
	default:
		return false
	}
}

// GenericArgsEqual deeply compares two argument lists.
func GenericArgsEqual[R comparable](a, b *GenericArgs[R]) bool {
	if len(a.Regions) != len(b.Regions) || len(a.Types) != len(b.Types) ||
		len(a.ConstGenerics) != len(b.ConstGenerics) || len(a.TraitRefs) != len(b.TraitRefs) {
		return false
	}
	for i := range a.Regions {
		if a.Regions[i] != b.Regions[i] {
			return false
		}
	}
	for i := range a.Types {
		if !TyEqual(&a.Types[i], &b.Types[i]) {
			return false
		}
	}
	for i := range a.ConstGenerics {
		if a.ConstGenerics[i] != b.ConstGenerics[i] {
			return false
		}
	}
	for i := range a.TraitRefs {
		if !TraitRefEqual(&a.TraitRefs[i], &b.TraitRefs[i]) {
			return false
		}
	}
	return true
}

// TraitRefEqual deeply compares two trait references.
func TraitRefEqual[R comparable](a, b *TraitRef[R]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return TraitInstanceIDEqual(&a.TraitID, &b.TraitID) &&
		GenericArgsEqual(&a.Generics, &b.Generics) &&
		a.TraitDecl.TraitID == b.TraitDecl.TraitID &&
		GenericArgsEqual(&a.TraitDecl.Generics, &b.TraitDecl.Generics)
}

// TraitInstanceIDEqual deeply compares two witnesses.
func TraitInstanceIDEqual(a, b *TraitInstanceID) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TraitInstImpl:
		return a.Impl == b.Impl
	case TraitInstBuiltinOrAuto:
		return a.Trait == b.Trait
	case TraitInstClause:
		return a.Clause == b.Clause
	case TraitInstParentClause:
		return a.Trait == b.Trait && a.Clause == b.Clause &&
			TraitInstanceIDEqual(a.Inner, b.Inner)
	case TraitInstItemClause:
		return a.Trait == b.Trait && a.Item == b.Item && a.Clause == b.Clause &&
			TraitInstanceIDEqual(a.Inner, b.Inner)
	case TraitInstFnPointer:
		return TyEqual(a.FnTy, b.FnTy)
	case TraitInstSelf:
		return true
	case TraitInstUnsolved:
		return a.Trait == b.Trait && GenericArgsEqual(&a.UnsolvedArgs, &b.UnsolvedArgs)
	case TraitInstUnknown:
		return a.Message == b.Message
	default:
		return false
	}
}
