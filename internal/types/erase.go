package types

// Region erasure: the one-way projection from signature types (real
// regions) to body types (erased regions). Information-discarding; there
// is deliberately no inverse.

// EraseRegions projects a signature type to its body form.
func EraseRegions(t RTy) ETy {
	out := ETy{Kind: t.Kind}
	switch t.Kind {
	case TyAdt:
		out.Adt = AdtTy[ErasedRegion]{
			ID:       t.Adt.ID,
			Generics: EraseGenericArgs(t.Adt.Generics),
		}
	case TyTypeVar:
		out.TypeVar = t.TypeVar
	case TyLiteral:
		out.Literal = t.Literal
	case TyNever:
	case TyRef, TyRawPtr:
		pointee := EraseRegions(*t.Ref.Pointee)
		out.Ref = RefTy[ErasedRegion]{Pointee: &pointee, Kind: t.Ref.Kind}
	case TyTraitType:
		trait := EraseTraitRef(*t.TraitType.Trait)
		out.TraitType = TraitTypeTy[ErasedRegion]{
			Trait:    &trait,
			Generics: EraseGenericArgs(t.TraitType.Generics),
			Item:     t.TraitType.Item,
		}
	case TyArrow:
		inputs := make([]ETy, len(t.Arrow.Inputs))
		for i := range t.Arrow.Inputs {
			inputs[i] = EraseRegions(t.Arrow.Inputs[i])
		}
		output := EraseRegions(*t.Arrow.Output)
		out.Arrow = ArrowTy[ErasedRegion]{Inputs: inputs, Output: &output}
	}
	return out
}

// EraseGenericArgs erases every region in an argument list.
func EraseGenericArgs(args RGenericArgs) EGenericArgs {
	out := EGenericArgs{}
	if len(args.Regions) > 0 {
		out.Regions = make([]ErasedRegion, len(args.Regions))
	}
	if len(args.Types) > 0 {
		out.Types = make([]ETy, len(args.Types))
		for i := range args.Types {
			out.Types[i] = EraseRegions(args.Types[i])
		}
	}
	if len(args.ConstGenerics) > 0 {
		out.ConstGenerics = append([]ConstGeneric(nil), args.ConstGenerics...)
	}
	if len(args.TraitRefs) > 0 {
		out.TraitRefs = make([]ETraitRef, len(args.TraitRefs))
		for i := range args.TraitRefs {
			out.TraitRefs[i] = EraseTraitRef(args.TraitRefs[i])
		}
	}
	return out
}

// EraseTraitRef erases the regions of a trait reference. The witness
// itself is region-free and copied as is.
func EraseTraitRef(ref RTraitRef) ETraitRef {
	return ETraitRef{
		TraitID:   ref.TraitID,
		Generics:  EraseGenericArgs(ref.Generics),
		TraitDecl: EraseTraitDeclRef(ref.TraitDecl),
	}
}

// EraseTraitDeclRef erases the regions of a trait-declaration reference.
func EraseTraitDeclRef(ref RTraitDeclRef) ETraitDeclRef {
	return ETraitDeclRef{
		TraitID:  ref.TraitID,
		Generics: EraseGenericArgs(ref.Generics),
	}
}
