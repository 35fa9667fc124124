package types

import "llbc/internal/ids"

// Mutable traversal over every trait witness reachable from a value.
// Used by the finalization step that rewrites residual Unsolved
// witnesses; callbacks may rewrite the visited witness in place.

// WalkTyWitnesses visits every trait witness inside a type.
func WalkTyWitnesses[R any](t *Ty[R], f func(*TraitInstanceID)) {
	switch t.Kind {
	case TyAdt:
		WalkGenericArgsWitnesses(&t.Adt.Generics, f)
	case TyRef, TyRawPtr:
		WalkTyWitnesses(t.Ref.Pointee, f)
	case TyTraitType:
		if t.TraitType.Trait != nil {
			WalkTraitRefWitnesses(t.TraitType.Trait, f)
		}
		WalkGenericArgsWitnesses(&t.TraitType.Generics, f)
	case TyArrow:
		for i := range t.Arrow.Inputs {
			WalkTyWitnesses(&t.Arrow.Inputs[i], f)
		}
		WalkTyWitnesses(t.Arrow.Output, f)
	}
}

// WalkGenericArgsWitnesses visits every trait witness inside an
// argument list.
func WalkGenericArgsWitnesses[R any](args *GenericArgs[R], f func(*TraitInstanceID)) {
	for i := range args.Types {
		WalkTyWitnesses(&args.Types[i], f)
	}
	for i := range args.TraitRefs {
		WalkTraitRefWitnesses(&args.TraitRefs[i], f)
	}
}

// WalkTraitRefWitnesses visits every trait witness inside a trait
// reference, including the reference's own witness.
func WalkTraitRefWitnesses[R any](ref *TraitRef[R], f func(*TraitInstanceID)) {
	WalkWitness(&ref.TraitID, f)
	WalkGenericArgsWitnesses(&ref.Generics, f)
	WalkGenericArgsWitnesses(&ref.TraitDecl.Generics, f)
}

// WalkWitness visits a witness and every witness nested inside it. The
// witness itself is visited first, so a callback that rewrites it also
// controls what remains to recurse into.
func WalkWitness(id *TraitInstanceID, f func(*TraitInstanceID)) {
	f(id)
	switch id.Kind {
	case TraitInstParentClause, TraitInstItemClause:
		if id.Inner != nil {
			WalkWitness(id.Inner, f)
		}
	case TraitInstFnPointer:
		if id.FnTy != nil {
			WalkTyWitnesses(id.FnTy, f)
		}
	case TraitInstUnsolved:
		WalkGenericArgsWitnesses(&id.UnsolvedArgs, f)
	}
}

// WalkParamsWitnesses visits every trait witness inside a parameter
// list's clauses.
func WalkParamsWitnesses(p *GenericParams, f func(*TraitInstanceID)) {
	p.TraitClauses.Iter(func(_ ids.TraitClauseID, c *TraitClause) bool {
		WalkGenericArgsWitnesses(&c.Generics, f)
		return true
	})
}

// WalkPredicatesWitnesses visits every trait witness inside a predicate
// set.
func WalkPredicatesWitnesses(p *Predicates, f func(*TraitInstanceID)) {
	for i := range p.TypesOutlive {
		WalkTyWitnesses(&p.TypesOutlive[i].Ty, f)
	}
	for i := range p.TraitTypeConstraints {
		c := &p.TraitTypeConstraints[i]
		WalkTraitRefWitnesses(&c.TraitRef, f)
		WalkGenericArgsWitnesses(&c.Generics, f)
		WalkTyWitnesses(&c.Ty, f)
	}
}

// WalkFunSigWitnesses visits every trait witness inside a signature.
func WalkFunSigWitnesses(sig *FunSig, f func(*TraitInstanceID)) {
	WalkParamsWitnesses(&sig.Generics, f)
	WalkPredicatesWitnesses(&sig.Preds, f)
	for i := range sig.Inputs {
		WalkTyWitnesses(&sig.Inputs[i], f)
	}
	WalkTyWitnesses(&sig.Output, f)
}
