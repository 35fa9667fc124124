package types_test

import (
	"sort"
	"testing"

	"llbc/internal/source"
	"llbc/internal/types"
)

func TestWitnessCompareKindOrder(t *testing.T) {
	// Concrete and local derivations must sort before the reflexive
	// Self witness, and Self before the error-ish variants.
	impl := types.TraitImplInstance(3)
	clause := types.ClauseInstance(0)
	self := types.SelfInstance()
	unknown := types.UnknownInstance("x")

	ordered := []*types.TraitInstanceID{&impl, &clause, &self, &unknown}
	for i := 0; i < len(ordered)-1; i++ {
		if ordered[i].Compare(ordered[i+1]) != -1 {
			t.Errorf("witness %d does not sort before witness %d", i, i+1)
		}
	}
}

func TestWitnessCompareWithinKind(t *testing.T) {
	a := types.TraitImplInstance(1)
	b := types.TraitImplInstance(2)
	if a.Compare(&b) != -1 || b.Compare(&a) != 1 || a.Compare(&a) != 0 {
		t.Errorf("impl id ordering broken")
	}

	// Parent clauses order by the inner derivation first.
	pa := types.ParentClauseInstance(types.ClauseInstance(0), 5, 9)
	pb := types.ParentClauseInstance(types.ClauseInstance(1), 5, 0)
	if pa.Compare(&pb) != -1 {
		t.Errorf("parent clause must order by inner witness before clause id")
	}
}

func TestWitnessCompareSorts(t *testing.T) {
	self := types.SelfInstance()
	impl := types.TraitImplInstance(0)
	clause1 := types.ClauseInstance(1)
	clause0 := types.ClauseInstance(0)

	witnesses := []types.TraitInstanceID{self, impl, clause1, clause0}
	sort.Slice(witnesses, func(i, j int) bool {
		return witnesses[i].Compare(&witnesses[j]) < 0
	})

	wantKinds := []types.TraitInstanceKind{
		types.TraitInstImpl, types.TraitInstClause, types.TraitInstClause, types.TraitInstSelf,
	}
	for i, w := range witnesses {
		if w.Kind != wantKinds[i] {
			t.Fatalf("position %d has kind %d, want %d", i, w.Kind, wantKinds[i])
		}
	}
	if witnesses[1].Clause != 0 || witnesses[2].Clause != 1 {
		t.Errorf("clauses of the same kind must order by id")
	}
}

func TestWitnessEqualPerKind(t *testing.T) {
	a := types.ParentClauseInstance(types.ClauseInstance(0), 5, 9)
	b := types.ParentClauseInstance(types.ClauseInstance(0), 5, 9)
	c := types.ParentClauseInstance(types.ClauseInstance(1), 5, 9)
	if !types.TraitInstanceIDEqual(&a, &b) {
		t.Errorf("identical derivations must compare equal")
	}
	if types.TraitInstanceIDEqual(&a, &c) {
		t.Errorf("different inner derivations must not compare equal")
	}

	// Payload fields of unselected variants must not leak into
	// equality.
	x := types.ClauseInstance(0)
	y := types.ClauseInstance(0)
	y.Impl = 42
	if !types.TraitInstanceIDEqual(&x, &y) {
		t.Errorf("equality looked at a field the kind does not select")
	}
}

func TestTraitClauseEqualIgnoresMeta(t *testing.T) {
	meta := &source.Meta{Span: source.Span{File: 1, Start: 2, End: 3}}
	a := types.TraitClause{ClauseID: 0, Meta: meta, TraitID: 7}
	b := types.TraitClause{ClauseID: 0, Meta: nil, TraitID: 7}
	if !a.Equal(&b) {
		t.Errorf("clause equality must ignore diagnostic metadata")
	}

	c := types.TraitClause{ClauseID: 0, TraitID: 8}
	if a.Equal(&c) {
		t.Errorf("different traits must not compare equal")
	}

	d := types.TraitClause{
		ClauseID: 0,
		TraitID:  7,
		Generics: types.GenericArgsFromTypes(types.MkNever[types.Region]()),
	}
	if a.Equal(&d) {
		t.Errorf("different generics must not compare equal")
	}
}

func TestGenericArgsMatchesParams(t *testing.T) {
	var params types.GenericParams
	params.Types.Push(types.TypeVar{Index: 0, Name: "T"})
	params.TraitClauses.Push(types.TraitClause{ClauseID: 0, TraitID: 1})

	args := types.GenericArgsFromTypes(types.MkNever[types.Region]())
	if args.MatchesParams(&params) {
		t.Errorf("missing trait ref must fail the arity check")
	}

	args.TraitRefs = []types.RTraitRef{{
		TraitID:   types.ClauseInstance(0),
		TraitDecl: types.RTraitDeclRef{TraitID: 1},
	}}
	if !args.MatchesParams(&params) {
		t.Errorf("pointwise-matching arities must pass")
	}
}

func TestParamsInfoFor(t *testing.T) {
	var params types.GenericParams
	params.Regions.Push(types.RegionVar{Index: 0, Name: "'a"})
	params.Types.Push(types.TypeVar{Index: 0, Name: "T"})
	params.Types.Push(types.TypeVar{Index: 1, Name: "U"})
	preds := types.Predicates{
		RegionsOutlive: []types.RegionOutlives{{Long: types.StaticRegion(), Short: types.BoundRegion(0, 0)}},
	}

	info := types.ParamsInfoFor(&params, &preds)
	if info.NumRegionParams != 1 || info.NumTypeParams != 2 || info.NumRegionsOutlive != 1 {
		t.Errorf("counts off: %+v", info)
	}
	if info.NumTraitClauses != 0 || info.NumTraitTypeConstraints != 0 {
		t.Errorf("empty categories must count zero: %+v", info)
	}
}
