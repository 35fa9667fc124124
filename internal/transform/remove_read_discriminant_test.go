package transform_test

import (
	"strings"
	"testing"

	"llbc/internal/gast"
	"llbc/internal/ids"
	"llbc/internal/llbc"
	"llbc/internal/source"
	"llbc/internal/trans"
	"llbc/internal/transform"
	"llbc/internal/types"
)

var testMeta = source.Meta{Span: source.Span{File: 0, Start: 10, End: 42}}

// newEnumCtx builds a context holding one enum whose variants carry the
// given discriminant values.
func newEnumCtx(discriminants ...types.ScalarValue) (*trans.Ctx, ids.TypeDeclID) {
	ctx := trans.New("test_crate", 0)

	var variants ids.Vector[ids.VariantID, types.Variant]
	names := []string{"A", "B", "C", "D"}
	for i, d := range discriminants {
		variants.Push(types.Variant{
			Name:         names[i%len(names)],
			Discriminant: d.ToBits(),
		})
	}
	adtID := ctx.TypeDecls.Push(types.TypeDecl{
		DefID:   ctx.TypeDecls.NextID(),
		IsLocal: true,
		Name:    types.NameFromIdents("test_crate", "E"),
		Kind:    types.EnumKind(variants),
	})
	return ctx, adtID
}

// marker builds a distinguishable leaf statement (break out of n
// loops) so tests can check where arms were routed.
func marker(n int) *llbc.Statement {
	st := llbc.NewStatement(testMeta, llbc.StmtBreak)
	st.LoopIndex = n
	return st
}

// discrIdiom builds `L1 := discriminant(L0, adt); switch L1 { ... }`
// with one case value per arm.
func discrIdiom(adt ids.TypeDeclID, intTy types.IntegerTy, caseValues []types.ScalarValue, otherwise *llbc.Statement) *llbc.Statement {
	assign := llbc.NewAssign(testMeta, gast.LocalPlace(1), gast.DiscriminantOf(gast.LocalPlace(0), adt))
	targets := make([]llbc.SwitchIntTarget, 0, len(caseValues))
	for i, v := range caseValues {
		targets = append(targets, llbc.SwitchIntTarget{
			Values: []types.ScalarValue{v},
			Target: marker(i),
		})
	}
	sw := llbc.NewSwitch(testMeta, llbc.Switch{
		Kind: llbc.SwitchIntKind,
		SwitchInt: llbc.SwitchInt{
			Scrutinee: gast.MoveOperand(gast.LocalPlace(1)),
			IntTy:     intTy,
			Targets:   targets,
			Otherwise: otherwise,
		},
	})
	return llbc.NewSequence(assign, sw)
}

func declsWithBody(body *llbc.Statement) (llbc.FunDecls, llbc.GlobalDecls) {
	var funs llbc.FunDecls
	var globals llbc.GlobalDecls
	var locals ids.Vector[ids.VarID, gast.Var]
	locals.Push(gast.Var{Index: 0, Name: "x"})
	locals.Push(gast.Var{Index: 1})
	funs.Push(llbc.FunDecl{
		DefID:   0,
		IsLocal: true,
		Name:    types.NameFromIdents("test_crate", "f"),
		Body:    &llbc.ExprBody{Meta: testMeta, Locals: locals, Body: body},
	})
	return funs, globals
}

func TestRemoveReadDiscriminant_FullCoverageDropsOtherwise(t *testing.T) {
	ctx, adtID := newEnumCtx(
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	)
	body := discrIdiom(adtID, types.Isize, []types.ScalarValue{
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	}, marker(99))
	funs, globals := declsWithBody(body)

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)

	if ctx.ErrorCount() != 0 {
		t.Fatalf("expected no errors, got %d", ctx.ErrorCount())
	}
	got := funs[0].Body.Body
	if got.Kind != llbc.StmtSwitch || got.Switch.Kind != llbc.SwitchMatch {
		t.Fatalf("expected a variant match, got statement kind %d", got.Kind)
	}
	match := got.Switch.Match
	if match.Scrutinee.Var != 0 {
		t.Errorf("match must target the original enum place, got local %d", match.Scrutinee.Var)
	}
	if len(match.Targets) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(match.Targets))
	}
	if len(match.Targets[0].Variants) != 1 || match.Targets[0].Variants[0] != 0 {
		t.Errorf("arm 0 should route variant 0, got %v", match.Targets[0].Variants)
	}
	if len(match.Targets[1].Variants) != 1 || match.Targets[1].Variants[0] != 1 {
		t.Errorf("arm 1 should route variant 1, got %v", match.Targets[1].Variants)
	}
	if match.Otherwise != nil {
		t.Errorf("full coverage must drop the otherwise branch")
	}
}

func TestRemoveReadDiscriminant_PartialCoverageKeepsOtherwise(t *testing.T) {
	ctx, adtID := newEnumCtx(
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
		types.ScalarFromInt(types.Isize, 2),
	)
	otherwise := marker(99)
	body := discrIdiom(adtID, types.Isize, []types.ScalarValue{
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	}, otherwise)
	funs, globals := declsWithBody(body)

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)

	match := funs[0].Body.Body.Switch.Match
	if match.Otherwise == nil {
		t.Fatalf("partial coverage must keep the otherwise branch")
	}
	if match.Otherwise != otherwise {
		t.Errorf("otherwise branch must be kept verbatim")
	}
}

func TestRemoveReadDiscriminant_SignedBitPattern(t *testing.T) {
	// An i8 discriminant of -1 must match a case value carrying the
	// unsigned 8-bit pattern 255.
	ctx, adtID := newEnumCtx(
		types.ScalarFromInt(types.I8, -1),
		types.ScalarFromInt(types.I8, 0),
	)
	body := discrIdiom(adtID, types.I8, []types.ScalarValue{
		types.ScalarFromUint(types.U8, 255),
		types.ScalarFromUint(types.U8, 0),
	}, marker(99))
	funs, globals := declsWithBody(body)

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)

	if ctx.ErrorCount() != 0 {
		t.Fatalf("sign mismatch: bit patterns did not line up, %d errors", ctx.ErrorCount())
	}
	match := funs[0].Body.Body.Switch.Match
	if len(match.Targets[0].Variants) != 1 || match.Targets[0].Variants[0] != 0 {
		t.Errorf("case 255 should route to the -1 variant, got %v", match.Targets[0].Variants)
	}
	if match.Otherwise != nil {
		t.Errorf("both variants covered, otherwise must be dropped")
	}
}

func TestRemoveReadDiscriminant_TrailingStatementReattached(t *testing.T) {
	ctx, adtID := newEnumCtx(types.ScalarFromInt(types.Isize, 0))
	assign := llbc.NewAssign(testMeta, gast.LocalPlace(1), gast.DiscriminantOf(gast.LocalPlace(0), adtID))
	sw := llbc.NewSwitch(testMeta, llbc.Switch{
		Kind: llbc.SwitchIntKind,
		SwitchInt: llbc.SwitchInt{
			Scrutinee: gast.MoveOperand(gast.LocalPlace(1)),
			IntTy:     types.Isize,
			Targets: []llbc.SwitchIntTarget{
				{Values: []types.ScalarValue{types.ScalarFromInt(types.Isize, 0)}, Target: marker(0)},
			},
			Otherwise: marker(99),
		},
	})
	tail := llbc.NewStatement(testMeta, llbc.StmtReturn)
	body := llbc.NewSequence(assign, llbc.NewSequence(sw, tail))
	funs, globals := declsWithBody(body)

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)

	got := funs[0].Body.Body
	if got.Kind != llbc.StmtSequence {
		t.Fatalf("expected match;tail sequence, got kind %d", got.Kind)
	}
	if got.Sequence.First.Kind != llbc.StmtSwitch || got.Sequence.First.Switch.Kind != llbc.SwitchMatch {
		t.Errorf("sequence head must be the rewritten match")
	}
	if got.Sequence.Second != tail {
		t.Errorf("trailing statement must be re-attached after the match")
	}
}

func TestRemoveReadDiscriminant_NonSwitchSuccessorIsIsolated(t *testing.T) {
	// One malformed occurrence (successor is a plain jump-like break)
	// and one well-formed occurrence in separate bodies: only the
	// malformed one is nopped and error-counted.
	ctx, adtID := newEnumCtx(
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	)

	badAssign := llbc.NewAssign(testMeta, gast.LocalPlace(1), gast.DiscriminantOf(gast.LocalPlace(0), adtID))
	badBody := llbc.NewSequence(badAssign, marker(7))
	funs, globals := declsWithBody(badBody)

	goodBody := discrIdiom(adtID, types.Isize, []types.ScalarValue{
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	}, marker(99))
	funs.Push(llbc.FunDecl{
		DefID:   1,
		IsLocal: true,
		Name:    types.NameFromIdents("test_crate", "g"),
		Body:    &llbc.ExprBody{Meta: testMeta, Body: goodBody},
	})

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)

	if ctx.ErrorCount() != 1 {
		t.Fatalf("expected exactly 1 error, got %d", ctx.ErrorCount())
	}
	if funs[0].Body.Body.Kind != llbc.StmtNop {
		t.Errorf("malformed occurrence must be degraded to Nop, got kind %d", funs[0].Body.Body.Kind)
	}
	if funs[1].Body.Body.Switch.Kind != llbc.SwitchMatch {
		t.Errorf("well-formed occurrence must still be rewritten")
	}
	if !ctx.HasErrors() {
		t.Errorf("crate must be marked partial")
	}
}

func TestRemoveReadDiscriminant_UnknownCaseValueDropped(t *testing.T) {
	ctx, adtID := newEnumCtx(
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
		types.ScalarFromInt(types.Isize, 2),
	)
	body := discrIdiom(adtID, types.Isize, []types.ScalarValue{
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 5), // no such discriminant
	}, marker(99))
	funs, globals := declsWithBody(body)

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)

	if ctx.ErrorCount() != 1 {
		t.Fatalf("expected 1 error for the stale case value, got %d", ctx.ErrorCount())
	}
	match := funs[0].Body.Body.Switch.Match
	if len(match.Targets) != 2 {
		t.Fatalf("both arms must survive, got %d", len(match.Targets))
	}
	if len(match.Targets[1].Variants) != 0 {
		t.Errorf("the unknown case value must be dropped from its arm, got %v", match.Targets[1].Variants)
	}
	if match.Otherwise == nil {
		t.Errorf("otherwise must be kept: the arms do not cover every variant")
	}
}

func TestRemoveReadDiscriminant_NonEnumScrutinee(t *testing.T) {
	ctx := trans.New("test_crate", 0)
	var fields ids.Vector[ids.FieldID, types.Field]
	adtID := ctx.TypeDecls.Push(types.TypeDecl{
		DefID:   0,
		IsLocal: true,
		Name:    types.NameFromIdents("test_crate", "S"),
		Kind:    types.StructKind(fields),
	})
	body := discrIdiom(adtID, types.Isize,
		[]types.ScalarValue{types.ScalarFromInt(types.Isize, 0)}, marker(99))
	funs, globals := declsWithBody(body)

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)

	if ctx.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", ctx.ErrorCount())
	}
	if funs[0].Body.Body.Kind != llbc.StmtNop {
		t.Errorf("occurrence over a struct must be degraded to Nop")
	}
}

func TestRemoveReadDiscriminant_NestedOccurrences(t *testing.T) {
	// The idiom inside a match arm of an outer idiom must be rewritten
	// as well: the visitor re-visits rewritten nodes.
	ctx, adtID := newEnumCtx(
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	)
	inner := discrIdiom(adtID, types.Isize, []types.ScalarValue{
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	}, marker(99))

	assign := llbc.NewAssign(testMeta, gast.LocalPlace(1), gast.DiscriminantOf(gast.LocalPlace(0), adtID))
	outer := llbc.NewSequence(assign, llbc.NewSwitch(testMeta, llbc.Switch{
		Kind: llbc.SwitchIntKind,
		SwitchInt: llbc.SwitchInt{
			Scrutinee: gast.MoveOperand(gast.LocalPlace(1)),
			IntTy:     types.Isize,
			Targets: []llbc.SwitchIntTarget{
				{Values: []types.ScalarValue{types.ScalarFromInt(types.Isize, 0)}, Target: inner},
				{Values: []types.ScalarValue{types.ScalarFromInt(types.Isize, 1)}, Target: marker(1)},
			},
			Otherwise: marker(99),
		},
	}))
	funs, globals := declsWithBody(outer)

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)

	if ctx.ErrorCount() != 0 {
		t.Fatalf("expected no errors, got %d", ctx.ErrorCount())
	}
	if err := transform.CheckNoReadDiscriminant(&funs, &globals); err != nil {
		t.Fatalf("discriminant reads survived: %v", err)
	}
	got := funs[0].Body.Body
	if got.Switch.Kind != llbc.SwitchMatch {
		t.Fatalf("outer idiom not rewritten")
	}
	if got.Switch.Match.Targets[0].Target.Switch.Kind != llbc.SwitchMatch {
		t.Errorf("inner idiom not rewritten")
	}
}

func TestRemoveReadDiscriminant_Idempotent(t *testing.T) {
	ctx, adtID := newEnumCtx(
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	)
	body := discrIdiom(adtID, types.Isize, []types.ScalarValue{
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	}, marker(99))
	funs, globals := declsWithBody(body)

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)
	first := *funs[0].Body.Body

	transform.RemoveReadDiscriminant(ctx, &funs, &globals)
	second := *funs[0].Body.Body

	if ctx.ErrorCount() != 0 {
		t.Fatalf("second run introduced errors: %d", ctx.ErrorCount())
	}
	if first.Kind != second.Kind || first.Switch.Kind != second.Switch.Kind ||
		len(first.Switch.Match.Targets) != len(second.Switch.Match.Targets) {
		t.Errorf("second run changed the body")
	}
}

func TestRemoveReadDiscriminant_Parallel(t *testing.T) {
	ctx, adtID := newEnumCtx(
		types.ScalarFromInt(types.Isize, 0),
		types.ScalarFromInt(types.Isize, 1),
	)
	var funs llbc.FunDecls
	var globals llbc.GlobalDecls
	for i := 0; i < 16; i++ {
		body := discrIdiom(adtID, types.Isize, []types.ScalarValue{
			types.ScalarFromInt(types.Isize, 0),
			types.ScalarFromInt(types.Isize, 1),
		}, marker(99))
		funs.Push(llbc.FunDecl{
			DefID:   ids.FunDeclID(i),
			IsLocal: true,
			Name:    types.NameFromIdents("test_crate", "f"),
			Body:    &llbc.ExprBody{Meta: testMeta, Body: body},
		})
	}

	transform.RemoveReadDiscriminantParallel(ctx, &funs, &globals, 4)

	if ctx.ErrorCount() != 0 {
		t.Fatalf("expected no errors, got %d", ctx.ErrorCount())
	}
	if err := transform.CheckNoReadDiscriminant(&funs, &globals); err != nil {
		t.Fatalf("discriminant reads survived: %v", err)
	}
}

func TestRemoveReadDiscriminant_BareReadPanics(t *testing.T) {
	// A discriminant read that is not the head of a sequence cannot be
	// folded; meeting one is a broken invariant, not a diagnostic.
	ctx, adtID := newEnumCtx(types.ScalarFromInt(types.Isize, 0))
	body := llbc.NewAssign(testMeta, gast.LocalPlace(1), gast.DiscriminantOf(gast.LocalPlace(0), adtID))
	funs, globals := declsWithBody(body)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic on a bare discriminant read")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "discriminant") {
			t.Errorf("unexpected panic payload: %v", r)
		}
	}()
	transform.RemoveReadDiscriminant(ctx, &funs, &globals)
}
