// Package transform hosts the normalization passes run over translated
// bodies before crate assembly.
package transform

import (
	"fmt"

	"llbc/internal/diag"
	"llbc/internal/gast"
	"llbc/internal/ids"
	"llbc/internal/llbc"
	"llbc/internal/source"
	"llbc/internal/trans"
	"llbc/internal/types"
)

// discrToMatch folds the raw two-instruction idiom
//
//	tmp := discriminant(place, adt);
//	switch tmp { v0 -> st0; ...; otherwise -> stN }
//
// into a single structured match on the enum place. Extraction
// guarantees a discriminant read is always consumed by exactly one
// subsequent integer switch; any other successor shape degrades the
// occurrence to Nop and registers an error.
type discrToMatch struct {
	llbc.NopTypeVisitor
	ctx *trans.Ctx
}

func (v *discrToMatch) VisitStatement(st *llbc.Statement) {
	v.update(st)

	// Visit again: normalizes the branches and the re-attached next
	// statement when we rewrote, and the sub-statements when we did
	// not.
	llbc.DefaultVisitStatement(v, st)
}

func (v *discrToMatch) update(st *llbc.Statement) {
	switch {
	case st.Kind == llbc.StmtSequence &&
		st.Sequence.First.Kind == llbc.StmtAssign &&
		st.Sequence.First.Assign.Src.Kind == gast.RvDiscriminant:
		v.fold(st)
	case st.Kind == llbc.StmtAssign && st.Assign.Src.Kind == gast.RvDiscriminant:
		// Every discriminant read reaches the visitor as the head of a
		// sequence and is folded there. Meeting one bare means the
		// rewrite missed it: a broken invariant, not a recoverable
		// input problem.
		panic(fmt.Sprintf("surviving discriminant read at %s", st.Meta.Span))
	}
}

func (v *discrToMatch) fold(st *llbc.Statement) {
	first := st.Sequence.First
	discr := first.Assign.Src.Discriminant
	dst := first.Assign.Dst
	if len(dst.Projection) != 0 {
		panic(fmt.Sprintf("discriminant destination is a projected place at %s", first.Meta.Span))
	}
	meta1 := first.Meta

	// The consuming switch follows immediately, possibly through one
	// level of sequencing. Anything deeper is the same local error as a
	// non-switch successor.
	st2 := st.Sequence.Second
	var (
		sw    llbc.SwitchInt
		meta2 source.Meta
		next  *llbc.Statement
	)
	switch {
	case st2.Kind == llbc.StmtSequence &&
		st2.Sequence.First.Kind == llbc.StmtSwitch &&
		st2.Sequence.First.Switch.Kind == llbc.SwitchIntKind:
		sw = st2.Sequence.First.Switch.SwitchInt
		meta2 = st2.Sequence.First.Meta
		next = st2.Sequence.Second
	case st2.Kind == llbc.StmtSwitch && st2.Switch.Kind == llbc.SwitchIntKind:
		sw = st2.Switch.SwitchInt
		meta2 = st2.Meta
	default:
		v.ctx.ReportError(st.Meta.Span, diag.TransDiscrNoSwitch,
			"a discriminant read must be followed by an integer switch")
		// The discriminant read cannot be kept around, so the whole
		// sequence is nopped.
		*st = llbc.Statement{Meta: st.Meta, Kind: llbc.StmtNop}
		return
	}

	if sw.Scrutinee.Kind != gast.OperandMove ||
		len(sw.Scrutinee.Place.Projection) != 0 ||
		sw.Scrutinee.Place.Var != dst.Var {
		panic(fmt.Sprintf("integer switch at %s does not consume the discriminant temporary", meta2.Span))
	}

	variants, ok := v.resolveEnumVariants(discr.Adt, st.Meta.Span)
	if !ok {
		// The rewrite needs variant metadata; degrade the occurrence.
		*st = llbc.Statement{Meta: st.Meta, Kind: llbc.StmtNop}
		return
	}

	// Map each variant's runtime discriminant bit pattern to its id.
	// Discriminants may come from any signed integer type; matching is
	// on the width-truncated unsigned pattern only.
	discrToID := make(map[types.Uint128]ids.VariantID, variants.Len())
	variants.Iter(func(id ids.VariantID, variant *types.Variant) bool {
		discrToID[variant.Discriminant] = id
		return true
	})

	covered := make(map[types.Uint128]struct{})
	targets := make([]llbc.MatchTarget, 0, len(sw.Targets))
	for i := range sw.Targets {
		arm := &sw.Targets[i]
		variantIDs := make([]ids.VariantID, 0, len(arm.Values))
		for _, val := range arm.Values {
			bits := val.ToBits()
			covered[bits] = struct{}{}
			id, known := discrToID[bits]
			if !known {
				// The IR was produced against a stale or inconsistent
				// type definition; drop the case value from the arm.
				v.ctx.ReportError(st.Meta.Span, diag.TransDiscrUnknownValue,
					fmt.Sprintf("found incorrect discriminant %s for enum %d", bits, discr.Adt))
				continue
			}
			variantIDs = append(variantIDs, id)
		}
		targets = append(targets, llbc.MatchTarget{Variants: variantIDs, Target: arm.Target})
	}

	// When every variant is covered the otherwise branch is provably
	// unreachable and dropped; otherwise it is kept verbatim.
	var otherwise *llbc.Statement
	if len(covered) != len(discrToID) {
		otherwise = sw.Otherwise
	}

	match := llbc.Switch{
		Kind: llbc.SwitchMatch,
		Match: llbc.MatchSwitch{
			Scrutinee: discr.Place,
			Targets:   targets,
			Otherwise: otherwise,
		},
	}

	if next != nil {
		matchStmt := llbc.NewSwitch(source.CombineMeta(meta1, meta2), match)
		seq := llbc.NewSequence(matchStmt, next)
		*st = llbc.Statement{Meta: st.Meta, Kind: llbc.StmtSequence, Sequence: seq.Sequence}
		return
	}
	*st = llbc.Statement{Meta: st.Meta, Kind: llbc.StmtSwitch, Switch: match}
}

// resolveEnumVariants looks up the enum declaration a discriminant read
// names and returns its variants. Every failure path registers an error
// so the caller can degrade the occurrence.
func (v *discrToMatch) resolveEnumVariants(adt ids.TypeDeclID, span source.Span) (ids.Vector[ids.VariantID, types.Variant], bool) {
	decl, ok := v.ctx.TypeDecls.Get(adt)
	if !ok {
		v.ctx.ReportError(span, diag.TransDiscrNotEnum,
			fmt.Sprintf("no type declaration for id %d", adt))
		return nil, false
	}
	switch decl.Kind.Kind {
	case types.DeclEnum:
		return decl.Kind.Variants, true
	case types.DeclStruct, types.DeclOpaque:
		v.ctx.ReportError(span, diag.TransDiscrNotEnum,
			fmt.Sprintf("discriminant read on non-enum type %s", decl.Name))
		return nil, false
	default:
		// The declaration itself failed to translate earlier.
		v.ctx.ReportError(span, diag.TransDiscrNotEnum,
			fmt.Sprintf("discriminant read on untranslated type %s", decl.Name))
		return nil, false
	}
}
