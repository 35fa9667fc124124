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

// ScrubUnsolvedWitnesses rewrites every residual Unsolved trait witness
// to the Unknown error placeholder, registering an error per
// occurrence. Solving should have discharged them all; survivors mean
// resolution gave up on an obligation. Runs last, before assembly, so
// no Unsolved witness reaches the exported snapshot. In ErrorOnFailure
// mode the first survivor panics instead.
func ScrubUnsolvedWitnesses(ctx *trans.Ctx, funs *llbc.FunDecls, globals *llbc.GlobalDecls) {
	scrub := func(span source.Span) func(*types.TraitInstanceID) {
		return func(w *types.TraitInstanceID) {
			if w.Kind != types.TraitInstUnsolved {
				return
			}
			msg := fmt.Sprintf("could not solve the obligation for trait %d", w.Trait)
			ctx.ReportError(span, diag.TransUnsolvedClause, msg)
			*w = types.UnknownInstance(msg)
		}
	}

	ctx.TypeDecls.Iter(func(_ ids.TypeDeclID, decl *types.TypeDecl) bool {
		f := scrub(decl.Meta.Span)
		types.WalkParamsWitnesses(&decl.Generics, f)
		types.WalkPredicatesWitnesses(&decl.Preds, f)
		scrubTypeDeclKind(&decl.Kind, f)
		return true
	})
	ctx.TraitDecls.Iter(func(_ ids.TraitDeclID, decl *gast.TraitDecl) bool {
		f := scrub(decl.Meta.Span)
		types.WalkParamsWitnesses(&decl.Generics, f)
		types.WalkPredicatesWitnesses(&decl.Preds, f)
		decl.ParentClauses.Iter(func(_ ids.TraitClauseID, c *types.TraitClause) bool {
			types.WalkGenericArgsWitnesses(&c.Generics, f)
			return true
		})
		for i := range decl.Consts {
			types.WalkTyWitnesses(&decl.Consts[i].Ty, f)
		}
		for i := range decl.Types {
			decl.Types[i].Clauses.Iter(func(_ ids.TraitClauseID, c *types.TraitClause) bool {
				types.WalkGenericArgsWitnesses(&c.Generics, f)
				return true
			})
		}
		return true
	})
	ctx.TraitImpls.Iter(func(_ ids.TraitImplID, impl *gast.TraitImpl) bool {
		f := scrub(impl.Meta.Span)
		types.WalkParamsWitnesses(&impl.Generics, f)
		types.WalkPredicatesWitnesses(&impl.Preds, f)
		types.WalkGenericArgsWitnesses(&impl.ImplTrait.Generics, f)
		for i := range impl.ParentTraitRefs {
			types.WalkTraitRefWitnesses(&impl.ParentTraitRefs[i], f)
		}
		for i := range impl.Consts {
			types.WalkTyWitnesses(&impl.Consts[i].Ty, f)
		}
		for i := range impl.Types {
			types.WalkTyWitnesses(&impl.Types[i].Ty, f)
		}
		return true
	})

	funs.Iter(func(_ ids.FunDeclID, decl *llbc.FunDecl) bool {
		f := scrub(decl.Meta.Span)
		types.WalkFunSigWitnesses(&decl.Signature, f)
		scrubBody(decl.Body, f)
		return true
	})
	globals.Iter(func(_ ids.GlobalDeclID, decl *llbc.GlobalDecl) bool {
		f := scrub(decl.Meta.Span)
		types.WalkTyWitnesses(&decl.Ty, f)
		scrubBody(decl.Body, f)
		return true
	})
}

func scrubTypeDeclKind(kind *types.TypeDeclKind, f func(*types.TraitInstanceID)) {
	switch kind.Kind {
	case types.DeclStruct:
		kind.Fields.Iter(func(_ ids.FieldID, field *types.Field) bool {
			types.WalkTyWitnesses(&field.Ty, f)
			return true
		})
	case types.DeclEnum:
		kind.Variants.Iter(func(_ ids.VariantID, variant *types.Variant) bool {
			variant.Fields.Iter(func(_ ids.FieldID, field *types.Field) bool {
				types.WalkTyWitnesses(&field.Ty, f)
				return true
			})
			return true
		})
	}
}

// witnessScrubber walks a body's statements rewriting witnesses inside
// call and aggregate generic arguments.
type witnessScrubber struct {
	llbc.NopTypeVisitor
	f func(*types.TraitInstanceID)
}

func (s *witnessScrubber) VisitStatement(st *llbc.Statement) {
	switch st.Kind {
	case llbc.StmtCall:
		types.WalkGenericArgsWitnesses(&st.Call.Generics, s.f)
	case llbc.StmtAssign:
		if st.Assign.Src.Kind == gast.RvAggregate {
			types.WalkGenericArgsWitnesses(&st.Assign.Src.Aggregate.Kind.Generics, s.f)
		}
	}
	llbc.DefaultVisitStatement(s, st)
}

func scrubBody(body *llbc.ExprBody, f func(*types.TraitInstanceID)) {
	if body == nil {
		return
	}
	body.Locals.Iter(func(_ ids.VarID, local *gast.Var) bool {
		types.WalkTyWitnesses(&local.Ty, f)
		return true
	})
	llbc.VisitBody(&witnessScrubber{f: f}, body)
}
