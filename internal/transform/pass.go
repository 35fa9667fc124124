package transform

import (
	"golang.org/x/sync/errgroup"

	"llbc/internal/ids"
	"llbc/internal/llbc"
	"llbc/internal/trans"
)

// forEachBody yields every present function and global body. Bodies are
// independent; the order is irrelevant to the passes.
func forEachBody(funs *llbc.FunDecls, globals *llbc.GlobalDecls, yield func(*llbc.ExprBody)) {
	funs.Iter(func(_ ids.FunDeclID, decl *llbc.FunDecl) bool {
		if decl.Body != nil {
			yield(decl.Body)
		}
		return true
	})
	globals.Iter(func(_ ids.GlobalDeclID, decl *llbc.GlobalDecl) bool {
		if decl.Body != nil {
			yield(decl.Body)
		}
		return true
	})
}

// RemoveReadDiscriminant runs the discriminant-to-match rewrite over
// every function and global body of the crate. Failures are local: a
// malformed occurrence is degraded to Nop and registered on ctx, and
// the rest of the crate keeps translating.
//
// A body that still contains a discriminant read afterwards is a broken
// rewrite invariant and panics.
func RemoveReadDiscriminant(ctx *trans.Ctx, funs *llbc.FunDecls, globals *llbc.GlobalDecls) {
	forEachBody(funs, globals, func(body *llbc.ExprBody) {
		v := &discrToMatch{ctx: ctx}
		llbc.VisitBody(v, body)
	})
	mustHaveNoReadDiscriminant(funs, globals)
}

// RemoveReadDiscriminantParallel is RemoveReadDiscriminant with bodies
// rewritten concurrently, at most jobs at a time. Bodies only share the
// declaration tables (read) and the error counter (atomic), so per-body
// rewriting needs no further synchronization.
func RemoveReadDiscriminantParallel(ctx *trans.Ctx, funs *llbc.FunDecls, globals *llbc.GlobalDecls, jobs int) {
	g := new(errgroup.Group)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	forEachBody(funs, globals, func(body *llbc.ExprBody) {
		g.Go(func() error {
			v := &discrToMatch{ctx: ctx}
			llbc.VisitBody(v, body)
			return nil
		})
	})
	// The workers only fail by panicking (broken invariants), never by
	// returning an error.
	_ = g.Wait()
	mustHaveNoReadDiscriminant(funs, globals)
}
