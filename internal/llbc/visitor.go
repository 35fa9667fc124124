package llbc

import "llbc/internal/types"

// StatementVisitor rewrites statement trees in place. Implementations
// typically mutate the visited node in VisitStatement, then call
// DefaultVisitStatement to recurse - including into the node they just
// produced, so rewrites that expose further occurrences structurally
// are picked up in the same pass.
type StatementVisitor interface {
	VisitStatement(st *Statement)
}

// TypeVisitor rewrites body-level types in place. Visitors that do not
// care about types can embed NopTypeVisitor.
type TypeVisitor interface {
	VisitTy(t *types.ETy)
}

// NopTypeVisitor ignores types.
type NopTypeVisitor struct{}

func (NopTypeVisitor) VisitTy(*types.ETy) {}

// DefaultVisitStatement recurses into every child statement of st,
// dispatching each through v.VisitStatement.
func DefaultVisitStatement(v StatementVisitor, st *Statement) {
	switch st.Kind {
	case StmtSequence:
		v.VisitStatement(st.Sequence.First)
		v.VisitStatement(st.Sequence.Second)
	case StmtSwitch:
		defaultVisitSwitch(v, &st.Switch)
	case StmtLoop:
		v.VisitStatement(st.Loop)
	}
}

func defaultVisitSwitch(v StatementVisitor, sw *Switch) {
	switch sw.Kind {
	case SwitchIf:
		v.VisitStatement(sw.If.Then)
		v.VisitStatement(sw.If.Else)
	case SwitchIntKind:
		for i := range sw.SwitchInt.Targets {
			v.VisitStatement(sw.SwitchInt.Targets[i].Target)
		}
		if sw.SwitchInt.Otherwise != nil {
			v.VisitStatement(sw.SwitchInt.Otherwise)
		}
	case SwitchMatch:
		for i := range sw.Match.Targets {
			v.VisitStatement(sw.Match.Targets[i].Target)
		}
		if sw.Match.Otherwise != nil {
			v.VisitStatement(sw.Match.Otherwise)
		}
	}
}

// VisitBody dispatches a whole body through the visitor. Visiting a nil
// body is a no-op.
func VisitBody(v StatementVisitor, body *ExprBody) {
	if body == nil || body.Body == nil {
		return
	}
	v.VisitStatement(body.Body)
}
