package transform

import (
	"errors"
	"fmt"

	"llbc/internal/gast"
	"llbc/internal/llbc"
	"llbc/internal/source"
)

// discrCollector records the spans of surviving discriminant reads.
type discrCollector struct {
	llbc.NopTypeVisitor
	spans []source.Span
}

func (c *discrCollector) VisitStatement(st *llbc.Statement) {
	if st.Kind == llbc.StmtAssign && st.Assign.Src.Kind == gast.RvDiscriminant {
		c.spans = append(c.spans, st.Meta.Span)
	}
	llbc.DefaultVisitStatement(c, st)
}

// CheckNoReadDiscriminant verifies the terminal state of the
// discriminant-to-match pass: no body contains a discriminant-producing
// assignment.
func CheckNoReadDiscriminant(funs *llbc.FunDecls, globals *llbc.GlobalDecls) error {
	var errs []error
	forEachBody(funs, globals, func(body *llbc.ExprBody) {
		c := &discrCollector{}
		llbc.VisitBody(c, body)
		for _, span := range c.spans {
			errs = append(errs, fmt.Errorf("surviving discriminant read at %s", span))
		}
	})
	return errors.Join(errs...)
}

func mustHaveNoReadDiscriminant(funs *llbc.FunDecls, globals *llbc.GlobalDecls) {
	if err := CheckNoReadDiscriminant(funs, globals); err != nil {
		panic(err)
	}
}
