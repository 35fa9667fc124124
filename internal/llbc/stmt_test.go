package llbc_test

import (
	"testing"

	"llbc/internal/llbc"
	"llbc/internal/source"
)

// kindCounter records every statement kind the visitor reaches.
type kindCounter struct {
	llbc.NopTypeVisitor
	kinds []llbc.StatementKind
}

func (c *kindCounter) VisitStatement(st *llbc.Statement) {
	c.kinds = append(c.kinds, st.Kind)
	llbc.DefaultVisitStatement(c, st)
}

func TestNewSequenceCoversBothSpans(t *testing.T) {
	first := llbc.NewNop(source.Meta{Span: source.Span{File: 1, Start: 4, End: 8}})
	second := llbc.NewNop(source.Meta{Span: source.Span{File: 1, Start: 20, End: 31}})
	seq := llbc.NewSequence(first, second)

	want := source.Span{File: 1, Start: 4, End: 31}
	if seq.Meta.Span != want {
		t.Errorf("sequence span = %s, want %s", seq.Meta.Span, want)
	}
}

func TestDefaultVisitRecursesSwitchArms(t *testing.T) {
	meta := source.Meta{}
	sw := llbc.NewSwitch(meta, llbc.Switch{
		Kind: llbc.SwitchMatch,
		Match: llbc.MatchSwitch{
			Targets: []llbc.MatchTarget{
				{Target: llbc.NewStatement(meta, llbc.StmtReturn)},
				{Target: llbc.NewStatement(meta, llbc.StmtPanic)},
			},
			Otherwise: llbc.NewNop(meta),
		},
	})
	loop := llbc.NewStatement(meta, llbc.StmtLoop)
	loop.Loop = sw
	body := llbc.NewSequence(llbc.NewNop(meta), loop)

	c := &kindCounter{}
	llbc.VisitBody(c, &llbc.ExprBody{Body: body})

	want := []llbc.StatementKind{
		llbc.StmtSequence, llbc.StmtNop, llbc.StmtLoop, llbc.StmtSwitch,
		llbc.StmtReturn, llbc.StmtPanic, llbc.StmtNop,
	}
	if len(c.kinds) != len(want) {
		t.Fatalf("visited %d statements, want %d", len(c.kinds), len(want))
	}
	for i := range want {
		if c.kinds[i] != want[i] {
			t.Errorf("visit %d: kind %d, want %d", i, c.kinds[i], want[i])
		}
	}
}

func TestVisitBodyNil(t *testing.T) {
	c := &kindCounter{}
	llbc.VisitBody(c, nil)
	llbc.VisitBody(c, &llbc.ExprBody{})
	if len(c.kinds) != 0 {
		t.Errorf("nil bodies must not be visited")
	}
}
