// Package llbc is the structured body representation: bodies are
// statement trees with sequencing, structured switches and loops
// instead of a basic-block graph. It is the shape the normalization
// passes run on and the shape downstream verification tools consume.
package llbc

import (
	"llbc/internal/gast"
	"llbc/internal/ids"
	"llbc/internal/source"
	"llbc/internal/types"
)

// StatementKind discriminates Statement variants.
type StatementKind uint8

const (
	// StmtAssign assigns an rvalue to a place.
	StmtAssign StatementKind = iota
	// StmtFakeRead marks a read for borrow-checking purposes.
	StmtFakeRead
	// StmtSetDiscriminant writes an enum discriminant.
	StmtSetDiscriminant
	// StmtDrop drops a place.
	StmtDrop
	// StmtAssert checks an operand against an expected boolean.
	StmtAssert
	// StmtCall calls a function.
	StmtCall
	// StmtPanic aborts.
	StmtPanic
	// StmtReturn returns from the body.
	StmtReturn
	// StmtBreak exits Index+1 enclosing loops.
	StmtBreak
	// StmtContinue re-enters the Index+1-th enclosing loop.
	StmtContinue
	// StmtNop does nothing. Degraded occurrences become Nop.
	StmtNop
	// StmtSequence chains two statements.
	StmtSequence
	// StmtSwitch branches.
	StmtSwitch
	// StmtLoop loops forever until broken out of.
	StmtLoop
)

// Statement is one node of a structured body tree.
type Statement struct {
	Meta source.Meta   `msgpack:"meta"`
	Kind StatementKind `msgpack:"kind"`

	Assign          AssignStmt          `msgpack:"assign"`
	FakeRead        gast.Place          `msgpack:"fake_read"`
	SetDiscriminant SetDiscriminantStmt `msgpack:"set_discriminant"`
	Drop            gast.Place          `msgpack:"drop"`
	Assert          AssertStmt          `msgpack:"assert"`
	Call            CallStmt            `msgpack:"call"`
	LoopIndex       int                 `msgpack:"loop_index"`
	Sequence        SequenceStmt        `msgpack:"sequence"`
	Switch          Switch              `msgpack:"switch"`
	Loop            *Statement          `msgpack:"loop"`
}

// AssignStmt is the payload of StmtAssign.
type AssignStmt struct {
	Dst gast.Place  `msgpack:"dst"`
	Src gast.Rvalue `msgpack:"src"`
}

// SetDiscriminantStmt is the payload of StmtSetDiscriminant.
type SetDiscriminantStmt struct {
	Place   gast.Place    `msgpack:"place"`
	Variant ids.VariantID `msgpack:"variant"`
}

// AssertStmt is the payload of StmtAssert.
type AssertStmt struct {
	Cond     gast.Operand `msgpack:"cond"`
	Expected bool         `msgpack:"expected"`
}

// CallStmt is the payload of StmtCall.
type CallStmt struct {
	Dst      gast.Place         `msgpack:"dst"`
	Fun      ids.FunDeclID      `msgpack:"fun"`
	Generics types.EGenericArgs `msgpack:"generics"`
	Args     []gast.Operand     `msgpack:"args"`
}

// SequenceStmt is the payload of StmtSequence.
type SequenceStmt struct {
	First  *Statement `msgpack:"first"`
	Second *Statement `msgpack:"second"`
}

// SwitchKind discriminates Switch variants.
type SwitchKind uint8

const (
	// SwitchIf branches on a boolean operand.
	SwitchIf SwitchKind = iota
	// SwitchIntKind branches on an integer operand against raw case
	// values. Only produced by extraction; the normalization pass folds
	// the discriminant-read idiom into SwitchMatch.
	SwitchIntKind
	// SwitchMatch branches on the variant of an enum-typed place.
	SwitchMatch
)

// Switch is the payload of StmtSwitch.
type Switch struct {
	Kind      SwitchKind  `msgpack:"kind"`
	If        IfSwitch    `msgpack:"if"`
	SwitchInt SwitchInt   `msgpack:"switch_int"`
	Match     MatchSwitch `msgpack:"match"`
}

// IfSwitch is a two-way boolean branch.
type IfSwitch struct {
	Cond gast.Operand `msgpack:"cond"`
	Then *Statement   `msgpack:"then"`
	Else *Statement   `msgpack:"else"`
}

// SwitchIntTarget is one arm of an integer switch: the raw case values
// routed to a target statement.
type SwitchIntTarget struct {
	Values []types.ScalarValue `msgpack:"values"`
	Target *Statement          `msgpack:"target"`
}

// SwitchInt branches on an integer operand. Otherwise is taken when no
// case value matches.
type SwitchInt struct {
	Scrutinee gast.Operand      `msgpack:"scrutinee"`
	IntTy     types.IntegerTy   `msgpack:"int_ty"`
	Targets   []SwitchIntTarget `msgpack:"targets"`
	Otherwise *Statement        `msgpack:"otherwise"`
}

// MatchTarget is one arm of a variant match: the variants routed to a
// target statement.
type MatchTarget struct {
	Variants []ids.VariantID `msgpack:"variants"`
	Target   *Statement      `msgpack:"target"`
}

// MatchSwitch branches on the variant of an enum-typed place. A nil
// Otherwise means the arms cover every variant.
type MatchSwitch struct {
	Scrutinee gast.Place    `msgpack:"scrutinee"`
	Targets   []MatchTarget `msgpack:"targets"`
	Otherwise *Statement    `msgpack:"otherwise"`
}

// NewStatement builds a statement with the given metadata and kind.
func NewStatement(meta source.Meta, kind StatementKind) *Statement {
	return &Statement{Meta: meta, Kind: kind}
}

// NewNop builds a no-op statement.
func NewNop(meta source.Meta) *Statement {
	return NewStatement(meta, StmtNop)
}

// NewAssign builds an assignment statement.
func NewAssign(meta source.Meta, dst gast.Place, src gast.Rvalue) *Statement {
	st := NewStatement(meta, StmtAssign)
	st.Assign = AssignStmt{Dst: dst, Src: src}
	return st
}

// NewSwitch builds a switch statement.
func NewSwitch(meta source.Meta, sw Switch) *Statement {
	st := NewStatement(meta, StmtSwitch)
	st.Switch = sw
	return st
}

// NewSequence chains two statements; the sequence's span covers both.
func NewSequence(first, second *Statement) *Statement {
	st := NewStatement(source.CombineMeta(first.Meta, second.Meta), StmtSequence)
	st.Sequence = SequenceStmt{First: first, Second: second}
	return st
}

// ExprBody is a structured body.
type ExprBody = gast.GExprBody[*Statement]

// FunDecl is a function declaration with a structured body.
type FunDecl = gast.GFunDecl[*Statement]

// GlobalDecl is a global declaration with a structured body.
type GlobalDecl = gast.GGlobalDecl[*Statement]

// FunDecls is the crate's function table in this representation.
type FunDecls = ids.Vector[ids.FunDeclID, FunDecl]

// GlobalDecls is the crate's global table in this representation.
type GlobalDecls = ids.Vector[ids.GlobalDeclID, GlobalDecl]
