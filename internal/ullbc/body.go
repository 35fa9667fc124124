// Package ullbc is the unstructured body representation produced by
// extraction: bodies are vectors of basic blocks ending in explicit
// terminators. Control-flow reconstruction turns it into the structured
// representation (package llbc); this package only exists as the other
// flavor a crate snapshot can carry.
package ullbc

import (
	"llbc/internal/gast"
	"llbc/internal/ids"
	"llbc/internal/source"
	"llbc/internal/types"
)

// BlockID identifies a basic block within one body.
type BlockID uint32

// StatementKind discriminates Statement variants.
type StatementKind uint8

const (
	StmtAssign StatementKind = iota
	StmtFakeRead
	StmtSetDiscriminant
	StmtStorageDead
	StmtDeinit
)

// Statement is one straight-line instruction of a block.
type Statement struct {
	Meta source.Meta   `msgpack:"meta"`
	Kind StatementKind `msgpack:"kind"`

	Assign          AssignStmt          `msgpack:"assign"`
	FakeRead        gast.Place          `msgpack:"fake_read"`
	SetDiscriminant SetDiscriminantStmt `msgpack:"set_discriminant"`
	StorageDead     ids.VarID           `msgpack:"storage_dead"`
	Deinit          gast.Place          `msgpack:"deinit"`
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

// TerminatorKind discriminates Terminator variants.
type TerminatorKind uint8

const (
	TermGoto TerminatorKind = iota
	TermSwitch
	TermPanic
	TermReturn
	TermUnreachable
	TermDrop
	TermCall
	TermAssert
)

// Terminator ends a block.
type Terminator struct {
	Meta source.Meta    `msgpack:"meta"`
	Kind TerminatorKind `msgpack:"kind"`

	Goto   BlockID       `msgpack:"goto"`
	Switch SwitchTargets `msgpack:"switch"`
	Drop   DropTerm      `msgpack:"drop"`
	Call   CallTerm      `msgpack:"call"`
	Assert AssertTerm    `msgpack:"assert"`
}

// SwitchTargetsKind discriminates SwitchTargets variants.
type SwitchTargetsKind uint8

const (
	// SwitchIf branches on a boolean.
	SwitchIf SwitchTargetsKind = iota
	// SwitchInt branches on an integer against raw case values.
	SwitchInt
)

// SwitchIntCase routes one raw case value to a block.
type SwitchIntCase struct {
	Value  types.ScalarValue `msgpack:"value"`
	Target BlockID           `msgpack:"target"`
}

// SwitchTargets is the payload of TermSwitch.
type SwitchTargets struct {
	Kind      SwitchTargetsKind `msgpack:"kind"`
	Scrutinee gast.Operand      `msgpack:"scrutinee"`

	// If payload.
	Then BlockID `msgpack:"then"`
	Else BlockID `msgpack:"else"`

	// SwitchInt payload.
	IntTy     types.IntegerTy `msgpack:"int_ty"`
	Cases     []SwitchIntCase `msgpack:"cases"`
	Otherwise BlockID         `msgpack:"otherwise"`
}

// DropTerm is the payload of TermDrop.
type DropTerm struct {
	Place  gast.Place `msgpack:"place"`
	Target BlockID    `msgpack:"target"`
}

// CallTerm is the payload of TermCall.
type CallTerm struct {
	Dst      gast.Place         `msgpack:"dst"`
	Fun      ids.FunDeclID      `msgpack:"fun"`
	Generics types.EGenericArgs `msgpack:"generics"`
	Args     []gast.Operand     `msgpack:"args"`
	Target   BlockID            `msgpack:"target"`
}

// AssertTerm is the payload of TermAssert.
type AssertTerm struct {
	Cond     gast.Operand `msgpack:"cond"`
	Expected bool         `msgpack:"expected"`
	Target   BlockID      `msgpack:"target"`
}

// BlockData is one basic block.
type BlockData struct {
	Statements []Statement `msgpack:"statements"`
	Terminator Terminator  `msgpack:"terminator"`
}

// Blocks is a body's block vector.
type Blocks = ids.Vector[BlockID, BlockData]

// ExprBody is an unstructured body.
type ExprBody = gast.GExprBody[Blocks]

// FunDecl is a function declaration with an unstructured body.
type FunDecl = gast.GFunDecl[Blocks]

// GlobalDecl is a global declaration with an unstructured body.
type GlobalDecl = gast.GGlobalDecl[Blocks]

// FunDecls is the crate's function table in this representation.
type FunDecls = ids.Vector[ids.FunDeclID, FunDecl]

// GlobalDecls is the crate's global table in this representation.
type GlobalDecls = ids.Vector[ids.GlobalDeclID, GlobalDecl]
