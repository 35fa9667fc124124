package gast

import (
	"llbc/internal/ids"
	"llbc/internal/source"
	"llbc/internal/types"
)

// Var is a local variable of a body. Name is empty for compiler
// temporaries. Body-level types always carry erased regions.
type Var struct {
	Index ids.VarID `msgpack:"index"`
	Name  string    `msgpack:"name"`
	Ty    types.ETy `msgpack:"ty"`
}

// GExprBody is a function or global body, generic over the shape B of
// its code: a vector of basic blocks in the unstructured
// representation, a statement tree in the structured one.
//
// Locals are laid out as: return place, then ArgCount argument locals,
// then the remaining locals.
type GExprBody[B any] struct {
	Meta     source.Meta                `msgpack:"meta"`
	ArgCount int                        `msgpack:"arg_count"`
	Locals   ids.Vector[ids.VarID, Var] `msgpack:"locals"`
	Body     B                          `msgpack:"body"`
}

// GFunDecl is a function declaration shell, generic over the body
// shape. A nil body means the function is opaque (external, or local
// and marked opaque).
type GFunDecl[B any] struct {
	DefID     ids.FunDeclID `msgpack:"def_id"`
	Meta      source.Meta   `msgpack:"meta"`
	IsLocal   bool          `msgpack:"is_local"`
	Name      types.Name    `msgpack:"name"`
	Signature types.FunSig  `msgpack:"signature"`
	Body      *GExprBody[B] `msgpack:"body"`
}

// GGlobalDecl is a global declaration shell, generic over the body
// shape of its initializer.
type GGlobalDecl[B any] struct {
	DefID   ids.GlobalDeclID `msgpack:"def_id"`
	Meta    source.Meta      `msgpack:"meta"`
	IsLocal bool             `msgpack:"is_local"`
	Name    types.Name       `msgpack:"name"`
	Ty      types.ETy        `msgpack:"ty"`
	Body    *GExprBody[B]    `msgpack:"body"`
}
