package gast

import (
	"llbc/internal/ids"
	"llbc/internal/source"
	"llbc/internal/types"
)

// TraitItemName names an associated item inside a trait.
type TraitItemName = string

// NamedTy binds an associated-constant or associated-type name to a
// type.
type NamedTy struct {
	Name TraitItemName `msgpack:"name"`
	Ty   types.RTy     `msgpack:"ty"`
}

// NamedClauses binds an associated-type name to the clauses that apply
// to it.
type NamedClauses struct {
	Name    TraitItemName                                    `msgpack:"name"`
	Clauses ids.Vector[ids.TraitClauseID, types.TraitClause] `msgpack:"clauses"`
}

// NamedFun binds an associated-method name to a function declaration.
type NamedFun struct {
	Name TraitItemName `msgpack:"name"`
	ID   ids.FunDeclID `msgpack:"id"`
}

// TraitDecl is a trait declaration: its own generics and clauses, the
// parent clauses (supertraits), and the signatures of its associated
// items. Clause witnesses of kind ParentClause index ParentClauses.
type TraitDecl struct {
	DefID    ids.TraitDeclID     `msgpack:"def_id"`
	IsLocal  bool                `msgpack:"is_local"`
	Name     types.Name          `msgpack:"name"`
	Meta     source.Meta         `msgpack:"meta"`
	Generics types.GenericParams `msgpack:"generics"`
	Preds    types.Predicates    `msgpack:"preds"`

	ParentClauses ids.Vector[ids.TraitClauseID, types.TraitClause] `msgpack:"parent_clauses"`
	Consts        []NamedTy      `msgpack:"consts"`
	Types         []NamedClauses `msgpack:"types"`
	// RequiredMethods must be provided by every impl; ProvidedMethods
	// have defaults and may be overridden.
	RequiredMethods []NamedFun      `msgpack:"required_methods"`
	ProvidedMethods []TraitItemName `msgpack:"provided_methods"`
}

// TraitImpl is a trait implementation. ImplTrait names the implemented
// trait; its first generic argument is the implementing type.
// ParentTraitRefs discharge the trait's parent clauses, in clause
// order; ItemClause witnesses walk the per-item clause refs the same
// way.
type TraitImpl struct {
	DefID     ids.TraitImplID     `msgpack:"def_id"`
	IsLocal   bool                `msgpack:"is_local"`
	Name      types.Name          `msgpack:"name"`
	Meta      source.Meta         `msgpack:"meta"`
	ImplTrait types.RTraitDeclRef `msgpack:"impl_trait"`
	Generics  types.GenericParams `msgpack:"generics"`
	Preds     types.Predicates    `msgpack:"preds"`

	ParentTraitRefs []types.RTraitRef `msgpack:"parent_trait_refs"`
	Consts          []NamedTy         `msgpack:"consts"`
	Types           []NamedTy         `msgpack:"types"`
	RequiredMethods []NamedFun        `msgpack:"required_methods"`
	ProvidedMethods []NamedFun        `msgpack:"provided_methods"`
}
