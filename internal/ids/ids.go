// Package ids defines the strongly typed identifiers used across the IR
// and the dense, index-addressable containers keyed by them.
//
// Every entity kind gets its own identifier type so that a VariantID can
// never be passed where a FieldID is expected. Identifiers are dense:
// they are assigned by Vector.Push at construction time and index the
// owning vector directly.
package ids

// TypeDeclID identifies a type declaration within a crate.
type TypeDeclID uint32

// VariantID identifies a variant within an enum declaration.
type VariantID uint32

// FieldID identifies a field within a struct or variant.
type FieldID uint32

// RegionID identifies a region variable within a binder.
type RegionID uint32

// TypeVarID identifies a generic type variable.
type TypeVarID uint32

// ConstGenericVarID identifies a const-generic variable.
type ConstGenericVarID uint32

// TraitClauseID identifies a trait clause within a clause list.
type TraitClauseID uint32

// TraitDeclID identifies a trait declaration.
type TraitDeclID uint32

// TraitImplID identifies a trait implementation.
type TraitImplID uint32

// FunDeclID identifies a function declaration.
type FunDeclID uint32

// GlobalDeclID identifies a global (static/const) declaration.
type GlobalDeclID uint32

// VarID identifies a local variable within a body.
type VarID uint32

// DeBruijnID is a binder depth for bound region variables: 0 designates
// the innermost binder enclosing the use site.
type DeBruijnID uint32

// Disambiguator distinguishes same-named path elements (impl blocks,
// macro expansions). Constructed by the name collaborator; opaque here.
type Disambiguator uint32
