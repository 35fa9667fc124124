package types

import "llbc/internal/ids"

// TypeVar is a generic type variable declaration.
type TypeVar struct {
	Index ids.TypeVarID `msgpack:"index"`
	Name  string        `msgpack:"name"`
}

// ConstGenericVar is a const-generic variable declaration. Its type is
// necessarily a literal type.
type ConstGenericVar struct {
	Index ids.ConstGenericVarID `msgpack:"index"`
	Name  string                `msgpack:"name"`
	Ty    LiteralTy             `msgpack:"ty"`
}

// ConstGenericKind discriminates ConstGeneric variants.
type ConstGenericKind uint8

const (
	// CgGlobal references a global constant.
	CgGlobal ConstGenericKind = iota
	// CgVar references a const-generic variable.
	CgVar
	// CgValue is a concrete literal value.
	CgValue
)

// ConstGeneric is a value supplied for a const-generic parameter.
type ConstGeneric struct {
	Kind   ConstGenericKind      `msgpack:"kind"`
	Global ids.GlobalDeclID      `msgpack:"global"`
	Var    ids.ConstGenericVarID `msgpack:"var"`
	Value  Literal               `msgpack:"value"`
}

// GenericParams is the declaration-site side of genericity: the ordered
// variable declarations an item binds, plus its trait clauses. Compare
// GenericArgs, the use-site side. Trait clauses are grouped with the
// other parameters because, like them, they must be filled at use sites
// (with trait refs); predicates that merely constrain live in
// Predicates instead.
type GenericParams struct {
	Regions       ids.Vector[ids.RegionID, RegionVar]                `msgpack:"regions"`
	Types         ids.Vector[ids.TypeVarID, TypeVar]                 `msgpack:"types"`
	ConstGenerics ids.Vector[ids.ConstGenericVarID, ConstGenericVar] `msgpack:"const_generics"`
	TraitClauses  ids.Vector[ids.TraitClauseID, TraitClause]         `msgpack:"trait_clauses"`
}

// IsEmpty reports whether the item binds no generics at all.
func (p *GenericParams) IsEmpty() bool {
	return p.Regions.Len() == 0 && p.Types.Len() == 0 &&
		p.ConstGenerics.Len() == 0 && p.TraitClauses.Len() == 0
}

// GenericArgs is the use-site side of genericity: the regions, types,
// const-generic values and trait-reference witnesses supplied for the
// parameters of the referenced declaration. Arities must match the
// parameter lists pointwise in well-formed instances.
type GenericArgs[R any] struct {
	Regions       []R            `msgpack:"regions"`
	Types         []Ty[R]        `msgpack:"types"`
	ConstGenerics []ConstGeneric `msgpack:"const_generics"`
	TraitRefs     []TraitRef[R]  `msgpack:"trait_refs"`
}

// RGenericArgs are generic arguments with real regions.
type RGenericArgs = GenericArgs[Region]

// EGenericArgs are generic arguments with erased regions.
type EGenericArgs = GenericArgs[ErasedRegion]

// EmptyGenericArgs returns an empty argument list.
func EmptyGenericArgs[R any]() GenericArgs[R] {
	return GenericArgs[R]{}
}

// GenericArgsFromTypes builds an argument list carrying types only.
func GenericArgsFromTypes[R any](tys ...Ty[R]) GenericArgs[R] {
	return GenericArgs[R]{Types: tys}
}

// IsEmpty reports whether no arguments are supplied.
func (a *GenericArgs[R]) IsEmpty() bool {
	return len(a.Regions) == 0 && len(a.Types) == 0 &&
		len(a.ConstGenerics) == 0 && len(a.TraitRefs) == 0
}

// MatchesParams checks argument-list arity against a parameter list,
// pointwise.
func (a *GenericArgs[R]) MatchesParams(p *GenericParams) bool {
	return len(a.Regions) == p.Regions.Len() &&
		len(a.Types) == p.Types.Len() &&
		len(a.ConstGenerics) == p.ConstGenerics.Len() &&
		len(a.TraitRefs) == p.TraitClauses.Len()
}

// ParamsInfo records generic-parameter counts for a parent scope. It is
// used when a declaration must distinguish generics inherited from an
// enclosing scope (a trait or impl block) from generics local to the
// item itself; only trait-method-like declarations carry one. The host
// language only ever exposes one level of enclosing generics, so counts
// for a single parent suffice.
type ParamsInfo struct {
	NumRegionParams         int `msgpack:"num_region_params"`
	NumTypeParams           int `msgpack:"num_type_params"`
	NumConstGenericParams   int `msgpack:"num_const_generic_params"`
	NumTraitClauses         int `msgpack:"num_trait_clauses"`
	NumRegionsOutlive       int `msgpack:"num_regions_outlive"`
	NumTypesOutlive         int `msgpack:"num_types_outlive"`
	NumTraitTypeConstraints int `msgpack:"num_trait_type_constraints"`
}

// ParamsInfoFor summarizes a parameter list and its predicates.
func ParamsInfoFor(p *GenericParams, preds *Predicates) ParamsInfo {
	return ParamsInfo{
		NumRegionParams:         p.Regions.Len(),
		NumTypeParams:           p.Types.Len(),
		NumConstGenericParams:   p.ConstGenerics.Len(),
		NumTraitClauses:         p.TraitClauses.Len(),
		NumRegionsOutlive:       len(preds.RegionsOutlive),
		NumTypesOutlive:         len(preds.TypesOutlive),
		NumTraitTypeConstraints: len(preds.TraitTypeConstraints),
	}
}
