package types

import (
	"fmt"

	"llbc/internal/ids"
)

// RegionKind discriminates Region variants.
type RegionKind uint8

const (
	// RegionStatic is the 'static region.
	RegionStatic RegionKind = iota
	// RegionBVar is a bound region variable, addressed by de-Bruijn
	// binder depth plus the variable's id within that binder.
	RegionBVar
	// RegionErased carries no lifetime information. Signature-level
	// types must never contain erased regions.
	RegionErased
	// RegionUnknown is an error placeholder.
	RegionUnknown
)

// Region is a lifetime annotation as it appears in signatures. Function
// bodies use ErasedRegion instead; see Ty.
type Region struct {
	Kind  RegionKind     `msgpack:"kind"`
	Depth ids.DeBruijnID `msgpack:"depth"`
	Var   ids.RegionID   `msgpack:"var"`
}

// StaticRegion returns the 'static region.
func StaticRegion() Region {
	return Region{Kind: RegionStatic}
}

// BoundRegion returns the bound region variable at the given binder
// depth and index.
func BoundRegion(depth ids.DeBruijnID, v ids.RegionID) Region {
	return Region{Kind: RegionBVar, Depth: depth, Var: v}
}

func (r Region) String() string {
	switch r.Kind {
	case RegionStatic:
		return "'static"
	case RegionBVar:
		return fmt.Sprintf("'%d_%d", r.Depth, r.Var)
	case RegionErased:
		return "'_"
	default:
		return "'?"
	}
}

// ErasedRegion is the region representation used inside function bodies.
// It carries no information; a dedicated type (rather than struct{})
// makes the two instantiations of Ty explicit at every use site.
type ErasedRegion struct{}

func (ErasedRegion) String() string { return "'_" }

// RegionVar is a region variable declaration inside GenericParams.
type RegionVar struct {
	Index ids.RegionID `msgpack:"index"`
	Name  string       `msgpack:"name"`
}
