package types

import "strings"

// Compare totally orders witnesses: first by kind in declaration order
// (so concrete impls and local clauses sort before the reflexive Self
// witness), then by the fields the kind selects. Deterministic clause
// serialization sorts with this.
func (id *TraitInstanceID) Compare(other *TraitInstanceID) int {
	if id.Kind != other.Kind {
		if id.Kind < other.Kind {
			return -1
		}
		return 1
	}
	switch id.Kind {
	case TraitInstImpl:
		return cmpU32(uint32(id.Impl), uint32(other.Impl))
	case TraitInstBuiltinOrAuto:
		return cmpU32(uint32(id.Trait), uint32(other.Trait))
	case TraitInstClause:
		return cmpU32(uint32(id.Clause), uint32(other.Clause))
	case TraitInstParentClause:
		if c := id.Inner.Compare(other.Inner); c != 0 {
			return c
		}
		if c := cmpU32(uint32(id.Trait), uint32(other.Trait)); c != 0 {
			return c
		}
		return cmpU32(uint32(id.Clause), uint32(other.Clause))
	case TraitInstItemClause:
		if c := id.Inner.Compare(other.Inner); c != 0 {
			return c
		}
		if c := cmpU32(uint32(id.Trait), uint32(other.Trait)); c != 0 {
			return c
		}
		if c := strings.Compare(id.Item, other.Item); c != 0 {
			return c
		}
		return cmpU32(uint32(id.Clause), uint32(other.Clause))
	case TraitInstUnsolved:
		return cmpU32(uint32(id.Trait), uint32(other.Trait))
	case TraitInstUnknown:
		return strings.Compare(id.Message, other.Message)
	default:
		// Self and FnPointer order by kind alone.
		return 0
	}
}

func cmpU32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
