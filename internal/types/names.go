package types

import (
	"strings"

	"llbc/internal/ids"
)

// Item names are built by the name collaborator; this file only defines
// the shapes the data model stores. A name is a path of string elements,
// disambiguated with indices where impl blocks (or macro expansions)
// would otherwise collide. The first element is always the crate name.

// PathElemKind discriminates PathElem variants.
type PathElemKind uint8

const (
	PathIdent PathElemKind = iota
	PathImpl
)

// PathElem is one segment of an item path.
type PathElem struct {
	Kind          PathElemKind      `msgpack:"kind"`
	Ident         string            `msgpack:"ident"`
	Disambiguator ids.Disambiguator `msgpack:"disambiguator"`
	Impl          *ImplElem         `msgpack:"impl"`
}

// ImplElemKind discriminates ImplElem variants: inherent impl blocks
// (`impl List<T>`) versus trait impl blocks (`impl PartialEq for List<T>`).
type ImplElemKind uint8

const (
	ImplTy ImplElemKind = iota
	ImplTrait
)

// ImplElem is the path segment for an impl block.
type ImplElem struct {
	Disambiguator ids.Disambiguator `msgpack:"disambiguator"`
	Generics      GenericParams     `msgpack:"generics"`
	Preds         Predicates        `msgpack:"preds"`
	Kind          ImplElemKind      `msgpack:"kind"`
	Ty            RTy               `msgpack:"ty"`
	// Trait names the implemented trait; its first generic argument is
	// the implementing type.
	Trait RTraitDeclRef `msgpack:"trait"`
}

// Name is an item path.
type Name struct {
	Elems []PathElem `msgpack:"name"`
}

// NameFromIdents builds a name out of plain identifiers, all with
// disambiguator zero.
func NameFromIdents(idents ...string) Name {
	elems := make([]PathElem, 0, len(idents))
	for _, id := range idents {
		elems = append(elems, PathElem{Kind: PathIdent, Ident: id})
	}
	return Name{Elems: elems}
}

func (n Name) String() string {
	var sb strings.Builder
	for i, e := range n.Elems {
		if i > 0 {
			sb.WriteString("::")
		}
		switch e.Kind {
		case PathImpl:
			sb.WriteString("{impl}")
		default:
			sb.WriteString(e.Ident)
		}
	}
	return sb.String()
}
