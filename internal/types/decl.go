package types

import (
	"llbc/internal/ids"
	"llbc/internal/source"
)

// TypeDeclKindTag discriminates TypeDeclKind variants.
type TypeDeclKindTag uint8

const (
	// DeclStruct is a transparent struct with an ordered field list.
	DeclStruct TypeDeclKindTag = iota
	// DeclEnum is a transparent enum with an ordered variant list.
	DeclEnum
	// DeclOpaque is a local type marked opaque, or an external type.
	DeclOpaque
	// DeclError stands in for a declaration whose translation failed;
	// only produced when translation continues past errors.
	DeclError
)

// TypeDeclKind is the body of a type declaration.
type TypeDeclKind struct {
	Kind     TypeDeclKindTag                    `msgpack:"kind"`
	Fields   ids.Vector[ids.FieldID, Field]     `msgpack:"fields"`
	Variants ids.Vector[ids.VariantID, Variant] `msgpack:"variants"`
	Error    string                             `msgpack:"error"`
}

func StructKind(fields ids.Vector[ids.FieldID, Field]) TypeDeclKind {
	return TypeDeclKind{Kind: DeclStruct, Fields: fields}
}

func EnumKind(variants ids.Vector[ids.VariantID, Variant]) TypeDeclKind {
	return TypeDeclKind{Kind: DeclEnum, Variants: variants}
}

func OpaqueKind() TypeDeclKind {
	return TypeDeclKind{Kind: DeclOpaque}
}

func ErrorKind(msg string) TypeDeclKind {
	return TypeDeclKind{Kind: DeclError, Error: msg}
}

// Variant is one enum variant.
//
// Discriminant is the runtime tag value of the variant, stored as a
// width-truncated unsigned bit pattern. It exists only so the
// normalization pass can map switch case values back to variants; it is
// never part of the serialized snapshot.
type Variant struct {
	Meta         source.Meta                    `msgpack:"meta"`
	Name         string                         `msgpack:"name"`
	Fields       ids.Vector[ids.FieldID, Field] `msgpack:"fields"`
	Discriminant Uint128                        `msgpack:"-"`
}

// Field is one struct or variant field. Name is empty for tuple-struct
// fields.
type Field struct {
	Meta source.Meta `msgpack:"meta"`
	Name string      `msgpack:"name"`
	Ty   RTy         `msgpack:"ty"`
}

// TypeDecl is a type declaration. Transparent declarations carry their
// definition in Kind; opaque ones only their signature-level data.
type TypeDecl struct {
	DefID    ids.TypeDeclID `msgpack:"def_id"`
	Meta     source.Meta    `msgpack:"meta"`
	IsLocal  bool           `msgpack:"is_local"`
	Name     Name           `msgpack:"name"`
	Generics GenericParams  `msgpack:"generics"`
	Preds    Predicates     `msgpack:"preds"`
	Kind     TypeDeclKind   `msgpack:"kind"`
}

// EnumVariants returns the variant vector if the declaration is an
// enum.
func (d *TypeDecl) EnumVariants() (ids.Vector[ids.VariantID, Variant], bool) {
	if d.Kind.Kind != DeclEnum {
		return nil, false
	}
	return d.Kind.Variants, true
}

// FunSig is a function signature. Signatures keep unerased regions:
// later lifetime abstraction needs them, while bodies get by with
// erased ones.
type FunSig struct {
	IsUnsafe bool          `msgpack:"is_unsafe"`
	Generics GenericParams `msgpack:"generics"`
	Preds    Predicates    `msgpack:"preds"`
	// ParentParamsInfo is set for trait-method-like declarations only;
	// see ParamsInfo.
	ParentParamsInfo *ParamsInfo `msgpack:"parent_params_info"`
	Inputs           []RTy       `msgpack:"inputs"`
	Output           RTy         `msgpack:"output"`
}
