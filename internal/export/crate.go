// Package export assembles the final crate snapshot and writes it out.
//
// The snapshot schema must stay as stable as possible: downstream
// verification tools decode it independently of this module. Both body
// flavors share it, differing only in the function/global body shape.
package export

import (
	"sort"

	"llbc/internal/gast"
	"llbc/internal/ids"
	"llbc/internal/llbc"
	"llbc/internal/source"
	"llbc/internal/trans"
	"llbc/internal/types"
	"llbc/internal/ullbc"
)

// DeclKind names the declaration table a group's ids index.
type DeclKind uint8

const (
	DeclKindType DeclKind = iota
	DeclKindFun
	DeclKindGlobal
	DeclKindTraitDecl
	DeclKindTraitImpl
)

// DeclarationGroup is one entry of the externally computed declaration
// ordering: a single declaration, or a set of mutually recursive ones
// that must be emitted together. Exactly the id list matching Kind is
// populated. The ordering is consumed verbatim; this package neither
// validates nor recomputes it.
type DeclarationGroup struct {
	Kind      DeclKind `msgpack:"kind"`
	Recursive bool     `msgpack:"recursive"`

	Types      []ids.TypeDeclID   `msgpack:"types"`
	Funs       []ids.FunDeclID    `msgpack:"funs"`
	Globals    []ids.GlobalDeclID `msgpack:"globals"`
	TraitDecls []ids.TraitDeclID  `msgpack:"trait_decls"`
	TraitImpls []ids.TraitImplID  `msgpack:"trait_impls"`
}

// FileEntry pairs a file id with its resolved name. Spans store only
// the id; decoding goes through this table.
type FileEntry struct {
	ID   source.FileID   `msgpack:"id"`
	Name source.FileName `msgpack:"name"`
}

// GCrateData is an immutable, point-in-time snapshot of a translated
// crate, generic over the body shape FD/GD of its function and global
// declarations. Created once after all passes ran; never mutated.
type GCrateData[FD, GD any] struct {
	Name string `msgpack:"name"`
	// IDToFile is sorted by id so serializing the same crate twice
	// yields identical bytes.
	IDToFile     []FileEntry        `msgpack:"id_to_file"`
	Declarations []DeclarationGroup `msgpack:"declarations"`
	Types        []types.TypeDecl   `msgpack:"types"`
	Functions    []FD               `msgpack:"functions"`
	Globals      []GD               `msgpack:"globals"`
	TraitDecls   []gast.TraitDecl   `msgpack:"trait_decls"`
	TraitImpls   []gast.TraitImpl   `msgpack:"trait_impls"`
	// HasErrors records that translation hit unrecoverable errors and
	// the snapshot only partially describes the crate. Derived from the
	// context's error counter at assembly time; never serialized.
	HasErrors bool `msgpack:"-"`
}

// NewGCrateData assembles a snapshot from the translation context, the
// lowered declaration tables and the externally computed ordering.
func NewGCrateData[FD, GD any](
	ctx *trans.Ctx,
	orderedDecls []DeclarationGroup,
	funs ids.Vector[ids.FunDeclID, FD],
	globals ids.Vector[ids.GlobalDeclID, GD],
) *GCrateData[FD, GD] {
	idToFile := make([]FileEntry, 0, len(ctx.IDToFile))
	for id, name := range ctx.IDToFile {
		idToFile = append(idToFile, FileEntry{ID: id, Name: name})
	}
	sort.Slice(idToFile, func(i, j int) bool { return idToFile[i].ID < idToFile[j].ID })

	// The tables keep declarations at their id's index, so flattening
	// the vectors loses nothing.
	return &GCrateData[FD, GD]{
		Name:         ctx.CrateName,
		IDToFile:     idToFile,
		Declarations: orderedDecls,
		Types:        ctx.TypeDecls,
		Functions:    funs,
		Globals:      globals,
		TraitDecls:   ctx.TraitDecls,
		TraitImpls:   ctx.TraitImpls,
		HasErrors:    ctx.HasErrors(),
	}
}

// UCrate is the snapshot flavor with unstructured bodies.
type UCrate = GCrateData[ullbc.FunDecl, ullbc.GlobalDecl]

// LCrate is the snapshot flavor with structured bodies.
type LCrate = GCrateData[llbc.FunDecl, llbc.GlobalDecl]

// CrateKind discriminates CrateData variants.
type CrateKind uint8

const (
	CrateULLBC CrateKind = iota
	CrateLLBC
)

// CrateData is the snapshot in either flavor.
type CrateData struct {
	Kind  CrateKind
	ULLBC *UCrate
	LLBC  *LCrate
}

// NewULLBC assembles an unstructured-body snapshot.
func NewULLBC(ctx *trans.Ctx, orderedDecls []DeclarationGroup, funs ullbc.FunDecls, globals ullbc.GlobalDecls) CrateData {
	return CrateData{Kind: CrateULLBC, ULLBC: NewGCrateData(ctx, orderedDecls, funs, globals)}
}

// NewLLBC assembles a structured-body snapshot.
func NewLLBC(ctx *trans.Ctx, orderedDecls []DeclarationGroup, funs llbc.FunDecls, globals llbc.GlobalDecls) CrateData {
	return CrateData{Kind: CrateLLBC, LLBC: NewGCrateData(ctx, orderedDecls, funs, globals)}
}

// HasErrors reports whether the snapshot is partial.
func (cd *CrateData) HasErrors() bool {
	switch cd.Kind {
	case CrateULLBC:
		return cd.ULLBC.HasErrors
	default:
		return cd.LLBC.HasErrors
	}
}
