// Package trans holds the shared translation context: the declaration
// tables filled by extraction, the file table, and the error counter
// the passes advance.
package trans

import (
	"fmt"
	"sync"
	"sync/atomic"

	"llbc/internal/diag"
	"llbc/internal/gast"
	"llbc/internal/ids"
	"llbc/internal/source"
	"llbc/internal/types"
)

// Ctx is the translation context. It is initialized before the passes
// run and not structurally mutated by them; only the error counter
// advances. Reads are unsynchronized; error reporting is safe for
// concurrent use so bodies can be processed in parallel.
type Ctx struct {
	CrateName string

	// IDToFile maps file ids to the resolved file names, as provided by
	// the extraction collaborator.
	IDToFile map[source.FileID]source.FileName

	TypeDecls  ids.Vector[ids.TypeDeclID, types.TypeDecl]
	TraitDecls ids.Vector[ids.TraitDeclID, gast.TraitDecl]
	TraitImpls ids.Vector[ids.TraitImplID, gast.TraitImpl]

	// ErrorOnFailure makes ReportError panic instead of recording, for
	// callers that want translation to stop at the first malformed
	// occurrence. The default is error-tolerant translation.
	ErrorOnFailure bool

	mu         sync.Mutex
	bag        *diag.Bag
	errorCount atomic.Uint64
}

// New creates a context for the given crate with an empty diagnostic
// bag. initialErrors carries over the extraction collaborator's running
// error count.
func New(crateName string, initialErrors uint64) *Ctx {
	ctx := &Ctx{
		CrateName: crateName,
		IDToFile:  make(map[source.FileID]source.FileName),
		bag:       diag.NewBag(1000),
	}
	ctx.errorCount.Store(initialErrors)
	return ctx
}

// ReportError registers a recoverable translation error: the diagnostic
// is recorded and the shared error counter advances. In ErrorOnFailure
// mode it panics instead.
func (ctx *Ctx) ReportError(span source.Span, code diag.Code, msg string) {
	if ctx.ErrorOnFailure {
		panic(fmt.Sprintf("translation error at %s: %s", span, msg))
	}
	ctx.errorCount.Add(1)
	ctx.mu.Lock()
	ctx.bag.Add(diag.NewError(code, span, msg))
	ctx.mu.Unlock()
}

// ErrorCount returns the number of errors registered so far.
func (ctx *Ctx) ErrorCount() uint64 {
	return ctx.errorCount.Load()
}

// HasErrors reports whether any error was registered.
func (ctx *Ctx) HasErrors() bool {
	return ctx.ErrorCount() > 0
}

// Diagnostics returns the recorded diagnostics.
func (ctx *Ctx) Diagnostics() []diag.Diagnostic {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.bag.Items()
}
