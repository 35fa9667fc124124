// Package source carries the file and span metadata attached to IR nodes.
//
// Spans only store file ids; the id-to-filename table lives in the
// translation context and is exported alongside the crate snapshot.
package source

import "fmt"

// FileID identifies a source file in the crate's file table.
type FileID uint32

// FileNameKind discriminates FileName variants.
type FileNameKind uint8

const (
	// FileLocal is a path relative to the crate root.
	FileLocal FileNameKind = iota
	// FileVirtual is a synthetic path (macro expansion, compiler builtin).
	FileVirtual
	// FileNotReal names a file that has no backing path at all.
	FileNotReal
)

// FileName is the resolved name of a source file.
type FileName struct {
	Kind FileNameKind `msgpack:"kind"`
	Path string       `msgpack:"path"`
}

func (f FileName) String() string {
	switch f.Kind {
	case FileVirtual:
		return "<virtual:" + f.Path + ">"
	case FileNotReal:
		return "<" + f.Path + ">"
	default:
		return f.Path
	}
}

// Span is a half-open byte range inside one file.
type Span struct {
	File  FileID `msgpack:"file"`
	Start uint32 `msgpack:"start"`
	End   uint32 `msgpack:"end"`
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover widens s to also include other. Spans in different files are
// left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Meta is the diagnostic metadata attached to a statement or declaration.
// GeneratedFromSpan points at the pre-expansion location when the node
// comes from expanded code.
type Meta struct {
	Span              Span  `msgpack:"span"`
	GeneratedFromSpan *Span `msgpack:"generated_from_span"`
}

// CombineMeta merges the metadata of two adjacent nodes, covering both
// spans. Used when re-sequencing statements so diagnostics keep pointing
// at the original source range.
func CombineMeta(m1, m2 Meta) Meta {
	return Meta{Span: m1.Span.Cover(m2.Span)}
}
