package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// WriteResult reports a successful write.
type WriteResult struct {
	// Path is the resolved absolute path of the written file.
	Path string
	// Partial is set when the snapshot only partially describes the
	// crate because translation encountered errors.
	Partial bool
}

// WriteToFile serializes the snapshot to dest, creating missing parent
// directories. Each failing step (directory creation, file creation,
// encoding) is reported as its own recoverable error; none of them
// crash the caller.
func (cd *CrateData) WriteToFile(dest string) (WriteResult, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return WriteResult{}, fmt.Errorf("create target directory %s: %w", dir, err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return WriteResult{}, fmt.Errorf("create target file %s: %w", dest, err)
	}

	enc := msgpack.NewEncoder(f)
	switch cd.Kind {
	case CrateULLBC:
		err = enc.Encode(cd.ULLBC)
	default:
		err = enc.Encode(cd.LLBC)
	}
	if err != nil {
		f.Close()
		return WriteResult{}, fmt.Errorf("encode crate snapshot to %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return WriteResult{}, fmt.Errorf("close target file %s: %w", dest, err)
	}

	// Resolve the path so callers can tell the user exactly where the
	// artifact landed.
	abs, err := filepath.Abs(dest)
	if err != nil {
		abs = dest
	}
	return WriteResult{Path: abs, Partial: cd.HasErrors()}, nil
}

// Encode serializes the snapshot to bytes, for callers that manage the
// destination themselves.
func (cd *CrateData) Encode() ([]byte, error) {
	switch cd.Kind {
	case CrateULLBC:
		return msgpack.Marshal(cd.ULLBC)
	default:
		return msgpack.Marshal(cd.LLBC)
	}
}
