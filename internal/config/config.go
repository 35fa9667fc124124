// Package config loads translation options from a TOML file.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Options controls translation and export.
type Options struct {
	// CrateName overrides the crate name recorded in the snapshot.
	CrateName string `toml:"crate_name"`
	// Dest is the output path of the snapshot file.
	Dest string `toml:"dest"`
	// AbortOnError turns off error-tolerant translation: the first
	// malformed occurrence panics instead of degrading locally.
	AbortOnError bool `toml:"abort_on_error"`
	// Structured selects the structured (statement-tree) snapshot
	// flavor; extraction-shaped block bodies are exported otherwise.
	Structured bool `toml:"structured"`
	// Jobs bounds how many bodies the normalization pass rewrites
	// concurrently. 1 disables parallelism; 0 means one per CPU.
	Jobs int `toml:"jobs"`
}

// Default returns the options used when no file is given.
func Default() Options {
	return Options{
		Dest:       "crate.llbc",
		Structured: true,
		Jobs:       1,
	}
}

// Load reads options from a TOML file, filling unset fields from
// Default.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options file %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("options file %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks field ranges and resolves Jobs=0 to the CPU count.
func (o *Options) Validate() error {
	if o.Jobs < 0 {
		return fmt.Errorf("jobs must be non-negative, got %d", o.Jobs)
	}
	if o.Jobs == 0 {
		o.Jobs = runtime.NumCPU()
	}
	if o.Dest == "" {
		return fmt.Errorf("dest must not be empty")
	}
	return nil
}
