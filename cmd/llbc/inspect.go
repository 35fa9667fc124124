package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"llbc/internal/export"
)

// snapshotSummary decodes just enough of either snapshot flavor to
// report sizes; bodies stay raw.
type snapshotSummary struct {
	Name         string               `msgpack:"name"`
	IDToFile     []export.FileEntry   `msgpack:"id_to_file"`
	Declarations []msgpack.RawMessage `msgpack:"declarations"`
	Types        []msgpack.RawMessage `msgpack:"types"`
	Functions    []msgpack.RawMessage `msgpack:"functions"`
	Globals      []msgpack.RawMessage `msgpack:"globals"`
	TraitDecls   []msgpack.RawMessage `msgpack:"trait_decls"`
	TraitImpls   []msgpack.RawMessage `msgpack:"trait_impls"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot>",
	Short: "Print a summary of a serialized crate snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot %s: %w", args[0], err)
		}
		var summary snapshotSummary
		if err := msgpack.Unmarshal(data, &summary); err != nil {
			return fmt.Errorf("decode snapshot %s: %w", args[0], err)
		}

		bold := color.New(color.Bold)
		bold.Printf("crate %s\n", summary.Name)
		fmt.Printf("  files:        %d\n", len(summary.IDToFile))
		fmt.Printf("  decl groups:  %d\n", len(summary.Declarations))
		fmt.Printf("  types:        %d\n", len(summary.Types))
		fmt.Printf("  functions:    %d\n", len(summary.Functions))
		fmt.Printf("  globals:      %d\n", len(summary.Globals))
		fmt.Printf("  trait decls:  %d\n", len(summary.TraitDecls))
		fmt.Printf("  trait impls:  %d\n", len(summary.TraitImpls))

		showFiles, _ := cmd.Flags().GetBool("files")
		if showFiles {
			for _, entry := range summary.IDToFile {
				fmt.Printf("  [%d] %s\n", entry.ID, entry.Name)
			}
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("files", false, "list the file table entries")
}
