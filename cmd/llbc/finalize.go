package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"llbc/internal/config"
	"llbc/internal/export"
	"llbc/internal/gast"
	"llbc/internal/ids"
	"llbc/internal/llbc"
	"llbc/internal/trans"
	"llbc/internal/transform"
	"llbc/internal/types"
)

var finalizeCmd = &cobra.Command{
	Use:   "finalize <snapshot>",
	Short: "Re-run the finalization passes over a structured snapshot and rewrite it",
	Long: `finalize decodes a structured crate snapshot, scrubs residual unsolved
trait witnesses, verifies that no discriminant read survived normalization,
and writes the result back out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := config.Default()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			var err error
			if opts, err = config.Load(path); err != nil {
				return err
			}
		}
		if dest, _ := cmd.Flags().GetString("dest"); dest != "" {
			opts.Dest = dest
		}
		if err := opts.Validate(); err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot %s: %w", args[0], err)
		}
		var crate export.LCrate
		if err := msgpack.Unmarshal(data, &crate); err != nil {
			return fmt.Errorf("decode snapshot %s: %w", args[0], err)
		}

		name := crate.Name
		if opts.CrateName != "" {
			name = opts.CrateName
		}
		ctx := trans.New(name, 0)
		ctx.ErrorOnFailure = opts.AbortOnError
		for _, entry := range crate.IDToFile {
			ctx.IDToFile[entry.ID] = entry.Name
		}
		ctx.TypeDecls = ids.Vector[ids.TypeDeclID, types.TypeDecl](crate.Types)
		ctx.TraitDecls = ids.Vector[ids.TraitDeclID, gast.TraitDecl](crate.TraitDecls)
		ctx.TraitImpls = ids.Vector[ids.TraitImplID, gast.TraitImpl](crate.TraitImpls)

		funs := llbc.FunDecls(crate.Functions)
		globals := llbc.GlobalDecls(crate.Globals)

		transform.ScrubUnsolvedWitnesses(ctx, &funs, &globals)
		if err := transform.CheckNoReadDiscriminant(&funs, &globals); err != nil {
			return fmt.Errorf("snapshot %s: %w", args[0], err)
		}

		out := export.NewLLBC(ctx, crate.Declarations, funs, globals)
		res, err := out.WriteToFile(opts.Dest)
		if err != nil {
			return err
		}

		for _, d := range ctx.Diagnostics() {
			fmt.Fprintf(os.Stderr, "%s[%s] %s: %s\n", d.Severity, d.Code, d.Primary, d.Message)
		}
		if res.Partial {
			color.New(color.FgYellow).Printf("wrote %s (partial)\n", res.Path)
		} else {
			fmt.Printf("wrote %s\n", res.Path)
		}
		return nil
	},
}

func init() {
	finalizeCmd.Flags().String("config", "", "path to a TOML options file")
	finalizeCmd.Flags().String("dest", "", "output path, overriding the options file")
}
