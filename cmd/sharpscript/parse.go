package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sharpscript/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <files...>",
	Short: "Parse SharpScript source files",
	Long: `Parse builds the AST for each file (expanding includes) and reports
syntax diagnostics without evaluating anything`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	max := maxDiagnostics(cmd)
	useColor := colorEnabled(cmd, os.Stderr)

	results := make([]*driver.ParseResult, len(args))

	var g errgroup.Group
	for idx, path := range args {
		g.Go(func() error {
			result, err := driver.Parse(path, max)
			if err != nil {
				return fmt.Errorf("parsing of %q failed: %w", path, err)
			}
			results[idx] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := false
	for idx, result := range results {
		replBagDump(result.Bag, result.FileSet, useColor)
		file := result.Builder.Files.Get(result.File)
		status := "ok"
		if result.Bag.HasErrors() {
			status = "has errors"
			failed = true
		}
		fmt.Printf("%s: %d top-level statements, %d diagnostics (%s)\n",
			args[idx], len(file.Stmts), result.Bag.Len(), status)
	}
	if failed {
		os.Exit(1)
	}
	return nil
}
