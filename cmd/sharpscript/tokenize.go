package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sharpscript/internal/diagfmt"
	"sharpscript/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <files...>",
	Short: "Tokenize SharpScript source files",
	Long:  `Tokenize breaks SharpScript source files into their constituent tokens`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	max := maxDiagnostics(cmd)
	useColor := colorEnabled(cmd, os.Stderr)

	// файлы обрабатываются параллельно, вывод — в порядке аргументов
	outputs := make([]bytes.Buffer, len(args))
	results := make([]*driver.TokenizeResult, len(args))

	var g errgroup.Group
	for idx, path := range args {
		g.Go(func() error {
			result, err := driver.Tokenize(path, max)
			if err != nil {
				return fmt.Errorf("tokenization of %q failed: %w", path, err)
			}
			results[idx] = result

			switch format {
			case "pretty":
				return diagfmt.FormatTokensPretty(&outputs[idx], result.Tokens, result.FileSet)
			case "json":
				return diagfmt.FormatTokensJSON(&outputs[idx], result.Tokens)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for idx, result := range results {
		replBagDump(result.Bag, result.FileSet, useColor)
		if len(args) > 1 {
			fmt.Printf("== %s\n", args[idx])
		}
		os.Stdout.Write(outputs[idx].Bytes())
	}
	return nil
}
