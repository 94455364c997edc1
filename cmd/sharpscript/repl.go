package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/diagfmt"
	"sharpscript/internal/interp"
	"sharpscript/internal/lexer"
	"sharpscript/internal/parser"
	"sharpscript/internal/session"
	"sharpscript/internal/source"
	"sharpscript/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive SharpScript prompt",
	Long: `Read-eval-print loop: each line is lexed, parsed, and evaluated in a
shared interpreter session. Type 'exit' to quit. Calculator memory and
history persist between sessions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return replLoop(cmd)
	},
}

func replLoop(cmd *cobra.Command) error {
	useColor := colorEnabled(cmd, os.Stderr)
	interactive := shouldUsePrompt(cmd)

	fs := source.NewFileSet()
	builder := ast.NewBuilder(0, nil)
	reporter := &diagfmt.StreamReporter{
		W:    os.Stderr,
		FS:   fs,
		Opts: diagfmt.PrettyOpts{Color: useColor},
	}

	itp := interp.New(interp.Options{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Reporter: reporter,
	})

	// сессия прошлого запуска: память калькулятора + история
	store, err := session.Open("sharpscript")
	if err == nil {
		if payload, ok, _ := store.Load(); ok {
			session.Restore(itp, payload)
		}
	} else {
		store = nil
	}

	fmt.Println("SharpScript REPL")
	fmt.Println("Type 'exit' to quit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	lineNo := 0
	for {
		line, eof := readReplLine(scanner, interactive)
		if eof {
			break
		}
		if strings.TrimSpace(line) == "exit" {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		lineNo++
		fileID := fs.AddVirtual(fmt.Sprintf("repl:%d", lineNo), []byte(line))
		lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
		parsed := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter})

		itp.Eval(builder, parsed.File)
	}

	if store != nil {
		if err := store.Save(session.Snapshot(itp)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save session: %v\n", err)
		}
	}
	return nil
}

// readReplLine reads one line: via the bubbletea prompt on a TTY, via a
// plain scanner otherwise (pipes keep the exact '>> ' protocol).
func readReplLine(scanner *bufio.Scanner, interactive bool) (string, bool) {
	if interactive {
		line, eof, err := ui.ReadLine()
		if err != nil {
			return "", true
		}
		return line, eof
	}

	fmt.Print(">> ")
	if !scanner.Scan() {
		return "", true
	}
	return scanner.Text(), false
}

func shouldUsePrompt(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("ui")
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}
}

// replBagDump prints collected diagnostics; kept for the tokenize/parse
// inspection paths that batch into a Bag instead of streaming.
func replBagDump(bag *diag.Bag, fs *source.FileSet, useColor bool) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{Color: useColor, Context: true})
}
