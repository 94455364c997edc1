package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sharpscript/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sharpscript [file.sharp]",
	Short: "SharpScript language interpreter",
	Long: `SharpScript is a small imperative scripting language with C-like syntax.

Without arguments an interactive REPL starts; with a script path the file is
executed and a zero-argument main() is invoked if the script defined one.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

// runRoot implements the classic invocation modes: no argument starts the
// REPL, one argument runs a script, more than one is a usage error.
func runRoot(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return replLoop(cmd)
	case 1:
		return executeScript(cmd, args[0])
	default:
		fmt.Fprintln(os.Stderr, "Error: Too many arguments.")
		_ = cmd.Help()
		os.Exit(1)
		return nil
	}
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("ui", "auto", "interactive REPL prompt (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color flag against the terminal.
func colorEnabled(cmd *cobra.Command, out *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch flag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}

func maxDiagnostics(cmd *cobra.Command) int {
	max, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || max <= 0 {
		return 100
	}
	return max
}
