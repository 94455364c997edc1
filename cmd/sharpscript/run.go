package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sharpscript/internal/driver"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.sharp]",
	Short: "Execute a SharpScript program",
	Long: `Parse and evaluate a SharpScript source file, then call main() if the
script defined one. Without an argument the script is taken from the [run]
section of the nearest sharp.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExecution,
}

func runExecution(cmd *cobra.Command, args []string) error {
	var filePath string
	if len(args) == 1 {
		filePath = args[0]
	} else {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !ok || manifest.Config.Run.Main == "" {
			return fmt.Errorf("%s", noSharpTomlMessage)
		}
		filePath = manifest.MainPath()
	}

	return executeScript(cmd, filePath)
}

// executeScript runs one script through the driver. Runtime diagnostics do
// not change the exit code; an unreadable file does.
func executeScript(cmd *cobra.Command, path string) error {
	err := driver.RunScript(path, driver.RunOptions{
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Stdin:          os.Stdin,
		Color:          colorEnabled(cmd, os.Stderr),
		MaxDiagnostics: maxDiagnostics(cmd),
	})
	if err != nil {
		return fmt.Errorf("cannot run %q: %w", path, err)
	}
	return nil
}
