package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var debug bool

var rootCmd = &cobra.Command{
	Use:     "venvfix",
	Short:   "Repair the shebang line of Windows venv executables",
	Long:    "Venvfix locates the interpreter path embedded in venv wrapper executables (pip.exe and friends) and rewrites it in place, leaving the appended archive payload untouched.",
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
