package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/venvfix/pkg/repair"
	"github.com/vertti/venvfix/pkg/scan"
)

var (
	scanInterpreter string
	scanBackup      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Find venv wrapper executables under a directory",
	Long: `Walk a directory tree and report every venv wrapper executable found.
With --interpreter, rewrite each one as "fix" would:

  venvfix scan venv/Scripts
  venvfix scan -b "C:/Python39/python.exe" --backup venv`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanInterpreter, "interpreter", "b", "", "rewrite found wrappers to this interpreter path")
	scanCmd.Flags().BoolVar(&scanBackup, "backup", false, "write a .backup copy before modifying each file")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, args []string) error {
	dir := args[0]

	wrappers, err := scan.FindWrappersOS(dir)
	if err != nil {
		return fmt.Errorf("scan of %s failed: %w", dir, err)
	}
	if len(wrappers) == 0 {
		fmt.Printf("no venv executables found under %s\n", dir)
		return nil
	}

	return runRepairs(wrappers, func(path string) *repair.Repair {
		return &repair.Repair{
			Path:        path,
			Interpreter: scanInterpreter,
			PrintOnly:   scanInterpreter == "",
			Backup:      scanBackup,
			Debug:       debug,
			FS:          &repair.RealFileSystem{},
		}
	})
}
