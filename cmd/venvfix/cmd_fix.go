package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/venvfix/pkg/repair"
)

var (
	fixInterpreter string
	fixBackup      bool
)

var fixCmd = &cobra.Command{
	Use:   "fix [files...]",
	Short: "Rewrite the shebang of venv executables to a new interpreter path",
	Long: `Rewrite the embedded interpreter path of each venv executable in place.

Files are given as arguments, or one per line on stdin:

  venvfix fix -b "C:/Python39/python.exe" venv/Scripts/pip.exe
  ls venv/Scripts/*.exe | venvfix fix -b "C:/Python39/python.exe"
  venvfix fix -b "C:/Python39/python.exe" --backup venv/Scripts/pip.exe`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().StringVarP(&fixInterpreter, "interpreter", "b", "", "path to the base Python interpreter")
	fixCmd.Flags().BoolVar(&fixBackup, "backup", false, "write a .backup copy before modifying each file")
	_ = fixCmd.MarkFlagRequired("interpreter")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	targets, err := collectTargets(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	return runRepairs(targets, func(path string) *repair.Repair {
		return &repair.Repair{
			Path:        path,
			Interpreter: fixInterpreter,
			Backup:      fixBackup,
			Debug:       debug,
			FS:          &repair.RealFileSystem{},
		}
	})
}
