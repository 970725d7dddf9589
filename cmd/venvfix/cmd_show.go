package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/venvfix/pkg/repair"
)

var showCmd = &cobra.Command{
	Use:   "show [files...]",
	Short: "Print the current shebang of venv executables without modifying them",
	Long: `Print the interpreter path currently embedded in each venv executable.

Files are given as arguments, or one per line on stdin:

  venvfix show venv/Scripts/pip.exe
  ls venv/Scripts/*.exe | venvfix show`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	targets, err := collectTargets(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	return runRepairs(targets, func(path string) *repair.Repair {
		return &repair.Repair{
			Path:      path,
			PrintOnly: true,
			Debug:     debug,
			FS:        &repair.RealFileSystem{},
		}
	})
}
