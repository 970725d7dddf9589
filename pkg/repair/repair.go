// Package repair fixes the shebang line of a single venv wrapper
// executable: read it whole, locate the embedded interpreter path,
// optionally back the file up, splice in the new path and write the
// result back. Everything after the path (the appended archive) is
// preserved byte for byte.
package repair

import (
	"fmt"
	"os"

	"github.com/zeebo/blake3"

	"github.com/vertti/venvfix/pkg/report"
	"github.com/vertti/venvfix/pkg/shebang"
)

// BackupSuffix is appended to the target path for backup copies.
const BackupSuffix = ".backup"

// debugPreviewLen caps the first-bytes preview in debug output.
const debugPreviewLen = 100

// Repair processes one wrapper executable.
type Repair struct {
	Path        string     // target file
	Interpreter string     // new interpreter path; ignored in print-only mode
	PrintOnly   bool       // report the current shebang without writing
	Backup      bool       // write <path>.backup before patching
	Debug       bool       // include size, preview and digest details
	FS          FileSystem // injected for testing
}

// Run executes the repair pass for one file. All failures are reported in
// the Result; nothing is fatal to the surrounding batch.
func (r *Repair) Run() report.Result {
	result := report.Result{
		Name: r.Path,
	}

	info, err := r.FS.Stat(r.Path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return result.Fail("file does not exist", err)
		case os.IsPermission(err):
			return result.Fail("permission denied", err)
		default:
			return result.Failf("stat failed: %v", err)
		}
	}
	if !info.Mode().IsRegular() {
		return result.Fail("not a regular file", fmt.Errorf("%s is not a regular file", r.Path))
	}

	content, err := r.FS.ReadFile(r.Path)
	if err != nil {
		if os.IsPermission(err) {
			return result.Fail("permission denied", err)
		}
		return result.Failf("failed to read file: %v", err)
	}

	if r.Debug {
		result.AddDetailf("size: %d bytes", len(content))
		result.AddDetailf("first bytes: %q", preview(content))
		result.AddDetailf("blake3: %x", blake3.Sum256(content))
	}

	span, ok := shebang.Locate(content)
	if !ok {
		return result.Fail("does not appear to be a venv executable",
			fmt.Errorf("no shebang marker found in %s", r.Path))
	}

	result.AddDetailf("shebang: %s", shebang.Field(content, span))

	if r.PrintOnly {
		result.Status = report.StatusOK
		return result
	}

	if r.Backup {
		backupPath := r.Path + BackupSuffix
		if err := r.FS.WriteFile(backupPath, content, info.Mode().Perm()); err != nil {
			// Best effort: a failed backup never blocks the repair.
			result.AddDetailf("warning: could not create backup: %v", err)
		} else if r.Debug {
			result.AddDetailf("backup: %s", backupPath)
		}
	}

	patched := shebang.Patch(content, span, []byte(r.Interpreter))
	if err := r.FS.WriteFile(r.Path, patched, info.Mode().Perm()); err != nil {
		if os.IsPermission(err) {
			return result.Fail("permission denied", err)
		}
		return result.Failf("failed to write file: %v", err)
	}

	result.AddDetailf("updated to: %s", r.Interpreter)
	result.Status = report.StatusOK
	return result
}

func preview(content []byte) []byte {
	if len(content) > debugPreviewLen {
		return content[:debugPreviewLen]
	}
	return content
}
