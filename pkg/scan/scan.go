// Package scan discovers venv wrapper executables under a directory tree.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vertti/venvfix/pkg/repair"
	"github.com/vertti/venvfix/pkg/shebang"
)

// FindWrappers walks root inside fsys and returns the paths of regular
// files that contain the archive-bound shebang pattern, i.e. genuine
// wrapper executables. Backup files created by an earlier run are
// skipped. Unreadable files are skipped rather than failing the walk.
// Returned paths are relative to fsys and sorted by the walk order
// (lexical within each directory).
func FindWrappers(fsys fs.FS, root string) ([]string, error) {
	var wrappers []string
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if strings.HasSuffix(path, repair.BackupSuffix) {
			return nil
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil
		}
		if _, ok := shebang.LocateArchiveBound(content); ok {
			wrappers = append(wrappers, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wrappers, nil
}

// FindWrappersOS is FindWrappers against the real file system. Returned
// paths are joined onto dir so they can be opened directly.
func FindWrappersOS(dir string) ([]string, error) {
	rel, err := FindWrappers(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(rel))
	for i, p := range rel {
		paths[i] = filepath.Join(dir, p)
	}
	return paths, nil
}
