package scan

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWrappers(t *testing.T) {
	fsys := fstest.MapFS{
		"Scripts/pip.exe":        {Data: []byte("MZstub#!C:/py/python.exe\r\nPK\x03\x04payload")},
		"Scripts/black.exe":      {Data: []byte("#!C:/py/python.exe\nPK\x03\x04")},
		"Scripts/activate":       {Data: []byte("# shell script, no marker")},
		"Scripts/wheel.sh":       {Data: []byte("#!/bin/sh\necho hi")}, // loose match only, not a wrapper
		"Scripts/pip.exe.backup": {Data: []byte("MZstub#!C:/py/python.exe\r\nPK\x03\x04payload")},
		"lib/data.bin":           {Data: []byte("PK\x03\x04 archive without shebang")},
		"nested/deep/pbr.exe":    {Data: []byte("#!C:/py/python.exe\r\nPK")},
	}

	wrappers, err := FindWrappers(fsys, ".")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Scripts/black.exe",
		"Scripts/pip.exe",
		"nested/deep/pbr.exe",
	}, wrappers)
}

func TestFindWrappers_EmptyTree(t *testing.T) {
	wrappers, err := FindWrappers(fstest.MapFS{}, ".")

	require.NoError(t, err)
	assert.Empty(t, wrappers)
}

func TestFindWrappers_MissingRoot(t *testing.T) {
	_, err := FindWrappers(fstest.MapFS{}, "no/such/dir")

	assert.Error(t, err)
}
