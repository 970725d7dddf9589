package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vertti/venvfix/pkg/repair"
)

func TestCollectTargets(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		want    []string
		wantErr bool
	}{
		{
			name: "args take precedence",
			args: []string{"a.exe", "b.exe"},
			want: []string{"a.exe", "b.exe"},
		},
		{
			name:  "args win even with stdin content",
			args:  []string{"a.exe"},
			stdin: "ignored.exe\n",
			want:  []string{"a.exe"},
		},
		{
			name:  "one path per stdin line",
			stdin: "venv/Scripts/pip.exe\nvenv/Scripts/black.exe\n",
			want:  []string{"venv/Scripts/pip.exe", "venv/Scripts/black.exe"},
		},
		{
			name:  "blank lines and whitespace skipped",
			stdin: "\n  pip.exe  \n\n\t\nblack.exe\n",
			want:  []string{"pip.exe", "black.exe"},
		},
		{
			name:  "no trailing newline",
			stdin: "pip.exe",
			want:  []string{"pip.exe"},
		},
		{
			name:    "nothing at all",
			stdin:   "",
			wantErr: true,
		},
		{
			name:    "only blank lines",
			stdin:   "\n\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectTargets(tt.args, strings.NewReader(tt.stdin))
			if (err != nil) != tt.wantErr {
				t.Fatalf("collectTargets() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("collectTargets() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunRepairs_ExitSemantics(t *testing.T) {
	mk := func(path string) *repair.Repair {
		return &repair.Repair{Path: path, PrintOnly: true, FS: &repair.RealFileSystem{}}
	}

	// Nonexistent paths fail per file and surface as ErrRepairFailed.
	err := runRepairs([]string{"no-such-file.exe"}, mk)
	if err != ErrRepairFailed {
		t.Errorf("runRepairs() error = %v, want ErrRepairFailed", err)
	}
}
