package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vertti/venvfix/pkg/output"
	"github.com/vertti/venvfix/pkg/repair"
)

// ErrRepairFailed is returned when any target file could not be processed.
// The returned error causes Cobra to exit with code 1.
var ErrRepairFailed = errors.New("some files could not be repaired")

// collectTargets returns the positional args or, when none were given,
// one path per line read from r (blank lines skipped). Having no targets
// at all is an error.
func collectTargets(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var targets []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			targets = append(targets, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file list from stdin: %w", err)
	}
	if len(targets) == 0 {
		return nil, errors.New("no files given as arguments or on stdin")
	}
	return targets, nil
}

// runRepairs processes each target in order, prints per-file results and
// a summary when more than one file was requested, and returns
// ErrRepairFailed if any file failed.
func runRepairs(targets []string, mk func(path string) *repair.Repair) error {
	succeeded := 0
	for _, path := range targets {
		result := mk(path).Run()
		output.PrintResult(result)
		if result.OK() {
			succeeded++
		}
	}

	if len(targets) > 1 {
		output.PrintSummary(succeeded, len(targets))
	}

	if succeeded < len(targets) {
		return ErrRepairFailed
	}
	return nil
}
