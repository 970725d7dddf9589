package report

// Status represents the outcome of processing one file.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of processing a single target file.
type Result struct {
	Name    string   // the target path, e.g. "venv/Scripts/pip.exe"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the file was processed successfully.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
