package output

import (
	"fmt"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/venvfix/pkg/report"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
}

// PrintResult outputs a per-file result with colored status.
func PrintResult(r report.Result) {
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Printf("      %s\n", d)
	}
}

// PrintSummary outputs the trailing success count for a multi-file run.
func PrintSummary(succeeded, total int) {
	color := green
	if succeeded < total {
		color = red
	}
	fmt.Printf("\n%sSummary: %d/%d files processed successfully%s\n", color, succeeded, total, reset)
}
