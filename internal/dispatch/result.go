package dispatch

import (
	"fmt"

	"github.com/idelchi/devkit/internal/walk"
)

// Result is the outcome of one command run.
type Result struct {
	// Success reports whether the command exited with status 0.
	Success bool `json:"success"`
	// Output is the trimmed stdout, captured on failure as well.
	Output string `json:"output"`
	// Err describes the failure, empty on success.
	Err string `json:"error,omitempty"`
}

// Outcome pairs a directory with the result of running the command in it.
type Outcome struct {
	Node   walk.Node `json:"node"`
	Result Result    `json:"result"`
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	var summary Summary

	for _, outcome := range outcomes {
		if outcome.Result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	return summary
}

func (s Summary) String() string {
	return fmt.Sprintf("%d successful, %d failed", s.Succeeded, s.Failed)
}
