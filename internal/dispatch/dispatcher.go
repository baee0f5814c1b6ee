package dispatch

import (
	"context"

	"github.com/idelchi/devkit/internal/walk"
)

// Dispatcher runs a command in every node of a batch.
// Implementations must keep outcomes in node order and isolate failures per node.
type Dispatcher interface {
	DispatchAll(ctx context.Context, nodes []walk.Node, command string) []Outcome
}

// Observer is notified as a batch progresses.
type Observer interface {
	Started(node walk.Node)
	Finished(outcome Outcome)
}

// Sequential runs the batch one directory at a time.
type Sequential struct {
	Runner   Runner
	Observer Observer
}

// DispatchAll runs command in each node in order and blocks until the last one finishes.
// Once ctx is cancelled, the remaining nodes are recorded as failed without running.
func (s Sequential) DispatchAll(ctx context.Context, nodes []walk.Node, command string) []Outcome {
	runner := s.Runner
	if runner == nil {
		runner = ShellRunner{}
	}

	outcomes := make([]Outcome, 0, len(nodes))

	for _, node := range nodes {
		if s.Observer != nil {
			s.Observer.Started(node)
		}

		var result Result
		if err := ctx.Err(); err != nil {
			result = Result{Err: err.Error()}
		} else {
			result = runner.Run(ctx, node.Path, command)
		}

		outcome := Outcome{Node: node, Result: result}
		outcomes = append(outcomes, outcome)

		if s.Observer != nil {
			s.Observer.Finished(outcome)
		}
	}

	return outcomes
}
