package dirstat

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/idelchi/devkit/internal/walk"
)

// countingLogger forwards warnings and keeps count of them.
type countingLogger struct {
	next  walk.Logger
	count atomic.Int64
}

func (l *countingLogger) Printf(format string, args ...any) {
	l.count.Add(1)

	if l.next != nil {
		l.next.Printf(format, args...)
	}
}

// Run scans opt.Path and returns ranked size statistics.
//
// The path must exist and be a directory; otherwise a validation error
// wrapping walk.ErrPathNotFound or walk.ErrNotADirectory is returned and no
// traversal happens. Unreadable entries below the root are reported to logger
// and counted in Stats.Warnings.
func Run(ctx context.Context, opt Options, logger walk.Logger) (*Stats, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	root, err := walk.ValidateRoot(opt.Path)
	if err != nil {
		return nil, err
	}

	if opt.TopN <= 0 {
		opt.TopN = DefaultTopN
	}

	counter := &countingLogger{next: logger}

	start := time.Now()

	walker := walk.New(walk.Options{
		Sized:  true,
		Logger: counter,
	})

	nodes, err := walker.Scan(ctx, root, opt.Depth)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Root:       root,
		Depth:      opt.Depth.String(),
		Nodes:      nodes,
		Top:        Rank(nodes, opt.TopN, opt.MinSize),
		DirCount:   len(nodes),
		TotalBytes: TotalSize(nodes),
		Warnings:   counter.count.Load(),
		Elapsed:    time.Since(start),
		TopN:       opt.TopN,
	}, nil
}
