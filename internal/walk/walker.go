package walk

import (
	"context"
	"os"
	"path/filepath"
)

// Matcher reports whether the directory at path qualifies for emission.
type Matcher func(path string) bool

// Options configures a Walker.
type Options struct {
	// Ignore lists directory names that are neither emitted nor entered.
	Ignore IgnoreSet
	// Match selects qualifying directories. Nil accepts every directory.
	// Directories that do not qualify are still descended into.
	Match Matcher
	// Sized enables recursive size computation for emitted nodes.
	Sized bool
	// Logger receives warnings about unreadable entries.
	Logger Logger
}

// Walker performs depth-bounded, pre-order directory traversals.
type Walker struct {
	opts  Options
	probe *Probe
}

// New creates a Walker.
func New(opts Options) *Walker {
	return &Walker{
		opts:  opts,
		probe: NewProbe(opts.Logger),
	}
}

// Scan walks root and returns every qualifying directory within limit, parents before children.
// The immediate children of root are at depth 0.
//
// Unreadable directories are skipped with a single warning each, however many
// sized ancestors contain them. The only error returned is
// the context error when ctx is cancelled, together with the nodes found so far.
func (w *Walker) Scan(ctx context.Context, root string, limit DepthLimit) ([]Node, error) {
	nodes := w.walk(ctx, root, root, limit, 0)

	return nodes, ctx.Err()
}

func (w *Walker) walk(ctx context.Context, root, dir string, limit DepthLimit, depth int) []Node {
	if limit.Exceeds(depth) || ctx.Err() != nil {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.probe.skip(dir, err)

		return nil
	}

	var nodes []Node

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		if w.opts.Ignore.Contains(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		if w.opts.Match == nil || w.opts.Match(path) {
			nodes = append(nodes, w.node(root, path, entry.Name(), depth))
		}

		nodes = append(nodes, w.walk(ctx, root, path, limit, depth+1)...)
	}

	return nodes
}

func (w *Walker) node(root, path, name string, depth int) Node {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	node := Node{
		Name:    name,
		Path:    path,
		RelPath: filepath.ToSlash(rel),
		Depth:   depth,
	}

	if w.opts.Sized {
		node.Size = w.probe.SizeOf(path)
	}

	return node
}
