package walk

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, opts Options, root string, limit DepthLimit) []Node {
	t.Helper()

	nodes, err := New(opts).Scan(context.Background(), root, limit)
	require.NoError(t, err)

	return nodes
}

func TestScan_SizesAndPreOrder(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a/file.txt", 100)
	write(t, root, "b/c/file.txt", 200)
	write(t, root, "loose.txt", 999)

	nodes := scan(t, Options{Sized: true}, root, Unlimited())

	want := []Node{
		{Name: "a", Path: filepath.Join(root, "a"), RelPath: "a", Size: 100, Depth: 0},
		{Name: "b", Path: filepath.Join(root, "b"), RelPath: "b", Size: 200, Depth: 0},
		{Name: "c", Path: filepath.Join(root, "b", "c"), RelPath: "b/c", Size: 200, Depth: 1},
	}
	assert.Equal(t, want, nodes)
}

func TestScan_DepthBound(t *testing.T) {
	root := t.TempDir()
	write(t, root, "l0/l1/l2/l3/file.txt", 1)

	tests := []struct {
		name  string
		limit DepthLimit
		want  []string
	}{
		{name: "unlimited", limit: Unlimited(), want: []string{"l0", "l0/l1", "l0/l1/l2", "l0/l1/l2/l3"}},
		{name: "bounded 1", limit: Bounded(1), want: []string{"l0", "l0/l1"}},
		{name: "bounded 0 is immediate children", limit: Bounded(0), want: []string{"l0"}},
		{name: "negative clamps to 0", limit: Bounded(-3), want: []string{"l0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := scan(t, Options{}, root, tt.limit)

			var got []string
			for _, n := range nodes {
				assert.False(t, tt.limit.Exceeds(n.Depth), "node %s at depth %d", n.RelPath, n.Depth)
				got = append(got, n.RelPath)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScan_ChildDepthFollowsParent(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a/b/c/file.txt", 1)
	write(t, root, "a/d/file.txt", 1)
	write(t, root, "e/file.txt", 1)

	nodes := scan(t, Options{}, root, Unlimited())

	byPath := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		byPath[n.Path] = n
	}

	for _, n := range nodes {
		parent, ok := byPath[filepath.Dir(n.Path)]
		if !ok {
			assert.Equal(t, 0, n.Depth, "%s has no parent node", n.RelPath)

			continue
		}
		assert.Equal(t, parent.Depth+1, n.Depth, n.RelPath)
	}
}

func TestScan_IgnoreAndMatch(t *testing.T) {
	root := t.TempDir()
	write(t, root, "app/package.json", 2)
	write(t, root, "app/node_modules/dep/package.json", 2)
	write(t, root, "libs/one/package.json", 2)
	write(t, root, "libs/two/readme.md", 2)
	write(t, root, ".git/config", 2)

	opts := Options{
		Ignore: NewIgnoreSet(DefaultIgnored...),
		Match: func(path string) bool {
			_, err := NewProbe(nil).Stat(filepath.Join(path, "package.json"))

			return err == nil
		},
	}

	var got []string
	for _, n := range scan(t, opts, root, Unlimited()) {
		got = append(got, n.RelPath)
	}

	assert.Equal(t, []string{"app", "libs/one"}, got)
}

func TestScan_UnreadableDirectoryIsSkipped(t *testing.T) {
	root := t.TempDir()
	write(t, root, "open/inner/file.txt", 10)
	write(t, root, "shut/inner/file.txt", 10)
	lockDir(t, filepath.Join(root, "shut"))

	logger := &recordingLogger{}
	nodes := scan(t, Options{Sized: true, Logger: logger}, root, Unlimited())

	var got []string
	for _, n := range nodes {
		got = append(got, n.RelPath)
	}

	assert.Equal(t, []string{"open", "open/inner", "shut"}, got)
	assert.Zero(t, nodes[2].Size)
	assert.NotEmpty(t, logger.lines)
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a/file.txt", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	nodes, err := New(Options{}).Scan(ctx, root, Unlimited())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, nodes)
}

func TestValidateRoot(t *testing.T) {
	root := t.TempDir()
	file := write(t, root, "file.txt", 1)

	abs, err := ValidateRoot(root)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	_, err = ValidateRoot(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = ValidateRoot(file)
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestDepthLimit(t *testing.T) {
	assert.False(t, Unlimited().Exceeds(1000))
	assert.Equal(t, "unlimited", Unlimited().String())

	limit := Bounded(2)
	assert.False(t, limit.Exceeds(2))
	assert.True(t, limit.Exceeds(3))
	assert.Equal(t, "2", limit.String())

	assert.Equal(t, Bounded(0), Bounded(-3))
}

func TestScan_WarnsOncePerUnreadableDirectory(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a/b/c/file.txt", 10)
	write(t, root, "a/b/c/shut/file.txt", 10)
	shut := filepath.Join(root, "a", "b", "c", "shut")
	lockDir(t, shut)

	logger := &recordingLogger{}

	nodes, err := New(Options{Sized: true, Logger: logger}).Scan(context.Background(), root, Unlimited())
	require.NoError(t, err)

	require.Len(t, nodes, 4)
	assert.Equal(t, int64(10), nodes[0].Size)
	assert.Equal(t, "a/b/c/shut", nodes[3].RelPath)
	assert.Zero(t, nodes[3].Size)

	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], shut)
}
