package dirstat

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/devkit/internal/walk"
)

func write(t *testing.T, root, rel string, size int) {
	t.Helper()

	p := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(strings.Repeat("x", size)), 0o644))
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestRun_Scenario(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a/file.txt", 100)
	write(t, root, "b/c/file.txt", 200)

	stats, err := Run(context.Background(), Options{Path: root, Depth: walk.Unlimited(), TopN: 2}, nil)
	require.NoError(t, err)

	require.Len(t, stats.Nodes, 3)
	assert.Equal(t, "a", stats.Nodes[0].Name)
	assert.Equal(t, int64(100), stats.Nodes[0].Size)
	assert.Equal(t, "b", stats.Nodes[1].Name)
	assert.Equal(t, int64(200), stats.Nodes[1].Size)
	assert.Equal(t, "c", stats.Nodes[2].Name)
	assert.Equal(t, 1, stats.Nodes[2].Depth)

	assert.Equal(t, int64(300), stats.TotalBytes)
	assert.Equal(t, 3, stats.DirCount)
	assert.Equal(t, []string{"b", "c"}, names(stats.Top))
	assert.Equal(t, "1. b (200 B)", Line(stats.Top[0]))
	assert.Zero(t, stats.Warnings)
}

func TestRun_TopTwoListsLargerFirst(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a/file.txt", 100)
	write(t, root, "b/c/file.txt", 200)

	stats, err := Run(context.Background(), Options{Path: root, Depth: walk.Bounded(0), TopN: 2}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, names(stats.Top))
	assert.Equal(t, int64(300), stats.TotalBytes)
}

func TestRun_ValidationErrors(t *testing.T) {
	root := t.TempDir()
	write(t, root, "file.txt", 1)

	logger := &recordingLogger{}

	_, err := Run(context.Background(), Options{Path: filepath.Join(root, "nope")}, logger)
	require.ErrorIs(t, err, walk.ErrPathNotFound)
	assert.Contains(t, err.Error(), "nope")

	_, err = Run(context.Background(), Options{Path: filepath.Join(root, "file.txt")}, logger)
	require.ErrorIs(t, err, walk.ErrNotADirectory)

	assert.Empty(t, logger.lines, "validation failures must not traverse")
}

func TestRun_CountsWarnings(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	root := t.TempDir()
	write(t, root, "open/file.txt", 10)
	write(t, root, "nest/inner/shut/file.txt", 10)

	shut := filepath.Join(root, "nest", "inner", "shut")
	require.NoError(t, os.Chmod(shut, 0o000))
	t.Cleanup(func() { _ = os.Chmod(shut, 0o755) })

	logger := &recordingLogger{}

	stats, err := Run(context.Background(), Options{Path: root, Depth: walk.Unlimited()}, logger)
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.TotalBytes)
	assert.Equal(t, int64(1), stats.Warnings)
	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], shut)
}
