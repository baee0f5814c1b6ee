package walk

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_Stat(t *testing.T) {
	root := t.TempDir()
	file := write(t, root, "a/file.bin", 42)

	probe := NewProbe(nil)

	info, err := probe.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, Info{Size: 42}, info)

	info, err = probe.Stat(filepath.Dir(file))
	require.NoError(t, err)
	assert.True(t, info.IsDir)
	assert.Zero(t, info.Size)

	_, err = probe.Stat(filepath.Join(root, "missing"))
	assert.Error(t, err)
}

func TestProbe_SizeOfSumsChildren(t *testing.T) {
	root := t.TempDir()
	write(t, root, "top.txt", 10)
	write(t, root, "a/one.txt", 100)
	write(t, root, "a/deep/two.txt", 50)
	write(t, root, "b/three.txt", 200)
	mkdir(t, root, "empty")

	probe := NewProbe(nil)

	a := probe.SizeOf(filepath.Join(root, "a"))
	b := probe.SizeOf(filepath.Join(root, "b"))
	empty := probe.SizeOf(filepath.Join(root, "empty"))

	assert.Equal(t, int64(150), a)
	assert.Equal(t, int64(200), b)
	assert.Zero(t, empty)
	assert.Equal(t, 10+a+b+empty, probe.SizeOf(root))
}

func TestProbe_SizeOfSkipsUnreadableChild(t *testing.T) {
	root := t.TempDir()
	write(t, root, "ok/file.txt", 100)
	write(t, root, "locked/file.txt", 500)
	lockDir(t, filepath.Join(root, "locked"))

	logger := &recordingLogger{}
	probe := NewProbe(logger)

	assert.Equal(t, int64(100), probe.SizeOf(root))
	require.NotEmpty(t, logger.lines)
	assert.Contains(t, logger.lines[0], "locked")
}

func TestProbe_ReportsEachSkippedPathOnce(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a/b/ok.txt", 5)
	write(t, root, "a/b/shut/file.txt", 500)
	shut := filepath.Join(root, "a", "b", "shut")
	lockDir(t, shut)

	logger := &recordingLogger{}
	probe := NewProbe(logger)

	for _, dir := range []string{root, filepath.Join(root, "a"), filepath.Join(root, "a", "b")} {
		assert.Equal(t, int64(5), probe.SizeOf(dir))
	}

	assert.Zero(t, probe.SizeOf(shut))

	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], shut)
}
