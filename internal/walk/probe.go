package walk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Logger receives non-fatal warnings raised while probing and walking.
type Logger interface {
	Printf(format string, args ...any)
}

type discard struct{}

func (discard) Printf(string, ...any) {}

// Info describes a single probed path.
type Info struct {
	// IsDir reports whether the path is a directory.
	IsDir bool
	// Size is the file size in bytes; always 0 for directories.
	Size int64
}

// Probe inspects paths and computes recursive directory sizes.
//
// Each skipped path is reported to the logger at most once per Probe, no matter
// how many enclosing directories are sized.
type Probe struct {
	logger Logger

	mu      sync.Mutex
	skipped map[string]struct{}
}

// NewProbe returns a Probe reporting skipped entries to logger. A nil logger discards them.
func NewProbe(logger Logger) *Probe {
	if logger == nil {
		logger = discard{}
	}

	return &Probe{logger: logger, skipped: make(map[string]struct{})}
}

// skip reports an unreadable path unless it was reported before.
func (p *Probe) skip(path string, err error) {
	key := filepath.Clean(path)

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, seen := p.skipped[key]; seen {
		return
	}

	p.skipped[key] = struct{}{}
	p.logger.Printf("skipping %s: %v", path, err)
}

// Stat classifies path and reports its size if it is a file.
func (p *Probe) Stat(path string) (Info, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}

	if info.IsDir() {
		return Info{IsDir: true}, nil
	}

	return Info{Size: info.Size()}, nil
}

// sizeAccumulator sums file sizes from concurrent fastwalk callbacks using a mutex.
type sizeAccumulator struct {
	mu    sync.Mutex
	total int64
}

func (a *sizeAccumulator) add(size int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.total += size
}

// SizeOf returns the sum of the sizes of all readable regular files below dir.
//
// Entries whose listing or stat fails are skipped and reported to the logger;
// they contribute nothing and never abort the sum. Symlinks are not followed.
//
//nolint:varnamelen // d is standard for DirEntry
func (p *Probe) SizeOf(dir string) int64 {
	acc := &sizeAccumulator{}

	conf := &fastwalk.Config{
		Follow: false,
	}

	err := fastwalk.Walk(conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			p.skip(path, err)

			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			p.skip(path, err)

			return nil //nolint:nilerr // Unreadable entries contribute nothing
		}

		acc.add(info.Size())

		return nil
	})
	if err != nil {
		p.skip(dir, err)
	}

	return acc.total
}
