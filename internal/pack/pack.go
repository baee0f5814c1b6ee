// Package pack implements the build, pack and copy-to-clipboard workflow for a package directory.
package pack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/idelchi/devkit/internal/dispatch"
	"github.com/idelchi/devkit/internal/walk"
)

// ErrNoArchive is returned when the pack step produced no archive.
var ErrNoArchive = errors.New("no archive found")

const (
	// DefaultBuildCommand builds the package before packing.
	DefaultBuildCommand = "npm run build"
	// DefaultPackCommand produces the archive.
	DefaultPackCommand = "npm pack"
	// DefaultPattern matches archives produced by the pack command.
	DefaultPattern = "*.tgz"
)

// Clipboard receives the archive path.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}

	return clipboard.WriteAll(text)
}

// Options holds the commands and archive pattern of the workflow.
type Options struct {
	// BuildCommand runs first. Empty skips the build step.
	BuildCommand string
	// PackCommand produces the archive.
	PackCommand string
	// Pattern is the glob matching archive files in the package directory.
	Pattern string
}

// Result describes a completed pack run.
type Result struct {
	// Archive is the absolute path of the newest archive.
	Archive string
	// Removed lists stale archives deleted before building.
	Removed []string
	// Copied reports whether Archive reached the clipboard.
	Copied bool
	// CopyErr is the clipboard failure, if any.
	CopyErr error
}

// Packer runs the workflow.
type Packer struct {
	Runner    dispatch.Runner
	Clipboard Clipboard
	Logger    walk.Logger
	Options   Options
}

// Run deletes stale archives in dir, builds, packs and copies the newest archive's path.
//
// Build or pack failures abort the run. A clipboard failure does not: it is
// reported through Result.CopyErr so the caller can print the path instead.
func (p Packer) Run(ctx context.Context, dir string) (*Result, error) {
	root, err := walk.ValidateRoot(dir)
	if err != nil {
		return nil, err
	}

	opts := p.Options
	if opts.PackCommand == "" {
		opts.PackCommand = DefaultPackCommand
	}

	if opts.Pattern == "" {
		opts.Pattern = DefaultPattern
	}

	runner := p.Runner
	if runner == nil {
		runner = dispatch.ShellRunner{}
	}

	result := &Result{}

	result.Removed, err = RemoveArchives(root, opts.Pattern, p.Logger)
	if err != nil {
		return nil, err
	}

	if opts.BuildCommand != "" {
		if err := step(ctx, runner, root, "build", opts.BuildCommand); err != nil {
			return nil, err
		}
	}

	if err := step(ctx, runner, root, "pack", opts.PackCommand); err != nil {
		return nil, err
	}

	result.Archive, err = Newest(root, opts.Pattern)
	if err != nil {
		return nil, err
	}

	clip := p.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}

	if err := clip.WriteAll(result.Archive); err != nil {
		result.CopyErr = err
	} else {
		result.Copied = true
	}

	return result, nil
}

func step(ctx context.Context, runner dispatch.Runner, dir, name, command string) error {
	res := runner.Run(ctx, dir, command)
	if res.Success {
		return nil
	}

	if res.Output != "" {
		return fmt.Errorf("%s step %q: %s\n%s", name, command, res.Err, res.Output)
	}

	return fmt.Errorf("%s step %q: %s", name, command, res.Err)
}

// RemoveArchives deletes files in dir matching pattern and returns the removed paths.
// A file that cannot be removed is reported to logger and skipped.
func RemoveArchives(dir, pattern string, logger walk.Logger) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("matching archives %q: %w", pattern, err)
	}

	var removed []string

	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			if logger != nil {
				logger.Printf("removing %s: %v", match, err)
			}

			continue
		}

		removed = append(removed, match)
	}

	return removed, nil
}

// Newest returns the absolute path of the most recently modified regular file in dir matching pattern.
func Newest(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("matching archives %q: %w", pattern, err)
	}

	var (
		newest  string
		modTime time.Time
	)

	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		if newest == "" || info.ModTime().After(modTime) {
			newest = match
			modTime = info.ModTime()
		}
	}

	if newest == "" {
		return "", fmt.Errorf("%w matching %q in %s", ErrNoArchive, pattern, dir)
	}

	return filepath.Abs(newest)
}
