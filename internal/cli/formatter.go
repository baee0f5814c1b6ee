package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/devkit/internal/dirstat"
	"github.com/idelchi/devkit/internal/dispatch"
	"github.com/idelchi/devkit/internal/pack"
	"github.com/idelchi/devkit/internal/walk"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// styles decorates output with colours and emoji on terminals and leaves it untouched otherwise.
type styles struct {
	enabled bool
	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled: enabled,
		header:  lipgloss.NewStyle().Bold(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s styles) paint(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return style.Render(text)
}

// icon returns emoji followed by a space, or nothing when decorations are off.
func (s styles) icon(emoji string) string {
	if !s.enabled {
		return ""
	}

	return emoji + " "
}

// PrintJSON outputs v in indented JSON format.
func PrintJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintPlain outputs the absolute path of each ranked directory, one per line.
func PrintPlain(stats *dirstat.Stats, writer io.Writer) error {
	for _, entry := range stats.Top {
		if _, err := fmt.Fprintln(writer, entry.Path); err != nil {
			return err
		}
	}

	return nil
}

// PrintTable outputs a size report in human-readable form.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(stats *dirstat.Stats, writer io.Writer, st styles) error {
	fmt.Fprintf(writer, "%s%s\n", st.icon("📊"), st.paint(st.header, "Scanning directory: "+stats.Root))
	fmt.Fprintf(writer, "%s\n\n", st.paint(st.muted, fmt.Sprintf("max depth: %s, top: %d", stats.Depth, stats.TopN)))

	if len(stats.Top) == 0 {
		fmt.Fprintln(writer, "No directories found.")
	}

	for _, line := range dirstat.Lines(stats.Top) {
		fmt.Fprintln(writer, line)
	}

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total directories:\t%s\n", humanize.Comma(int64(stats.DirCount)))
	fmt.Fprintf(w, "Total size:\t%s (%s bytes)\n",
		dirstat.FormatBytes(stats.TotalBytes), humanize.Comma(stats.TotalBytes))

	if stats.Warnings > 0 {
		fmt.Fprintf(w, "Skipped entries:\t%d\n", stats.Warnings)
	}

	fmt.Fprintf(w, "\n%sElapsed:\t%v\n", st.icon("⏱️"), stats.Elapsed)

	return w.Flush()
}

// execPrinter streams batch progress. It implements dispatch.Observer.
type execPrinter struct {
	w     io.Writer
	st    styles
	total int
	index int
}

func (p *execPrinter) Started(node walk.Node) {
	p.index++

	fmt.Fprintf(p.w, "%s%s\n", p.st.icon("🚀"),
		p.st.paint(p.st.header, fmt.Sprintf("[%d/%d] %s", p.index, p.total, node.RelPath)))
}

func (p *execPrinter) Finished(outcome dispatch.Outcome) {
	result := outcome.Result

	if result.Success {
		fmt.Fprintf(p.w, "%s%s\n", p.st.icon("✅"), p.st.paint(p.st.success, "success"))
	} else {
		fmt.Fprintf(p.w, "%s%s\n", p.st.icon("❌"), p.st.paint(p.st.failure, "failed: "+result.Err))
	}

	if result.Output != "" {
		for _, line := range strings.Split(result.Output, "\n") {
			fmt.Fprintf(p.w, "    %s\n", p.st.paint(p.st.muted, line))
		}
	}

	fmt.Fprintln(p.w)
}

// printSummary writes the final tally of a batch.
func printSummary(w io.Writer, st styles, summary dispatch.Summary) {
	style := st.success
	if summary.Failed > 0 {
		style = st.failure
	}

	fmt.Fprintf(w, "%sSummary: %s\n", st.icon("📋"), st.paint(style, summary.String()))
}

// printPack reports a completed pack run.
func printPack(w io.Writer, st styles, res *pack.Result) {
	if n := len(res.Removed); n > 0 {
		fmt.Fprintf(w, "%sRemoved %d stale %s\n", st.icon("🧹"), n, plural(n, "archive", "archives"))
	}

	fmt.Fprintf(w, "%sArchive: %s\n", st.icon("📦"), res.Archive)

	if res.Copied {
		fmt.Fprintf(w, "%s%s\n", st.icon("📋"), st.paint(st.success, "Path copied to clipboard"))

		return
	}

	fmt.Fprintf(w, "%s%s\n", st.icon("⚠️"), st.paint(st.failure, fmt.Sprintf("Could not copy to clipboard: %v", res.CopyErr)))
	fmt.Fprintln(w, res.Archive)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
