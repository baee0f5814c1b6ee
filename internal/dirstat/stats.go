package dirstat

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/idelchi/devkit/internal/walk"
)

// DefaultTopN is the number of ranked directories reported when none is requested.
const DefaultTopN = 10

// Entry is a ranked directory in a size report.
type Entry struct {
	// Rank is the 1-based position in the report.
	Rank int `json:"rank"`

	walk.Node
}

// Stats holds the result of a size scan.
type Stats struct {
	// Root is the absolute scan root.
	Root string `json:"root"`
	// Depth is the depth limit the scan ran with.
	Depth string `json:"max_depth"`
	// Nodes is the full set of discovered directories, in discovery order.
	Nodes []walk.Node `json:"-"`
	// Top contains the N largest directories, largest first.
	Top []Entry `json:"top"`
	// DirCount is the number of discovered directories.
	DirCount int `json:"dir_count"`
	// TotalBytes is the size of everything below the scan root's subdirectories.
	TotalBytes int64 `json:"total_bytes"`
	// Warnings is the number of entries skipped because they could not be read.
	Warnings int64 `json:"warnings"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
	// TopN is the number of top results requested.
	TopN int `json:"top_n"`
}

// Options configures a size scan.
type Options struct {
	// Path is the directory to scan.
	Path string
	// Depth bounds the traversal.
	Depth walk.DepthLimit
	// TopN is the number of ranked directories to keep.
	TopN int
	// MinSize hides directories smaller than this many bytes from the ranking.
	MinSize int64
}

// Rank orders nodes by size, largest first, and keeps the first topN.
// Equal sizes keep their discovery order. Nodes smaller than minSize are not ranked.
func Rank(nodes []walk.Node, topN int, minSize int64) []Entry {
	if topN <= 0 {
		topN = DefaultTopN
	}

	ranked := make([]walk.Node, 0, len(nodes))

	for _, node := range nodes {
		if node.Size < minSize {
			continue
		}

		ranked = append(ranked, node)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Size > ranked[j].Size
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	entries := make([]Entry, len(ranked))
	for i, node := range ranked {
		entries[i] = Entry{Rank: i + 1, Node: node}
	}

	return entries
}

// TotalSize returns the size of the full discovered set.
// Only depth-0 nodes are summed since every deeper node is already contained in one of them.
func TotalSize(nodes []walk.Node) int64 {
	var total int64

	for _, node := range nodes {
		if node.Depth == 0 {
			total += node.Size
		}
	}

	return total
}

// Line renders an entry as "rank. <indent>name (size)", indenting two spaces per depth level.
func Line(entry Entry) string {
	return fmt.Sprintf("%d. %s%s (%s)",
		entry.Rank, strings.Repeat("  ", entry.Depth), entry.Name, FormatBytes(entry.Size))
}

// Lines renders every entry with Line.
func Lines(entries []Entry) []string {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = Line(entry)
	}

	return lines
}
