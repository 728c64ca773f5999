// Package summary handles display of walk results and skipped entries
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/dir-tree/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Debug(format string, args ...interface{})
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// DisplayResults writes the "N directories, M files" line for a finished walk
func DisplayResults(logger Logger, output io.Writer, result walker.Result, duration time.Duration) {
	logger.Debug("Walk complete in %v.", duration.Round(time.Millisecond))
	fmt.Fprintf(output, "%s, %s\n",
		plural(result.Dirs, "directory", "directories"),
		plural(result.Files, "file", "files"),
	)
}

// DisplaySkippedItems lists skipped entries sorted by path
func DisplaySkippedItems(output io.Writer, skippedItems []walker.SkippedItem) {
	fmt.Fprintf(output, "--- Skipped Items (%d) ---\n", len(skippedItems))
	if len(skippedItems) == 0 {
		fmt.Fprintln(output, "No items were skipped.")
	}

	items := make([]walker.SkippedItem, len(skippedItems))
	copy(items, skippedItems)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %s [%s]\n", typeStr, item.Path, item.Reason)
	}
	fmt.Fprintln(output, "--- End Skipped Items ---")
}
