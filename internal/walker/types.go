// Package walker renders a directory as a tree of connector-prefixed lines
package walker

import "github.com/bethropolis/dir-tree/internal/ignore"

// SkippedReason clarifies why an entry was left out of the tree.
type SkippedReason string

const (
	ReasonIgnoredRule      SkippedReason = "Ignored (Ignore File Pattern)"
	ReasonIgnoredGitignore SkippedReason = "Ignored (Gitignore Rule)"
	ReasonIgnoredGitDir    SkippedReason = "Ignored (.git Directory)"
	ReasonSkippedPermError SkippedReason = "Skipped (Permission Error)"
)

// reasonFor maps a matcher verdict to the reason recorded for it
func reasonFor(v ignore.Verdict) SkippedReason {
	switch v {
	case ignore.IgnoredByGitignore:
		return ReasonIgnoredGitignore
	case ignore.IgnoredGitDir:
		return ReasonIgnoredGitDir
	default:
		return ReasonIgnoredRule
	}
}

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	IsDir  bool
}

// SkippedTracker collects skipped items in the order they are met
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}

// Result summarizes a finished walk
type Result struct {
	Dirs    int64 // directories printed, root excluded
	Files   int64 // non-directories printed
	Skipped []SkippedItem
}

// Listing is the outcome of listing one directory: either its sorted
// entry names, or Denied when the directory could not be opened for
// lack of permission.
type Listing struct {
	Names  []string
	Denied bool
}
