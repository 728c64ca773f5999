package walker

import (
	"fmt"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/printer"
)

type treeWalker struct {
	options WalkOptions
	matcher *ignore.IgnoreMatcher
	printer *printer.Printer
	tracker *SkippedTracker
	result  Result
}

// Walk prints rootDir as "<name>/" followed by its filtered tree.
// Directories that cannot be listed for lack of permission are printed
// without children; any other listing error aborts the walk.
func Walk(rootDir string, matcher *ignore.IgnoreMatcher, p *printer.Printer, opts ...Option) (Result, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	w := &treeWalker{
		options: options,
		matcher: matcher,
		printer: p,
		tracker: NewSkippedTracker(16),
	}

	options.Logger.Debug("walker.Walk started. Root: %s", rootDir)

	if err := p.PrintRoot(rootDir); err != nil {
		return Result{}, fmt.Errorf("walker: writing root line: %w", err)
	}

	err := w.walk(rootDir, "")
	w.result.Skipped = w.tracker.Items()
	if err != nil {
		return w.result, err
	}

	options.Logger.Debug("walker.Walk finished: %d directories, %d files", w.result.Dirs, w.result.Files)
	return w.result, nil
}

type entry struct {
	name  string
	path  string
	isDir bool
}

func (w *treeWalker) walk(dir, prefix string) error {
	listing, err := ListDir(w.options.Fs, dir)
	if err != nil {
		return fmt.Errorf("walker: listing %s: %w", dir, err)
	}
	if listing.Denied {
		w.options.Logger.Debug("Walker: permission denied listing %q, skipping its contents", dir)
		w.tracker.Track(dir, ReasonSkippedPermError, true)
		return nil
	}

	entries := make([]entry, 0, len(listing.Names))
	for _, name := range listing.Names {
		e := entry{name: name, path: joinPath(dir, name)}
		e.isDir = isDir(w.options.Fs, e.path)

		if verdict := w.matcher.Check(e.path, e.name, e.isDir); verdict.Ignored() {
			w.options.Logger.Debug("Walker: %q %s", e.path, verdict)
			w.tracker.Track(e.path, reasonFor(verdict), e.isDir)
			continue
		}
		entries = append(entries, e)
	}

	for i, e := range entries {
		last := i == len(entries)-1
		if err := w.printer.PrintEntry(prefix, e.name, last, e.isDir); err != nil {
			return fmt.Errorf("walker: writing %s: %w", e.path, err)
		}

		if !e.isDir {
			w.result.Files++
			continue
		}
		w.result.Dirs++
		if err := w.walk(e.path, printer.ChildPrefix(prefix, last)); err != nil {
			return err
		}
	}

	return nil
}
