// Package ignore provides file/directory pattern matching for exclusion
package ignore

import (
	"github.com/bethropolis/dir-tree/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Patterns is the ordered list of glob patterns read from an ignore file.
// Duplicates are kept; any single match excludes an entry.
type Patterns []string

// Verdict is the outcome of checking one entry against a Matcher
type Verdict int

const (
	Keep Verdict = iota
	IgnoredByPattern
	IgnoredByGitignore
	IgnoredGitDir
)

func (v Verdict) String() string {
	switch v {
	case Keep:
		return "keep"
	case IgnoredByPattern:
		return "ignored by pattern"
	case IgnoredByGitignore:
		return "ignored by .gitignore"
	case IgnoredGitDir:
		return "ignored .git directory"
	default:
		return "unknown"
	}
}

// Ignored reports whether the entry must be left out of the tree
func (v Verdict) Ignored() bool {
	return v != Keep
}

// IgnoreMatcher decides whether an entry of the walked tree is excluded
type IgnoreMatcher struct {
	patterns Patterns

	// Optional repository rules, loaded only when repoRules is set
	repoIgnore gitignore.GitIgnore
	repoRules  bool

	rootDir string
	logger  utils.Logger
}

// Config holds configuration options for the ignore matcher
type Config struct {
	RootDir   string
	Patterns  Patterns
	RepoRules bool
	Logger    utils.Logger
}
