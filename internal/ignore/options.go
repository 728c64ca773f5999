package ignore

import "github.com/bethropolis/dir-tree/internal/utils"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithPatterns sets the ignore-file patterns
func WithPatterns(patterns Patterns) Option {
	return func(m *IgnoreMatcher) {
		m.patterns = patterns
	}
}

// WithGitIgnore also honors .gitignore files found under the root and hides .git directories
func WithGitIgnore(enabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.repoRules = enabled
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
