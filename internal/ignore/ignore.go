package ignore

import (
	"fmt"

	"github.com/bethropolis/dir-tree/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates an IgnoreMatcher for the tree rooted at rootDir.
// rootDir is kept as given so relative paths line up with the walker's joined paths.
func New(rootDir string, opts ...Option) (*IgnoreMatcher, error) {
	matcher := &IgnoreMatcher{
		rootDir: rootDir,
		logger:  utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if err := matcher.init(); err != nil {
		return nil, err
	}

	return matcher, nil
}

// NewFromConfig creates an IgnoreMatcher from a Config struct
func NewFromConfig(cfg Config) (*IgnoreMatcher, error) {
	options := []Option{
		WithPatterns(cfg.Patterns),
		WithGitIgnore(cfg.RepoRules),
	}
	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}
	return New(cfg.RootDir, options...)
}

func (m *IgnoreMatcher) init() error {
	m.logger.Debug("ignore.New: root %q, %d pattern(s), gitignore=%v", m.rootDir, len(m.patterns), m.repoRules)

	if !m.repoRules {
		return nil
	}

	repoMatcher, err := gitignore.NewRepository(m.rootDir)
	if err != nil {
		if repoMatcher != nil {
			return fmt.Errorf("ignore: failed to load repository ignores: %w", err)
		}
		m.logger.Warn("ignore.New: no .gitignore rules loaded for %q: %v", m.rootDir, err)
		repoMatcher = gitignore.New(nil, "", nil)
	}
	m.repoIgnore = repoMatcher
	m.logger.Debug("ignore.New: repository ignores loaded from %q", m.rootDir)

	return nil
}
