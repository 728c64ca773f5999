// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/spf13/afero"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds all parameters needed to configure a directory walker
type WalkerConfig struct {
	RootDir   string
	Patterns  ignore.Patterns
	GitIgnore bool
	Logger    utils.Logger
	Fs        afero.Fs // nil means the OS filesystem
}

// ConfigureWalker sets up an ignore matcher and walker options based on the config
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (
	*ignore.IgnoreMatcher,
	[]walker.Option,
	error,
) {
	if len(cfg.Patterns) > 0 {
		infoLog("Using %d ignore pattern(s): %v", len(cfg.Patterns), []string(cfg.Patterns))
	} else {
		infoLog("Ignore file has no patterns; printing the full tree.")
	}
	if cfg.GitIgnore {
		infoLog("Honoring .gitignore files under %s.", cfg.RootDir)
	}

	matcher, err := ignore.NewFromConfig(ignore.Config{
		RootDir:   cfg.RootDir,
		Patterns:  cfg.Patterns,
		RepoRules: cfg.GitIgnore,
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}

	walkOptions := []walker.Option{
		walker.WithLogger(cfg.Logger),
	}
	if cfg.Fs != nil {
		walkOptions = append(walkOptions, walker.WithFs(cfg.Fs))
	}

	return matcher, walkOptions, nil
}
