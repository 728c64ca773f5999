package walker

import (
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/spf13/afero"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger utils.Logger
	Fs     afero.Fs
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger: utils.NoopLogger{},
		Fs:     afero.NewOsFs(),
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithFs sets the filesystem the walker lists and stats through
func WithFs(fs afero.Fs) Option {
	return func(opts *WalkOptions) {
		if fs != nil {
			opts.Fs = fs
		}
	}
}
