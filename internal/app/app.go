package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/logger"
	"github.com/bethropolis/dir-tree/internal/printer"
	"github.com/bethropolis/dir-tree/internal/setup"
	"github.com/bethropolis/dir-tree/internal/summary"
	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/spf13/afero"
)

var (
	// ErrInvalidRootDirectory means the root argument is not an existing directory
	ErrInvalidRootDirectory = errors.New("invalid root directory")
	// ErrInvalidIgnoreFile means the ignore-file argument is not a readable regular file
	ErrInvalidIgnoreFile = errors.New("invalid ignore file")
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
}

// New creates a new App writing the tree to stdout and diagnostics to stderr
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	log := logger.New(stderr, cfg.LogLevel, cfg.UseColors)

	return &App{
		cfg:    cfg,
		log:    log,
		stdout: stdout,
		stderr: stderr,
		fs:     afero.NewOsFs(),
	}
}

// Run validates the arguments, then prints the tree.
// Validation happens before anything is written to the tree output.
func (a *App) Run() error {
	startTime := time.Now()

	a.log.Debug("Directory: %s", a.cfg.RootDir)
	a.log.Debug("Ignore file: %s", a.cfg.IgnoreFile)
	a.log.Debug("Color output: logs=%v tree=%v", a.cfg.UseColors, a.cfg.TreeColors)

	if err := validateRootDir(a.cfg.RootDir); err != nil {
		return err
	}
	if err := validateIgnoreFile(a.cfg.IgnoreFile); err != nil {
		return err
	}

	patterns, err := ignore.LoadPatterns(a.cfg.IgnoreFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIgnoreFile, err)
	}

	matcher, walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:   a.cfg.RootDir,
		Patterns:  patterns,
		GitIgnore: a.cfg.GitIgnore,
		Logger:    a.log,
		Fs:        a.fs,
	}, a.log.Info)
	if err != nil {
		return err
	}

	output, closeOutput, err := a.openOutput()
	if err != nil {
		return err
	}
	defer closeOutput()

	p := printer.New().WithOutput(output).WithColors(a.cfg.TreeColors)

	result, err := walker.Walk(a.cfg.RootDir, matcher, p, walkOptions...)
	if err != nil {
		return err
	}

	if a.cfg.Summary {
		summary.DisplayResults(a.log, a.stderr, result, time.Since(startTime))
	}
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.stderr, result.Skipped)
	}

	return nil
}

func (a *App) openOutput() (io.Writer, func(), error) {
	if a.cfg.OutputFile == "" {
		return a.stdout, func() {}, nil
	}
	file, err := os.Create(a.cfg.OutputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, func() {
		if err := file.Close(); err != nil {
			a.log.Warn("closing %s: %v", a.cfg.OutputFile, err)
		}
	}, nil
}

func validateRootDir(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s is not a valid directory", ErrInvalidRootDirectory, path)
	}
	return nil
}

func validateIgnoreFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: ignore file %s not found", ErrInvalidIgnoreFile, path)
	}
	return nil
}
