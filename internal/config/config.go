// Package config resolves dir-tree settings from arguments, flags and the environment
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bethropolis/dir-tree/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that mirror flags, e.g. DIR_TREE_NO_COLOR
const EnvPrefix = "DIR_TREE"

// Flag names
const (
	FlagNoColor     = "no-color"
	FlagGitIgnore   = "gitignore"
	FlagShowSkipped = "show-skipped"
	FlagSummary     = "summary"
	FlagOutput      = "output"
	FlagVerbose     = "verbose"
	FlagQuiet       = "quiet"
	FlagLogLevel    = "log-level"
)

// Config holds all application configuration settings
type Config struct {
	RootDir    string
	IgnoreFile string

	// Logging settings
	LogLevel  logger.LogLevel
	NoColor   bool
	UseColors bool // colored log prefixes on stderr

	// Output settings
	OutputFile  string
	TreeColors  bool // colored directory names in the tree
	ShowSkipped bool
	Summary     bool

	// Filtering settings
	GitIgnore bool
}

// RegisterFlags declares every dir-tree flag on flags
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Bool(FlagNoColor, false, "Disable color output")
	flags.Bool(FlagGitIgnore, false, "Also exclude entries matched by .gitignore files under the directory")
	flags.Bool(FlagShowSkipped, false, "List excluded entries and unreadable directories on stderr")
	flags.Bool(FlagSummary, false, "Print directory and file counts on stderr")
	flags.StringP(FlagOutput, "o", "", "Write the tree to this file instead of stdout")
	flags.BoolP(FlagVerbose, "v", false, "Enable debug logging")
	flags.BoolP(FlagQuiet, "q", false, "Only log errors")
	flags.String(FlagLogLevel, "warn", "Logging level (debug, info, warn, error, none)")
}

// newReader binds flags to viper so each one can also come from the environment
func newReader(flags *pflag.FlagSet) (*viper.Viper, error) {
	reader := viper.New()
	reader.SetEnvPrefix(EnvPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	reader.AutomaticEnv()
	if err := reader.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return reader, nil
}

// Load builds a Config from the two positional arguments and the parsed flags.
// stdout and stderr decide whether colors are used.
func Load(flags *pflag.FlagSet, args []string, stdout, stderr io.Writer) (*Config, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected <directory> <ignore-file>, got %d argument(s)", len(args))
	}

	reader, err := newReader(flags)
	if err != nil {
		return nil, err
	}

	c := &Config{
		RootDir:     args[0],
		IgnoreFile:  args[1],
		NoColor:     reader.GetBool(FlagNoColor),
		OutputFile:  reader.GetString(FlagOutput),
		ShowSkipped: reader.GetBool(FlagShowSkipped),
		Summary:     reader.GetBool(FlagSummary),
		GitIgnore:   reader.GetBool(FlagGitIgnore),
	}

	switch {
	case reader.GetBool(FlagVerbose):
		c.LogLevel = logger.LevelDebug
	case reader.GetBool(FlagQuiet):
		c.LogLevel = logger.LevelError
	default:
		level, err := logger.ParseLevel(reader.GetString(FlagLogLevel))
		if err != nil {
			return nil, err
		}
		c.LogLevel = level
	}

	c.UseColors = !c.NoColor && IsTerminal(stderr)
	c.TreeColors = !c.NoColor && c.OutputFile == "" && IsTerminal(stdout)

	return c, nil
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
