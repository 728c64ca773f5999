// Package cli provides the dir-tree command line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/bethropolis/dir-tree/internal/app"
	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is the application version reported by --version
var Version = "1.0.0"

const (
	rootUse              = "dir-tree <directory> <ignore-file>"
	rootShortDescription = "Print a directory tree, filtering entries by an ignore file"
	rootLongDescription  = `dir-tree prints the tree of a directory, leaving out every entry
whose path or name matches a glob pattern from the ignore file.

The ignore file holds one pattern per line. Blank lines and lines starting
with '#' are skipped. '*', '?' and [...] follow shell rules: '*' also
matches '/' and leading dots. Every flag can be set from the environment
with the DIR_TREE_ prefix, e.g. DIR_TREE_NO_COLOR=true.`
	rootUsageExample = `  # Print the tree of ./project without build output
  dir-tree ./project ./tree-ignore.txt

  # Also honor .gitignore files and show what was left out
  dir-tree --gitignore --show-skipped . .treeignore`
)

// NewRootCommand builds the dir-tree command writing to the given streams
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	command := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			cfg, err := config.Load(command.Flags(), args, stdout, stderr)
			if err != nil {
				return err
			}
			return app.New(cfg, stdout, stderr).Run()
		},
	}
	command.SetOut(stdout)
	command.SetErr(stderr)
	config.RegisterFlags(command.Flags())
	return command
}

// Execute runs the command with args and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	command := NewRootCommand(stdout, stderr)
	command.SetArgs(args)
	if err := command.Execute(); err != nil {
		prefix := "Error:"
		if config.IsTerminal(stderr) {
			prefix = color.New(color.FgRed, color.Bold).Sprint(prefix)
		}
		fmt.Fprintf(stderr, "%s %v\n", prefix, err)
		return 1
	}
	return 0
}
