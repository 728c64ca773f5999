// Package printer handles output formatting and display
package printer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Connectors and prefix extensions used to draw the tree
const (
	ConnectorMid = "├── "
	ConnectorEnd = "└── "
	ExtendMid    = "│   "
	ExtendEnd    = "    "
)

// Printer writes tree lines to the configured output destination
type Printer struct {
	output    io.Writer
	useColors bool
	dirColor  *color.Color
}

// New creates a new Printer writing plain lines to stdout
func New() *Printer {
	return &Printer{
		output:   os.Stdout,
		dirColor: color.New(color.FgBlue, color.Bold),
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored directory names
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	if enabled {
		p.dirColor.EnableColor()
	} else {
		p.dirColor.DisableColor()
	}
	return p
}

// Connector returns the connector for an entry at the given sibling position
func Connector(last bool) string {
	if last {
		return ConnectorEnd
	}
	return ConnectorMid
}

// ChildPrefix extends prefix for the children of an entry
func ChildPrefix(prefix string, last bool) string {
	if last {
		return prefix + ExtendEnd
	}
	return prefix + ExtendMid
}

// DisplayName is the name printed for the root directory
func DisplayName(rootDir string) string {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		abs = filepath.Clean(rootDir)
	}
	trimmed := strings.TrimRight(abs, string(filepath.Separator))
	if trimmed == "" || trimmed == filepath.VolumeName(abs) {
		return ""
	}
	return filepath.Base(trimmed)
}

// PrintRoot writes the root line, "<name>/"
func (p *Printer) PrintRoot(rootDir string) error {
	_, err := fmt.Fprintf(p.output, "%s/\n", p.paint(DisplayName(rootDir), true))
	return err
}

// PrintEntry writes "<prefix><connector><name>"
func (p *Printer) PrintEntry(prefix, name string, last, isDir bool) error {
	_, err := fmt.Fprintf(p.output, "%s%s%s\n", prefix, Connector(last), p.paint(name, isDir))
	return err
}

func (p *Printer) paint(name string, isDir bool) string {
	if !p.useColors || !isDir {
		return name
	}
	return p.dirColor.Sprint(name)
}
