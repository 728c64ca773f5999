package printer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectorAndChildPrefix(t *testing.T) {
	assert.Equal(t, "└── ", Connector(true))
	assert.Equal(t, "├── ", Connector(false))

	assert.Equal(t, "    ", ChildPrefix("", true))
	assert.Equal(t, "│   ", ChildPrefix("", false))
	assert.Equal(t, "│       ", ChildPrefix("│   ", true))
	assert.Len(t, []rune(ChildPrefix("│   ", false)), 8)
}

func TestPrintEntry(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false)

	require.NoError(t, p.PrintEntry("", "a.txt", false, false))
	require.NoError(t, p.PrintEntry("│   ", "sub", true, true))

	assert.Equal(t, "├── a.txt\n│   └── sub\n", buf.String())
}

func TestPrintEntryColorsDirectoriesOnly(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(true)

	require.NoError(t, p.PrintEntry("", "file", false, false))
	require.NoError(t, p.PrintEntry("", "dir", true, true))

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "├── file", string(lines[0]))
	assert.Contains(t, string(lines[1]), "\x1b[")
	assert.Contains(t, string(lines[1]), "dir")
}

func TestPrintRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.Mkdir(dir, 0o755))

	var buf bytes.Buffer
	p := New().WithOutput(&buf)
	require.NoError(t, p.PrintRoot(dir+string(filepath.Separator)))

	assert.Equal(t, "project/\n", buf.String())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "project", DisplayName("/tmp/project"))
	assert.Equal(t, "project", DisplayName("/tmp/project///"))
	assert.Equal(t, "", DisplayName("/"))
}
