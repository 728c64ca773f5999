package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIgnoreFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ignore.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPatterns(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    Patterns
	}{
		{
			name:    "keeps file order and duplicates",
			content: "*.log\nnode_modules\n*.log\n",
			want:    Patterns{"*.log", "node_modules", "*.log"},
		},
		{
			name:    "trims whitespace and carriage returns",
			content: "  build  \r\n\t*.tmp\r\n",
			want:    Patterns{"build", "*.tmp"},
		},
		{
			name:    "bare carriage returns end lines",
			content: "*.log\rbuild\r# note\r\rdist",
			want:    Patterns{"*.log", "build", "dist"},
		},
		{
			name:    "mixed line endings",
			content: "a\r\nb\rc\nd\r",
			want:    Patterns{"a", "b", "c", "d"},
		},
		{
			name:    "skips blanks and comments",
			content: "# comment\n\n   \n   # indented comment\nvendor\n",
			want:    Patterns{"vendor"},
		},
		{
			name:    "hash inside a pattern is kept",
			content: "a#b\n",
			want:    Patterns{"a#b"},
		},
		{
			name:    "no trailing newline",
			content: "dist",
			want:    Patterns{"dist"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LoadPatterns(writeIgnoreFile(t, tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScanAnyLinesWaitsForNewlineAfterCarriageReturn(t *testing.T) {
	advance, token, err := scanAnyLines([]byte("a\r"), false)
	require.NoError(t, err)
	assert.Zero(t, advance)
	assert.Nil(t, token)

	advance, token, err = scanAnyLines([]byte("a\r\nb"), false)
	require.NoError(t, err)
	assert.Equal(t, 3, advance)
	assert.Equal(t, []byte("a"), token)
}

func TestLoadPatternsOnlyCommentsIsEmpty(t *testing.T) {
	got, err := LoadPatterns(writeIgnoreFile(t, "\n# one\n\n#two\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadPatternsMissingFile(t *testing.T) {
	_, err := LoadPatterns(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadPatternsDirectoryIsUnreadable(t *testing.T) {
	_, err := LoadPatterns(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileUnreadable)
}
