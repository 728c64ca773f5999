package ignore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrFileNotFound is returned when the ignore file does not exist
	ErrFileNotFound = errors.New("ignore file not found")
	// ErrFileUnreadable is returned when the ignore file exists but cannot be read
	ErrFileUnreadable = errors.New("ignore file unreadable")
)

// maxLineBytes bounds a single ignore-file line
const maxLineBytes = 1 << 20

// LoadPatterns reads an ignore file, one glob pattern per line.
// Lines are trimmed; empty lines and lines starting with '#' are skipped.
func LoadPatterns(path string) (Patterns, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}
	defer file.Close()

	patterns := Patterns{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	scanner.Split(scanAnyLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFileUnreadable, path, err)
	}

	return patterns, nil
}

// scanAnyLines is bufio.ScanLines that also ends a line at a bare '\r'
func scanAnyLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// a '\n' may follow in the next read
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
