package ignore

import (
	"strings"

	"github.com/danwakefield/fnmatch"
)

// globFlags selects plain shell-glob matching: '*' and '?' cross path
// separators and leading dots need no explicit match. Escapes are left on
// because toGlob uses them to carry literals.
const globFlags = 0

// Match reports whether any pattern matches fullPath or baseName.
// fullPath is the path exactly as the walker built it, so a pattern
// containing a separator only matches at the depth it spells out.
func Match(fullPath, baseName string, patterns Patterns) bool {
	for _, pattern := range patterns {
		glob := toGlob(pattern)
		if fnmatch.Match(glob, fullPath, globFlags) || fnmatch.Match(glob, baseName, globFlags) {
			return true
		}
	}
	return false
}

// toGlob rewrites an ignore-file pattern into fnmatch syntax with escapes.
// Ignore patterns have no escape character, so '\' is literal. A '[' without
// a closing ']' is literal, a ']' right after the opening '[' or '[!' is a
// class member, and '!' (never '^') negates a class.
func toGlob(pattern string) string {
	p := []rune(pattern)
	var b strings.Builder
	b.Grow(len(pattern) + 4)

	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case '*', '?':
			b.WriteRune(c)
		case '[':
			end := classEnd(p, i+1)
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			body := p[i+1 : end]
			b.WriteRune('[')
			if len(body) > 0 && body[0] == '!' {
				b.WriteRune('!')
				body = body[1:]
			}
			for _, r := range body {
				if r != '-' {
					b.WriteRune('\\')
				}
				b.WriteRune(r)
			}
			b.WriteRune(']')
			i = end
		default:
			b.WriteRune('\\')
			b.WriteRune(c)
		}
	}
	return b.String()
}

// classEnd returns the index of the ']' closing a class whose body starts
// at start, or -1 when the class is never closed.
func classEnd(p []rune, start int) int {
	j := start
	if j < len(p) && p[j] == '!' {
		j++
	}
	if j < len(p) && p[j] == ']' {
		j++
	}
	for j < len(p) && p[j] != ']' {
		j++
	}
	if j >= len(p) {
		return -1
	}
	return j
}
