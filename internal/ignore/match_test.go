package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		name     string
		fullPath string
		baseName string
		patterns Patterns
		want     bool
	}{
		{"extension on base name", "root/b.log", "b.log", Patterns{"*.log"}, true},
		{"literal directory name", "root/node_modules", "node_modules", Patterns{"node_modules"}, true},
		{"no patterns", "root/a.txt", "a.txt", nil, false},
		{"any pattern suffices", "root/a.txt", "a.txt", Patterns{"*.md", "a.*"}, true},
		{"question mark is one character", "root/a.txt", "a.txt", Patterns{"?.txt"}, true},
		{"question mark needs a character", "root/ab.txt", "ab.txt", Patterns{"?.txt"}, false},
		{"character class", "root/b.txt", "b.txt", Patterns{"[ab].txt"}, true},
		{"negated character class", "root/c.txt", "c.txt", Patterns{"[!ab].txt"}, true},
		{"case sensitive", "root/a.txt", "a.txt", Patterns{"*.TXT"}, false},
		{"star crosses separators", "root/sub/c.txt", "c.txt", Patterns{"root*txt"}, true},
		{"full path pattern", "root/sub/c.txt", "c.txt", Patterns{"root/sub/*"}, true},
		{"full path pattern at another depth", "other/root/sub/c.txt", "c.txt", Patterns{"root/sub/*"}, false},
		{"leading dot needs no special match", "root/.env", ".env", Patterns{"*env"}, true},
		{"backslash is literal", `root\x`, `root\x`, Patterns{`root\x`}, true},
		{"partial name does not match", "root/a.txt", "a.txt", Patterns{"a"}, false},
		{"leading bracket in class", "root/]", "]", Patterns{"[]]"}, true},
		{"leading bracket then more members", "root/]x", "]x", Patterns{"[]a]x"}, true},
		{"negated leading bracket", "root/a", "a", Patterns{"[!]]"}, true},
		{"negated leading bracket excludes it", "root/]", "]", Patterns{"[!]]"}, false},
		{"caret is a class member", "root/b", "b", Patterns{"[^a]"}, false},
		{"caret matches itself", "root/^", "^", Patterns{"[^a]"}, true},
		{"lone bracket is literal", "root/[", "[", Patterns{"["}, true},
		{"trailing bracket is literal", "root/a[", "a[", Patterns{"a["}, true},
		{"unclosed range is literal", "root/[a-", "[a-", Patterns{"[a-"}, true},
		{"empty brackets are literal", "root/x[]", "x[]", Patterns{"x[]"}, true},
		{"range in class", "root/m.txt", "m.txt", Patterns{"[a-z].txt"}, true},
		{"range excludes outside", "root/M.txt", "M.txt", Patterns{"[a-z].txt"}, false},
		{"dash at class end is literal", "root/-", "-", Patterns{"[a-]"}, true},
		{"backslash in class is literal", `root/\`, `\`, Patterns{`[\]`}, true},
		{"star before literal bracket", "root/log[", "log[", Patterns{"*["}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.fullPath, tc.baseName, tc.patterns))
		})
	}
}

func TestToGlob(t *testing.T) {
	testCases := map[string]string{
		"*.log":  `*\.\l\o\g`,
		"a[":     `\a\[`,
		"[]]":    `[\]]`,
		"[!]]":   `[!\]]`,
		"[^a-z]": `[\^\a-\z]`,
		`a\b`:    `\a\\\b`,
	}
	for in, want := range testCases {
		assert.Equal(t, want, toGlob(in), in)
	}
}
