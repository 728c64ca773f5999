package ignore

import (
	"path/filepath"
)

// Check decides whether the entry at fullPath (named baseName) is excluded.
// The ignore-file patterns are consulted first; .gitignore rules cannot
// bring back an entry the patterns exclude.
func (m *IgnoreMatcher) Check(fullPath, baseName string, isDir bool) Verdict {
	if m == nil {
		return Keep
	}

	if Match(fullPath, baseName, m.patterns) {
		m.logger.Debug("ignore.Check: %q matched an ignore pattern", fullPath)
		return IgnoredByPattern
	}

	if !m.repoRules {
		return Keep
	}

	if isDir && baseName == ".git" {
		m.logger.Debug("ignore.Check: %q is a .git directory", fullPath)
		return IgnoredGitDir
	}

	if m.repoIgnore != nil && m.repoIgnored(fullPath, isDir) {
		return IgnoredByGitignore
	}

	return Keep
}

func (m *IgnoreMatcher) repoIgnored(fullPath string, isDir bool) (ignored bool) {
	relativePath, err := filepath.Rel(m.rootDir, fullPath)
	if err != nil || relativePath == "." {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("PANIC recovered in gitignore library for path %q: %v", fullPath, r)
			ignored = false
		}
	}()

	match := m.repoIgnore.Relative(relativePath, isDir)
	if match == nil {
		return false
	}
	if match.Ignore() {
		m.logger.Debug("ignore.Check: %q ignored by %s", fullPath, match)
		return true
	}
	return false
}
