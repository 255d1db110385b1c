/*
Package ignore implements gitignore-style path exclusion for the counter.

A Matcher is compiled once from the lines of an ignore file and consulted for
every path the walker visits. The supported subset of the gitignore syntax:

  - glob patterns, including ** (via doublestar)
  - negation with a leading ! that overrides an earlier match
  - directory-only patterns with a trailing /
  - anchoring to the root with a leading /
  - blank lines and # comments are skipped

Rules are evaluated in file order and the last matching rule wins, mirroring
the semantics of a real .gitignore. A pattern that does not compile as a glob
degrades to a literal path comparison instead of failing the run.
*/
package ignore

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// rule is one compiled ignore-file line.
type rule struct {
	pattern  string
	negate   bool
	dirOnly  bool
	anchored bool
	literal  bool
}

// Matcher decides whether a path relative to the scan root is excluded.
// A zero-rule Matcher never excludes anything.
type Matcher struct {
	rules []rule
}

// NewMatcher compiles ignore-file lines into a Matcher. Lines that are blank
// or comments are dropped; everything else becomes a rule.
func NewMatcher(lines []string) *Matcher {
	m := &Matcher{}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		r := rule{}

		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			r.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if strings.HasPrefix(line, "/") {
			r.anchored = true
			line = strings.TrimPrefix(line, "/")
		}
		if line == "" {
			continue
		}

		r.pattern = line
		if !doublestar.ValidatePattern(line) {
			// Malformed globs match as literal paths rather than erroring out.
			r.literal = true
		}

		m.rules = append(m.rules, r)
	}

	return m
}

// Match reports whether relPath is excluded. relPath must be slash-separated
// and relative to the scan root; isDir tells the matcher whether the path
// names a directory, which directory-only patterns require.
//
// All rules are evaluated in order and the last match decides, so a later
// !pattern can un-ignore a path an earlier pattern caught.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	relPath = strings.Trim(path.Clean(relPath), "/")
	if relPath == "." || relPath == "" {
		return false
	}

	ignored := false
	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.matches(relPath) {
			ignored = !r.negate
		}
	}

	return ignored
}

// Len returns the number of compiled rules.
func (m *Matcher) Len() int {
	return len(m.rules)
}

func (r rule) matches(relPath string) bool {
	if r.literal {
		return relPath == r.pattern
	}

	if strings.Contains(r.pattern, "/") || r.anchored {
		ok, err := doublestar.Match(r.pattern, relPath)
		return err == nil && ok
	}

	// A pattern without a slash matches the base name at any depth.
	ok, err := doublestar.Match(r.pattern, path.Base(relPath))
	return err == nil && ok
}
