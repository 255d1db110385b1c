package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		relPath string
		isDir   bool
		want    bool
	}{
		{
			name:    "simple glob matches",
			lines:   []string{"*.log"},
			relPath: "debug.log",
			want:    true,
		},
		{
			name:    "negation overrides earlier match",
			lines:   []string{"*.log", "!keep.log"},
			relPath: "keep.log",
			want:    false,
		},
		{
			name:    "negation leaves other matches ignored",
			lines:   []string{"*.log", "!keep.log"},
			relPath: "debug.log",
			want:    true,
		},
		{
			name:    "re-ignore after negation, last match wins",
			lines:   []string{"*.log", "!keep.log", "keep.log"},
			relPath: "keep.log",
			want:    true,
		},
		{
			name:    "basename pattern matches at any depth",
			lines:   []string{"*.tmp"},
			relPath: "a/b/c/scratch.tmp",
			want:    true,
		},
		{
			name:    "directory-only pattern matches directory",
			lines:   []string{"build/"},
			relPath: "build",
			isDir:   true,
			want:    true,
		},
		{
			name:    "directory-only pattern skips plain file",
			lines:   []string{"build/"},
			relPath: "build",
			isDir:   false,
			want:    false,
		},
		{
			name:    "anchored pattern matches root entry only",
			lines:   []string{"/vendor"},
			relPath: "vendor",
			isDir:   true,
			want:    true,
		},
		{
			name:    "anchored pattern does not match nested entry",
			lines:   []string{"/vendor"},
			relPath: "third_party/vendor",
			isDir:   true,
			want:    false,
		},
		{
			name:    "slash pattern matches relative path",
			lines:   []string{"docs/*.md"},
			relPath: "docs/readme.md",
			want:    true,
		},
		{
			name:    "doublestar pattern",
			lines:   []string{"**/node_modules"},
			relPath: "apps/web/node_modules",
			isDir:   true,
			want:    true,
		},
		{
			name:    "comments and blanks are skipped",
			lines:   []string{"# comment", "", "*.log"},
			relPath: "debug.log",
			want:    true,
		},
		{
			name:    "malformed pattern degrades to literal",
			lines:   []string{"foo["},
			relPath: "foo[",
			want:    true,
		},
		{
			name:    "malformed pattern does not glob",
			lines:   []string{"foo["},
			relPath: "foox",
			want:    false,
		},
		{
			name:    "no rules never ignores",
			lines:   nil,
			relPath: "anything.go",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.lines)
			assert.Equal(t, tt.want, m.Match(tt.relPath, tt.isDir))
		})
	}
}

func TestMatcherRootIsNeverIgnored(t *testing.T) {
	m := NewMatcher([]string{"*"})
	assert.False(t, m.Match(".", true))
	assert.False(t, m.Match("", true))
}

func TestMatcherLen(t *testing.T) {
	m := NewMatcher([]string{"# only a comment", "", "*.log", "!keep.log"})
	assert.Equal(t, 2, m.Len())
}
