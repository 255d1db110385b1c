package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcoimbee/pyloc/pkg/language"
)

func goRule(t *testing.T) language.Rule {
	t.Helper()
	rule, ok := language.RulesFor("go")
	assert.True(t, ok)
	return rule
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fallback bool
		want     Counts
	}{
		{
			name:    "empty file",
			content: "",
			want:    Counts{},
		},
		{
			name:    "single code line without trailing newline",
			content: "package main",
			want:    Counts{Code: 1, Total: 1},
		},
		{
			name:    "code comment and blank",
			content: "package main\n\n// entry point\nfunc main() {}\n",
			want:    Counts{Code: 2, Comment: 1, Blank: 1, Total: 4},
		},
		{
			name:    "block comment spanning three lines",
			content: "/*\nlicense\n*/\n",
			want:    Counts{Comment: 3, Total: 3},
		},
		{
			name:    "block open and close on one line",
			content: "/* short */\ncode()\n",
			want:    Counts{Code: 1, Comment: 1, Total: 2},
		},
		{
			name: "trailing code after block close stays a comment line",
			// Deliberate simplification: the closing line is comment in full.
			content: "/*\ncomment */ code()\ncode()\n",
			want:    Counts{Code: 1, Comment: 2, Total: 3},
		},
		{
			name:    "code before block start counts as comment line",
			content: "code() /* opens\nstill comment\n*/\n",
			want:    Counts{Comment: 3, Total: 3},
		},
		{
			name:    "windows line endings",
			content: "code()\r\n\r\n// comment\r\n",
			want:    Counts{Code: 1, Comment: 1, Blank: 1, Total: 3},
		},
		{
			name:    "whitespace only lines are blank",
			content: "   \n\t\ncode()\n",
			want:    Counts{Code: 1, Blank: 2, Total: 3},
		},
		{
			name:     "fallback rule counts every non-blank line as code",
			content:  "# looks like a comment\n\nanything\n",
			fallback: true,
			want:     Counts{Code: 2, Blank: 1, Total: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := goRule(t)
			if tt.fallback {
				rule = language.FallbackRule
			}

			got := Classify([]byte(tt.content), rule)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Code+got.Comment+got.Blank,
				"classifier invariant: code+comment+blank == total")
		})
	}
}

func TestClassifyPythonDocstrings(t *testing.T) {
	rule, ok := language.RulesFor("py")
	assert.True(t, ok)

	content := `"""
module docstring
"""
x = 1
# comment
`
	got := Classify([]byte(content), rule)
	assert.Equal(t, Counts{Code: 1, Comment: 4, Total: 5}, got)
}

func TestClassifyHTML(t *testing.T) {
	rule, ok := language.RulesFor("html")
	assert.True(t, ok)

	content := "<!-- header -->\n<p>hi</p>\n<!--\nmulti\n-->\n"
	got := Classify([]byte(content), rule)
	assert.Equal(t, Counts{Code: 1, Comment: 4, Total: 5}, got)
}

func TestIsBinary(t *testing.T) {
	assert.True(t, IsBinary([]byte{0x7f, 'E', 'L', 'F', 0x00, 0x01}))
	assert.False(t, IsBinary([]byte("plain text\nwith lines\n")))
	assert.False(t, IsBinary(nil))
}
