package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesFor(t *testing.T) {
	tests := []struct {
		name        string
		ext         string
		wantKnown   bool
		wantMarkers []string
	}{
		{
			name:        "go with bare extension",
			ext:         "go",
			wantKnown:   true,
			wantMarkers: []string{"//"},
		},
		{
			name:        "python with leading dot",
			ext:         ".py",
			wantKnown:   true,
			wantMarkers: []string{"#"},
		},
		{
			name:        "uppercase is normalized",
			ext:         ".GO",
			wantKnown:   true,
			wantMarkers: []string{"//"},
		},
		{
			name:      "unknown extension",
			ext:       "xyz",
			wantKnown: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := RulesFor(tt.ext)
			assert.Equal(t, tt.wantKnown, ok)
			if tt.wantKnown {
				assert.Equal(t, tt.wantMarkers, rule.LineMarkers)
			}
		})
	}
}

func TestRulesForBlockDelimiters(t *testing.T) {
	rule, ok := RulesFor("html")
	assert.True(t, ok)
	assert.Empty(t, rule.LineMarkers)
	assert.Equal(t, []BlockDelims{{Start: "<!--", End: "-->"}}, rule.Blocks)

	rule, ok = RulesFor("py")
	assert.True(t, ok)
	assert.Len(t, rule.Blocks, 2)
}

func TestSupported(t *testing.T) {
	exts := Supported()
	assert.NotEmpty(t, exts)
	assert.Contains(t, exts, "go")
	assert.Contains(t, exts, "py")

	// Sorted output keeps the walker's pass-through filter deterministic.
	for i := 1; i < len(exts); i++ {
		assert.Less(t, exts[i-1], exts[i])
	}
}

func TestFallbackRuleHasNoMarkers(t *testing.T) {
	assert.Empty(t, FallbackRule.LineMarkers)
	assert.Empty(t, FallbackRule.Blocks)
}
