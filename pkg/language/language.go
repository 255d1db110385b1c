/*
Package language holds the static comment-syntax rule table that drives line
classification. The table maps a file extension to the line-comment markers and
block-comment delimiter pairs of the language usually associated with it.

The table is built once at process start and is read-only afterwards, so it is
safe for concurrent lookups from any number of workers.
*/
package language

import (
	"sort"
	"strings"
)

// BlockDelims is one pair of block-comment delimiters, like /* and */.
type BlockDelims struct {
	Start string
	End   string
}

// Rule describes how comments are written for one file extension.
type Rule struct {
	// LineMarkers are the markers that start a whole-line comment, like //.
	LineMarkers []string

	// Blocks are the block-comment delimiter pairs, in match order.
	Blocks []BlockDelims
}

// FallbackRule is used for extensions the table does not know but the user
// explicitly asked for: no comment detection, every non-blank line is code.
var FallbackRule = Rule{}

var cBlocks = []BlockDelims{{Start: "/*", End: "*/"}}

var rules = map[string]Rule{
	"c":     {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"cc":    {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"cpp":   {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"cs":    {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"css":   {Blocks: cBlocks},
	"dart":  {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"go":    {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"h":     {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"hpp":   {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"html":  {Blocks: []BlockDelims{{Start: "<!--", End: "-->"}}},
	"java":  {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"js":    {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"jsx":   {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"kt":    {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"lua":   {LineMarkers: []string{"--"}, Blocks: []BlockDelims{{Start: "--[[", End: "]]"}}},
	"php":   {LineMarkers: []string{"//", "#"}, Blocks: cBlocks},
	"pl":    {LineMarkers: []string{"#"}, Blocks: []BlockDelims{{Start: "=pod", End: "=cut"}}},
	"py":    {LineMarkers: []string{"#"}, Blocks: []BlockDelims{{Start: `"""`, End: `"""`}, {Start: "'''", End: "'''"}}},
	"r":     {LineMarkers: []string{"#"}},
	"rb":    {LineMarkers: []string{"#"}, Blocks: []BlockDelims{{Start: "=begin", End: "=end"}}},
	"rs":    {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"scala": {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"sh":    {LineMarkers: []string{"#"}},
	"sql":   {LineMarkers: []string{"--"}, Blocks: cBlocks},
	"swift": {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"ts":    {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"tsx":   {LineMarkers: []string{"//"}, Blocks: cBlocks},
	"vue":   {LineMarkers: []string{"//"}, Blocks: []BlockDelims{{Start: "<!--", End: "-->"}, {Start: "/*", End: "*/"}}},
	"xml":   {Blocks: []BlockDelims{{Start: "<!--", End: "-->"}}},
	"yaml":  {LineMarkers: []string{"#"}},
	"yml":   {LineMarkers: []string{"#"}},
	"zig":   {LineMarkers: []string{"//"}},
}

// Normalize strips a leading dot and lowercases an extension so that ".Go",
// "go" and ".go" address the same rule.
func Normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// RulesFor returns the comment rule for a normalized extension. The second
// return value reports whether the extension is known to the table.
func RulesFor(ext string) (Rule, bool) {
	rule, ok := rules[Normalize(ext)]
	return rule, ok
}

// Supported returns the sorted list of extensions the table knows about.
func Supported() []string {
	exts := make([]string, 0, len(rules))
	for ext := range rules {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	return exts
}
