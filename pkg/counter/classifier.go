package counter

import (
	"bytes"
	"strings"

	"github.com/marcoimbee/pyloc/pkg/language"
)

// binarySniffLen bounds how much of a file is inspected for binary content.
const binarySniffLen = 8000

// Classify splits content into physical lines and classifies each one as
// code, comment or blank according to the extension's comment rule.
//
// A single "inside block comment" state persists across lines. While it is
// set, every line counts as comment; the line carrying the closing delimiter
// is counted as comment in full, even when code trails the delimiter on the
// same line. That keeps counts stable across runs and matches the documented
// behavior of the classifier.
//
// The returned counts always satisfy Code+Comment+Blank == Total.
func Classify(content []byte, rule language.Rule) Counts {
	var counts Counts

	if len(content) == 0 {
		return counts
	}

	lines := splitLines(content)

	inBlock := false
	var blockEnd string

	for _, line := range lines {
		counts.Total++

		if inBlock {
			counts.Comment++
			if strings.Contains(line, blockEnd) {
				inBlock = false
				blockEnd = ""
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			counts.Blank++
			continue
		}

		if startsWithLineMarker(trimmed, rule.LineMarkers) {
			counts.Comment++
			continue
		}

		if delims, at, ok := findBlockStart(trimmed, rule.Blocks); ok {
			counts.Comment++
			rest := trimmed[at+len(delims.Start):]
			if !strings.Contains(rest, delims.End) {
				inBlock = true
				blockEnd = delims.End
			}
			continue
		}

		counts.Code++
	}

	return counts
}

// IsBinary reports whether content looks like binary data. A NUL byte within
// the sniff window marks the file as undecodable text.
func IsBinary(content []byte) bool {
	sniff := content
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}

	return bytes.IndexByte(sniff, 0) >= 0
}

// splitLines splits on \n and drops the trailing empty slot a final newline
// produces, so "a\nb\n" is two physical lines, not three. \r\n line endings
// are handled by trimming the \r.
func splitLines(content []byte) []string {
	text := string(content)
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func startsWithLineMarker(trimmed string, markers []string) bool {
	for _, marker := range markers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}

	return false
}

// findBlockStart locates the earliest block-comment start in the line. Pairs
// are tried in rule order; the one whose start appears first wins.
func findBlockStart(trimmed string, blocks []language.BlockDelims) (language.BlockDelims, int, bool) {
	best := -1
	var found language.BlockDelims

	for _, delims := range blocks {
		if at := strings.Index(trimmed, delims.Start); at >= 0 {
			if best == -1 || at < best {
				best = at
				found = delims
			}
		}
	}

	return found, best, best >= 0
}
