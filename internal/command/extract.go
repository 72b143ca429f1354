// Package command turns raw model output into a typed database command.
package command

import (
	"regexp"
	"strings"
)

var (
	fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	jsonToken   = regexp.MustCompile(`(?i)json`)
)

// Extract locates the structured command block embedded in a model reply.
// It first looks for a triple-backtick fenced block; failing that, it takes
// the first '{' after the literal token "json" and keeps the span only when
// its braces balance out by the end of the text. Returns "" when neither
// pattern matches, which callers treat as "no database action requested".
func Extract(reply string) string {
	if m := fencedBlock.FindStringSubmatch(reply); m != nil {
		return strings.TrimSpace(m[1])
	}

	loc := jsonToken.FindStringIndex(reply)
	if loc == nil {
		return ""
	}
	at := loc[0]
	brace := strings.IndexByte(reply[at:], '{')
	if brace == -1 {
		return ""
	}
	span := strings.TrimSpace(reply[at+brace:])
	if !bracesBalanced(span) {
		return ""
	}
	return span
}

func bracesBalanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
