package bot

import (
	"regexp"
	"strings"
)

var fenceAround = regexp.MustCompile("(?s)```(?:json)?\\s*")

// withoutBlock strips the command block (and its fence, when present) from
// the completion, leaving only the conversational text.
func withoutBlock(completion, block string) string {
	out := strings.Replace(completion, block, "", 1)
	out = fenceAround.ReplaceAllString(out, "")
	out = strings.ReplaceAll(out, "```", "")
	return strings.TrimSpace(out)
}
