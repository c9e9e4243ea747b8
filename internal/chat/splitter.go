package chat

import (
	"regexp"
	"strings"
)

// paragraphBreak is the sentinel that blank-line runs collapse into. The
// record-separator control byte cannot occur in model output.
const paragraphBreak = "\x1e"

// blankLineRun matches a run of one or more blank lines, whitespace included.
var blankLineRun = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// Split breaks one raw model reply into ordered display chunks. Texts with
// blank-line structure split per paragraph; otherwise every non-empty line is
// a chunk. Whitespace-only input still yields exactly one chunk, so the
// result is never empty.
func Split(raw string) []string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	marked := blankLineRun.ReplaceAllString(normalized, paragraphBreak)

	var chunks []string
	if strings.Contains(marked, paragraphBreak) {
		for _, part := range strings.Split(marked, paragraphBreak) {
			if part = strings.TrimSpace(part); part != "" {
				chunks = append(chunks, part)
			}
		}
	} else {
		for _, line := range strings.Split(normalized, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				chunks = append(chunks, line)
			}
		}
	}

	if len(chunks) == 0 {
		return []string{strings.TrimSpace(raw)}
	}
	return chunks
}
