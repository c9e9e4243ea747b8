package evaluation

import (
	"regexp"
	"strconv"
	"strings"
)

// Numbered item openers. The dash is an en-dash, matching the prompt
// contract; a plain hyphen does not open an item.
var (
	errorItemPattern   = regexp.MustCompile(`^Erro (\d+) – (.+)$`)
	successItemPattern = regexp.MustCompile(`^Acerto (\d+) – (.+)$`)
)

// matchItemTitle reports whether line opens a numbered item and returns its
// title. The pattern is anchored at the line start so item-like fragments
// inside descriptions are not misread as new items.
func matchItemTitle(pattern *regexp.Regexp, line string) (string, bool) {
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[2]), true
}

// extractTip returns the tip text of a "Dica: ..." line. The prefix match is
// case-insensitive.
func extractTip(line string) (string, bool) {
	const prefix = "dica:"
	if len(line) < len(prefix) || !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}

// isPointPlaceholder recognizes the two literal no-content sentences.
func isPointPlaceholder(line string) bool {
	return line == placeholderNoPositive || line == placeholderNoAttention
}

// lastFloatToken parses the last whitespace-separated token of a rating line
// as a float. Returns nil when the line has no tokens or the token is not a
// number; a parsed 0.0 is returned as a valid value.
func lastFloatToken(line string) *float64 {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// developmentNotePattern matches the closing "Você precisa ..." sentence of
// the final summary, optionally followed by the fixed encouragement phrase.
var developmentNotePattern = regexp.MustCompile(`Você precisa [^.]*\.(?:\s*Continue treinando para evoluir\.)?`)

// splitDevelopmentNote separates the final-summary block from its development
// note. When no note sentence is present the whole block is the summary.
func splitDevelopmentNote(block string) (summary, note string) {
	loc := developmentNotePattern.FindStringIndex(block)
	if loc == nil {
		return block, ""
	}
	return strings.TrimSpace(block[:loc[0]]), strings.TrimSpace(block[loc[0]:loc[1]])
}
