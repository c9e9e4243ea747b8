package evaluation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// indeterminateEchoLimit bounds the raw-text echo embedded in an
// INDETERMINADO result for diagnostics.
const indeterminateEchoLimit = 500

// Parse decomposes one raw evaluation report into a Result. It never fails:
// when neither outcome header is present the Result carries
// OutcomeUndetermined and a truncated echo of the input; missing sections
// leave their fields zero-valued. Any preamble before the outcome header is
// treated as already-displayed chat and discarded.
func Parse(raw string) *Result {
	r := &Result{Outcome: OutcomeUndetermined}

	markers := lostMarkers
	idx := strings.Index(raw, HeaderSaleLost)
	if idx >= 0 {
		r.Outcome = OutcomeSaleLost
	} else {
		idx = strings.Index(raw, HeaderSaleClosed)
		if idx < 0 {
			r.QuickSummary = truncate(raw, indeterminateEchoLimit)
			return r
		}
		r.Outcome = OutcomeSaleClosed
		markers = closedMarkers
	}

	text := raw[idx:]
	lines := splitTrimmedLines(text)
	if len(lines) > 0 {
		r.HeaderMessage = lines[0]
	}
	if r.Outcome == OutcomeSaleClosed && strings.Contains(text, MarkerBossConvinced) {
		r.BossConvinced = true
	}

	// The quick summary is expected right after the header, so its marker is
	// searched from the start of the slice rather than the running cursor.
	cursor := 0
	if start := nextMarker(lines, 0, markers.quickSummary); start >= 0 {
		end := nextMarker(lines, start+1, markers.itemList)
		stop := end
		if stop < 0 {
			stop = len(lines)
		}
		r.QuickSummary = joinBlock(lines[start+1 : stop])
		if end >= 0 {
			cursor = end
		}
	}

	if start := nextMarker(lines, cursor, markers.itemList); start >= 0 {
		end := nextMarkerOfAny(lines, start+1, markerPositivePoint, markerAttentionPoint, markerGeneralNotes)
		if end < 0 {
			end = len(lines)
		}
		pattern := errorItemPattern
		if r.Outcome == OutcomeSaleClosed {
			pattern = successItemPattern
		}
		items := parseItems(lines[start+1:end], pattern)
		if r.Outcome == OutcomeSaleLost {
			r.Errors = items
		} else {
			r.Successes = items
		}
		cursor = end
	}

	if start := nextMarker(lines, cursor, markers.secondPoint); start >= 0 {
		end := nextMarker(lines, start+1, markerGeneralNotes)
		if end < 0 {
			end = len(lines)
		}
		point := parsePoint(lines[start+1 : end])
		if r.Outcome == OutcomeSaleLost {
			r.PositivePoint = point
		} else {
			r.AttentionPoint = point
		}
		cursor = end
	}

	if start := nextMarker(lines, cursor, markerGeneralNotes); start >= 0 {
		scan := start + 1
		// Skip the column-header artifact of the tabular source format.
		if scan < len(lines) && strings.HasPrefix(lines[scan], "Critério") {
			scan++
		}
		if scan <= len(lines) {
			r.Ratings = parseRatings(lines[scan:])
		}
		cursor = scan
	}

	if start := nextMarker(lines, cursor, markerClientInfo); start >= 0 {
		end := nextMarker(lines, start+1, markers.analysis)
		if end < 0 {
			end = len(lines)
		}
		r.Client = parseClientProfile(lines[start+1 : end])
		cursor = end
	}

	if start := nextMarker(lines, cursor, markers.analysis); start >= 0 {
		end := nextMarker(lines, start+1, markers.tips)
		if end < 0 {
			end = len(lines)
		}
		r.Analysis = parseAnalysis(lines[start+1 : end])
		cursor = end
	}

	if start := nextMarker(lines, cursor, markers.tips); start >= 0 {
		end := nextMarker(lines, start+1, markerFinalSummary)
		if end < 0 {
			end = len(lines)
		}
		for _, line := range lines[start+1 : end] {
			if line == "" || strings.HasPrefix(line, "---") {
				continue
			}
			r.ImprovementSteps = append(r.ImprovementSteps, line)
		}
		cursor = end
	}

	if start := nextMarker(lines, cursor, markerFinalSummary); start >= 0 {
		block := joinBlock(lines[start+1:])
		r.FinalSummary, r.DevelopmentNote = splitDevelopmentNote(block)
	}

	return r
}

// splitTrimmedLines normalizes line endings and returns the trimmed lines.
func splitTrimmedLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

// nextMarker returns the index of the first line at or after from that starts
// with marker, or -1. Repeated markers are never honored twice: callers only
// ever advance the cursor forward.
func nextMarker(lines []string, from int, marker string) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], marker) {
			return i
		}
	}
	return -1
}

// nextMarkerOfAny returns the earliest line at or after from starting with
// any of the markers, or -1.
func nextMarkerOfAny(lines []string, from int, markers ...string) int {
	best := -1
	for _, m := range markers {
		if i := nextMarker(lines, from, m); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}

// joinBlock rebuilds section content from its trimmed lines. Paragraph
// breaks survive; leading indentation does not.
func joinBlock(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func indexOfAny(raw string, markers ...string) int {
	for _, m := range markers {
		if i := strings.Index(raw, m); i >= 0 {
			return i
		}
	}
	return -1
}

func parseItems(lines []string, pattern *regexp.Regexp) []Item {
	var items []Item
	var desc []string
	flush := func() {
		if len(items) > 0 {
			items[len(items)-1].Description = strings.TrimSpace(strings.Join(desc, "\n"))
		}
		desc = desc[:0]
	}
	for _, line := range lines {
		if title, ok := matchItemTitle(pattern, line); ok {
			flush()
			items = append(items, Item{Title: title})
			continue
		}
		if len(items) > 0 {
			desc = append(desc, line)
		}
	}
	flush()
	return items
}

// parsePoint collects the optional second-section point. Tip lines are
// extracted separately and placeholder sentences are suppressed; when nothing
// remains the point is absent.
func parsePoint(lines []string) *Point {
	var desc []string
	tip := ""
	for _, line := range lines {
		if line == "" {
			continue
		}
		if t, ok := extractTip(line); ok {
			tip = t
			continue
		}
		if isPointPlaceholder(line) {
			continue
		}
		desc = append(desc, line)
	}
	description := strings.TrimSpace(strings.Join(desc, "\n"))
	if description == "" && tip == "" {
		return nil
	}
	return &Point{Description: description, Tip: tip}
}

// ratingKeywords anchor the general-notes scan. The scan is keyword-based
// rather than position-based because the generator does not guarantee a rigid
// row order for this sub-table.
var ratingKeywords = []string{"acolhimento", "clareza", "argumenta", "fechamento"}

func parseRatings(lines []string) Ratings {
	var r Ratings
	for _, keyword := range ratingKeywords {
		for _, line := range lines {
			if !strings.HasPrefix(strings.ToLower(line), keyword) {
				continue
			}
			v := lastFloatToken(line)
			switch keyword {
			case "acolhimento":
				r.Acolhimento = v
			case "clareza":
				r.Clareza = v
			case "argumenta":
				r.Argumentacao = v
			case "fechamento":
				r.Fechamento = v
			}
			break
		}
	}
	return r
}

func parseClientProfile(lines []string) ClientProfile {
	var p ClientProfile
	for _, line := range lines {
		key, value, ok := splitLabel(line)
		if !ok {
			continue
		}
		switch {
		case strings.Contains(key, "nome"):
			p.Name = value
		case strings.Contains(key, "curso"):
			p.Course = value
		case strings.Contains(key, "vida"):
			p.LifeSituation = value
		case strings.Contains(key, "busca"):
			p.Seeks = value
		case strings.Contains(key, "medo"):
			p.Fear = value
		case strings.Contains(key, "perfil"):
			p.BehaviorProfile = value
		}
	}
	return p
}

// parseAnalysis matches labels by substring because the objections row uses a
// different literal label per outcome.
func parseAnalysis(lines []string) *ConversationAnalysis {
	a := &ConversationAnalysis{}
	for _, line := range lines {
		key, value, ok := splitLabel(line)
		if !ok {
			continue
		}
		switch {
		case strings.Contains(key, "conex"):
			a.Connection = value
		case strings.Contains(key, "descoberta"):
			a.NeedsDiscovery = value
		case strings.Contains(key, "apresenta"):
			a.SolutionPresentation = value
		case strings.Contains(key, "objeç"):
			a.ObjectionHandling = value
		case strings.Contains(key, "fechamento"):
			a.ClosingConduct = value
		}
	}
	return a
}

// splitLabel splits a "Label: value" line on its first colon. Lines without a
// colon are ignored for forward compatibility with extra narrative.
func splitLabel(line string) (key, value string, ok bool) {
	i := strings.Index(line, ":")
	if i < 0 {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(line[:i])), strings.TrimSpace(line[i+1:]), true
}

// truncate cuts s to at most maxLen bytes, backing up to a rune boundary so
// the result stays valid UTF-8.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
