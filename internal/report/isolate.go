package report

import (
	"strings"

	"AuditScanner/internal/domain"
)

// IsolateRows scans the document's lines for the contiguous span of candidate
// course rows. Scanning starts at the anchor phrase when present (audit
// reports repeat course identifiers in commentary sections; the anchor targets
// the canonical course-history section) and stops permanently at the first
// section boundary after rows have started.
func (l *Layout) IsolateRows(lines []domain.Line) []domain.Line {
	start := 0
	for i, line := range lines {
		if l.anchor.MatchString(line.Text) {
			start = i
			break
		}
	}

	var (
		rows    []domain.Line
		started bool
	)
	for _, line := range lines[start:] {
		if rowExpr.MatchString(line.Text) {
			started = true
			rows = append(rows, line)
			continue
		}
		if started && l.isBoundary(line.Text) {
			break
		}
	}
	return rows
}

// AllRows returns every course-coded line in the document, ignoring the
// anchor and the stop rule. Fallback for reports whose anchor text varies.
func (l *Layout) AllRows(lines []domain.Line) []domain.Line {
	var rows []domain.Line
	for _, line := range lines {
		if rowExpr.MatchString(line.Text) {
			rows = append(rows, line)
		}
	}
	return rows
}

func (l *Layout) isBoundary(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range l.stopPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
