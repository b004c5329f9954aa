package report

import (
	"strings"

	"AuditScanner/internal/domain"
)

// canonicalKey identifies one enrollment across repeated report sections.
// The title is deliberately excluded: repeated sections may render slightly
// different title strings for the same enrollment.
type canonicalKey struct {
	term    domain.TermCode
	year    int
	subject string
	number  string
	credits float64
	grade   string
}

// Canonicalize trims, upper-cases, and collapses internal whitespace.
func Canonicalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// Dedupe drops repeated observations of the same enrollment, keeping the
// first occurrence of each canonical key in first-seen order.
func Dedupe(records []domain.ParsedCourse) []domain.ParsedCourse {
	seen := make(map[canonicalKey]struct{}, len(records))
	out := make([]domain.ParsedCourse, 0, len(records))
	for _, rec := range records {
		key := canonicalKey{
			term:    rec.Term,
			year:    rec.Year,
			subject: Canonicalize(rec.Subject),
			number:  rec.Number,
			credits: rec.Credits,
			grade:   Canonicalize(rec.Grade),
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}
