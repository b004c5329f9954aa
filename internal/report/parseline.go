package report

import (
	"strconv"
	"strings"

	"AuditScanner/internal/domain"
)

// ParseRow parses one candidate line into a course record. Lines that cannot
// be confidently parsed yield nil: a dropped row is preferable to a corrupted
// subject match polluting the plan, so every ambiguity rejects.
func (l *Layout) ParseRow(line string) *domain.ParsedCourse {
	code, year, rest, ok := splitTerm(line)
	if !ok {
		return nil
	}

	tokens := strings.Fields(repairGlue(rest))

	numberAt := -1
	for i, tok := range tokens {
		if isCatalogNumber(tok) {
			numberAt = i
			break
		}
	}
	// A bare leading number is not treated as a subject-less course.
	if numberAt <= 0 {
		return nil
	}
	if numberAt+1 >= len(tokens) || !isCredits(tokens[numberAt+1]) {
		return nil
	}
	if numberAt+2 >= len(tokens) {
		return nil
	}

	credits, err := strconv.ParseFloat(tokens[numberAt+1], 64)
	if err != nil {
		return nil
	}

	return &domain.ParsedCourse{
		Term:    code,
		Year:    year,
		Subject: strings.Join(tokens[:numberAt], " "),
		Number:  tokens[numberAt],
		Credits: credits,
		Grade:   tokens[numberAt+2],
		Title:   strings.Join(tokens[numberAt+3:], " "),
	}
}

// splitTerm strips the leading term code and two-digit year, mapping the year
// into the 2000s.
func splitTerm(line string) (domain.TermCode, int, string, bool) {
	m := termExpr.FindStringSubmatch(line)
	if m == nil {
		return "", 0, "", false
	}
	yy, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, "", false
	}
	code := domain.TermCode(strings.ToUpper(m[1]))
	rest := strings.TrimSpace(line[len(m[0]):])
	return code, 2000 + yy, rest, true
}

// repairGlue reinserts the space between a subject code and its catalog
// number when the renderer dropped it ("COMPSCI300" -> "COMPSCI 300").
func repairGlue(s string) string {
	return glueExpr.ReplaceAllString(s, "$1 $2")
}

// isCatalogNumber reports whether tok is a 3-4 digit catalog number with an
// optional trailing letter.
func isCatalogNumber(tok string) bool {
	return numberExpr.MatchString(tok)
}

// isCredits reports whether tok is a non-negative decimal credit count.
func isCredits(tok string) bool {
	return creditsExpr.MatchString(tok)
}
