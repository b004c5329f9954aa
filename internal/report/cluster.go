package report

import (
	"sort"
	"strings"

	"AuditScanner/internal/domain"
)

// ClusterLines groups one page's positioned fragments into reading-order
// lines: top of the page first, left to right within a line. Fragments whose
// baselines differ by at most yTolerance land on the same line; the tolerance
// absorbs the sub-pixel jitter renderers introduce within one printed line.
// Callers run this once per page and concatenate pages in page order.
func ClusterLines(fragments []domain.Fragment, yTolerance float64) []domain.Line {
	if yTolerance <= 0 {
		yTolerance = defaultYTolerance
	}

	sorted := make([]domain.Fragment, 0, len(fragments))
	for _, frag := range fragments {
		if strings.TrimSpace(frag.Text) == "" {
			continue
		}
		sorted = append(sorted, frag)
	}
	if len(sorted) == 0 {
		return nil
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var (
		lines   []domain.Line
		current []string
		anchorY = sorted[0].Y
	)
	flush := func() {
		if len(current) == 0 {
			return
		}
		lines = append(lines, domain.Line{
			Text: strings.Join(strings.Fields(strings.Join(current, " ")), " "),
			Y:    anchorY,
		})
		current = nil
	}

	for _, frag := range sorted {
		if abs(frag.Y-anchorY) > yTolerance {
			flush()
			anchorY = frag.Y
		}
		current = append(current, frag.Text)
	}
	flush()

	return lines
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
