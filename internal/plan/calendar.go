// Package plan maps parsed course records into the ordered academic-year /
// term hierarchy and back into the flattened persistence form.
package plan

import (
	"fmt"

	"AuditScanner/internal/domain"
)

var termDisplay = map[domain.TermCode]string{
	domain.TermFall:   "Fall",
	domain.TermSpring: "Spring",
	domain.TermSummer: "Summer",
}

var classYearLabels = [...]string{"Freshman", "Sophomore", "Junior", "Senior"}

// AcademicYearStart returns the calendar year the academic year containing
// the given term begins. Fall starts its own academic year; Spring and Summer
// belong to the year that started the previous calendar year.
func AcademicYearStart(code domain.TermCode, year int) int {
	if code == domain.TermFall {
		return year
	}
	return year - 1
}

// YearLabel formats an academic-year start as "start-start+1".
func YearLabel(start int) string {
	return fmt.Sprintf("%d-%d", start, start+1)
}

// TermName formats a term's display name using the original calendar year,
// e.g. "Spring 2024".
func TermName(code domain.TermCode, year int) string {
	return fmt.Sprintf("%s %d", termDisplay[code], year)
}

// ClassYearLabel maps a bucket's sort position to its ordinal label. The
// label comes from the position, never from a date comparison to now.
func ClassYearLabel(index int) string {
	if index >= 0 && index < len(classYearLabels) {
		return classYearLabels[index]
	}
	return fmt.Sprintf("Year %d", index+1)
}
