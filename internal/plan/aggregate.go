package plan

import (
	"sort"
	"strings"

	"AuditScanner/internal/domain"
)

// NewTerm computes a Term value fresh from its course list. Totals and status
// counts are always derived here, never mutated in place.
func NewTerm(name string, courses []domain.Course) domain.Term {
	term := domain.Term{Name: name, Courses: courses}
	for _, c := range courses {
		term.TotalCredits += c.Credits
		switch c.Status {
		case domain.StatusCompleted:
			term.CompletedCount++
		case domain.StatusInProgress:
			term.InProgressCount++
		case domain.StatusCart:
			term.CartCount++
		}
	}
	return term
}

// CourseFromRecord converts a parsed record into its display form. An "INP"
// grade marks the course as still in progress.
func CourseFromRecord(rec domain.ParsedCourse) domain.Course {
	course := domain.Course{
		ID:      rec.Subject + " " + rec.Number,
		Title:   rec.Title,
		Credits: rec.Credits,
		Grade:   rec.Grade,
		Status:  domain.StatusCompleted,
	}
	if strings.EqualFold(strings.TrimSpace(rec.Grade), "INP") {
		course.Status = domain.StatusInProgress
		course.Flag = domain.FlagInProgress
	}
	return course
}

// Build buckets deduplicated records into the ordered academic-year sequence.
// Each observed start year materializes exactly three terms (Fall of start,
// Spring and Summer of start+1); a term with no matched records stays empty
// rather than being omitted.
func Build(records []domain.ParsedCourse) []domain.AcademicYear {
	byTerm := map[string][]domain.Course{}
	startSet := map[int]struct{}{}
	for _, rec := range records {
		start := AcademicYearStart(rec.Term, rec.Year)
		startSet[start] = struct{}{}
		name := TermName(rec.Term, rec.Year)
		byTerm[name] = append(byTerm[name], CourseFromRecord(rec))
	}

	starts := make([]int, 0, len(startSet))
	for start := range startSet {
		starts = append(starts, start)
	}
	sort.Ints(starts)

	return buildYears(starts, byTerm)
}

// Empty returns a blank four-year plan starting at the given calendar year,
// for students who plan coursework by hand instead of uploading a report.
func Empty(startYear int) []domain.AcademicYear {
	starts := []int{startYear, startYear + 1, startYear + 2, startYear + 3}
	return buildYears(starts, nil)
}

func buildYears(starts []int, byTerm map[string][]domain.Course) []domain.AcademicYear {
	years := make([]domain.AcademicYear, 0, len(starts))
	for i, start := range starts {
		termNames := []string{
			TermName(domain.TermFall, start),
			TermName(domain.TermSpring, start+1),
			TermName(domain.TermSummer, start+1),
		}
		terms := make([]domain.Term, 0, len(termNames))
		for _, name := range termNames {
			terms = append(terms, NewTerm(name, byTerm[name]))
		}
		years = append(years, domain.AcademicYear{
			StartYear:      start,
			Label:          YearLabel(start),
			ClassYearLabel: ClassYearLabel(i),
			Terms:          terms,
		})
	}
	return years
}
