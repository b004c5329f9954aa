package plan

import "AuditScanner/internal/domain"

// AddCourse returns a plan with the course appended to the named term. The
// affected term is rebuilt whole so its derived counts stay consistent. The
// second result reports whether the term was found.
func AddCourse(years []domain.AcademicYear, termName string, course domain.Course) ([]domain.AcademicYear, bool) {
	return rebuildTerm(years, termName, func(courses []domain.Course) []domain.Course {
		return append(courses, course)
	})
}

// RemoveCourse returns a plan with the identified course removed from the
// named term. The second result reports whether the course was found.
func RemoveCourse(years []domain.AcademicYear, termName, courseID string) ([]domain.AcademicYear, bool) {
	removed := false
	out, ok := rebuildTerm(years, termName, func(courses []domain.Course) []domain.Course {
		kept := make([]domain.Course, 0, len(courses))
		for _, c := range courses {
			if c.ID == courseID && !removed {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		return kept
	})
	return out, ok && removed
}

func rebuildTerm(years []domain.AcademicYear, termName string, edit func([]domain.Course) []domain.Course) ([]domain.AcademicYear, bool) {
	out := make([]domain.AcademicYear, len(years))
	copy(out, years)
	for yi := range out {
		for ti, term := range out[yi].Terms {
			if term.Name != termName {
				continue
			}
			courses := make([]domain.Course, len(term.Courses))
			copy(courses, term.Courses)
			terms := make([]domain.Term, len(out[yi].Terms))
			copy(terms, out[yi].Terms)
			terms[ti] = NewTerm(termName, edit(courses))
			out[yi].Terms = terms
			return out, true
		}
	}
	return out, false
}
