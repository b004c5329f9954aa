package plan

import "AuditScanner/internal/domain"

// Flatten converts the hierarchy into the persistence form. Cart status is
// translated to planned at this boundary; completed and in-progress pass
// through unchanged.
func Flatten(years []domain.AcademicYear) []domain.StoredCourse {
	var out []domain.StoredCourse
	for _, year := range years {
		for _, term := range year.Terms {
			for _, c := range term.Courses {
				status := string(c.Status)
				if c.Status == domain.StatusCart {
					status = domain.StoredStatusPlanned
				}
				out = append(out, domain.StoredCourse{
					Term:     term.Name,
					CourseID: c.ID,
					Title:    c.Title,
					Credits:  c.Credits,
					Status:   status,
					Grade:    c.Grade,
				})
			}
		}
	}
	return out
}
