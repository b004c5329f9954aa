package ports

import (
	"context"

	"AuditScanner/internal/domain"
)

// DocumentSource renders an uploaded report into positioned text fragments,
// page by page in page order.
type DocumentSource interface {
	ReadDocument(ctx context.Context, path string) (domain.DocumentText, error)
}

// PlanRepository persists a student's flattened course list keyed by user and
// source. ReplacePlan overwrites the previous list in full.
type PlanRepository interface {
	SavedCourseIDs(ctx context.Context, userID string, ids []string) (map[string]bool, error)
	ReplacePlan(ctx context.Context, userID, source string, doc domain.DocumentMeta, courses []domain.StoredCourse) error
}

// CatalogSource looks up catalog courses for the manual-add flow. A nil
// result without error means the course was not found.
type CatalogSource interface {
	FindCourse(ctx context.Context, courseID string) (*domain.CatalogCourse, error)
}

// Advisor sends the student context to the advising inference service.
type Advisor interface {
	Recommend(ctx context.Context, student domain.AdvisingContext) (*domain.Advice, error)
}
