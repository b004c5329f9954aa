package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"AuditScanner/internal/domain"
	"AuditScanner/internal/plan"
	"AuditScanner/internal/ports"
)

// Planner applies interactive edits to a plan and schedules debounced
// persistence writes so rapid successive edits coalesce into one.
type Planner struct {
	mu     sync.Mutex
	years  []domain.AcademicYear
	userID string

	catalog ports.CatalogSource
	writer  *DebouncedWriter
	logger  *slog.Logger
}

// PlannerDeps wires the planner's collaborators.
type PlannerDeps struct {
	UserID     string
	Years      []domain.AcademicYear
	Repository ports.PlanRepository
	Catalog    ports.CatalogSource
	Quiet      time.Duration
	Logger     *slog.Logger
}

// NewPlanner builds an edit session over an existing hierarchy.
func NewPlanner(deps PlannerDeps) *Planner {
	p := &Planner{
		years:   deps.Years,
		userID:  deps.UserID,
		catalog: deps.Catalog,
		logger:  deps.Logger,
	}

	repo := deps.Repository
	p.writer = NewDebouncedWriter(deps.Quiet, func(snapshot []domain.StoredCourse) {
		if repo == nil {
			return
		}
		// Edit-driven writes carry no document meta; the plan is manual.
		err := repo.ReplacePlan(context.Background(), deps.UserID, domain.SourceManual, domain.DocumentMeta{}, snapshot)
		if err != nil && p.logger != nil {
			p.logger.Warn("debounced plan write", "user", deps.UserID, "error", err)
		}
	})

	return p
}

// Plan returns the current hierarchy.
func (p *Planner) Plan() []domain.AcademicYear {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.years
}

// AddCourse adds a catalog course to the named term with cart status. The
// catalog lookup fills in title and credits when the course is known; an
// unknown course is still added with the bare identifier.
func (p *Planner) AddCourse(ctx context.Context, termName, courseID string) error {
	course := domain.Course{
		ID:     strings.TrimSpace(courseID),
		Status: domain.StatusCart,
	}
	if course.ID == "" {
		return fmt.Errorf("course id is required")
	}

	if p.catalog != nil {
		hit, err := p.catalog.FindCourse(ctx, course.ID)
		if err != nil {
			if p.logger != nil {
				p.logger.Warn("catalog lookup", "course", course.ID, "error", err)
			}
		} else if hit != nil {
			course.Title = hit.Title
			course.Credits = hit.Credits
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	years, ok := plan.AddCourse(p.years, termName, course)
	if !ok {
		return fmt.Errorf("term %s is not in the plan", termName)
	}
	p.years = years
	p.writer.Schedule(plan.Flatten(years))
	return nil
}

// RemoveCourse drops a course from the named term.
func (p *Planner) RemoveCourse(termName, courseID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	years, ok := plan.RemoveCourse(p.years, termName, courseID)
	if !ok {
		return fmt.Errorf("course %s is not in term %s", courseID, termName)
	}
	p.years = years
	p.writer.Schedule(plan.Flatten(years))
	return nil
}

// Close flushes any pending write.
func (p *Planner) Close() {
	p.writer.Flush()
}
