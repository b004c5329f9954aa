package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"AuditScanner/internal/domain"
	"AuditScanner/internal/plan"
	"AuditScanner/internal/ports"
	"AuditScanner/internal/report"
)

// PipelineDeps wires all driven adapters into the extraction pipeline.
type PipelineDeps struct {
	Source     ports.DocumentSource
	Repository ports.PlanRepository
	Advisor    ports.Advisor
	Layout     *report.Layout
	Logger     *slog.Logger
}

// Pipeline implements the report-ingestion workflow: render, cluster,
// isolate, parse, dedupe, aggregate, persist.
type Pipeline struct {
	source     ports.DocumentSource
	repository ports.PlanRepository
	advisor    ports.Advisor
	layout     *report.Layout
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		repository: deps.Repository,
		advisor:    deps.Advisor,
		layout:     deps.Layout,
		logger:     deps.Logger,
	}
}

// ProcessDocument parses one uploaded report and returns the academic-year
// hierarchy, fully replacing any prior plan for the user. A document that
// cannot be rendered fails the upload; zero matched rows is not an error and
// yields an empty hierarchy. The persistence write is best-effort.
func (p *Pipeline) ProcessDocument(ctx context.Context, userID, path string) ([]domain.AcademicYear, error) {
	if p.source == nil || p.layout == nil {
		return nil, fmt.Errorf("pipeline is not configured")
	}

	doc, err := p.source.ReadDocument(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var lines []domain.Line
	for _, page := range doc.Pages {
		lines = append(lines, report.ClusterLines(page, p.layout.YTolerance())...)
	}
	p.debug("document clustered", "file", doc.Meta.FileName, "pages", len(doc.Pages), "lines", len(lines))

	records := p.parseRows(p.layout.IsolateRows(lines))
	if len(records) == 0 {
		// Anchor wording varies between report revisions; rescan the whole
		// document so a recognizable report still yields output.
		records = p.parseRows(p.layout.AllRows(lines))
		if len(records) > 0 {
			p.debug("anchor window empty, whole-document rescan matched", "records", len(records))
		}
	}

	records = report.Dedupe(records)
	years := plan.Build(records)

	if len(records) == 0 {
		p.info("no courses found", "file", doc.Meta.FileName)
	}

	p.persist(ctx, userID, doc.Meta, years)
	return years, nil
}

// ManualPlan initializes an empty four-year plan starting at the current
// calendar year, without running the extraction pipeline.
func (p *Pipeline) ManualPlan(now time.Time) []domain.AcademicYear {
	return plan.Empty(now.Year())
}

// Advise posts the flattened plan to the advising service. Optional: callers
// only invoke it when an advisor is configured.
func (p *Pipeline) Advise(ctx context.Context, years []domain.AcademicYear, interests []string) (*domain.Advice, error) {
	if p.advisor == nil {
		return nil, nil
	}

	student := domain.AdvisingContext{
		Courses:   plan.Flatten(years),
		Interests: interests,
	}
	if n := len(years); n > 0 {
		student.CurrentYear = years[n-1].ClassYearLabel
	}

	advice, err := p.advisor.Recommend(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("advising request: %w", err)
	}
	return advice, nil
}

func (p *Pipeline) parseRows(rows []domain.Line) []domain.ParsedCourse {
	var records []domain.ParsedCourse
	for _, row := range rows {
		// Malformed lines are skipped silently, never reported as errors.
		if rec := p.layout.ParseRow(row.Text); rec != nil {
			records = append(records, *rec)
		}
	}
	return records
}

// persist writes the flattened plan. A failed write is logged and swallowed:
// the in-memory hierarchy remains the source of truth and a later debounced
// write reconciles it.
func (p *Pipeline) persist(ctx context.Context, userID string, meta domain.DocumentMeta, years []domain.AcademicYear) {
	if p.repository == nil {
		return
	}

	flat := plan.Flatten(years)
	if len(flat) > 0 {
		ids := make([]string, len(flat))
		for i, c := range flat {
			ids[i] = c.CourseID
		}
		if known, err := p.repository.SavedCourseIDs(ctx, userID, ids); err != nil {
			p.warn("load saved courses", "error", err)
		} else {
			p.debug("replacing plan", "courses", len(flat), "previously_stored", len(known))
		}
	}

	if err := p.repository.ReplacePlan(ctx, userID, domain.SourceUpload, meta, flat); err != nil {
		p.warn("persist plan", "user", userID, "error", err)
	}
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
