package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"AuditScanner/internal/config"
	"AuditScanner/internal/domain"
	"AuditScanner/internal/infrastructure/advisor"
	"AuditScanner/internal/infrastructure/catalog"
	"AuditScanner/internal/infrastructure/pdfreader"
	"AuditScanner/internal/infrastructure/storage"
	"AuditScanner/internal/logging"
	"AuditScanner/internal/ports"
	"AuditScanner/internal/report"
	"AuditScanner/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg        config.Config
	logger     *slog.Logger
	pipeline   *usecase.Pipeline
	repository ports.PlanRepository
	catalog    ports.CatalogSource
	db         *sql.DB
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := report.NewRegistry()
	for _, lc := range cfg.Layouts {
		layout, err := report.NewLayout(report.LayoutSpec{
			Name:         lc.Name,
			AnchorPhrase: lc.AnchorPhrase,
			StopPhrases:  lc.StopPhrases,
			YTolerance:   lc.YTolerance,
		})
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", lc.Name, err)
		}
		registry.Register(layout)
	}

	layout, err := registry.Resolve(cfg.Layout)
	if err != nil {
		return nil, err
	}

	var (
		db         *sql.DB
		repository ports.PlanRepository
	)
	if cfg.Database.DSN != "" {
		db, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	var adv ports.Advisor
	if cfg.Advisor.Endpoint != "" {
		adv = advisor.NewClient(cfg.Advisor.Endpoint, cfg.Advisor.APIKey)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     pdfreader.New(baseLogger.With("component", "pdfreader")),
		Repository: repository,
		Advisor:    adv,
		Layout:     layout,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:        cfg,
		logger:     baseLogger,
		pipeline:   pipeline,
		repository: repository,
		catalog:    catalog.NewGuideClient(cfg.Catalog.GuideURL, nil),
		db:         db,
	}, nil
}

// Run parses one uploaded report, or initializes an empty four-year plan when
// no report path is given, and logs the resulting hierarchy.
func (a *Application) Run(ctx context.Context, userID, reportPath string) error {
	var years []domain.AcademicYear

	if reportPath == "" {
		years = a.pipeline.ManualPlan(time.Now())
		a.logger.Info("initialized manual plan", "user", userID, "years", len(years))
	} else {
		var err error
		years, err = a.pipeline.ProcessDocument(ctx, userID, reportPath)
		if err != nil {
			return fmt.Errorf("process document: %w", err)
		}
	}

	a.logPlan(years)

	if a.cfg.Advisor.Endpoint != "" {
		advice, err := a.pipeline.Advise(ctx, years, nil)
		if err != nil {
			a.logger.Warn("advising unavailable", "error", err)
		} else if advice != nil {
			for _, program := range advice.RecommendedPrograms {
				a.logger.Info("recommended program", "name", program.Name, "feasibility", program.Feasibility)
			}
			for _, step := range advice.NextSteps {
				a.logger.Info("next step", "step", step)
			}
		}
	}

	return nil
}

// NewPlanner opens an interactive edit session over a parsed or manual plan.
func (a *Application) NewPlanner(userID string, years []domain.AcademicYear) *usecase.Planner {
	return usecase.NewPlanner(usecase.PlannerDeps{
		UserID:     userID,
		Years:      years,
		Repository: a.repository,
		Catalog:    a.catalog,
		Quiet:      a.cfg.Persistence.Quiet(),
		Logger:     a.logger.With("component", "planner"),
	})
}

// Close releases held resources.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *Application) logPlan(years []domain.AcademicYear) {
	for _, year := range years {
		for _, term := range year.Terms {
			if len(term.Courses) == 0 {
				continue
			}
			a.logger.Info("term",
				"year", year.Label,
				"class", year.ClassYearLabel,
				"name", term.Name,
				"credits", term.TotalCredits,
				"completed", term.CompletedCount,
				"in_progress", term.InProgressCount,
			)
		}
	}
}
