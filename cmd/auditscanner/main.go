package main

import (
	"context"
	"os"

	"AuditScanner/internal/app"
	"AuditScanner/internal/config"
	"AuditScanner/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	userID := os.Getenv("AUDIT_SCANNER_USER")
	if userID == "" {
		userID = "local"
	}

	// Without a report path the plan starts empty for manual entry.
	var reportPath string
	if len(os.Args) > 1 {
		reportPath = os.Args[1]
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("application setup failed", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(ctx, userID, reportPath); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
