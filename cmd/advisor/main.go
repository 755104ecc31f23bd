package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sentiment-advisor/internal/logger"
	"sentiment-advisor/internal/report"
	"sentiment-advisor/internal/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := initializeSystem(); err != nil {
		os.Exit(1)
	}
	defer func() { _ = trace.Shutdown(context.Background()) }()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	adv := initializeAdvisor(ctx, cfg)
	presenter := report.NewPresenter()

	rec, err := adv.Run(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Advisory run aborted", err, "asset", cfg.Asset)
		presenter.RenderFailure(err)
		os.Exit(1)
	}

	presenter.Render(rec)
}
