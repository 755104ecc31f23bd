package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"sentiment-advisor/internal/advisor"
	"sentiment-advisor/internal/advisor/advisorobs"
	"sentiment-advisor/internal/interfaces"
	"sentiment-advisor/internal/logger"
	"sentiment-advisor/internal/news"
	"sentiment-advisor/internal/news/newsobs"
	"sentiment-advisor/internal/price"
	"sentiment-advisor/internal/price/priceobs"
	"sentiment-advisor/internal/sentiment"
	"sentiment-advisor/internal/sentiment/claude"
	"sentiment-advisor/internal/sentiment/openai"
	"sentiment-advisor/internal/sentiment/scorerobs"
	"sentiment-advisor/internal/store"
	"sentiment-advisor/internal/trace"
)

const defaultConfigPath = "config.yaml"

// initializeSystem loads env secrets and brings up logger and tracer.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration. The path can be
// overridden with ADVISOR_CONFIG.
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := defaultConfigPath
	if v := os.Getenv("ADVISOR_CONFIG"); v != "" {
		path = v
	}

	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// initializePriceSource selects the configured price backend, wrapped
// with observability middleware.
func initializePriceSource(ctx context.Context, cfg *store.Config) interfaces.PriceSource {
	var src interfaces.PriceSource

	switch cfg.PriceSource {
	case "YAHOO":
		logger.Info(ctx, "Using Yahoo Finance price source", "symbol", cfg.Symbol)
		src = price.NewYahoo(cfg.Symbol)
	case "STATIC":
		logger.Warn(ctx, "Using STATIC price source - quote will not reflect the market", "price", cfg.StaticPrice)
		src = price.NewStatic(cfg.StaticPrice)
	default:
		logger.Info(ctx, "Using CoinGecko price source", "asset", cfg.Asset)
		src = price.NewCoinGecko(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	return priceobs.Wrap(src)
}

// initializeHeadlineSource selects the configured headline backend,
// wrapped with observability middleware.
func initializeHeadlineSource(ctx context.Context, cfg *store.Config) interfaces.HeadlineSource {
	var src interfaces.HeadlineSource

	if cfg.HeadlineSource == "SCRAPE" {
		logger.Info(ctx, "Using live headline scraping")
		src = news.NewScrapeSource(time.Duration(cfg.TimeoutSeconds) * time.Second)
	} else {
		logger.Info(ctx, "Using static headline list", "configured", len(cfg.Headlines))
		src = news.NewStaticSource(cfg.Headlines)
	}

	return newsobs.Wrap(src)
}

// initializeScorer selects the configured sentiment scorer, wrapped
// with observability middleware.
func initializeScorer(ctx context.Context, cfg *store.Config) interfaces.SentimentScorer {
	var scorer interfaces.SentimentScorer

	switch cfg.Scorer {
	case "OPENAI":
		scorer = openai.NewScorer(cfg)
	case "CLAUDE":
		scorer = claude.NewScorer(cfg)
	default:
		logger.Info(ctx, "Using offline lexicon scorer")
		scorer = sentiment.NewLexiconScorer()
	}

	return scorerobs.Wrap(scorer)
}

// initializeAdvisor assembles the full pipeline behind the Advisor contract.
func initializeAdvisor(ctx context.Context, cfg *store.Config) interfaces.Advisor {
	prices := initializePriceSource(ctx, cfg)
	headlines := initializeHeadlineSource(ctx, cfg)
	scorer := initializeScorer(ctx, cfg)

	eng := advisor.New(cfg, prices, headlines, scorer)
	return advisorobs.Wrap(eng)
}
