package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sentiment-advisor/internal/interfaces"
	"sentiment-advisor/internal/logger"
	"sentiment-advisor/internal/store"
	"sentiment-advisor/internal/trace"
	"sentiment-advisor/internal/types"
)

// ErrNoHeadlines is returned when the headline source comes back empty.
// The run aborts rather than producing a HOLD from nothing.
var ErrNoHeadlines = errors.New("headline source returned no headlines")

// Engine sequences one advisory run: price, headlines, per-headline
// scoring, aggregation, decision. The order is fixed and sequential.
type Engine struct {
	cfg       *store.Config
	prices    interfaces.PriceSource
	headlines interfaces.HeadlineSource
	scorer    interfaces.SentimentScorer
}

var _ interfaces.Advisor = (*Engine)(nil)

func New(cfg *store.Config, prices interfaces.PriceSource, headlines interfaces.HeadlineSource, scorer interfaces.SentimentScorer) *Engine {
	return &Engine{cfg: cfg, prices: prices, headlines: headlines, scorer: scorer}
}

// Run executes a single advisory pass and returns the recommendation.
// Price retrieval failure aborts before any headline work; no partial
// recommendation is ever produced.
func (e *Engine) Run(ctx context.Context) (types.Recommendation, error) {
	ctx, span := trace.StartSpan(ctx, "advisor.Run")
	defer span.End()

	quote, err := e.fetchPrice(ctx)
	if err != nil {
		return types.Recommendation{}, fmt.Errorf("price fetch: %w", err)
	}
	logger.Info(ctx, "Price fetched", "asset", quote.Asset, "currency", quote.Currency, "price", quote.Price)

	query := e.cfg.Symbol
	if query == "" {
		query = e.cfg.Asset
	}
	heads, err := e.headlines.Headlines(ctx, query, e.cfg.MaxHeadlines)
	if err != nil {
		return types.Recommendation{}, fmt.Errorf("headline fetch: %w", err)
	}
	if len(heads) == 0 {
		return types.Recommendation{}, ErrNoHeadlines
	}
	logger.Info(ctx, "Headlines fetched", "count", len(heads))

	scores := e.scoreHeadlines(ctx, heads)

	avg, err := Aggregate(scores)
	if err != nil {
		return types.Recommendation{}, fmt.Errorf("aggregate sentiment: %w", err)
	}

	action := Decide(avg, quote.Price)
	logger.Decision(ctx, e.cfg.Asset, string(action), avg, quote.Price, "headlines", len(scores))

	return types.Recommendation{
		Asset:        e.cfg.Asset,
		Quote:        quote,
		Scores:       scores,
		AvgSentiment: avg,
		Action:       action,
		Time:         time.Now().Unix(),
	}, nil
}

// fetchPrice bounds the single price attempt with the configured
// timeout. No retry: one failed attempt terminates the run.
func (e *Engine) fetchPrice(ctx context.Context) (types.PriceQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.TimeoutSeconds)*time.Second)
	defer cancel()
	return e.prices.Quote(ctx, e.cfg.Asset, e.cfg.Currency)
}

// scoreHeadlines scores each headline in input order. A headline that
// fails to score is logged and skipped; if every headline fails, the
// caller's aggregation rejects the empty result.
func (e *Engine) scoreHeadlines(ctx context.Context, heads []string) []types.HeadlineScore {
	scores := make([]types.HeadlineScore, 0, len(heads))
	for _, h := range heads {
		s, err := e.scorer.Score(ctx, h)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to score headline", err, "headline", h)
			continue
		}
		scores = append(scores, s)
	}
	return scores
}
