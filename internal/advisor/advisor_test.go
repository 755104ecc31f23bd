package advisor

import (
	"context"
	"errors"
	"testing"

	"sentiment-advisor/internal/store"
	"sentiment-advisor/internal/types"
)

type stubPrices struct {
	quote types.PriceQuote
	err   error
	calls int
}

func (s *stubPrices) Quote(_ context.Context, asset, currency string) (types.PriceQuote, error) {
	s.calls++
	if s.err != nil {
		return types.PriceQuote{}, s.err
	}
	q := s.quote
	q.Asset = asset
	q.Currency = currency
	return q, nil
}

type stubHeadlines struct {
	headlines []string
	err       error
	calls     int
}

func (s *stubHeadlines) Headlines(_ context.Context, _ string, _ int) ([]string, error) {
	s.calls++
	return s.headlines, s.err
}

type stubScorer struct {
	scores map[string]types.HeadlineScore
	errOn  map[string]bool
}

func (s *stubScorer) Score(_ context.Context, text string) (types.HeadlineScore, error) {
	if s.errOn[text] {
		return types.HeadlineScore{}, errors.New("scorer unavailable")
	}
	return s.scores[text], nil
}

func testConfig() *store.Config {
	return &store.Config{
		Asset:          "cardano",
		Symbol:         "ADA",
		Currency:       "usd",
		PriceSource:    "STATIC",
		HeadlineSource: "STATIC",
		Scorer:         "LEXICON",
		MaxHeadlines:   15,
		TimeoutSeconds: 5,
	}
}

func TestRunProducesRecommendation(t *testing.T) {
	prices := &stubPrices{quote: types.PriceQuote{Price: 0.47}}
	heads := &stubHeadlines{headlines: []string{"h1", "h2", "h3", "h4", "h5"}}
	scorer := &stubScorer{scores: map[string]types.HeadlineScore{
		"h1": {Headline: "h1", Label: types.Positive, Confidence: 0.95},
		"h2": {Headline: "h2", Label: types.Negative, Confidence: 0.80},
		"h3": {Headline: "h3", Label: types.Positive, Confidence: 0.99},
		"h4": {Headline: "h4", Label: types.Negative, Confidence: 0.55},
		"h5": {Headline: "h5", Label: types.Positive, Confidence: 0.89},
	}}

	eng := New(testConfig(), prices, heads, scorer)
	rec, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if rec.Action != types.Hold {
		t.Errorf("Expected HOLD for mean 0.296, got %s", rec.Action)
	}
	if len(rec.Scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(rec.Scores))
	}
	if rec.Quote.Price != 0.47 {
		t.Errorf("Expected quote price 0.47, got %v", rec.Quote.Price)
	}
	if rec.Asset != "cardano" {
		t.Errorf("Expected asset cardano, got %s", rec.Asset)
	}
}

func TestRunAbortsWhenPriceUnavailable(t *testing.T) {
	prices := &stubPrices{err: errors.New("network down")}
	heads := &stubHeadlines{headlines: []string{"h1"}}
	scorer := &stubScorer{}

	eng := New(testConfig(), prices, heads, scorer)
	_, err := eng.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error when price fetch fails")
	}

	// Price failure must abort before any headline work.
	if heads.calls != 0 {
		t.Errorf("Headline source was queried %d times after price failure", heads.calls)
	}
}

func TestRunAbortsOnEmptyHeadlines(t *testing.T) {
	prices := &stubPrices{quote: types.PriceQuote{Price: 0.47}}
	heads := &stubHeadlines{headlines: []string{}}
	scorer := &stubScorer{}

	eng := New(testConfig(), prices, heads, scorer)
	_, err := eng.Run(context.Background())
	if !errors.Is(err, ErrNoHeadlines) {
		t.Fatalf("Expected ErrNoHeadlines, got %v", err)
	}
}

func TestRunSkipsFailedScores(t *testing.T) {
	prices := &stubPrices{quote: types.PriceQuote{Price: 0.47}}
	heads := &stubHeadlines{headlines: []string{"ok", "broken"}}
	scorer := &stubScorer{
		scores: map[string]types.HeadlineScore{
			"ok": {Headline: "ok", Label: types.Positive, Confidence: 0.9},
		},
		errOn: map[string]bool{"broken": true},
	}

	eng := New(testConfig(), prices, heads, scorer)
	rec, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(rec.Scores) != 1 {
		t.Fatalf("Expected 1 score after skipping failure, got %d", len(rec.Scores))
	}
	if rec.Action != types.Buy {
		t.Errorf("Expected BUY for avg 0.9, got %s", rec.Action)
	}
}

func TestRunAbortsWhenAllScoresFail(t *testing.T) {
	prices := &stubPrices{quote: types.PriceQuote{Price: 0.47}}
	heads := &stubHeadlines{headlines: []string{"a", "b"}}
	scorer := &stubScorer{errOn: map[string]bool{"a": true, "b": true}}

	eng := New(testConfig(), prices, heads, scorer)
	_, err := eng.Run(context.Background())
	if !errors.Is(err, ErrNoScores) {
		t.Fatalf("Expected ErrNoScores when every headline fails scoring, got %v", err)
	}
}

func TestRunPropagatesHeadlineError(t *testing.T) {
	prices := &stubPrices{quote: types.PriceQuote{Price: 0.47}}
	heads := &stubHeadlines{err: errors.New("feed down")}
	scorer := &stubScorer{}

	eng := New(testConfig(), prices, heads, scorer)
	_, err := eng.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error when headline fetch fails")
	}
}
