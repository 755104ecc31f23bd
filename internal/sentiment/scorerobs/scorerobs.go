package scorerobs

import (
	"context"

	"sentiment-advisor/internal/interfaces"
	"sentiment-advisor/internal/logger"
	"sentiment-advisor/internal/trace"
	"sentiment-advisor/internal/types"
)

// observableScorer wraps a SentimentScorer with logging and tracing
type observableScorer struct {
	scorer interfaces.SentimentScorer
}

var _ interfaces.SentimentScorer = (*observableScorer)(nil)

// Wrap wraps a scorer with observability middleware
func Wrap(scorer interfaces.SentimentScorer) interfaces.SentimentScorer {
	return &observableScorer{scorer: scorer}
}

func (osc *observableScorer) Score(ctx context.Context, text string) (types.HeadlineScore, error) {
	ctx, span := trace.StartSpan(ctx, "sentiment.Score")
	defer span.End()

	score, err := osc.scorer.Score(ctx, text)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Headline scoring failed", err, "headline", text)
		return types.HeadlineScore{}, err
	}

	logger.DebugSkip(ctx, 1, "Headline scored",
		"headline", text,
		"label", score.Label,
		"confidence", score.Confidence,
	)
	return score, nil
}
