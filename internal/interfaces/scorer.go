package interfaces

import (
	"context"

	"sentiment-advisor/internal/types"
)

type SentimentScorer interface {
	Score(ctx context.Context, text string) (types.HeadlineScore, error)
}
