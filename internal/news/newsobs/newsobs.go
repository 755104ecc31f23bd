package newsobs

import (
	"context"

	"sentiment-advisor/internal/interfaces"
	"sentiment-advisor/internal/logger"
	"sentiment-advisor/internal/trace"
)

// observableSource wraps a HeadlineSource with logging and tracing
type observableSource struct {
	source interfaces.HeadlineSource
}

var _ interfaces.HeadlineSource = (*observableSource)(nil)

// Wrap wraps a headline source with observability middleware
func Wrap(source interfaces.HeadlineSource) interfaces.HeadlineSource {
	return &observableSource{source: source}
}

func (os *observableSource) Headlines(ctx context.Context, query string, limit int) ([]string, error) {
	ctx, span := trace.StartSpan(ctx, "news.Headlines")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching headlines", "query", query, "limit", limit)

	heads, err := os.source.Headlines(ctx, query, limit)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Headline fetch failed", err, "query", query)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Headlines received", "query", query, "count", len(heads))
	return heads, nil
}
