package advisorobs

import (
	"context"
	"time"

	"sentiment-advisor/internal/interfaces"
	"sentiment-advisor/internal/logger"
	"sentiment-advisor/internal/trace"
	"sentiment-advisor/internal/types"
)

// observableAdvisor wraps an Advisor with logging and tracing
type observableAdvisor struct {
	advisor interfaces.Advisor
}

var _ interfaces.Advisor = (*observableAdvisor)(nil)

// Wrap wraps an advisor with observability middleware
func Wrap(advisor interfaces.Advisor) interfaces.Advisor {
	return &observableAdvisor{advisor: advisor}
}

func (oa *observableAdvisor) Run(ctx context.Context) (types.Recommendation, error) {
	ctx, span := trace.StartSpan(ctx, "advisor.run")
	defer span.End()

	start := time.Now()
	logger.InfoSkip(ctx, 1, "Advisory run started")

	rec, err := oa.advisor.Run(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Advisory run failed", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return types.Recommendation{}, err
	}

	logger.InfoSkip(ctx, 1, "Advisory run completed",
		"asset", rec.Asset,
		"action", rec.Action,
		"avg_sentiment", rec.AvgSentiment,
		"headlines", len(rec.Scores),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}
