package priceobs

import (
	"context"

	"sentiment-advisor/internal/interfaces"
	"sentiment-advisor/internal/logger"
	"sentiment-advisor/internal/trace"
	"sentiment-advisor/internal/types"
)

// observableSource wraps a PriceSource with logging and tracing
type observableSource struct {
	source interfaces.PriceSource
}

var _ interfaces.PriceSource = (*observableSource)(nil)

// Wrap wraps a price source with observability middleware
func Wrap(source interfaces.PriceSource) interfaces.PriceSource {
	return &observableSource{source: source}
}

func (os *observableSource) Quote(ctx context.Context, asset, currency string) (types.PriceQuote, error) {
	ctx, span := trace.StartSpan(ctx, "price.Quote")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching price quote", "asset", asset, "currency", currency)

	q, err := os.source.Quote(ctx, asset, currency)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Price quote failed", err, "asset", asset, "currency", currency)
		return types.PriceQuote{}, err
	}

	logger.InfoSkip(ctx, 1, "Price quote received", "asset", asset, "currency", currency, "price", q.Price)
	return q, nil
}
