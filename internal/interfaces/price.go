package interfaces

import (
	"context"

	"sentiment-advisor/internal/types"
)

type PriceSource interface {
	Quote(ctx context.Context, asset, currency string) (types.PriceQuote, error)
}
