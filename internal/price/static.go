package price

import (
	"context"
	"fmt"
	"time"

	"sentiment-advisor/internal/types"
)

// Static returns a fixed configured price. Used for offline runs and tests.
type Static struct {
	price float64
}

func NewStatic(price float64) *Static {
	return &Static{price: price}
}

func (s *Static) Quote(_ context.Context, asset, currency string) (types.PriceQuote, error) {
	if s.price <= 0 {
		return types.PriceQuote{}, fmt.Errorf("static price must be positive, got %.4f", s.price)
	}
	return types.PriceQuote{
		Asset:     asset,
		Currency:  currency,
		Price:     s.price,
		FetchedAt: time.Now().Unix(),
	}, nil
}
