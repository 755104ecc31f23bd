package price

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"

	"sentiment-advisor/internal/types"
)

// Yahoo fetches equity quotes via the Yahoo Finance quote API. The
// ticker symbol is bound at construction: Yahoo wants "ADA" style
// symbols, not the CoinGecko asset id the pipeline passes around.
type Yahoo struct {
	symbol string
	get    func(symbol string) (*finance.Quote, error)
}

func NewYahoo(symbol string) *Yahoo {
	return &Yahoo{symbol: symbol, get: quote.Get}
}

// Quote fetches the regular market price for the configured symbol;
// the asset argument is ignored. The finance-go client does not take a
// context, so cancellation applies only between steps of the run.
func (y *Yahoo) Quote(_ context.Context, _, currency string) (types.PriceQuote, error) {
	q, err := y.get(y.symbol)
	if err != nil {
		return types.PriceQuote{}, fmt.Errorf("yahoo quote for %s: %w", y.symbol, err)
	}
	if q == nil {
		return types.PriceQuote{}, fmt.Errorf("yahoo returned no quote for %s", y.symbol)
	}
	if q.RegularMarketPrice <= 0 {
		return types.PriceQuote{}, fmt.Errorf("yahoo returned non-positive price %.4f for %s", q.RegularMarketPrice, y.symbol)
	}

	return types.PriceQuote{
		Asset:     y.symbol,
		Currency:  currency,
		Price:     q.RegularMarketPrice,
		FetchedAt: time.Now().Unix(),
	}, nil
}
