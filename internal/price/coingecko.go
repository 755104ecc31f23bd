package price

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"sentiment-advisor/internal/types"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGecko fetches spot prices from the CoinGecko simple price API.
// One attempt per run, no retry or backoff.
type CoinGecko struct {
	client *resty.Client
}

// NewCoinGecko creates a CoinGecko price source with the given request timeout.
func NewCoinGecko(timeout time.Duration) *CoinGecko {
	return NewCoinGeckoWithBaseURL(coingeckoBaseURL, timeout)
}

// NewCoinGeckoWithBaseURL allows pointing the client at a different
// endpoint, used by tests.
func NewCoinGeckoWithBaseURL(baseURL string, timeout time.Duration) *CoinGecko {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")
	return &CoinGecko{client: client}
}

// Quote fetches the current price of asset in the given currency.
// Any transport, parse, or shape problem is an error; no quote is ever
// returned alongside one.
func (g *CoinGecko) Quote(ctx context.Context, asset, currency string) (types.PriceQuote, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":           asset,
			"vs_currencies": currency,
		}).
		Get("/simple/price")
	if err != nil {
		return types.PriceQuote{}, fmt.Errorf("coingecko request for %s: %w", asset, err)
	}
	if resp.StatusCode() != 200 {
		return types.PriceQuote{}, fmt.Errorf("coingecko http %d: %s", resp.StatusCode(), resp.String())
	}

	// Response shape: {"cardano": {"usd": 0.47}}
	var body map[string]map[string]float64
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return types.PriceQuote{}, fmt.Errorf("coingecko parse: %w", err)
	}

	quotes, ok := body[asset]
	if !ok {
		return types.PriceQuote{}, fmt.Errorf("coingecko response missing asset %q", asset)
	}
	p, ok := quotes[currency]
	if !ok {
		return types.PriceQuote{}, fmt.Errorf("coingecko response missing currency %q for asset %q", currency, asset)
	}
	if p <= 0 {
		return types.PriceQuote{}, fmt.Errorf("coingecko returned non-positive price %.8f for %s", p, asset)
	}

	return types.PriceQuote{
		Asset:     asset,
		Currency:  currency,
		Price:     p,
		FetchedAt: time.Now().Unix(),
	}, nil
}
