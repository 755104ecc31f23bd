package advisor

import "sentiment-advisor/internal/types"

// Thresholds are strict on both sides: exactly +/-0.3 stays HOLD.
const (
	buyThreshold  = 0.3
	sellThreshold = -0.3
)

// Decide maps an average sentiment to an action. price is part of the
// signature for a future price-aware rule but has no effect on the
// result today. The function is total: any real input, including values
// outside [-1, 1], yields one of BUY, SELL, or HOLD.
func Decide(avgSentiment, price float64) types.Action {
	_ = price
	switch {
	case avgSentiment > buyThreshold:
		return types.Buy
	case avgSentiment < sellThreshold:
		return types.Sell
	default:
		return types.Hold
	}
}
