package types

// Polarity is the binary sentiment classification of a piece of text.
type Polarity string

const (
	Positive Polarity = "POSITIVE"
	Negative Polarity = "NEGATIVE"
)

// Action is the discrete recommendation produced by one advisory run.
type Action string

const (
	Buy  Action = "BUY"
	Sell Action = "SELL"
	Hold Action = "HOLD"
)

// HeadlineScore is the scored sentiment of a single headline.
type HeadlineScore struct {
	Headline   string   `json:"headline"`
	Label      Polarity `json:"label"`
	Confidence float64  `json:"confidence"`
}

// Signed returns the polarity-weighted confidence: the confidence
// itself for POSITIVE labels, its negation for NEGATIVE labels.
func (h HeadlineScore) Signed() float64 {
	if h.Label == Negative {
		return -h.Confidence
	}
	return h.Confidence
}

// PriceQuote is a successfully fetched spot price. Fetch failures are
// signalled through errors, never through a zero-valued quote.
type PriceQuote struct {
	Asset     string  `json:"asset"`
	Currency  string  `json:"currency"`
	Price     float64 `json:"price"`
	FetchedAt int64   `json:"fetched_at"`
}

// Recommendation is the full result of one advisory run.
type Recommendation struct {
	Asset        string          `json:"asset"`
	Quote        PriceQuote      `json:"quote"`
	Scores       []HeadlineScore `json:"scores"`
	AvgSentiment float64         `json:"avg_sentiment"`
	Action       Action          `json:"action"`
	Time         int64           `json:"time"`
}
