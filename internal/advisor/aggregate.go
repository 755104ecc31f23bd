package advisor

import (
	"errors"

	"sentiment-advisor/internal/types"
)

// ErrNoScores is returned when aggregation is invoked with no scored
// headlines. Failing fast here keeps a division-by-zero NaN from
// leaking into the decision rule.
var ErrNoScores = errors.New("no headline scores to aggregate")

// Aggregate reduces the scored headlines to their unweighted arithmetic
// mean of polarity-signed confidences. The result is in [-1, 1] and
// independent of input order.
func Aggregate(scores []types.HeadlineScore) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrNoScores
	}
	sum := 0.0
	for _, s := range scores {
		sum += s.Signed()
	}
	return sum / float64(len(scores)), nil
}
