package interfaces

import (
	"context"

	"sentiment-advisor/internal/types"
)

type Advisor interface {
	Run(ctx context.Context) (types.Recommendation, error)
}
