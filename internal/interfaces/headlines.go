package interfaces

import "context"

type HeadlineSource interface {
	Headlines(ctx context.Context, query string, limit int) ([]string, error)
}
