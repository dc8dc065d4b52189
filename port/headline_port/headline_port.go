package headline_port

import (
	"commonwealth/domain"
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=headline_port.go -destination=../../mocks/mock_headline_port.go

type FetchHeadlinesPort interface {
	FetchHeadlines(ctx context.Context, page int) ([]domain.Headline, error)
}
