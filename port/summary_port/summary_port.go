package summary_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=summary_port.go -destination=../../mocks/mock_summary_port.go

type SummarizeArticlePort interface {
	SummarizeArticle(ctx context.Context, text string) (string, error)
}
