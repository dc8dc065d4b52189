package fetch_headlines_usecase

import (
	"context"
	"time"

	"commonwealth/domain"
	"commonwealth/port/headline_port"
	"commonwealth/utils/cache"
	"commonwealth/utils/metrics"
)

const pageRotationWindow = 10

// FetchHeadlinesUsecase owns the headline cache. All handler traffic goes
// through the cache; the upstream is only consulted when the slot expires or
// a force refresh is requested.
type FetchHeadlinesUsecase struct {
	fetchHeadlinesPort headline_port.FetchHeadlinesPort
	slot               *cache.SingleSlot[[]domain.Headline]
	ttl                time.Duration
	now                func() time.Time
}

func NewFetchHeadlinesUsecase(fetchHeadlinesPort headline_port.FetchHeadlinesPort, ttl time.Duration) *FetchHeadlinesUsecase {
	return &FetchHeadlinesUsecase{
		fetchHeadlinesPort: fetchHeadlinesPort,
		slot:               cache.NewSingleSlot[[]domain.Headline]("headlines"),
		ttl:                ttl,
		now:                time.Now,
	}
}

func (u *FetchHeadlinesUsecase) Execute(ctx context.Context, force bool) (cache.Result[[]domain.Headline], error) {
	page := u.currentPage()

	result, err := u.slot.GetOrRefresh(ctx, u.ttl, force, func(ctx context.Context) ([]domain.Headline, error) {
		return u.fetchHeadlinesPort.FetchHeadlines(ctx, page)
	})
	if err != nil {
		return cache.Result[[]domain.Headline]{}, err
	}

	metrics.RecordCacheResult("news", string(result.Freshness))

	return result, nil
}

// currentPage rotates the upstream page with the cache window so successive
// refreshes sample different slices of the feed instead of repeating the
// same batch.
func (u *FetchHeadlinesUsecase) currentPage() int {
	return int((u.now().UnixMilli() / u.ttl.Milliseconds()) % pageRotationWindow)
}
