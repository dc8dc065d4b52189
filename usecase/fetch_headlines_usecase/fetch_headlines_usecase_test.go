package fetch_headlines_usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"commonwealth/domain"
	"commonwealth/mocks"
	"commonwealth/utils/cache"
	appErrors "commonwealth/utils/errors"
	"commonwealth/utils/logger"
)

func TestFetchHeadlinesUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	headlines := []domain.Headline{
		{Title: "One", SourceName: "A", URL: "https://example.com/1", Description: "d", PublishedAt: "2025-08-30T10:00:00Z"},
		{Title: "Two", SourceName: "B", URL: "https://example.com/2", Description: "d", PublishedAt: "2025-08-30T11:00:00Z"},
	}

	t.Run("first_call_fetches_fresh", func(t *testing.T) {
		mockPort := mocks.NewMockFetchHeadlinesPort(ctrl)
		mockPort.EXPECT().FetchHeadlines(ctx, gomock.Any()).Return(headlines, nil).Times(1)

		usecase := NewFetchHeadlinesUsecase(mockPort, time.Minute)

		result, err := usecase.Execute(ctx, false)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Freshness != cache.FreshnessFresh {
			t.Errorf("freshness = %v, want %v", result.Freshness, cache.FreshnessFresh)
		}
		if len(result.Value) != 2 {
			t.Errorf("got %d headlines, want 2", len(result.Value))
		}
	})

	t.Run("second_call_within_ttl_is_a_hit", func(t *testing.T) {
		mockPort := mocks.NewMockFetchHeadlinesPort(ctrl)
		mockPort.EXPECT().FetchHeadlines(ctx, gomock.Any()).Return(headlines, nil).Times(1)

		usecase := NewFetchHeadlinesUsecase(mockPort, time.Minute)

		if _, err := usecase.Execute(ctx, false); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		result, err := usecase.Execute(ctx, false)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Freshness != cache.FreshnessHit {
			t.Errorf("freshness = %v, want %v", result.Freshness, cache.FreshnessHit)
		}
	})

}

func TestFetchHeadlinesUsecase_Execute_Force(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	headlines := []domain.Headline{
		{Title: "One", SourceName: "A", URL: "https://example.com/1", Description: "d", PublishedAt: "2025-08-30T10:00:00Z"},
	}

	mockPort := mocks.NewMockFetchHeadlinesPort(ctrl)
	mockPort.EXPECT().FetchHeadlines(ctx, gomock.Any()).Return(headlines, nil).Times(2)

	usecase := NewFetchHeadlinesUsecase(mockPort, time.Hour)

	if _, err := usecase.Execute(ctx, false); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	result, err := usecase.Execute(ctx, true)
	if err != nil {
		t.Fatalf("Execute(force) error = %v", err)
	}
	if result.Freshness != cache.FreshnessFresh {
		t.Errorf("freshness = %v, want %v", result.Freshness, cache.FreshnessFresh)
	}
}

func TestFetchHeadlinesUsecase_Execute_StaleFallback(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	headlines := []domain.Headline{
		{Title: "One", SourceName: "A", URL: "https://example.com/1", Description: "d", PublishedAt: "2025-08-30T10:00:00Z"},
	}

	mockPort := mocks.NewMockFetchHeadlinesPort(ctrl)
	first := mockPort.EXPECT().FetchHeadlines(ctx, gomock.Any()).Return(headlines, nil).Times(1)
	mockPort.EXPECT().FetchHeadlines(ctx, gomock.Any()).Return(nil, appErrors.NewUpstreamUnavailableError("driver", "newsapi", "FetchTopHeadlines", nil, nil)).After(first).Times(1)

	usecase := NewFetchHeadlinesUsecase(mockPort, time.Hour)

	if _, err := usecase.Execute(ctx, false); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Force refresh fails upstream; the previous batch is served stale.
	result, err := usecase.Execute(ctx, true)
	if err != nil {
		t.Fatalf("Execute(force) error = %v", err)
	}
	if result.Freshness != cache.FreshnessStale {
		t.Errorf("freshness = %v, want %v", result.Freshness, cache.FreshnessStale)
	}
	if len(result.Value) != 1 || result.Value[0].Title != "One" {
		t.Errorf("stale value = %v, want previous batch", result.Value)
	}
}

func TestFetchHeadlinesUsecase_Execute_NeverPopulated(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockPort := mocks.NewMockFetchHeadlinesPort(ctrl)
	mockPort.EXPECT().FetchHeadlines(ctx, gomock.Any()).Return(nil, appErrors.NewUpstreamUnavailableError("driver", "newsapi", "FetchTopHeadlines", nil, nil)).Times(1)

	usecase := NewFetchHeadlinesUsecase(mockPort, time.Minute)

	_, err := usecase.Execute(ctx, false)
	if err == nil {
		t.Fatal("expected error when no fetch has ever succeeded")
	}
	if !appErrors.IsUpstreamUnavailable(err) {
		t.Errorf("expected upstream unavailable error, got %v", err)
	}
}

func TestFetchHeadlinesUsecase_PageRotation(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPort := mocks.NewMockFetchHeadlinesPort(ctrl)
	usecase := NewFetchHeadlinesUsecase(mockPort, time.Minute)

	tests := []struct {
		name     string
		nowMilli int64
		want     int
	}{
		{name: "window zero", nowMilli: 0, want: 0},
		{name: "third window", nowMilli: 3 * 60_000, want: 3},
		{name: "wraps after ten windows", nowMilli: 13 * 60_000, want: 3},
		{name: "mid window keeps page", nowMilli: 3*60_000 + 59_999, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase.now = func() time.Time { return time.UnixMilli(tt.nowMilli) }
			if got := usecase.currentPage(); got != tt.want {
				t.Errorf("currentPage() = %d, want %d", got, tt.want)
			}
		})
	}
}
