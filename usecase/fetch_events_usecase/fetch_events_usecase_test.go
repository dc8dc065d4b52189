package fetch_events_usecase

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"commonwealth/domain"
	"commonwealth/mocks"
	appErrors "commonwealth/utils/errors"
	"commonwealth/utils/logger"
)

func TestFetchEventsUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockEvents := []domain.GeoEvent{
		{
			ID:        "https://example.gov/summit",
			Title:     "Summit",
			Category:  domain.CategoryPolitical,
			Severity:  domain.SeverityMedium,
			Latitude:  37.0902,
			Longitude: -95.7129,
			Country:   "United States",
			Date:      "20250829T120000Z",
		},
	}

	tests := []struct {
		name      string
		mockSetup func(*mocks.MockFetchEventsPort)
		want      []domain.GeoEvent
		wantErr   bool
	}{
		{
			name: "success_with_events",
			mockSetup: func(mockPort *mocks.MockFetchEventsPort) {
				mockPort.EXPECT().FetchEvents(ctx).Return(mockEvents, nil).Times(1)
			},
			want: mockEvents,
		},
		{
			name: "success_with_empty_slice",
			mockSetup: func(mockPort *mocks.MockFetchEventsPort) {
				mockPort.EXPECT().FetchEvents(ctx).Return([]domain.GeoEvent{}, nil).Times(1)
			},
			want: []domain.GeoEvent{},
		},
		{
			name: "port_returns_upstream_error",
			mockSetup: func(mockPort *mocks.MockFetchEventsPort) {
				upstreamErr := appErrors.NewUpstreamUnavailableError("driver", "gdelt", "FetchArticles", fmt.Errorf("connection refused"), nil)
				mockPort.EXPECT().FetchEvents(ctx).Return(nil, upstreamErr).Times(1)
			},
			wantErr: true,
		},
		{
			name: "port_returns_timeout_error",
			mockSetup: func(mockPort *mocks.MockFetchEventsPort) {
				timeoutErr := appErrors.NewOperationTimeoutError("driver", "gdelt", "FetchArticles", fmt.Errorf("context deadline exceeded"), nil)
				mockPort.EXPECT().FetchEvents(ctx).Return(nil, timeoutErr).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPort := mocks.NewMockFetchEventsPort(ctrl)
			tt.mockSetup(mockPort)

			usecase := NewFetchEventsUsecase(mockPort)
			got, err := usecase.Execute(ctx)

			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Execute() got = %v, want %v", got, tt.want)
			}
		})
	}
}
