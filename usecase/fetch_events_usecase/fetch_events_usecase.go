package fetch_events_usecase

import (
	"context"

	"commonwealth/domain"
	"commonwealth/port/event_port"
)

type FetchEventsUsecase struct {
	fetchEventsPort event_port.FetchEventsPort
}

func NewFetchEventsUsecase(fetchEventsPort event_port.FetchEventsPort) *FetchEventsUsecase {
	return &FetchEventsUsecase{fetchEventsPort: fetchEventsPort}
}

func (u *FetchEventsUsecase) Execute(ctx context.Context) ([]domain.GeoEvent, error) {
	events, err := u.fetchEventsPort.FetchEvents(ctx)
	if err != nil {
		return nil, err
	}
	return events, nil
}
