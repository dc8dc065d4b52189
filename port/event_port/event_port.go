package event_port

import (
	"commonwealth/domain"
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=event_port.go -destination=../../mocks/mock_event_port.go

type FetchEventsPort interface {
	FetchEvents(ctx context.Context) ([]domain.GeoEvent, error)
}
