package rest

import (
	"net/http"

	"commonwealth/di"
	"commonwealth/usecase/fetch_events_usecase"

	"github.com/labstack/echo/v4"
)

func registerEventRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/events", handleGetEvents(container.FetchEventsUsecase))
}

func handleGetEvents(usecase *fetch_events_usecase.FetchEventsUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		events, err := usecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "GetEvents")
		}

		return c.JSON(http.StatusOK, events)
	}
}
