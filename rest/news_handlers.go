package rest

import (
	"net/http"

	"commonwealth/di"
	"commonwealth/usecase/fetch_headlines_usecase"

	"github.com/labstack/echo/v4"
)

// cacheStatusHeader tells the dashboard whether the payload is fresh, a
// cache hit, or a stale fallback after an upstream failure.
const cacheStatusHeader = "X-Cache-Status"

func registerNewsRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/news", handleGetNews(container.FetchHeadlinesUsecase))
}

func handleGetNews(usecase *fetch_headlines_usecase.FetchHeadlinesUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		force := c.QueryParam("force") == "true"

		result, err := usecase.Execute(c.Request().Context(), force)
		if err != nil {
			return handleError(c, err, "GetNews")
		}

		c.Response().Header().Set(cacheStatusHeader, string(result.Freshness))
		return c.JSON(http.StatusOK, toHeadlineResponses(result.Value))
	}
}
