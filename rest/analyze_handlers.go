package rest

import (
	"net/http"

	"commonwealth/di"
	"commonwealth/usecase/analyze_articles_usecase"

	"github.com/labstack/echo/v4"
)

func registerAnalyzeRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/articles/analyze", handleAnalyzeArticles(container.AnalyzeArticlesUsecase))
}

func handleAnalyzeArticles(usecase *analyze_articles_usecase.AnalyzeArticlesUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var request AnalyzeArticlesRequest
		if err := c.Bind(&request); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		// The whole batch is rejected when it is empty or any item lacks the
		// fields the per-item results are keyed on.
		if len(request.Articles) == 0 {
			return handleValidationError(c, "articles must not be empty", "articles", nil)
		}
		for i, article := range request.Articles {
			if article.Title == "" || article.URL == "" {
				return handleValidationError(c, "articles must contain title and url", "articles", i)
			}
		}

		results, err := usecase.Execute(c.Request().Context(), request.toDomain())
		if err != nil {
			return handleError(c, err, "AnalyzeArticles")
		}

		return c.JSON(http.StatusOK, results)
	}
}
