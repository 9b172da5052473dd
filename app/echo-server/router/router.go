package router

import (
	"bookwise/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupBookRoutes(api *echo.Group, handler *rest.BookHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	books := api.Group("/books")

	books.GET("", handler.GetAllBooks)
	books.GET("/:id", handler.GetBookByID)

	books.POST("", handler.CreateBook, authRequired, adminOnly)
	books.DELETE("/:id", handler.DeleteBook, authRequired, adminOnly)
}

func SetupAIRoutes(api *echo.Group, handler *rest.AIHandler) {
	ai := api.Group("/ai")

	ai.POST("/recommend", handler.Recommend)
	ai.POST("/select", handler.Select)
	ai.GET("/metrics", handler.Metrics)
}
