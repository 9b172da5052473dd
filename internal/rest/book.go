package rest

import (
	"context"
	"net/http"
	"time"

	"bookwise/domain"
	"bookwise/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type BookService interface {
	GetAllBooks(ctx context.Context) ([]domain.Book, error)
	GetBookByID(ctx context.Context, id string) (domain.Book, error)
	CreateBook(ctx context.Context, book *domain.Book) (*domain.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

type BookHandler struct {
	bookService BookService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewBookHandler(bookService BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type CreateBookRequest struct {
	Name     string   `json:"name" validate:"required"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Image    string   `json:"image"`
}

func (h *BookHandler) GetAllBooks(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	books, err := h.bookService.GetAllBooks(ctx)
	if err != nil {
		logger.Error("Failed to find all books", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(books))
}

func (h *BookHandler) GetBookByID(c echo.Context) error {
	bookID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	book, err := h.bookService.GetBookByID(ctx, bookID)
	if err != nil {
		logger.Error("Failed to find book", err)
		// Check if book not found
		if err.Error() == "book not found" || err.Error() == "invalid book id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(book))
}

func (h *BookHandler) CreateBook(c echo.Context) error {
	var req CreateBookRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate book request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	book := &domain.Book{
		Name:     req.Name,
		Title:    req.Title,
		Category: req.Category,
		Price:    req.Price,
		Image:    req.Image,
	}

	newBook, err := h.bookService.CreateBook(ctx, book)
	if err != nil {
		logger.Error("Failed to create book", err)
		// Check if it's a validation error
		if err.Error() == "book name is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(newBook))
}

func (h *BookHandler) DeleteBook(c echo.Context) error {
	bookID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.bookService.DeleteBook(ctx, bookID)
	if err != nil {
		logger.Error("Failed to delete book", err)
		// Check if book not found
		if err.Error() == "book not found" || err.Error() == "invalid book id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]any{
		"message": "book successfully deleted",
		"book_id": bookID,
	}))
}
