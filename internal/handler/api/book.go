package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookHandler struct {
	bookCommands commands.BookCommands
	bookQueries  queries.BookQueries
}

func NewBookHandler(bookCommands commands.BookCommands, bookQueries queries.BookQueries) *BookHandler {
	return &BookHandler{
		bookCommands: bookCommands,
		bookQueries:  bookQueries,
	}
}

// @Summary List books
// @Description List active books with optional category and promotional filters
// @Tags books
// @Produce json
// @Param category query string false "Category filter"
// @Param promotional query bool false "Promotional filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookPageResponse
// @Router /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	filter := queries.ListBooksFilter{
		Page:  parseInt32(c.Query("page"), 1),
		Limit: parseInt32(c.Query("limit"), 10),
	}

	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if promotionalStr := c.Query("promotional"); promotionalStr != "" {
		promotional, err := strconv.ParseBool(promotionalStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid promotional filter",
			})
			return
		}
		filter.Promotional = &promotional
	}

	page, err := h.bookQueries.ListBooks(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookPage(page))
}

// @Summary Promotional books
// @Description List books currently on promotion
// @Tags books
// @Produce json
// @Success 200 {array} resdto.BookListResponse
// @Router /books/promotions [get]
func (h *BookHandler) GetPromotionalBooks(c *gin.Context) {
	books, err := h.bookQueries.GetPromotionalBooks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookListResponse, len(books))
	for i, b := range books {
		response[i] = resdto.FromBookListItem(b)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get book
// @Description Get book details. The ebook URL is present only for buyers.
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid book ID format",
		})
		return
	}

	// Anonymous readers get uuid.Nil, which never matches a purchase.
	userID, _ := middleware.GetUserID(c)

	detail, err := h.bookQueries.GetBookDetails(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookDetailView(detail))
}

// @Summary Create book
// @Description Create a new book (admin only)
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookRequest true "Book request"
// @Success 201 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req reqdto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookCommands.CreateBook(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrISBNTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "ISBN is already registered",
			})
		case errors.Is(err, commands.ErrBookValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Book validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookView(view))
}

// @Summary Update book
// @Description Update an existing book (admin only)
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body reqdto.UpdateBookRequest true "Update request"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid book ID format",
		})
		return
	}

	var req reqdto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookCommands.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		case errors.Is(err, commands.ErrISBNTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "ISBN is already registered",
			})
		case errors.Is(err, commands.ErrBookValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Book validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

// @Summary Delete book
// @Description Deactivate a book (admin only)
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid book ID format",
		})
		return
	}

	if err := h.bookCommands.DeleteBook(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
