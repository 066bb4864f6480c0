package api

import (
	"errors"
	"net/http"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUserContextMissing = errors.New("user id missing from context")

type PurchaseHandler struct {
	purchaseCommands commands.PurchaseCommands
	purchaseQueries  queries.PurchaseQueries
}

func NewPurchaseHandler(purchaseCommands commands.PurchaseCommands, purchaseQueries queries.PurchaseQueries) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseCommands: purchaseCommands,
		purchaseQueries:  purchaseQueries,
	}
}

// @Summary Create purchase
// @Description Purchase a book with a validated payment instrument
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUserContextMissing, "Internal server error", nil)
		return
	}

	var req reqdto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	purchaseView, err := h.purchaseCommands.CreatePurchase(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookIDRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Book ID is required", nil)
		case errors.Is(err, commands.ErrPaymentMethodRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment method is required", nil)
		case errors.Is(err, commands.ErrUnsupportedMethod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported payment method", nil)
		case errors.Is(err, commands.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found", nil)
		case errors.Is(err, commands.ErrAlreadyPurchased):
			httperr.AbortWithError(c, http.StatusConflict, err, "Book already purchased", nil)
		case errors.Is(err, commands.ErrInvalidInstrument):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseView(purchaseView))
}

// @Summary User purchases
// @Description List the authenticated user's purchases
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PurchaseListResponse
// @Failure 401 {object} httperr.Response
// @Router /purchases [get]
func (h *PurchaseHandler) GetUserPurchases(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUserContextMissing, "Internal server error", nil)
		return
	}

	purchases, err := h.purchaseQueries.GetUserPurchases(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.PurchaseListResponse, len(purchases))
	for i, p := range purchases {
		response[i] = resdto.FromPurchaseListItem(p)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get purchase
// @Description Get one of the authenticated user's purchases by ID
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUserContextMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid purchase ID format", nil)
		return
	}

	purchaseView, err := h.purchaseQueries.GetPurchase(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPurchaseNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Purchase not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchaseView(purchaseView))
}

// @Summary Check book purchase
// @Description Check whether the authenticated user purchased a book
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Success 200 {object} resdto.PurchaseCheckResponse
// @Failure 400 {object} httperr.Response
// @Router /purchases/check/{bookId} [get]
func (h *PurchaseHandler) CheckBookPurchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUserContextMissing, "Internal server error", nil)
		return
	}

	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book ID format", nil)
		return
	}

	check, err := h.purchaseQueries.CheckBookPurchase(c.Request.Context(), userID, bookID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchaseCheck(check))
}
