package api

import (
	"errors"
	"net/http"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Register user
// @Description Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userView, err := h.authCommands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email is already registered",
			})
		case errors.Is(err, commands.ErrDatabaseOperationFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{User: userView})
}

// @Summary Login
// @Description Authenticate and obtain an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid credentials format",
		})
		return
	}

	token, userView, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		User:        userView,
	})
}

// @Summary Current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	userView, err := h.authCommands.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, userView)
}
