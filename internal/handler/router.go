package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookstore-api/internal/handler/api"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookHandler *api.BookHandler,
	purchaseHandler *api.PurchaseHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookHandler, purchaseHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookHandler *api.BookHandler,
	purchaseHandler *api.PurchaseHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		books := apiGroup.Group("/books")
		{
			addRoutes(books, []route{
				{Method: http.MethodGet, Path: "", Handler: bookHandler.ListBooks},
				{Method: http.MethodGet, Path: "/promotions", Handler: bookHandler.GetPromotionalBooks},
			})

			// Detail reads work anonymously but unlock the ebook URL for buyers.
			detail := books.Group("")
			detail.Use(authMiddleware.OptionalAuth())
			addRoutes(detail, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: bookHandler.GetBook},
			})

			admin := books.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: bookHandler.CreateBook},
				{Method: http.MethodPut, Path: "/:id", Handler: bookHandler.UpdateBook},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookHandler.DeleteBook},
			})
		}

		purchases := apiGroup.Group("/purchases")
		purchases.Use(authMiddleware.RequireAuth())
		{
			addRoutes(purchases, []route{
				{Method: http.MethodPost, Path: "", Handler: purchaseHandler.CreatePurchase},
				{Method: http.MethodGet, Path: "", Handler: purchaseHandler.GetUserPurchases},
				{Method: http.MethodGet, Path: "/check/:bookId", Handler: purchaseHandler.CheckBookPurchase},
				{Method: http.MethodGet, Path: "/:id", Handler: purchaseHandler.GetPurchase},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
