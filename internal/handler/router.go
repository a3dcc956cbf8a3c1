package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"field-booking/internal/domain/user"
	"field-booking/internal/handler/api"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Field   *api.FieldHandler
	Review  *api.ReviewHandler
	User    *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}
	requireAdmin := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/user", Handler: h.Booking.ListMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateBooking},
				{Method: http.MethodPut, Path: "/:id/confirm", Handler: h.Booking.ConfirmBooking},
				{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Booking.CancelBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.DeleteBooking},
			})
		}

		fields := apiGroup.Group("/fields")
		{
			addRoutes(fields, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Field.ListFields},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Field.GetField},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Field.GetAvailability},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListFieldReviews},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Review.CreateReview, Mw: requireAuth},
				{Method: http.MethodPost, Path: "", Handler: h.Field.CreateField, Mw: requireAdmin},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Field.UpdateField, Mw: requireAdmin},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Field.DeleteField, Mw: requireAdmin},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Review.GetReview},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Review.UpdateReview, Mw: requireAuth},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.DeleteReview, Mw: requireAuth},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(requireAdmin...)
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: h.User.CreateUser},
				{Method: http.MethodGet, Path: "", Handler: h.User.ListUsers},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.GetUser},
				{Method: http.MethodPut, Path: "/:id", Handler: h.User.UpdateUser},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.DeleteUser},
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
