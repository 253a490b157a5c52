package api

import (
	"database/sql"

	h "stayscape/internal/http/handlers"
	"stayscape/internal/http/middleware"
	"stayscape/internal/repositories"
	"stayscape/internal/services"

	"github.com/gin-gonic/gin"
)

// NewRouter wires repositories to handlers around the shared pool. The pool
// comes in as a parameter; nothing here reaches for package-level state.
func NewRouter(db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())
	_ = r.SetTrustedProxies(nil)

	r.HandleMethodNotAllowed = true
	r.NoMethod(h.MethodNotAllowed)
	r.NoRoute(h.PageNotFound)

	bookingRepo := repositories.BookingRepository{DB: db}

	properties := h.PropertyHandler{Repo: repositories.PropertyRepository{DB: db}}
	reviews := h.ReviewHandler{Repo: repositories.ReviewRepository{DB: db}}
	favourites := h.FavouriteHandler{Repo: repositories.FavouriteRepository{DB: db}}
	bookings := h.BookingHandler{
		Repo:          bookingRepo,
		Confirmations: services.ConfirmationService{BookingRepo: bookingRepo},
	}
	users := h.UserHandler{Repo: repositories.UserRepository{DB: db}}
	propertyTypes := h.PropertyTypeHandler{Repo: repositories.PropertyTypeRepository{DB: db}}
	system := h.SystemHandler{DB: db}

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)

		props := api.Group("/properties")
		props.GET("", properties.List)
		props.POST("", properties.Create)
		props.GET("/:id", properties.GetByID)
		props.PATCH("/:id", properties.Patch)
		props.DELETE("/:id", properties.Delete)

		props.POST("/:id/favourite", favourites.Create)
		props.GET("/:id/reviews", reviews.ListForProperty)
		props.POST("/:id/reviews", reviews.Create)
		props.GET("/:id/bookings", bookings.ListForProperty)
		props.POST("/:id/bookings", bookings.Create)

		api.DELETE("/favourites/:id", favourites.Delete)
		api.DELETE("/reviews/:id", reviews.Delete)

		api.PATCH("/bookings/:id", bookings.Patch)
		api.DELETE("/bookings/:id", bookings.Delete)
		api.GET("/bookings/:id/confirmation", bookings.Confirmation)

		usersGroup := api.Group("/users")
		usersGroup.POST("", users.Create)
		usersGroup.GET("/:id", users.GetByID)
		usersGroup.PATCH("/:id", users.Patch)
		usersGroup.GET("/:id/bookings", bookings.ListForUser)
		usersGroup.GET("/:id/favourites", favourites.ListForUser)

		api.GET("/property-types", propertyTypes.List)
	}

	return r
}
