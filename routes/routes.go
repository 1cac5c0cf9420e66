package routes

import (
	"net/http"
	"time"

	"salonflow/handlers"
	"salonflow/middleware"
	"salonflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers wired at startup.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Salon    *handlers.SalonHandler
	Provider *handlers.ProviderHandler
	Team     *handlers.TeamHandler
	Service  *handlers.ServiceHandler
	Requests *handlers.RequestsHandler
	Media    *handlers.MediaHandler
}

// RegisterPublicRoutes registers the endpoints the booking page uses.
// No authentication; rate limited per client IP.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	public := r.Group("/")
	public.Use(middleware.RateLimitMiddleware())
	{
		public.POST("/booking", hb.Booking.SubmitBookingRequest)
		public.GET("/api/salons/slug/:slug", hb.Salon.GetSalonBySlugHandler)
	}
}

// RegisterDashboardRoutes registers the authenticated dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	api.POST("/salons", hb.Salon.CreateSalonHandler)

	dashboard := api.Group("")
	dashboard.Use(middleware.JWTAuthSalonMiddleware())
	{
		dashboard.GET("/salon", hb.Salon.GetSalonHandler)
		dashboard.PUT("/salon", hb.Salon.UpdateSalonHandler)
		dashboard.DELETE("/salon", hb.Salon.DeleteSalonHandler)

		dashboard.GET("/providers", hb.Provider.GetProvidersHandler)
		dashboard.POST("/providers", hb.Provider.CreateProviderHandler)
		dashboard.PUT("/providers/:id", hb.Provider.UpdateProviderHandler)
		dashboard.DELETE("/providers/:id", hb.Provider.DeleteProviderHandler)

		dashboard.GET("/team", hb.Team.GetTeamMembersHandler)
		dashboard.POST("/team", hb.Team.CreateTeamMemberHandler)
		dashboard.PUT("/team/:id", hb.Team.UpdateTeamMemberHandler)
		dashboard.DELETE("/team/:id", hb.Team.DeleteTeamMemberHandler)

		dashboard.GET("/services", hb.Service.GetServicesHandler)
		dashboard.POST("/services", hb.Service.CreateServiceHandler)
		dashboard.PUT("/services/:id", hb.Service.UpdateServiceHandler)
		dashboard.DELETE("/services/:id", hb.Service.DeleteServiceHandler)

		dashboard.GET("/requests", hb.Requests.GetRequestsHandler)
		dashboard.PUT("/requests/:id/status", hb.Requests.UpdateRequestStatusHandler)
		dashboard.GET("/usage", hb.Requests.GetUsageHandler)

		dashboard.POST("/media/logo", hb.Media.UploadLogoHandler)
		dashboard.DELETE("/media/logo", hb.Media.DeleteLogoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}
