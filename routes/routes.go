package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"guest-portal/controllers"
	"guest-portal/middleware"
	"guest-portal/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all controllers onto the gin engine. Everything under
// /api except /api/auth and /api/hotels requires a Bearer session token.
func SetupRouter(
	ac *controllers.AuthController,
	uc *controllers.UserController,
	hc *controllers.HotelController,
	bc *controllers.BookingController,
	src *controllers.ServiceRequestController,
	nc *controllers.NotificationController,
	userSvc *services.UserService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		// Room search is public so guests can browse before signing in.
		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.GET("/:id", hc.GetHotelByID)
		}

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(userSvc))
		{
			users := authed.Group("/users")
			{
				users.GET("/:id", uc.GetUser)
				users.PATCH("/:id", uc.UpdateUser)
			}

			bookings := authed.Group("/bookings")
			{
				bookings.GET("", bc.GetBookings)
				bookings.POST("", bc.CreateBooking)
				bookings.GET("/:id", bc.GetBookingDetails)
				bookings.PATCH("/:id", bc.UpdateBooking)
			}

			requests := authed.Group("/service-requests")
			{
				requests.GET("", src.GetServiceRequests)
				requests.POST("", src.CreateServiceRequest)
				requests.PATCH("/:id", src.UpdateServiceRequest)
			}

			notifications := authed.Group("/notifications")
			{
				notifications.GET("", nc.GetNotifications)
				notifications.PATCH("/:id", nc.MarkNotificationRead)
			}
		}
	}

	return r
}
