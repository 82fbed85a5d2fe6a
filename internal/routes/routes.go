package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, d *handlers.Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(d.Log))

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "not_found", "Not found")
	})

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(d)
	authHandler := handlers.NewAuthHandler(d)
	meHandler := handlers.NewMeHandler(d)
	barbershopHandler := handlers.NewBarbershopHandler(d)
	bookingHandler := handlers.NewBookingHandler(d)
	paymentHandler := handlers.NewPaymentHandler(d)
	appointmentHandler := handlers.NewAppointmentHandler(d)
	rewardsHandler := handlers.NewRewardsHandler(d)

	r.GET("/health", publicHandler.Health)
	r.GET("/media/*key", publicHandler.GetMedia)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CATALOG (no device needed)
		// ------------------------------
		api.GET("/shops", barbershopHandler.ListShops)
		api.GET("/shops/:id", barbershopHandler.GetShop)
		api.GET("/explore", barbershopHandler.Explore)
		api.GET("/rewards/catalog", publicHandler.ListRewards)

		device := api.Group("/")
		device.Use(middleware.DeviceMiddleware())
		{
			// ------------------------------
			// 🔐 AUTH
			// ------------------------------
			device.POST("/auth/login", authHandler.Login)
			device.POST("/auth/register", authHandler.Register)
			device.POST("/auth/guest", authHandler.Guest)
			device.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// 🔐 SESSION REQUIRED
			// ------------------------------
			secured := device.Group("/")
			secured.Use(middleware.AuthMiddleware(d.Tokens))
			{
				secured.GET("/me", meHandler.GetMe)
				secured.PATCH("/me", meHandler.UpdateMe)
				secured.PUT("/me/avatar", meHandler.UploadAvatar)

				// BOOKING WIZARD
				secured.POST("/book/:id", bookingHandler.Start)
				secured.GET("/booking", bookingHandler.Get)
				secured.POST("/booking/services/:serviceId/toggle", bookingHandler.ToggleService)
				secured.PUT("/booking/barber", bookingHandler.SelectBarber)
				secured.PUT("/booking/datetime", bookingHandler.SelectDateTime)
				secured.PUT("/booking/notes", bookingHandler.SetNotes)
				secured.POST("/booking/next", bookingHandler.Next)
				secured.POST("/booking/back", bookingHandler.Back)

				secured.POST("/payment", paymentHandler.Pay)

				// APPOINTMENTS
				secured.GET("/appointments", appointmentHandler.List)
				secured.GET("/appointments/:id", appointmentHandler.Get)
				secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				secured.POST("/appointments/:id/rebook", appointmentHandler.Rebook)

				// REWARDS
				secured.GET("/rewards", rewardsHandler.Summary)
				secured.POST("/rewards/:id/redeem", rewardsHandler.Redeem)
			}
		}
	}
}
