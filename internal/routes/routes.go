package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-api/internal/audit"
	"github.com/glowdesk/salon-api/internal/cache"
	"github.com/glowdesk/salon-api/internal/config"
	"github.com/glowdesk/salon-api/internal/handlers"
	infraRepo "github.com/glowdesk/salon-api/internal/infra/repository"
	"github.com/glowdesk/salon-api/internal/media"
	"github.com/glowdesk/salon-api/internal/middleware"
	"github.com/glowdesk/salon-api/internal/payments"
	ucBooking "github.com/glowdesk/salon-api/internal/usecase/booking"
	ucMetrics "github.com/glowdesk/salon-api/internal/usecase/metrics"
	"github.com/glowdesk/salon-api/internal/voice"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	redisCache := cache.New(cfg)
	uploader := media.NewUploader(cfg)
	assistant := voice.NewAssistant(cfg)
	gateway := payments.NewGateway(cfg)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucBooking.NewUpdateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	confirmAppointmentUC := ucBooking.NewConfirmAppointment(
		bookingRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	noShowUC := ucBooking.NewMarkNoShow(
		bookingRepo,
		auditDispatcher,
	)

	markPaidUC := ucBooking.NewMarkPaid(
		bookingRepo,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListAppointmentsByMonth(bookingRepo)
	listByStatusUC := ucBooking.NewListAppointmentsByStatus(bookingRepo)

	summaryUC := ucMetrics.NewGetSummary(bookingRepo, cfg.MetricsRatingScoped)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db, uploader)

	serviceHandler := handlers.NewServiceHandler(db)
	stylistHandler := handlers.NewStylistHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		updateAppointmentUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		noShowUC,
		listByDateUC,
		listByMonthUC,
		listByStatusUC,
	)

	metricsHandler := handlers.NewMetricsHandler(bookingRepo, summaryUC, redisCache)
	voiceHandler := handlers.NewVoiceHandler(db, bookingRepo, assistant)
	paymentHandler := handlers.NewPaymentHandler(bookingRepo, gateway, markPaidUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		bookingRepo,
		availabilityUC,
		createAppointmentUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetSalon)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/stylists", publicHandler.ListStylists)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.POST("/:slug/reviews", publicHandler.CreateReview)
		}

		// ------------------------------
		// VOICE / PAYMENTS (server-to-server)
		// ------------------------------
		api.POST("/voice/process", voiceHandler.Process)
		api.POST("/payments/intent", paymentHandler.CreateIntent)
		api.POST("/webhooks/stripe", paymentHandler.Webhook)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.Get)
			secured.PATCH("/me/salon", salonHandler.Update)
			secured.POST("/me/salon/logo", salonHandler.UploadLogo)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/stylists", stylistHandler.List)
			secured.POST("/me/stylists", stylistHandler.Create)
			secured.PATCH("/me/stylists/:id", stylistHandler.Update)

			secured.GET("/me/clients", clientHandler.List)
			secured.GET("/me/clients/:id", clientHandler.Get)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.GET("/me/reviews", reviewHandler.List)
			secured.GET("/me/metrics", metricsHandler.GetSummary)
			secured.GET("/me/voice-calls", voiceHandler.ListCalls)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
