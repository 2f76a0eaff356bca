package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/clinicore/booking-api/internal/audit"
	"github.com/clinicore/booking-api/internal/config"
	"github.com/clinicore/booking-api/internal/handlers"
	infraRepo "github.com/clinicore/booking-api/internal/infra/repository"
	"github.com/clinicore/booking-api/internal/metrics"
	"github.com/clinicore/booking-api/internal/middleware"
	ucBooking "github.com/clinicore/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, logger)
	initializeUC := ucBooking.NewInitializeSlots(bookingRepo)
	bookUC := ucBooking.NewBookSlot(bookingRepo, auditDispatcher)
	listMyUC := ucBooking.NewListMyBookings(bookingRepo)
	listAllUC := ucBooking.NewListAllBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	slotHandler := handlers.NewSlotHandler(availabilityUC, initializeUC)
	bookingHandler := handlers.NewBookingHandler(bookUC, listMyUC, listAllUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/slots", slotHandler.GetAvailability)

			// ------------------------------
			// PATIENT
			// ------------------------------
			patient := secured.Group("/bookings")
			patient.Use(middleware.RequireRole(middleware.RolePatient))
			{
				patient.POST("/book", bookingHandler.Book)
				patient.GET("/my-bookings", bookingHandler.MyBookings)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.POST("/slots/initialize", slotHandler.Initialize)
				admin.GET("/bookings/all-bookings", bookingHandler.AllBookings)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
