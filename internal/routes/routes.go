package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/catalog"
	ucPatient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/patient"
	ucSchedule "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
	ucUser "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/user"
)

// Deps are the process-wide singletons the HTTP surface is built from.
type Deps struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  records.Store
	Locker lock.Locker
	Audit  *audit.Dispatcher
	Health map[string]handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.NewRateLimiterMiddleware(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}),
	)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
	authn := middleware.NewAuthenticator(tokens, d.Store)
	secured := authn.Required()

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	users := ucUser.NewService(d.Store, tokens, d.Audit)
	patients := ucPatient.NewService(d.Store, d.Audit)
	catalog := ucCatalog.NewService(d.Store, d.Audit)
	schedules := ucSchedule.NewService(d.Store, d.Audit)

	booking := ucAppointment.Deps{
		Store:  d.Store,
		Locker: d.Locker,
		Audit:  d.Audit,
		Opts: ucAppointment.Options{
			Rule:   cfg.DoubleBookingRule,
			Lookup: cfg.ScheduleLookup,
		},
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.Health)
	authHandler := handlers.NewAuthHandler(users)
	userHandler := handlers.NewUserHandler(users)
	patientHandler := handlers.NewPatientHandler(patients)
	catalogHandler := handlers.NewCatalogHandler(catalog)
	scheduleHandler := handlers.NewScheduleHandler(schedules)
	appointmentHandler := handlers.NewAppointmentHandler(booking)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.Store)

	// ======================================================
	// 🌐 PUBLIC
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.POST("/login", authHandler.Login)
	r.POST("/users", authn.Optional(), userHandler.Register)

	r.GET("/doctors", catalogHandler.ListDoctors)
	r.GET("/doctors/:id", catalogHandler.GetDoctor)
	r.GET("/doctors/:id/schedules", scheduleHandler.ListForDoctor)

	r.GET("/clinics", catalogHandler.ListClinics)
	r.GET("/clinics/:id", catalogHandler.GetClinic)

	r.GET("/schedules", scheduleHandler.List)

	// ======================================================
	// 🔐 AUTHENTICATED
	// ======================================================
	r.GET("/me", secured, userHandler.Me)

	usersGroup := r.Group("/users", secured)
	{
		usersGroup.GET("", userHandler.List)
		usersGroup.GET("/:id", userHandler.Get)
		usersGroup.PUT("/:id", userHandler.Update)
		usersGroup.DELETE("/:id", userHandler.Delete)
	}

	// ------------------------------
	// CATALOG (admin writes)
	// ------------------------------
	r.POST("/doctors", secured, catalogHandler.CreateDoctor)
	r.PUT("/doctors/:id", secured, catalogHandler.UpdateDoctor)
	r.DELETE("/doctors/:id", secured, catalogHandler.DeleteDoctor)
	r.PUT("/doctors/:id/schedules", secured, scheduleHandler.Update)
	r.DELETE("/doctors/:id/schedules", secured, scheduleHandler.Delete)

	r.POST("/clinics", secured, catalogHandler.CreateClinic)
	r.PUT("/clinics/:id", secured, catalogHandler.UpdateClinic)
	r.DELETE("/clinics/:id", secured, catalogHandler.DeleteClinic)

	r.POST("/schedules", secured, scheduleHandler.Create)

	// ------------------------------
	// PATIENTS
	// ------------------------------
	patientsGroup := r.Group("/patients", secured)
	{
		patientsGroup.POST("", patientHandler.Create)
		patientsGroup.GET("", patientHandler.List)
		patientsGroup.GET("/:id", patientHandler.Get)
		patientsGroup.PUT("/:id", patientHandler.Update)
		patientsGroup.DELETE("/:id", patientHandler.Delete)
	}

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	appointments := r.Group("/appointments", secured)
	{
		appointments.POST("", appointmentHandler.Create)
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.Get)
		appointments.PUT("/:id", appointmentHandler.Update)
		appointments.DELETE("/:id", appointmentHandler.Delete)
	}

	r.GET("/audit-logs", secured, auditLogsHandler.List)
}
