package http

import (
	"log/slog"
	"os"

	"github.com/InfElineas/Control-de-Asistencia/internal/config"
	"github.com/InfElineas/Control-de-Asistencia/internal/handler/http/middleware"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	geofenceHandler GeofenceHandler,
	restDayHandler RestDayHandler,
	vacationHandler VacationHandler,
	departmentHandler DepartmentHandler,
	reportHandler ReportHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "control-de-asistencia"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Route("/marks", func(r chi.Router) {
					r.Post("/", attendanceHandler.SubmitMark)
					r.Get("/today", attendanceHandler.GetToday)
				})
				r.Get("/history", attendanceHandler.GetHistory)
				r.Get("/window-status", scheduleHandler.WindowStatus)
			})

			r.Route("/geofence", func(r chi.Router) {
				r.Get("/", geofenceHandler.Get)

				// Global manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireGlobalManager)
					r.Put("/", geofenceHandler.Update)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.List)

				r.Route("/{departmentID}", func(r chi.Router) {
					r.Get("/schedule", scheduleHandler.GetByDepartment)
					r.Get("/calendar", departmentHandler.ListNonWorkingDays)

					// Global manager only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireGlobalManager)
						r.Put("/schedule", scheduleHandler.Upsert)
						r.Post("/calendar", departmentHandler.AddNonWorkingDay)
					})
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
			})

			r.Route("/rest-schedules", func(r chi.Router) {
				r.Get("/", restDayHandler.List)
				r.Post("/", restDayHandler.Create)
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", vacationHandler.Create)
				r.Get("/", vacationHandler.Overview)
				r.Get("/balance", vacationHandler.Balance)
				r.Post("/{requestID}/cancel", vacationHandler.Cancel)

				// Department head or global manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Post("/{requestID}/review", vacationHandler.Review)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Get("/department", reportHandler.DepartmentToday)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireGlobalManager)
					r.Get("/global", reportHandler.GlobalToday)
				})
			})

			// Global manager only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireGlobalManager)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
			})
		})
	})
	return r
}
