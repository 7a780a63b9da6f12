package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/config"
	appHTTP "github.com/InfElineas/Control-de-Asistencia/internal/handler/http"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/cron"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/database"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
	"github.com/InfElineas/Control-de-Asistencia/internal/repository/postgresql"
	attendanceService "github.com/InfElineas/Control-de-Asistencia/internal/service/attendance"
	authService "github.com/InfElineas/Control-de-Asistencia/internal/service/auth"
	departmentService "github.com/InfElineas/Control-de-Asistencia/internal/service/department"
	geofenceService "github.com/InfElineas/Control-de-Asistencia/internal/service/geofence"
	reportService "github.com/InfElineas/Control-de-Asistencia/internal/service/report"
	restdayService "github.com/InfElineas/Control-de-Asistencia/internal/service/restday"
	scheduleService "github.com/InfElineas/Control-de-Asistencia/internal/service/schedule"
	userService "github.com/InfElineas/Control-de-Asistencia/internal/service/user"
	vacationService "github.com/InfElineas/Control-de-Asistencia/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	calendarRepo := postgresql.NewDepartmentCalendarRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	geofenceRepo := postgresql.NewGeofenceConfigRepository(db)
	markRepo := postgresql.NewMarkRepository(db)
	restScheduleRepo := postgresql.NewRestScheduleRepository(db)
	vacationRepo := postgresql.NewVacationRequestRepository(db)
	workedDaysRepo := postgresql.NewWorkedDaysRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	markSvc := attendanceService.NewMarkService(
		db,
		markRepo,
		scheduleRepo,
		geofenceRepo,
		restScheduleRepo,
		vacationRepo,
		calendarRepo,
		cfg.Attendance,
	)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, auditRepo)
	geofenceSvc := geofenceService.NewService(geofenceRepo, auditRepo)
	restdaySvc := restdayService.NewService(restScheduleRepo)
	vacationSvc := vacationService.NewService(vacationRepo, workedDaysRepo)
	departmentSvc := departmentService.NewService(departmentRepo, calendarRepo)
	reportSvc := reportService.NewService(
		userRepo,
		markRepo,
		scheduleRepo,
		restScheduleRepo,
		calendarRepo,
		departmentRepo,
		cfg.Attendance,
	)
	userSvc := userService.NewUserService(userRepo, auditRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(markSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	geofenceHandler := appHTTP.NewGeofenceHandler(geofenceSvc)
	restDayHandler := appHTTP.NewRestDayHandler(restdaySvc)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		scheduleHandler,
		geofenceHandler,
		restDayHandler,
		vacationHandler,
		departmentHandler,
		reportHandler,
		userHandler,
	)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		userRepo,
		markRepo,
		scheduleRepo,
		restScheduleRepo,
		calendarRepo,
		departmentRepo,
		cfg.Attendance,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
