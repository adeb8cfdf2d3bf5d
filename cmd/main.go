package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authLoginHandler "github.com/agendalivre/booking-service/internal/api/handlers/auth_login"
	cancelAppointmentHandler "github.com/agendalivre/booking-service/internal/api/handlers/cancel_appointment"
	closedDaysHandler "github.com/agendalivre/booking-service/internal/api/handlers/closed_days"
	createAppointmentHandler "github.com/agendalivre/booking-service/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/agendalivre/booking-service/internal/api/handlers/get_available_slots"
	getDashboardStatsHandler "github.com/agendalivre/booking-service/internal/api/handlers/get_dashboard_stats"
	listAppointmentsHandler "github.com/agendalivre/booking-service/internal/api/handlers/list_appointments"
	slotBlocksHandler "github.com/agendalivre/booking-service/internal/api/handlers/slot_blocks"
	timeSlotsHandler "github.com/agendalivre/booking-service/internal/api/handlers/time_slots"
	updateAppointmentHandler "github.com/agendalivre/booking-service/internal/api/handlers/update_appointment"
	"github.com/agendalivre/booking-service/internal/api/middleware"
	"github.com/agendalivre/booking-service/internal/config"
	appointmentRepo "github.com/agendalivre/booking-service/internal/infra/storage/appointment"
	blockRepo "github.com/agendalivre/booking-service/internal/infra/storage/block"
	closureRepo "github.com/agendalivre/booking-service/internal/infra/storage/closure"
	managerRepo "github.com/agendalivre/booking-service/internal/infra/storage/manager"
	timeslotRepo "github.com/agendalivre/booking-service/internal/infra/storage/timeslot"
	appointmentsService "github.com/agendalivre/booking-service/internal/service/appointments"
	authService "github.com/agendalivre/booking-service/internal/service/auth"
	scheduleService "github.com/agendalivre/booking-service/internal/service/schedule"
	bookAppointmentUC "github.com/agendalivre/booking-service/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/agendalivre/booking-service/internal/usecase/get_available_slots"
	getDashboardStatsUC "github.com/agendalivre/booking-service/internal/usecase/get_dashboard_stats"
	rescheduleAppointmentUC "github.com/agendalivre/booking-service/internal/usecase/reschedule_appointment"
	"github.com/agendalivre/booking-service/pkg/dbmetrics"
	"github.com/agendalivre/booking-service/pkg/logger"
	"github.com/agendalivre/booking-service/pkg/metrics"
	"github.com/agendalivre/booking-service/pkg/simpletxmanager"
	"github.com/agendalivre/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and the transaction manager, with or without the
	// metrics wrapper.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var (
		appointmentRepository *appointmentRepo.Repository
		timeslotRepository    *timeslotRepo.Repository
		closureRepository     *closureRepo.Repository
		blockRepository       *blockRepo.Repository
		managerRepository     *managerRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		closureRepository = closureRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		managerRepository = managerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		closureRepository = closureRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		managerRepository = managerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services.
	scheduleSvc := scheduleService.NewService(timeslotRepository, closureRepository, blockRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	authSvc := authService.NewService(managerRepository, log)

	// Use cases.
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleSvc,
		scheduleSvc,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		timeslotRepository,
		appointmentRepository,
		scheduleSvc,
		scheduleSvc,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		txMgr,
		log,
	)
	getDashboardStatsUseCase := getDashboardStatsUC.NewUseCase(
		appointmentRepository,
		timeslotRepository,
		log,
	)

	// Handlers.
	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(getDashboardStatsUseCase, log)
	timeSlots := timeSlotsHandler.NewHandler(scheduleSvc, log)
	closedDays := closedDaysHandler.NewHandler(scheduleSvc, log)
	slotBlocks := slotBlocksHandler.NewHandler(scheduleSvc, log)
	authLogin := authLoginHandler.NewHandler(authSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Client booking flow.
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/available-slots/{date}", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/closed-days/check/{date}", closedDays.HandleCheck).Methods(http.MethodGet)
	api.HandleFunc("/slot-blocks/check/{date}/{time}", slotBlocks.HandleCheck).Methods(http.MethodGet)

	// Manager login.
	api.HandleFunc("/auth/login", authLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require X-Manager-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Appointment ledger.
	protected.HandleFunc("/appointments", listAppointments.HandleListAll).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{date:\\d{4}-\\d{2}-\\d{2}}", listAppointments.HandleListByDate).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// Schedule catalog.
	protected.HandleFunc("/time-slots", timeSlots.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/time-slots", timeSlots.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/time-slots/{id}", timeSlots.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/time-slots/{id}", timeSlots.HandleDelete).Methods(http.MethodDelete)

	// Closure rules.
	protected.HandleFunc("/closed-days", closedDays.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/closed-days", closedDays.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/closed-days/{id}", closedDays.HandleDelete).Methods(http.MethodDelete)

	// Slot blocks.
	protected.HandleFunc("/slot-blocks", slotBlocks.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/slot-blocks", slotBlocks.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/slot-blocks/{id}", slotBlocks.HandleDelete).Methods(http.MethodDelete)

	// Dashboard.
	protected.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
