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

	createBookingHandler "github.com/haeum-studio/booking-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/haeum-studio/booking-service/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/haeum-studio/booking-service/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/haeum-studio/booking-service/internal/api/handlers/get_calendar"
	getDaySlotsHandler "github.com/haeum-studio/booking-service/internal/api/handlers/get_day_slots"
	getRulesHandler "github.com/haeum-studio/booking-service/internal/api/handlers/get_rules"
	listBookingsHandler "github.com/haeum-studio/booking-service/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/haeum-studio/booking-service/internal/api/handlers/update_booking"
	updateRulesHandler "github.com/haeum-studio/booking-service/internal/api/handlers/update_rules"
	"github.com/haeum-studio/booking-service/internal/api/middleware"
	"github.com/haeum-studio/booking-service/internal/config"
	bookingRepo "github.com/haeum-studio/booking-service/internal/infra/storage/booking"
	rulesRepo "github.com/haeum-studio/booking-service/internal/infra/storage/rules"
	bookingsService "github.com/haeum-studio/booking-service/internal/service/bookings"
	rulesService "github.com/haeum-studio/booking-service/internal/service/rules"
	createBookingUC "github.com/haeum-studio/booking-service/internal/usecase/create_booking"
	getCalendarUC "github.com/haeum-studio/booking-service/internal/usecase/get_calendar"
	getDaySlotsUC "github.com/haeum-studio/booking-service/internal/usecase/get_day_slots"
	"github.com/haeum-studio/booking-service/pkg/dbmetrics"
	"github.com/haeum-studio/booking-service/pkg/logger"
	"github.com/haeum-studio/booking-service/pkg/metrics"
	"github.com/haeum-studio/booking-service/pkg/simpletxmanager"
	"github.com/haeum-studio/booking-service/pkg/txmanager"
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

	var (
		bookingRepository *bookingRepo.Repository
		rulesRepository   *rulesRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		rulesRepository = rulesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		rulesRepository = rulesRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	rulesSvc := rulesService.NewService(rulesRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, rulesRepository, txMgr, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingRepository, rulesRepository, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(bookingRepository, rulesRepository, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getRules := getRulesHandler.NewHandler(rulesSvc, log)
	updateRules := updateRulesHandler.NewHandler(rulesSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Public routes: the booking form and its availability views
	api.HandleFunc("/availability/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Operator routes, guarded by the admin key
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminKey))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/availability-rules", getRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability-rules", updateRules.Handle).Methods(http.MethodPut)

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
