package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	exitVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/exit_vehicle"
	getDailyReportHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_daily_report"
	getDailySummaryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_daily_summary"
	getStatusHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_status"
	parkVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/park_vehicle"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/infra/report/pdf"
	recordsRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
	"github.com/m04kA/SMC-ParkingService/internal/service/billing"
	parkingService "github.com/m04kA/SMC-ParkingService/internal/service/parking"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
	dailyReportUC "github.com/m04kA/SMC-ParkingService/internal/usecase/daily_report"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/telemetry"
)

const healthPath = "/health"

func main() {
	// .env не обязателен, переменные окружения могут прийти из оркестратора
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Трейсинг (если включен)
	if cfg.Telemetry.Enabled {
		provider, err := telemetry.NewProvider(context.Background(), cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint)
		if err != nil {
			log.Fatal("Failed to initialize telemetry: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown telemetry: %v", err)
			}
		}()
		log.Info("Tracing enabled, exporting to %s", cfg.Telemetry.OTLPEndpoint)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var parkingMetrics parkingService.Metrics = parkingService.NopMetrics{}
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		parkingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище завершённых стоянок
	var store parkingService.RecordStore

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store = recordsRepo.NewMemoryRepository()
		log.Warn("Using in-memory record storage, history is lost on restart")

	default:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			store = recordsRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			store = recordsRepo.NewRepository(db)
		}
	}

	// Реестр мест и тариф
	location, err := cfg.Parking.Location()
	if err != nil {
		log.Fatal("Invalid parking timezone: %v", err)
	}

	registry, err := slots.NewRegistry(cfg.Parking.TotalSlots, cfg.Parking.VIPSlots)
	if err != nil {
		log.Fatal("Failed to create slot registry: %v", err)
	}

	billingConfig, err := cfg.Billing.EngineConfig()
	if err != nil {
		log.Fatal("Invalid billing config: %v", err)
	}
	billingEngine, err := billing.NewEngine(billingConfig)
	if err != nil {
		log.Fatal("Failed to create billing engine: %v", err)
	}

	log.Info("Parking lot: %d slots, VIP=%v, timezone=%s; tariff: first %dh = %.2f, then %.2f/h",
		registry.Total(), registry.VIPSlots(), location, billingConfig.FirstHours,
		billingConfig.FirstHoursFee, billingConfig.PerHourFee)

	// Инициализируем сервисы
	parkingSvc := parkingService.NewService(registry, billingEngine, store, parkingMetrics, location, log)

	// Инициализируем use cases
	dailyReportUseCase := dailyReportUC.NewUseCase(
		parkingSvc,
		pdf.NewRenderer(cfg.Reports.Title, cfg.Reports.Currency),
		cfg.Reports.Dir,
		log,
	)

	// Инициализируем handlers
	parkVehicle := parkVehicleHandler.NewHandler(parkingSvc, registry.VIPSlots(), log)
	exitVehicle := exitVehicleHandler.NewHandler(parkingSvc, log)
	getStatus := getStatusHandler.NewHandler(parkingSvc, log)
	getDailySummary := getDailySummaryHandler.NewHandler(parkingSvc, log)
	getDailyReport := getDailyReportHandler.NewHandler(dailyReportUseCase, parkingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	if cfg.Telemetry.Enabled {
		r.Use(middleware.Tracing(cfg.Telemetry.ServiceName, healthPath, cfg.Metrics.Path))
	}

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc(healthPath, func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/entry", parkVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/exit", exitVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/status", getStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/revenue", getDailySummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/daily", getDailyReport.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	status := parkingSvc.Status(context.Background())
	if status.OccupiedCount > 0 {
		log.Warn("Server stopped with %d vehicles still parked, active stays are not persisted", status.OccupiedCount)
	}

	log.Info("Server stopped gracefully")
}
