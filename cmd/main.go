package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createRecurringBlockHandler "github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers/create_recurring_block"
	deleteRecurringBlockHandler "github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers/delete_recurring_block"
	getCalendarBlocksHandler "github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers/get_calendar_blocks"
	getRecurringBlockHandler "github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers/get_recurring_block"
	listRecurringBlocksHandler "github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers/list_recurring_blocks"
	toggleRecurringBlockHandler "github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers/toggle_recurring_block"
	updateRecurringBlockHandler "github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers/update_recurring_block"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ClinicScheduleService/internal/infra/storage/appointment"
	recurringBlockRepo "github.com/m04kA/SMC-ClinicScheduleService/internal/infra/storage/recurring_block"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/resolver"
	recurringBlocksService "github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks"
	getCalendarBlocksUC "github.com/m04kA/SMC-ClinicScheduleService/internal/usecase/get_calendar_blocks"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-ClinicScheduleService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Таймзона клиники: все даты и дни недели считаются в ней
	zone, err := civiltime.LoadZone(cfg.Calendar.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Calendar.Timezone, err)
	}
	log.Info("Clinic timezone: %s", zone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Инициализируем репозитории и менеджер транзакций (с метриками или без)
	var (
		blockRepository       *recurringBlockRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		txMgr                 *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		blockRepository = recurringBlockRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		blockRepository = recurringBlockRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = txmanager.NewSimpleTransactionManager(db)
	}

	// Резолвер виртуальных блоков
	var resolverMetrics resolver.MetricsRecorder
	if metricsCollector != nil {
		resolverMetrics = metricsCollector
	}
	blockResolver := resolver.NewResolver(zone, log, resolverMetrics)

	// Инициализируем сервисы
	blocksSvc := recurringBlocksService.NewService(blockRepository, txMgr, log)

	// Инициализируем use cases
	getCalendarBlocksUseCase := getCalendarBlocksUC.NewUseCase(
		blockRepository,
		appointmentRepository,
		blockResolver,
		cfg.Calendar.MaxRangeDays,
		log,
	)

	// Инициализируем handlers
	getCalendarBlocks := getCalendarBlocksHandler.NewHandler(getCalendarBlocksUseCase, zone, log)
	listRecurringBlocks := listRecurringBlocksHandler.NewHandler(blocksSvc, log)
	createRecurringBlock := createRecurringBlockHandler.NewHandler(blocksSvc, log)
	getRecurringBlock := getRecurringBlockHandler.NewHandler(blocksSvc, log)
	updateRecurringBlock := updateRecurringBlockHandler.NewHandler(blocksSvc, log)
	deleteRecurringBlock := deleteRecurringBlockHandler.NewHandler(blocksSvc, log)
	toggleRecurringBlock := toggleRecurringBlockHandler.NewHandler(blocksSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Календарь ---
	// Виртуальные блоки за период
	api.HandleFunc("/calendar/recurring-blocks", getCalendarBlocks.Handle).Methods(http.MethodGet)

	// --- Повторяющиеся блоки ---
	api.HandleFunc("/recurring-blocks", listRecurringBlocks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/recurring-blocks", createRecurringBlock.Handle).Methods(http.MethodPost)
	api.HandleFunc("/recurring-blocks/{id}", getRecurringBlock.Handle).Methods(http.MethodGet)
	api.HandleFunc("/recurring-blocks/{id}", updateRecurringBlock.Handle).Methods(http.MethodPut)
	api.HandleFunc("/recurring-blocks/{id}", deleteRecurringBlock.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/recurring-blocks/{id}/toggle", toggleRecurringBlock.Handle).Methods(http.MethodPatch)

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
