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
	"github.com/redis/go-redis/v9"

	bookSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/book_session"
	cancelSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/cancel_session"
	completeSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/complete_session"
	deleteSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/delete_session"
	getFreeSlotsHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/get_free_slots"
	getSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/get_session"
	getTrainerAvailabilityHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/get_trainer_availability"
	listSessionsHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/list_sessions"
	memberCancelSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/member_cancel_session"
	rescheduleSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/reschedule_session"
	updateTrainerAvailabilityHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/update_trainer_availability"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	"github.com/m04kA/SMC-GymService/internal/config"
	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/infra/lock"
	memberRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/member"
	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	trainerRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/trainer"
	sessionsService "github.com/m04kA/SMC-GymService/internal/service/sessions"
	trainersService "github.com/m04kA/SMC-GymService/internal/service/trainers"
	bookSessionUC "github.com/m04kA/SMC-GymService/internal/usecase/book_session"
	getFreeSlotsUC "github.com/m04kA/SMC-GymService/internal/usecase/get_free_slots"
	rescheduleSessionUC "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_session"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/logger"
	"github.com/m04kA/SMC-GymService/pkg/metrics"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

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

	log.Info("Starting SMC-GymService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load gym timezone %q: %v", cfg.Booking.Timezone, err)
	}

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

	// Без метрик обертка только пробрасывает запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	sessionRepository := sessionRepo.NewRepository(wrappedDB)
	trainerRepository := trainerRepo.NewRepository(wrappedDB)
	memberRepository := memberRepo.NewRepository(wrappedDB)

	// Блокировки (тренер, дата): redis для нескольких реплик, иначе в памяти процесса
	var locker bookSessionUC.Locker
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		locker = lock.NewRedisLocker(
			rdb,
			time.Duration(cfg.Redis.LockTTL)*time.Second,
			cfg.Redis.LockRetries,
			time.Duration(cfg.Redis.LockBackoff)*time.Millisecond,
			log,
		)
		log.Info("Using redis locks (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	} else {
		locker = lock.NewKeyedMutex()
		log.Info("Using in-process locks")
	}

	lifecycle := domain.NewLifecycle(cfg.Booking.MemberCancellationCutoff(), location)
	policies := bookSessionUC.Policies{
		Trainer: cfg.Booking.TrainerPolicy(),
		Member:  cfg.Booking.MemberPolicy(),
	}
	log.Info("Booking rules: timezone=%s, member cancellation cutoff=%s",
		location, cfg.Booking.MemberCancellationCutoff())

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(sessionRepository, txMgr, lifecycle, metricsCollector, log)
	trainerSvc := trainersService.NewService(trainerRepository, txMgr, log)

	// Инициализируем use cases
	bookSessionUseCase := bookSessionUC.NewUseCase(
		sessionRepository,
		trainerRepository,
		memberRepository,
		txMgr,
		locker,
		policies,
		location,
		metricsCollector,
		log,
	)

	rescheduleSessionUseCase := rescheduleSessionUC.NewUseCase(
		sessionRepository,
		trainerRepository,
		txMgr,
		locker,
		policies.Trainer,
		policies.Member,
		lifecycle,
		metricsCollector,
		log,
	)

	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		sessionRepository,
		trainerRepository,
		policies.Trainer,
		policies.Member,
		location,
		log,
	)

	// Инициализируем handlers
	bookSession := bookSessionHandler.NewHandler(bookSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	listSessions := listSessionsHandler.NewHandler(sessionSvc, log)
	rescheduleSession := rescheduleSessionHandler.NewHandler(rescheduleSessionUseCase, log)
	completeSession := completeSessionHandler.NewHandler(sessionSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionSvc, log)
	memberCancelSession := memberCancelSessionHandler.NewHandler(sessionSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionSvc, log)
	getTrainerAvailability := getTrainerAvailabilityHandler.NewHandler(trainerSvc, log)
	updateTrainerAvailability := updateTrainerAvailabilityHandler.NewHandler(trainerSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// ============================================================
	// ROUTES (администратор и член клуба)
	// ============================================================

	// Бронирование: инициатор определяется ролью
	api.HandleFunc("/sessions", bookSession.Handle).Methods(http.MethodPost)

	// Календарь: член клуба видит только свои сессии
	api.HandleFunc("/sessions", listSessions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId:[0-9]+}", getSession.Handle).Methods(http.MethodGet)

	// Отмена членом клуба с порогом по времени
	api.HandleFunc("/sessions/{sessionId:[0-9]+}/member-cancel", memberCancelSession.Handle).Methods(http.MethodPatch)

	// Расписание тренера
	api.HandleFunc("/trainers/{trainerId:[0-9]+}/availability", getTrainerAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trainers/{trainerId:[0-9]+}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRole(middleware.RoleAdmin))

	admin.HandleFunc("/sessions/{sessionId:[0-9]+}", rescheduleSession.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/sessions/{sessionId:[0-9]+}", deleteSession.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/sessions/{sessionId:[0-9]+}/complete", completeSession.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/sessions/{sessionId:[0-9]+}/cancel", cancelSession.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/trainers/{trainerId:[0-9]+}/availability", updateTrainerAvailability.Handle).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
