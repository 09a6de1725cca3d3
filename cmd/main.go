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

	createReservationHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/create_reservation"
	createSpaceHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/create_space"
	deleteReservationHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/delete_reservation"
	deleteSpaceHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/delete_space"
	getAvailableSlotsHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/get_available_slots"
	getCurrentUserHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/get_current_user"
	getReservationHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/get_reservation"
	getSpaceHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/get_space"
	listReservationsHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/list_reservations"
	listSpacesHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/list_spaces"
	loginHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/login"
	registerHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/register"
	updateReservationHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/update_reservation"
	updateSpaceHandler "github.com/kmosk/space-reservation-service/internal/api/handlers/update_space"
	"github.com/kmosk/space-reservation-service/internal/api/middleware"
	"github.com/kmosk/space-reservation-service/internal/availability"
	"github.com/kmosk/space-reservation-service/internal/config"
	exceptionRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/exception"
	reservationRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/reservation"
	ruleRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/rule"
	spaceRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/space"
	userRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/user"
	authService "github.com/kmosk/space-reservation-service/internal/service/auth"
	reservationsService "github.com/kmosk/space-reservation-service/internal/service/reservations"
	spacesService "github.com/kmosk/space-reservation-service/internal/service/spaces"
	createReservationUC "github.com/kmosk/space-reservation-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/kmosk/space-reservation-service/internal/usecase/get_available_slots"
	updateReservationUC "github.com/kmosk/space-reservation-service/internal/usecase/update_reservation"
	"github.com/kmosk/space-reservation-service/pkg/logger"
	"github.com/kmosk/space-reservation-service/pkg/metrics"
	"github.com/kmosk/space-reservation-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting space-reservation-service...")
	log.Info("Configuration loaded from config.toml")

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

	if cfg.Metrics.Enabled {
		metricsCollector.StartDBPoolCollector(db, 15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	ruleRepository := ruleRepo.NewRepository(db)
	exceptionRepository := exceptionRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)
	spaceRepository := spaceRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем движок доступности
	engine := availability.NewEngine(
		ruleRepository,
		exceptionRepository,
		reservationRepository,
		log,
	)

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenTTLMinutes)*time.Minute,
		log,
	)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	spacesSvc := spacesService.NewService(spaceRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		spaceRepository,
		engine,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		engine,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		spaceRepository,
		engine,
		cfg.Availability.HorizonMonths,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(authSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createSpace := createSpaceHandler.NewHandler(spacesSvc, log)
	getSpace := getSpaceHandler.NewHandler(spacesSvc, log)
	listSpaces := listSpacesHandler.NewHandler(spacesSvc, log)
	updateSpace := updateSpaceHandler.NewHandler(spacesSvc, log)
	deleteSpace := deleteSpaceHandler.NewHandler(spacesSvc, log)

	// Настраиваем роутер
	r := newRouter(apiHandlers{
		register:          register.Handle,
		login:             login.Handle,
		getCurrentUser:    getCurrentUser.Handle,
		createReservation: createReservation.Handle,
		listReservations:  listReservations.Handle,
		getReservation:    getReservation.Handle,
		updateReservation: updateReservation.Handle,
		deleteReservation: deleteReservation.Handle,
		listSpaces:        listSpaces.Handle,
		getSpace:          getSpace.Handle,
		createSpace:       createSpace.Handle,
		updateSpace:       updateSpace.Handle,
		deleteSpace:       deleteSpace.Handle,
		availableSlots:    getAvailableSlots.Handle,
	}, authSvc, log, metricsCollector, cfg.Metrics.Path)

	if cfg.Metrics.Enabled {
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в отдельной горутине
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

// apiHandlers хендлеры эндпоинтов API
type apiHandlers struct {
	register          http.HandlerFunc
	login             http.HandlerFunc
	getCurrentUser    http.HandlerFunc
	createReservation http.HandlerFunc
	listReservations  http.HandlerFunc
	getReservation    http.HandlerFunc
	updateReservation http.HandlerFunc
	deleteReservation http.HandlerFunc
	listSpaces        http.HandlerFunc
	getSpace          http.HandlerFunc
	createSpace       http.HandlerFunc
	updateSpace       http.HandlerFunc
	deleteSpace       http.HandlerFunc
	availableSlots    http.HandlerFunc
}

// newRouter собирает роутер. Публичны только регистрация и вход;
// каталог помещений, свободные слоты и бронирования требуют Bearer-токен,
// управление помещениями - роль администратора.
func newRouter(h apiHandlers, tokens middleware.TokenParser, log middleware.Logger, metricsCollector *metrics.Metrics, metricsPath string) *mux.Router {
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(metricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/register", h.register).Methods(http.MethodPost)
	api.HandleFunc("/login", h.login).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	protected.HandleFunc("/user", h.getCurrentUser).Methods(http.MethodGet)

	protected.HandleFunc("/reservations", h.createReservation).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", h.listReservations).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", h.getReservation).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", h.updateReservation).Methods(http.MethodPut, http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}", h.deleteReservation).Methods(http.MethodDelete)

	protected.HandleFunc("/spaces", h.listSpaces).Methods(http.MethodGet)
	protected.HandleFunc("/spaces/{spaceId}", h.getSpace).Methods(http.MethodGet)
	protected.HandleFunc("/spaces/{spaceId}/available-slots", h.availableSlots).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (только администратор)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(log))

	admin.HandleFunc("/spaces", h.createSpace).Methods(http.MethodPost)
	admin.HandleFunc("/spaces/{spaceId}", h.updateSpace).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc("/spaces/{spaceId}", h.deleteSpace).Methods(http.MethodDelete)

	return r
}
