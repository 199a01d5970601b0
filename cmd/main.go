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

	authHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/auth"
	cancelBookingHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/create_booking"
	dashboardStatsHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/dashboard_stats"
	getAvailableSlotsHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/get_available_slots"
	listRoomsHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/list_rooms"
	manageBookingsHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/manage_bookings"
	manageDirectoryHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/manage_directory"
	manageRoomsHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/manage_rooms"
	myBookingsHandler "github.com/m04kA/MRS-RoomBookingService/internal/api/handlers/my_bookings"
	"github.com/m04kA/MRS-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/MRS-RoomBookingService/internal/config"
	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/booking"
	directoryRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/directory"
	roomRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/room"
	authClient "github.com/m04kA/MRS-RoomBookingService/internal/integrations/authservice"
	fileStorageClient "github.com/m04kA/MRS-RoomBookingService/internal/integrations/filestorage"
	bookingsService "github.com/m04kA/MRS-RoomBookingService/internal/service/bookings"
	directoryService "github.com/m04kA/MRS-RoomBookingService/internal/service/directory"
	roomsService "github.com/m04kA/MRS-RoomBookingService/internal/service/rooms"
	cancelBookingUC "github.com/m04kA/MRS-RoomBookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/MRS-RoomBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/MRS-RoomBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/MRS-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/MRS-RoomBookingService/pkg/logger"
	"github.com/m04kA/MRS-RoomBookingService/pkg/metrics"
	"github.com/m04kA/MRS-RoomBookingService/pkg/simpletxmanager"
	"github.com/m04kA/MRS-RoomBookingService/pkg/txmanager"
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

	log.Info("Starting MRS-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	auth := authClient.NewClient(
		cfg.AuthService.URL,
		cfg.AuthService.APIKey,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	fileStorage := fileStorageClient.NewClient(
		cfg.FileStorage.URL,
		cfg.FileStorage.APIKey,
		cfg.FileStorage.Bucket,
		time.Duration(cfg.FileStorage.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s timeout=%ds, FileStorage=%s bucket=%s)",
		cfg.AuthService.URL, cfg.AuthService.Timeout, cfg.FileStorage.URL, cfg.FileStorage.Bucket)

	// Каталог слотов: единое дневное расписание для всех комнат
	catalog := domain.SlotCatalog{
		OpenHour:            cfg.Booking.OpenHour,
		CloseHour:           cfg.Booking.CloseHour,
		SlotDurationMinutes: cfg.Booking.SlotDurationMinutes,
	}
	log.Info("Slot catalog configured: %02d:00-%02d:00, %d minute slots",
		catalog.OpenHour, catalog.CloseHour, catalog.SlotDurationMinutes)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		roomRepository      *roomRepo.Repository
		directoryRepository *directoryRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		directoryRepository = directoryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		directoryRepository = directoryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		roomRepository,
		txMgr,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, log)
	directorySvc := directoryService.NewService(directoryRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		catalog,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		roomRepository,
		catalog,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	myBookings := myBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	manageRooms := manageRoomsHandler.NewHandler(roomSvc, fileStorage, log)
	manageBookings := manageBookingsHandler.NewHandler(bookingSvc, log)
	manageDirectory := manageDirectoryHandler.NewHandler(directorySvc, log)
	dashboardStats := dashboardStatsHandler.NewHandler(bookingSvc, log)
	authH := authHandler.NewHandler(auth, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Авторизация админки ---
	api.HandleFunc("/auth/login", authH.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authH.HandleLogout).Methods(http.MethodPost)

	// --- Комнаты и расписание ---
	api.HandleFunc("/rooms", listRooms.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", listRooms.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	// Мои бронирования по номеру телефона
	api.HandleFunc("/bookings/my", myBookings.Handle).Methods(http.MethodGet)
	// Отмена бронирования владельцем (подтверждается телефоном)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Справочники (для формы бронирования) ---
	api.HandleFunc("/departments", manageDirectory.HandleListDepartments).Methods(http.MethodGet)
	api.HandleFunc("/buildings", manageDirectory.HandleListBuildings).Methods(http.MethodGet)
	api.HandleFunc("/equipment", manageDirectory.HandleListEquipment).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer-токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(auth, log))

	// --- Комнаты ---
	admin.HandleFunc("/rooms", manageRooms.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}", manageRooms.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/rooms/{roomId}", manageRooms.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/rooms/{roomId}/image", manageRooms.HandleUploadImage).Methods(http.MethodPost)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", manageBookings.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", manageBookings.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", manageBookings.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}/status", manageBookings.HandleUpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", manageBookings.HandleDelete).Methods(http.MethodDelete)

	// --- Справочники ---
	admin.HandleFunc("/departments", manageDirectory.HandleCreateDepartment).Methods(http.MethodPost)
	admin.HandleFunc("/departments/{id}", manageDirectory.HandleUpdateDepartment).Methods(http.MethodPut)
	admin.HandleFunc("/departments/{id}", manageDirectory.HandleDeleteDepartment).Methods(http.MethodDelete)
	admin.HandleFunc("/buildings", manageDirectory.HandleCreateBuilding).Methods(http.MethodPost)
	admin.HandleFunc("/buildings/{id}", manageDirectory.HandleUpdateBuilding).Methods(http.MethodPut)
	admin.HandleFunc("/buildings/{id}", manageDirectory.HandleDeleteBuilding).Methods(http.MethodDelete)
	admin.HandleFunc("/equipment", manageDirectory.HandleCreateEquipment).Methods(http.MethodPost)
	admin.HandleFunc("/equipment/{id}", manageDirectory.HandleUpdateEquipment).Methods(http.MethodPut)
	admin.HandleFunc("/equipment/{id}", manageDirectory.HandleDeleteEquipment).Methods(http.MethodDelete)

	// --- Дашборд ---
	admin.HandleFunc("/stats", dashboardStats.Handle).Methods(http.MethodGet)

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
