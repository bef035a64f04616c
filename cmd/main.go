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

	blockSlotHandler "github.com/clinicore/scheduling-service/internal/api/handlers/block_slot"
	bookSlotHandler "github.com/clinicore/scheduling-service/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/clinicore/scheduling-service/internal/api/handlers/cancel_booking"
	createSlotHandler "github.com/clinicore/scheduling-service/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/clinicore/scheduling-service/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/clinicore/scheduling-service/internal/api/handlers/generate_slots"
	getAppointmentHistoryHandler "github.com/clinicore/scheduling-service/internal/api/handlers/get_appointment_history"
	getCalendarHandler "github.com/clinicore/scheduling-service/internal/api/handlers/get_calendar"
	getDayScheduleHandler "github.com/clinicore/scheduling-service/internal/api/handlers/get_day_schedule"
	getScheduleConfigHandler "github.com/clinicore/scheduling-service/internal/api/handlers/get_schedule_config"
	getSlotHandler "github.com/clinicore/scheduling-service/internal/api/handlers/get_slot"
	recordAppointmentHandler "github.com/clinicore/scheduling-service/internal/api/handlers/record_appointment"
	rescheduleBookingHandler "github.com/clinicore/scheduling-service/internal/api/handlers/reschedule_booking"
	updateScheduleConfigHandler "github.com/clinicore/scheduling-service/internal/api/handlers/update_schedule_config"
	"github.com/clinicore/scheduling-service/internal/api/middleware"
	"github.com/clinicore/scheduling-service/internal/config"
	appointmentRepo "github.com/clinicore/scheduling-service/internal/infra/storage/appointment"
	configRepo "github.com/clinicore/scheduling-service/internal/infra/storage/scheduleconfig"
	slotRepo "github.com/clinicore/scheduling-service/internal/infra/storage/slot"
	directoryClient "github.com/clinicore/scheduling-service/internal/integrations/providerdirectory"
	appointmentsService "github.com/clinicore/scheduling-service/internal/service/appointments"
	scheduleConfigService "github.com/clinicore/scheduling-service/internal/service/scheduleconfig"
	slotsService "github.com/clinicore/scheduling-service/internal/service/slots"
	bookSlotUC "github.com/clinicore/scheduling-service/internal/usecase/book_slot"
	generateSlotsUC "github.com/clinicore/scheduling-service/internal/usecase/generate_slots"
	getCalendarUC "github.com/clinicore/scheduling-service/internal/usecase/get_calendar"
	rescheduleBookingUC "github.com/clinicore/scheduling-service/internal/usecase/reschedule_booking"
	"github.com/clinicore/scheduling-service/pkg/dbmetrics"
	"github.com/clinicore/scheduling-service/pkg/logger"
	"github.com/clinicore/scheduling-service/pkg/metrics"
	"github.com/clinicore/scheduling-service/pkg/simpletxmanager"
	"github.com/clinicore/scheduling-service/pkg/txmanager"
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

	log.Info("Starting clinicore scheduling-service...")
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

	// Инициализируем клиента справочника врачей
	directory := directoryClient.NewClient(
		cfg.Directory.URL,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	log.Info("Provider directory client initialized (url=%s, timeout=%ds)",
		cfg.Directory.URL, cfg.Directory.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository        *slotRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		configRepository      *configRepo.Repository
	)

	// Интерфейс transaction manager, общий для двух реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, txMgr, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	configSvc := scheduleConfigService.NewService(configRepository, log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		configRepository,
		directory,
		txMgr,
		log,
	)
	bookSlotUseCase := bookSlotUC.NewUseCase(slotRepository, txMgr, log)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(slotRepository, txMgr, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(slotRepository, log)

	// Инициализируем handlers
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(slotsSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getSlot := getSlotHandler.NewHandler(slotsSvc, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(slotsSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	blockSlot := blockSlotHandler.NewHandler(slotsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	recordAppointment := recordAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointmentHistory := getAppointmentHistoryHandler.NewHandler(appointmentsSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(configSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Расписание врача на день
	api.HandleFunc("/providers/{providerId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Месячный календарь врача со счетчиками статусов
	api.HandleFunc("/providers/{providerId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Настройки расписания врача
	api.HandleFunc("/providers/{providerId}/config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// Слот по идентификатору
	api.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)

	// Запись пациента на слот
	api.HandleFunc("/slots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты расписания ---
	// Создание одиночного слота
	protected.HandleFunc("/providers/{providerId}/slots", createSlot.Handle).Methods(http.MethodPost)

	// Массовая генерация слотов на диапазон дат
	protected.HandleFunc("/providers/{providerId}/slots/bulk", generateSlots.Handle).Methods(http.MethodPost)

	// Отмена записи пациента
	protected.HandleFunc("/slots/{slotId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос записи на другие дату и время
	protected.HandleFunc("/slots/{slotId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// Блокировка и разблокировка слота
	protected.HandleFunc("/slots/{slotId}/block", blockSlot.HandleBlock).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}/unblock", blockSlot.HandleUnblock).Methods(http.MethodPatch)

	// Удаление слота
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- История приемов ---
	// Фиксация исхода приема
	protected.HandleFunc("/appointments", recordAppointment.Handle).Methods(http.MethodPost)

	// История приемов врача
	protected.HandleFunc("/providers/{providerId}/appointments", getAppointmentHistory.Handle).Methods(http.MethodGet)

	// --- Настройки расписания ---
	// Обновление настроек расписания врача
	protected.HandleFunc("/providers/{providerId}/config", updateScheduleConfig.Handle).Methods(http.MethodPut)

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
