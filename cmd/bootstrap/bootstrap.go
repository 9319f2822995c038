package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicdesk/config"
	deliveryHttp "clinicdesk/internal/delivery/http"
	"clinicdesk/internal/delivery/http/handler"
	"clinicdesk/internal/delivery/http/middleware"
	domainRepo "clinicdesk/internal/domain/repository"
	"clinicdesk/internal/infrastructure/cache"
	"clinicdesk/internal/infrastructure/database"
	"clinicdesk/internal/repository"
	"clinicdesk/internal/repository/memory"
	"clinicdesk/internal/service"
	"clinicdesk/internal/usecase"
	"clinicdesk/pkg/idgen"
	"clinicdesk/pkg/jwt"
	"clinicdesk/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// repositories groups the storage contracts so the rest of the wiring does
// not care which backend produced them.
type repositories struct {
	patient      domainRepo.PatientRepository
	doctor       domainRepo.DoctorRepository
	appointment  domainRepo.AppointmentRepository
	consultation domainRepo.ConsultationRepository
	invoice      domainRepo.InvoiceRepository
	payment      domainRepo.PaymentRepository
	user         domainRepo.UserRepository
	auditLog     domainRepo.AuditLogRepository
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	repos, err := app.initStorage(cfg)
	if err != nil {
		return nil, err
	}

	// Redis backs the token whitelist and the slot reservation claims.
	// The memory driver runs without it.
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	}

	server, err := initializeServer(cfg, repos, app.RedisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initStorage builds the repository set for the configured driver.
func (app *App) initStorage(cfg *config.Config) (*repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logrus.Info("Using in-memory storage")
		return &repositories{
			patient:      memory.NewPatientRepository(),
			doctor:       memory.NewDoctorRepository(),
			appointment:  memory.NewAppointmentRepository(),
			consultation: memory.NewConsultationRepository(),
			invoice:      memory.NewInvoiceRepository(),
			payment:      memory.NewPaymentRepository(),
			user:         memory.NewUserRepository(),
			auditLog:     memory.NewAuditLogRepository(),
		}, nil

	case config.StorageDriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(db, cfg.DB); err != nil {
			return nil, err
		}
		app.DB = db
		return &repositories{
			patient:      repository.NewPatientRepository(db),
			doctor:       repository.NewDoctorRepository(db),
			appointment:  repository.NewAppointmentRepository(db),
			consultation: repository.NewConsultationRepository(db),
			invoice:      repository.NewInvoiceRepository(db),
			payment:      repository.NewPaymentRepository(db),
			user:         repository.NewUserRepository(db),
			auditLog:     repository.NewAuditLogRepository(db),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, repos *repositories, redisClient *redis.Client) (*http.Server, error) {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	tokenStore := service.NewTokenStore(redisClient, log)
	auditService := service.NewAuditService(log, repos.auditLog)

	var slotService *service.SlotReservationService
	if redisClient != nil {
		slotService = service.NewSlotReservationService(redisClient, log)
		if err := slotService.SyncOnStartup(context.Background(), repos.appointment); err != nil {
			return nil, fmt.Errorf("failed to sync slot reservations: %w", err)
		}
	}

	ids, err := seedIDGenerator(context.Background(), repos)
	if err != nil {
		return nil, err
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, repos.user, jwtService, tokenStore, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, repos.patient, ids, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, repos.doctor, ids, auditService)
	schedulingUsecase := usecase.NewSchedulingUsecase(log, repos.patient, repos.doctor, repos.appointment, ids, slotService, auditService)
	consultationUsecase := usecase.NewConsultationUsecase(log, repos.appointment, repos.consultation, ids, slotService, auditService)
	billingUsecase := usecase.NewBillingUsecase(log, repos.consultation, repos.appointment, repos.doctor, repos.invoice, ids, auditService)
	paymentUsecase := usecase.NewPaymentUsecase(log, repos.invoice, repos.payment, ids, auditService)
	reportUsecase := usecase.NewReportUsecase(log, repos.patient, repos.doctor, repos.appointment, repos.consultation, repos.invoice)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, repos.auditLog)

	// Initialize router
	router := deliveryHttp.NewRouter(&deliveryHttp.RouterConfig{
		AuthHandler:         handler.NewAuthHandler(log, customValidator, authUsecase),
		PatientHandler:      handler.NewPatientHandler(log, customValidator, patientUsecase),
		DoctorHandler:       handler.NewDoctorHandler(log, customValidator, doctorUsecase),
		AppointmentHandler:  handler.NewAppointmentHandler(log, customValidator, schedulingUsecase),
		ConsultationHandler: handler.NewConsultationHandler(log, customValidator, consultationUsecase),
		InvoiceHandler:      handler.NewInvoiceHandler(log, customValidator, billingUsecase),
		PaymentHandler:      handler.NewPaymentHandler(log, customValidator, paymentUsecase),
		ReportHandler:       handler.NewReportHandler(log, reportUsecase),
		AuditLogHandler:     handler.NewAuditLogHandler(log, auditLogUsecase),
		AuthMiddleware:      middleware.NewAuthMiddleware(jwtService, tokenStore),
	})

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}, nil
}

// seedIDGenerator continues each id sequence past the rows already stored,
// so restarts of a durable backend never reissue an id.
func seedIDGenerator(ctx context.Context, repos *repositories) (idgen.Generator, error) {
	counts := map[string]func(context.Context) (int64, error){
		idgen.PrefixPatient:      repos.patient.Count,
		idgen.PrefixDoctor:       repos.doctor.Count,
		idgen.PrefixAppointment:  repos.appointment.Count,
		idgen.PrefixConsultation: repos.consultation.Count,
		idgen.PrefixInvoice:      repos.invoice.Count,
		idgen.PrefixPayment:      repos.payment.Count,
	}

	seeds := make(map[string]int64, len(counts))
	for prefix, count := range counts {
		n, err := count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to seed id sequence for %s: %w", prefix, err)
		}
		seeds[prefix] = n
	}

	return idgen.NewSeededSequence(seeds), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
