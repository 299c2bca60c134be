package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-backend/config"
	_ "jobboard-backend/docs" // Important for Swagger
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/session"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/migrations"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/email"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/payment"
	"jobboard-backend/pkg/redis"
	"jobboard-backend/pkg/storage"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Backend for the job board: registrations, payments, jobs and interests.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := migrations.Up(dbPool); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (sessions + rate limiting; falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis initialization failed", "error", err)
	}
	defer redis.Close()

	var sessions session.Store
	if redis.IsAvailable() {
		sessions = session.NewRedisStore(redis.Client(), cfg.SessionTTL)
	} else {
		logger.Log.Warn("Redis unavailable, using in-memory session store")
		sessions = session.NewMemoryStore()
	}

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	contactRepo := postgres.NewContactRepository(dbPool)
	interestRepo := postgres.NewInterestRepository(dbPool)

	// 6. Setup Collaborators
	files := storage.New(cfg.MediaRoot)

	emailService := email.NewEmailService(email.Config{
		SMTPHost:      cfg.SMTPHost,
		SMTPPort:      cfg.SMTPPort,
		SMTPUsername:  cfg.SMTPUsername,
		SMTPPassword:  cfg.SMTPPassword,
		SMTPFromEmail: cfg.SMTPFromEmail,
		ContactTo:     cfg.ContactEmailTo,
	})
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact notifications disabled")
	}

	payments := payment.NewClient(payment.Config{
		APIURL:     cfg.PaymentAPIURL,
		SecretKey:  cfg.PaymentSecretKey,
		SuccessURL: cfg.FrontendURL + "/payment/success",
		CancelURL:  cfg.FrontendURL + "/payment/cancel",
	})

	// 7. Setup UseCases
	registrationUC := usecase.NewRegistrationUsecase(candidateRepo, sessions, files, payments)
	authUC := usecase.NewAuthUsecase(candidateRepo, employerRepo, sessions)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, jobRepo)
	employerUC := usecase.NewEmployerUsecase(employerRepo, candidateRepo, files)
	jobUC := usecase.NewJobUsecase(jobRepo)
	interestUC := usecase.NewInterestUsecase(interestRepo, candidateRepo, employerRepo, jobRepo)
	contactUC := usecase.NewContactUsecase(contactRepo, emailService)
	adminUC := usecase.NewAdminUsecase(usecase.AdminConfig{
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
		JWTSecret:    cfg.JWTSecret,
	}, candidateRepo, employerRepo, jobRepo, contactRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		RegistrationUC: registrationUC,
		AuthUC:         authUC,
		CandidateUC:    candidateUC,
		EmployerUC:     employerUC,
		JobUC:          jobUC,
		InterestUC:     interestUC,
		ContactUC:      contactUC,
		AdminUC:        adminUC,
		Sessions:       sessions,
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	logger.Log.Info("Server exited")
}
