package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/handler"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/middleware"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/repository"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/config"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/services"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	recordStore := repository.NewPostgresRecordStore(db)
	if err := recordStore.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure database schema: %v", err)
	}

	hostelRepo := repository.NewStoreRepository(recordStore)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Authenticated with Redis successfully")

	sessionStore := repository.NewRedisSessionStore(redisClient)

	authService := services.NewAuthService(hostelRepo, sessionStore, cfg.JWTPrivateKey)
	registrationService := services.NewRegistrationService(hostelRepo)
	allocationService := services.NewAllocationService(hostelRepo, sessionStore)
	complaintService := services.NewComplaintService(hostelRepo)
	billingService := services.NewBillingService(hostelRepo)
	reportService := services.NewReportService(hostelRepo)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTPublicKey)

	authHandler := handler.NewAuthHandler(authService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	roomHandler := handler.NewRoomHandler(allocationService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	billingHandler := handler.NewBillingHandler(billingService)
	reportHandler := handler.NewReportHandler(reportService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	student := []string{string(domain.RoleStudent)}
	manager := []string{string(domain.RoleManager)}
	anyRole := []string{string(domain.RoleStudent), string(domain.RoleManager)}

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/health/ready", healthHandler.Ready)
	mux.HandleFunc("/health/live", healthHandler.Live)

	mux.Handle("/metrics", promhttp.Handler())

	// Public endpoints
	mux.HandleFunc("/auth/login", authHandler.Login)
	mux.HandleFunc("/register", registrationHandler.Register)

	// Shared endpoints
	mux.Handle("/auth/session", authMiddleware.RequireRole(anyRole, authHandler.Session))
	mux.Handle("/auth/logout", authMiddleware.RequireRole(anyRole, authHandler.Logout))
	mux.Handle("/rooms", authMiddleware.RequireRole(anyRole, roomHandler.List))
	mux.Handle("/complaints", authMiddleware.RequireRole(anyRole, complaintHandler.List))
	mux.Handle("/bills", authMiddleware.RequireRole(anyRole, billingHandler.List))

	// Student endpoints
	mux.Handle("/rooms/available", authMiddleware.RequireRole(student, roomHandler.Available))
	mux.Handle("/rooms/book", authMiddleware.RequireRole(student, roomHandler.Book))
	mux.Handle("/complaints/file", authMiddleware.RequireRole(student, complaintHandler.File))
	mux.Handle("/bills/due", authMiddleware.RequireRole(student, billingHandler.Due))

	// Manager endpoints
	mux.Handle("/rooms/status", authMiddleware.RequireRole(manager, roomHandler.SetStatus))
	mux.Handle("/complaints/status", authMiddleware.RequireRole(manager, complaintHandler.SetStatus))
	mux.Handle("/bills/issue", authMiddleware.RequireRole(manager, billingHandler.Issue))
	mux.Handle("/bills/toggle", authMiddleware.RequireRole(manager, billingHandler.Toggle))
	mux.Handle("/stats", authMiddleware.RequireRole(manager, billingHandler.Stats))
	mux.Handle("/reports/billing", authMiddleware.RequireRole(manager, reportHandler.Billing))

	withCORS := middleware.CORSMiddleware(cfg.AllowedOrigins)(mux)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, withCORS); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}
