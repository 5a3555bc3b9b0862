// Package main is the entry point for the minipos API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minipos/internal/domain/analytics"
	"minipos/internal/domain/auth"
	"minipos/internal/domain/catalogs/client"
	"minipos/internal/domain/catalogs/point"
	"minipos/internal/domain/catalogs/product"
	"minipos/internal/domain/documents/receipt"
	"minipos/internal/domain/printing"
	"minipos/internal/domain/scanner"
	v1 "minipos/internal/infrastructure/http/v1"
	"minipos/internal/infrastructure/printer"
	"minipos/internal/infrastructure/storage/postgres"
	"minipos/internal/infrastructure/storage/postgres/auth_repo"
	"minipos/internal/infrastructure/storage/postgres/catalog_repo"
	"minipos/internal/infrastructure/storage/postgres/document_repo"
	"minipos/pkg/logger"
	"minipos/pkg/numerator"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting minipos server")

	// --- Database ---
	dsn := mustEnv("DATABASE_URL")
	poolCfg := postgres.DefaultPoolConfig(dsn)
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	productRepo := catalog_repo.NewProductRepo(txManager)
	clientRepo := catalog_repo.NewClientRepo(txManager)
	pointRepo := catalog_repo.NewPointRepo(txManager)
	receiptRepo := document_repo.NewReceiptRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)

	// --- Audit ---
	auditStore, err := postgres.NewAuditStore(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit store", "error", err)
	}

	// --- Numerator ---
	numeratorService := numerator.New(pool)

	// --- JWT + Auth ---
	jwtSecret := mustEnv("JWT_SECRET")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))
	authService := auth.NewService(userRepo, jwtService, txManager)

	// --- Domain services ---
	productService := product.NewService(productRepo, txManager, auditStore)
	clientService := client.NewService(clientRepo, txManager, auditStore)
	pointService := point.NewService(pointRepo, txManager, auditStore)
	receiptService := receipt.NewService(receiptRepo, numeratorService, txManager, auditStore)
	analyticsService := analytics.NewService(receiptRepo, productRepo)
	scannerService := scanner.NewService(scanner.Disabled{}, productService)

	// --- Printing ---
	var transport printing.Transport = printer.LogTransport{}
	if addr := getEnv("PRINTER_ADDR", ""); addr != "" {
		transport = printer.NewTCPTransport(addr, getEnvDuration("PRINTER_TIMEOUT", 5*time.Second))
		log.Infow("printer transport configured", "addr", addr)
	}
	printingService := printing.NewService(transport)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:             pool,
		Logger:           log,
		JWTValidator:     jwtService,
		AuthService:      authService,
		ProductService:   productService,
		ClientService:    clientService,
		PointService:     pointService,
		ReceiptService:   receiptService,
		AnalyticsService: analyticsService,
		ScannerService:   scannerService,
		PrintingService:  printingService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
