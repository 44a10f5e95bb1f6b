package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"lr-backend/internal/config"
	"lr-backend/internal/database"
	"lr-backend/internal/db"
	"lr-backend/internal/handlers"
	"lr-backend/internal/health"
	h "lr-backend/internal/http"
	"lr-backend/internal/middleware"
	"lr-backend/internal/repositories"
	"lr-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrationCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(migrationCtx); err != nil {
		log.Fatalf("[Migrate] failed: %v", err)
	}

	// Repositories
	transportRepo := repositories.NewTransportRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)
	unitRepo := repositories.NewUnitRepository(pool)
	voucherRepo := repositories.NewVoucherRepository(pool)
	baleRepo := repositories.NewBaleRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)

	// Services
	transportService := services.NewTransportService(transportRepo)
	itemService := services.NewItemService(itemRepo)
	unitService := services.NewUnitService(unitRepo)
	voucherService := services.NewVoucherService(voucherRepo, baleRepo)
	baleService := services.NewBaleService(baleRepo, voucherRepo, paymentRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	reportService := services.NewReportService(cfg.Report.CompanyName, cfg.Report.Address, cfg.Report.Contact)

	// Handlers
	transportHandler := handlers.NewTransportHandler(transportService)
	itemHandler := handlers.NewItemHandler(itemService)
	unitHandler := handlers.NewUnitHandler(unitService)
	voucherHandler := handlers.NewVoucherHandler(voucherService)
	baleHandler := handlers.NewBaleHandler(baleService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	router := h.NewRouter(
		transportHandler,
		itemHandler,
		unitHandler,
		voucherHandler,
		baleHandler,
		paymentHandler,
		reportHandler,
		healthHandler,
	)

	cors := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(cors(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("[Server] failed: %v", err)
	}
}
