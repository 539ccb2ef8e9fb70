package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/rmehra-dev/medstock-backend/internal/modules/catalog"
	"github.com/rmehra-dev/medstock-backend/internal/modules/dispatch"
	"github.com/rmehra-dev/medstock-backend/internal/modules/ingestion"
	"github.com/rmehra-dev/medstock-backend/internal/modules/reorder"
	"github.com/rmehra-dev/medstock-backend/internal/modules/stock"
	"github.com/rmehra-dev/medstock-backend/pkg/database"
	"github.com/rmehra-dev/medstock-backend/pkg/mailer"
)

const mailQueueSize = 16

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	dbCfg := database.DefaultConfig()
	if path := os.Getenv("DB_PATH"); path != "" {
		dbCfg.Path = path
	}
	db, err := database.Open(dbCfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.Migrate(ctx); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()
	fmt.Println("Store ready at", dbCfg.Path)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog & Ingestion ─────────────────────────────────
	catalogRepo := catalog.NewSQLiteRepository(db.DB)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	ingestionService := ingestion.NewService(catalogRepo)
	ingestion.NewHandler(ingestionService).RegisterRoutes(router)

	// ── Consumption & Reorder ───────────────────────────────
	reorderRepo := reorder.NewSQLiteRepository(db.DB)
	reorderService := reorder.NewService(reorderRepo)
	reorder.NewHandler(reorderService).RegisterRoutes(router)

	ledger := stock.NewSQLiteLedger(db.DB)
	stockService := stock.NewService(db.DB, catalogRepo, ledger, reorderRepo)
	stock.NewHandler(stockService).RegisterRoutes(router)

	// ── Order Dispatch ──────────────────────────────────────
	sender := mailer.NewSMTPSender(mailer.LoadConfig())
	dispatcher := dispatch.NewDispatcher(sender, mailQueueSize)
	defer dispatcher.Close()

	dispatchService := dispatch.NewService(reorderService, dispatcher)
	dispatch.NewHandler(dispatchService).RegisterRoutes(router)

	// ── Health ──────────────────────────────────────────────
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Medstock API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
