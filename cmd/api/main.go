package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/lbianchi/splitchain/docs"
	"github.com/lbianchi/splitchain/internal/config"
	"github.com/lbianchi/splitchain/internal/database"
	"github.com/lbianchi/splitchain/internal/expense"
	"github.com/lbianchi/splitchain/internal/group"
	"github.com/lbianchi/splitchain/internal/payment"
	"github.com/lbianchi/splitchain/internal/profile"
	"github.com/lbianchi/splitchain/internal/settlement"
	"github.com/lbianchi/splitchain/pkg/logging"
	mw "github.com/lbianchi/splitchain/pkg/middleware"
)

// @title           splitchain API
// @version         1.0
// @description     Group expense splitting with crypto-settlement records.
// @BasePath        /api/v1
func main() {
	logging.Setup()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("Connected to database")

	// Profile feature
	profileRepo := profile.NewRepository(db)
	profileService := profile.NewService(profileRepo)
	profileHandler := profile.NewHandler(profileService)

	// Repositories shared across features
	groupRepo := group.NewRepository(db)
	expenseRepo := expense.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	settlementRepo := settlement.NewRepository(db)

	// Settlement read-side works directly on the repositories; the balance
	// cache is fed here and never read for correctness.
	settlementService := settlement.NewService(groupRepo, expenseRepo, paymentRepo, settlementRepo)
	settlementHandler := settlement.NewHandler(settlementService)

	// Group feature (close is gated on the ledger reporting zero balances)
	groupService := group.NewService(groupRepo, settlementService)
	groupHandler := group.NewHandler(groupService)

	// Expense feature
	expenseService := expense.NewService(expenseRepo, groupService)
	expenseHandler := expense.NewHandler(expenseService)

	// Payment feature
	paymentService := payment.NewService(paymentRepo, groupService)
	paymentHandler := payment.NewHandler(paymentService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.Metrics)
	r.Use(mw.WalletIdentity)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/profiles", profileHandler.Routes())

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", groupHandler.Create)
			r.Get("/", groupHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", groupHandler.GetByID)
				r.Post("/members", groupHandler.AddMember)
				r.Post("/close", groupHandler.Close)

				r.Mount("/expenses", expenseHandler.Routes())
				r.Mount("/payments", paymentHandler.Routes())

				r.Get("/balances", settlementHandler.Balances)
				r.Get("/settlements", settlementHandler.Suggestions)
			})
		})
	})

	addr := ":" + cfg.Port
	slog.Info("Server starting", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
