package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/contasmart/contasmart/internal/analytics"
	analyticsStore "github.com/contasmart/contasmart/internal/analytics/store"
	"github.com/contasmart/contasmart/internal/auth"
	"github.com/contasmart/contasmart/internal/category"
	categoryStore "github.com/contasmart/contasmart/internal/category/store"
	"github.com/contasmart/contasmart/internal/config"
	"github.com/contasmart/contasmart/internal/database"
	"github.com/contasmart/contasmart/internal/goal"
	goalStore "github.com/contasmart/contasmart/internal/goal/store"
	contasmartHttp "github.com/contasmart/contasmart/internal/http"
	accountingHandler "github.com/contasmart/contasmart/internal/http/accounting"
	advisorHandler "github.com/contasmart/contasmart/internal/http/advisor"
	analyticsHandler "github.com/contasmart/contasmart/internal/http/analytics"
	categoryHandler "github.com/contasmart/contasmart/internal/http/category"
	exportHandler "github.com/contasmart/contasmart/internal/http/export"
	goalHandler "github.com/contasmart/contasmart/internal/http/goal"
	txHandler "github.com/contasmart/contasmart/internal/http/transaction"
	userHandler "github.com/contasmart/contasmart/internal/http/user"
	ledgerStore "github.com/contasmart/contasmart/internal/ledger/store"
	"github.com/contasmart/contasmart/internal/obs"
	"github.com/contasmart/contasmart/internal/transaction"
	txStore "github.com/contasmart/contasmart/internal/transaction/store"
	"github.com/contasmart/contasmart/internal/user"
	userStore "github.com/contasmart/contasmart/internal/user/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	obs.Init()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens, err := auth.NewManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		slog.Error("failed to set up token manager", "error", err)
		os.Exit(1)
	}

	bookStore := ledgerStore.New(filepath.Join(cfg.Data.Dir, "ledger.json"))

	book, err := bookStore.Load()
	if err != nil {
		slog.Error("failed to load ledger", "error", err)
		os.Exit(1)
	}

	var (
		categoryService    = category.NewService(categoryStore.New(db))
		userService        = user.NewService(userStore.New(db), categoryService)
		transactionService = transaction.NewService(txStore.New(db))
		goalService        = goal.NewService(goalStore.New(db))
		analyticsService   = analytics.NewService(analyticsStore.New(db))
	)

	var (
		userH        = userHandler.NewHandler(userService, tokens)
		transactionH = txHandler.NewHandler(transactionService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		goalH        = goalHandler.NewHandler(goalService)
		analyticsH   = analyticsHandler.NewHandler(analyticsService)
		advisorH     = advisorHandler.NewHandler(analyticsService, goalService)
		accountingH  = accountingHandler.NewHandler(book, bookStore)
		exportH      = exportHandler.NewHandler(accountingH)
	)

	router := contasmartHttp.New(
		cfg.Server.AllowedOrigins,
		tokens,
		userH,
		transactionH,
		categoryH,
		goalH,
		analyticsH,
		advisorH,
		accountingH,
		exportH,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
