package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/cfed-mr/backoffice/internal/account"
	accountStore "github.com/cfed-mr/backoffice/internal/account/store"
	"github.com/cfed-mr/backoffice/internal/activity"
	activityStore "github.com/cfed-mr/backoffice/internal/activity/store"
	"github.com/cfed-mr/backoffice/internal/auth"
	"github.com/cfed-mr/backoffice/internal/config"
	"github.com/cfed-mr/backoffice/internal/dashboard"
	"github.com/cfed-mr/backoffice/internal/database"
	"github.com/cfed-mr/backoffice/internal/document"
	documentStore "github.com/cfed-mr/backoffice/internal/document/store"
	"github.com/cfed-mr/backoffice/internal/expense"
	expenseStore "github.com/cfed-mr/backoffice/internal/expense/store"
	backofficeHttp "github.com/cfed-mr/backoffice/internal/http"
	accountHandler "github.com/cfed-mr/backoffice/internal/http/account"
	activityHandler "github.com/cfed-mr/backoffice/internal/http/activity"
	dashboardHandler "github.com/cfed-mr/backoffice/internal/http/dashboard"
	documentHandler "github.com/cfed-mr/backoffice/internal/http/document"
	expenseHandler "github.com/cfed-mr/backoffice/internal/http/expense"
	importHandler "github.com/cfed-mr/backoffice/internal/http/importcsv"
	missionHandler "github.com/cfed-mr/backoffice/internal/http/mission"
	rubricHandler "github.com/cfed-mr/backoffice/internal/http/rubric"
	"github.com/cfed-mr/backoffice/internal/importer"
	"github.com/cfed-mr/backoffice/internal/mission"
	missionStore "github.com/cfed-mr/backoffice/internal/mission/store"
	"github.com/cfed-mr/backoffice/internal/rubric"
	rubricStore "github.com/cfed-mr/backoffice/internal/rubric/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		rubricService   = rubric.NewService(rubricStore.New(db))
		missionService  = mission.NewService(missionStore.New(db))
		activityService = activity.NewService(activityStore.New(db))
		expenseService  = expense.NewService(expenseStore.New(db))
		documentService = document.NewService(documentStore.New(db))
		accountService  = account.NewService(accountStore.New(db))
		importService   = importer.NewService()

		dashboardService = dashboard.NewService(rubricService, activityService, missionService, expenseService)
	)

	authManager := auth.NewManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	var (
		rubricH    = rubricHandler.NewHandler(rubricService, activityService)
		missionH   = missionHandler.NewHandler(missionService, expenseService)
		activityH  = activityHandler.NewHandler(activityService)
		expenseH   = expenseHandler.NewHandler(expenseService)
		documentH  = documentHandler.NewHandler(documentService)
		accountH   = accountHandler.NewHandler(accountService, authManager)
		dashboardH = dashboardHandler.NewHandler(dashboardService)
		importH    = importHandler.NewHandler(importService, expenseService)
	)

	router := backofficeHttp.New(
		authManager,
		rubricH,
		missionH,
		activityH,
		expenseH,
		documentH,
		accountH,
		dashboardH,
		importH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
