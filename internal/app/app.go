package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/bergomi/bergomi-store/internal/config"
	"github.com/bergomi/bergomi-store/internal/infrastructure/repository/postgres"
	"github.com/bergomi/bergomi-store/internal/interfaces/httpapi"
	idgen "github.com/bergomi/bergomi-store/internal/platform/id"
	"github.com/bergomi/bergomi-store/internal/platform/logging"
	"github.com/bergomi/bergomi-store/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. The returned closer releases the database pool.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))

	accountRepo := postgres.NewAccountRepository(db)
	contactLinkRepo := postgres.NewContactLinkRepository(db)
	adminTokenRepo := postgres.NewAdminTokenRepository(db)

	ids := idgen.NewRandomGenerator()
	zapLogger := logging.Default()
	accountSvc := usecase.NewAccountService(accountRepo, ids, zapLogger)
	contactLinkSvc := usecase.NewContactLinkService(contactLinkRepo, ids, zapLogger)
	adminSvc := usecase.NewAdminService(adminTokenRepo, cfg.AdminToken, zapLogger)

	handler := httpapi.NewHandler(accountSvc, contactLinkSvc, adminSvc, zapLogger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db.Close, nil
}
