package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/matthieuv/superligue/internal/config"
	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/trophy"
	"github.com/matthieuv/superligue/internal/infrastructure/account"
	"github.com/matthieuv/superligue/internal/infrastructure/datastore"
	"github.com/matthieuv/superligue/internal/infrastructure/repository/memory"
	pgrepo "github.com/matthieuv/superligue/internal/infrastructure/repository/postgres"
	"github.com/matthieuv/superligue/internal/interfaces/httpapi"
	"github.com/matthieuv/superligue/internal/platform/cache"
	"github.com/matthieuv/superligue/internal/platform/logging"
	"github.com/matthieuv/superligue/internal/platform/resilience"
	"github.com/matthieuv/superligue/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const hydrateTimeout = 30 * time.Second

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. The returned cleanup closes resources the server
// does not own (currently the database pool).
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	store := memory.NewSeasonStore(memory.SeedSnapshot())

	var (
		db          *sqlx.DB
		matchRepo   match.Repository
		penaltyRepo penalty.Repository
		trophyRepo  trophy.Repository
	)
	penaltyRepo = memory.NewPenaltyRepository(nil)
	trophyRepo = memory.NewTrophyRepository()

	cleanup := func() {}
	if cfg.DBEnabled {
		var err error
		db, err = connectDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Warn("close database", "error", err)
			}
		}

		matchRepo = pgrepo.NewMatchRepository(db)
		penaltyRepo = pgrepo.NewPenaltyRepository(db)
		trophyRepo = pgrepo.NewTrophyRepository(db)

		if err := hydrateStore(store, matchRepo, logger); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("hydrate season store: %w", err)
		}
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	var publisher usecase.ChampionPublisher
	if cfg.DatastoreEnabled {
		publisher = datastore.NewChampionPublisher(datastore.ChampionPublisherConfig{
			BaseURL: cfg.DatastoreBaseURL,
			Token:   cfg.DatastoreToken,
			Timeout: cfg.DatastoreTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.DatastoreCircuitEnabled,
				FailureThreshold: cfg.DatastoreCircuitFailureCount,
				OpenTimeout:      cfg.DatastoreCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.DatastoreCircuitHalfOpenMax,
			},
		}, logger)
	}

	standingsSvc := usecase.NewStandingsService(store, penaltyRepo, logger)
	statsSvc := usecase.NewStatsService(store, penaltyRepo, cacheStore, logger)
	championSvc := usecase.NewChampionService(store, penaltyRepo, logger)
	managerSvc := usecase.NewManagerService(store, penaltyRepo, logger)
	importSvc := usecase.NewImportService(store, matchRepo, statsSvc, logger)
	rebuildSvc := usecase.NewRebuildService(store, penaltyRepo, trophyRepo, publisher, logger)

	accountClient := account.NewClient(
		&http.Client{Timeout: cfg.AccountTimeout},
		cfg.AccountBaseURL,
		cfg.AccountIntrospectPath,
		cacheStore,
		logger,
	)

	handler := httpapi.NewHandler(standingsSvc, statsSvc, championSvc, managerSvc, importSvc, rebuildSvc, logger)
	router := httpapi.NewRouter(handler, accountClient, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func connectDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dbURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", dbURL, opts...)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// hydrateStore overlays persisted match blocks on the seeded snapshot so
// standings survive restarts when the database is enabled.
func hydrateStore(store *memory.SeasonStore, matchRepo match.Repository, logger *logging.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), hydrateTimeout)
	defer cancel()

	blocks, err := matchRepo.ListBlocks(ctx)
	if err != nil {
		return err
	}
	for _, block := range blocks {
		if err := store.UpsertBlock(ctx, block); err != nil {
			return err
		}
	}

	logger.Info("season store hydrated", "match_blocks", len(blocks))
	return nil
}
