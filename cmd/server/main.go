package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/HammerMeetNail/aistackhub/internal/catalog"
	"github.com/HammerMeetNail/aistackhub/internal/config"
	"github.com/HammerMeetNail/aistackhub/internal/database"
	"github.com/HammerMeetNail/aistackhub/internal/handlers"
	"github.com/HammerMeetNail/aistackhub/internal/logging"
	"github.com/HammerMeetNail/aistackhub/internal/middleware"
	"github.com/HammerMeetNail/aistackhub/internal/recommend"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

const shareCleanupInterval = time.Hour

func main() {
	if err := run(); err != nil {
		logging.Error("Application error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Server.Debug {
		logger.SetLevel(logging.LevelDebug)
		logging.SetDefaultLevel(logging.LevelDebug)
		logger.Debug("Debug logging enabled", map[string]interface{}{"env": cfg.Server.Environment})
	}

	logger.Info("Starting AI stack hub server...")

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("Catalog loaded", map[string]interface{}{
		"tools":     len(cat.Tools()),
		"workflows": len(cat.Workflows()),
		"path":      cfg.Catalog.Path,
	})
	if unmapped := cat.UnmappedFocus(); len(unmapped) > 0 {
		logger.Warn("Focus areas without a rule use the fallback", map[string]interface{}{"focus": unmapped})
	}

	logger.Info("Connecting to PostgreSQL", map[string]interface{}{
		"host": cfg.Database.Host,
		"port": cfg.Database.Port,
	})
	db, err := database.NewPostgresDB(cfg.Database.DSN(), database.DefaultPoolOptions())
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL")

	logger.Info("Running database migrations...")
	migrator, err := database.NewMigrator(cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close()
		return fmt.Errorf("running migrations: %w", err)
	}
	_ = migrator.Close()
	logger.Info("Migrations completed")

	logger.Info("Connecting to Redis", map[string]interface{}{"addr": cfg.Redis.Addr()})
	redisDB, err := database.NewRedisDB(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisDB.Close() }()
	logger.Info("Connected to Redis")

	engine := recommend.New(cat)
	pacer := recommend.Delay(cfg.Generator.Delay)

	dbAdapter := services.NewPoolAdapter(db.Pool)
	redisAdapter := services.NewRedisAdapter(redisDB.Client)

	shareService := services.NewShareService(dbAdapter, engine, cfg.Server.BaseURL, cfg.Share.TTL)
	deps := routerDeps{
		health: handlers.NewHealthHandler(
			handlers.HealthCheck{Name: "postgres", Checker: db},
			handlers.HealthCheck{Name: "redis", Checker: redisDB},
		),
		directory:     services.NewDirectoryService(cat),
		questionnaire: services.NewQuestionnaireService(redisAdapter, engine, pacer, cfg.Generator.SessionTTL),
		recommend:     services.NewRecommendationService(engine, pacer),
		shares:        shareService,
		rateStore:     middleware.NewRedisRateStore(redisDB.Client),
	}

	handler, err := newRouter(cfg, logger, deps)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30*time.Second + cfg.Generator.Delay,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server listening", map[string]interface{}{"addr": addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Server is shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	})

	g.Go(func() error {
		purgeExpiredShares(gctx, logger, shareService, shareCleanupInterval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

type expiredSharePurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// purgeExpiredShares removes expired share links every interval until ctx is done.
func purgeExpiredShares(ctx context.Context, logger *logging.Logger, shares expiredSharePurger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := shares.DeleteExpired(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("Failed to purge expired shares", map[string]interface{}{"error": err.Error()})
				}
				continue
			}
			if n > 0 {
				logger.Info("Purged expired shares", map[string]interface{}{"count": n})
			}
		}
	}
}
