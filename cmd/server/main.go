package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reviewhub-backend/internal/auth"
	"reviewhub-backend/internal/catalog"
	"reviewhub-backend/internal/config"
	"reviewhub-backend/internal/database"
	"reviewhub-backend/internal/handlers"
	"reviewhub-backend/internal/logger"
	"reviewhub-backend/internal/notify"
	"reviewhub-backend/internal/repository"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New("reviewhub-backend", cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Review storage
	var store repository.ReviewStore
	switch cfg.ReviewStore {
	case config.StoreMongo:
		mongo, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName)
		if err != nil {
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := mongo.Close(closeCtx); err != nil {
				log.Warn("failed to disconnect from MongoDB", slog.String("error", err.Error()))
			}
		}()
		log.Info("connected to MongoDB", slog.String("db", cfg.DBName))

		mongoStore := repository.NewMongoStore(mongo.DB)
		indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := mongoStore.EnsureIndexes(indexCtx); err != nil {
			log.Warn("failed to create review indexes", slog.String("error", err.Error()))
		}
		cancel()
		store = mongoStore
	default:
		store = repository.NewMemoryStore()
	}

	reviews := repository.NewReviewRepo(store, log)
	if cfg.SeedReviews {
		added, err := reviews.Seed(ctx, repository.SeedReviews(time.Now()))
		if err != nil {
			return err
		}
		log.Info("seeded demo reviews", slog.Int("added", added))
	}

	var notifier notify.Notifier = notify.NewLogNotifier(log)
	if cfg.EmailNotifications() {
		notifier = notify.NewResendNotifier(cfg.ResendAPIKey, cfg.FromEmail, cfg.NotifyEmail, log)
	} else {
		log.Info("RESEND_API_KEY or NOTIFY_EMAIL not set, review notifications go to the log")
	}

	router := handlers.NewRouter(handlers.Deps{
		Reviews:     reviews,
		Catalog:     catalog.NewStore(),
		Identity:    auth.NewMockProvider(cfg.JWTSecret, cfg.JWTTTL),
		Notifier:    notifier,
		Logger:      log,
		Environment: cfg.Environment,
		ReviewStore: cfg.ReviewStore,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("reviewhub backend starting",
			slog.String("addr", srv.Addr),
			slog.String("environment", cfg.Environment),
			slog.String("review_store", cfg.ReviewStore),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
