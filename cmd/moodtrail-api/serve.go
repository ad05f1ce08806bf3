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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/moodtrail/backend/internal/config"
	"github.com/JonnyWalker81/moodtrail/backend/internal/handlers"
	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrail/backend/internal/middleware"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository"
	"github.com/JonnyWalker81/moodtrail/backend/internal/service"
	"github.com/JonnyWalker81/moodtrail/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port        string
	autoMigrate bool
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Apply the schema before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port != "" {
		cfg.Server.Port = port
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	log.Info("starting moodtrail api", logger.String("env", cfg.Server.Env))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, cfg.Database.URL, repository.PoolOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if autoMigrate {
		if err := repository.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info("schema applied")
	}

	counter, replays, closeRedis, err := connectRedis(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeRedis()

	moodRepo := repository.NewMoodRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	userRepo := repository.NewUserRepository(db)

	// a nil provider must stay an untyped nil so the service sees it
	var provider service.AuthProvider
	if cfg.Supabase.URL != "" {
		provider = supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	} else {
		log.Warn("supabase is not configured; login and signup are disabled")
	}

	analyticsService := service.NewAnalyticsService(moodRepo, journalRepo, activityRepo, cfg.Analytics.TopN)
	services := handlers.Services{
		Moods:      service.NewMoodService(moodRepo, activityRepo),
		Journals:   service.NewJournalService(journalRepo),
		Activities: service.NewActivityService(activityRepo),
		Analytics:  analyticsService,
		Auth:       service.NewAuthService(provider, userRepo),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Env:            cfg.Server.Env,
		Logger:         log,
		Verifier:       middleware.NewTokenVerifier(cfg.Auth),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Counter:        counter,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     cfg.RateLimit.Window,
		Replays:        replays,
		Ping:           db.PingContext,
	}, services)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", logger.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// connectRedis returns Redis-backed limiter and replay stores when a URL is
// configured, and per-process ones otherwise
func connectRedis(ctx context.Context, cfg config.RedisConfig, log logger.Logger) (middleware.WindowCounter, middleware.ReplayStore, func(), error) {
	if cfg.URL == "" {
		log.Info("redis not configured; using in-memory rate limiting")
		return middleware.NewMemoryCounter(), middleware.NewMemoryReplayStore(), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Warn("redis close failed", logger.Err(err))
		}
	}
	return middleware.NewRedisCounter(client), middleware.NewRedisReplayStore(client), closeFn, nil
}
