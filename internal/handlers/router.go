package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrail/backend/internal/middleware"
	"github.com/JonnyWalker81/moodtrail/backend/internal/service"
)

// Services are the dependencies the routes dispatch to
type Services struct {
	Moods      service.MoodService
	Journals   service.JournalService
	Activities service.ActivityService
	Analytics  service.AnalyticsService
	Auth       service.AuthService
}

// RouterConfig carries the middleware wiring
type RouterConfig struct {
	Env            string
	Logger         logger.Logger
	Verifier       *middleware.TokenVerifier
	AllowedOrigins []string
	Counter        middleware.WindowCounter
	RateLimit      int
	RateWindow     time.Duration
	Replays        middleware.ReplayStore
	// Ping reports storage health on /health; nil skips the check
	Ping func(ctx context.Context) error
}

// NewRouter builds the gin engine with every API route
func NewRouter(cfg RouterConfig, svc Services) *gin.Engine {
	production := cfg.Env == "production"
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.Counter == nil {
		cfg.Counter = middleware.NewMemoryCounter()
	}
	if cfg.Replays == nil {
		cfg.Replays = middleware.NewMemoryReplayStore()
	}

	router := gin.New()
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeaders(production))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", health(cfg.Env, cfg.Ping))

	moodHandler := NewMoodHandler(svc.Moods, svc.Analytics)
	journalHandler := NewJournalHandler(svc.Journals, svc.Analytics)
	activityHandler := NewActivityHandler(svc.Activities, svc.Analytics)
	analyticsHandler := NewAnalyticsHandler(svc.Analytics)
	authHandler := NewAuthHandler(svc.Auth)

	limit := func(name string) gin.HandlerFunc {
		if cfg.RateLimit <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(cfg.Counter, name, cfg.RateLimit, cfg.RateWindow)
	}
	requireAuth := middleware.Auth(cfg.Verifier)
	idempotent := middleware.Idempotency(cfg.Replays)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(limit("auth"))
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		protected := v1.Group("")
		protected.Use(requireAuth, limit("api"))
		{
			protected.GET("/moods", moodHandler.GetMoods)
			protected.POST("/moods", moodHandler.RecordMood)
			protected.GET("/moods/stats", moodHandler.GetMoodStats)
			protected.GET("/moods/:id", moodHandler.GetMood)
			protected.PUT("/moods/:id", moodHandler.UpdateMood)
			protected.DELETE("/moods/:id", moodHandler.DeleteMood)

			protected.GET("/journals", journalHandler.GetJournals)
			protected.POST("/journals", idempotent, journalHandler.CreateJournal)
			protected.GET("/journals/stats", journalHandler.GetJournalStats)
			protected.GET("/journals/:id", journalHandler.GetJournal)
			protected.PUT("/journals/:id", journalHandler.UpdateJournal)
			protected.DELETE("/journals/:id", journalHandler.DeleteJournal)

			protected.GET("/activities", activityHandler.GetActivities)
			protected.POST("/activities", idempotent, activityHandler.CreateActivity)
			protected.GET("/activities/stats", activityHandler.GetActivityStats)
			protected.GET("/activities/:id", activityHandler.GetActivity)
			protected.PUT("/activities/:id", activityHandler.UpdateActivity)
			protected.DELETE("/activities/:id", activityHandler.DeleteActivity)

			protected.GET("/analytics/overview", analyticsHandler.GetOverview)
			protected.GET("/analytics/trends", analyticsHandler.GetTrends)
			protected.GET("/analytics/streaks", analyticsHandler.GetStreaks)
			protected.GET("/analytics/insights", analyticsHandler.GetInsights)
		}
	}

	return router
}

func health(env string, ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				logger.Ctx(ctx).Warn("health check failed", logger.Err(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "env": env})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": env})
	}
}
