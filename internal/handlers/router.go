package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/auth"
	"github.com/JonnyWalker81/daybook/backend/internal/middleware"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
	"github.com/JonnyWalker81/daybook/backend/internal/service"
)

// Services is everything the API routes call into
type Services struct {
	Correlations service.CorrelationsService
	Recaps       service.RecapService
	Journal      service.JournalService
	CheckIns     service.CheckInService
	WheelOfLife  service.WheelOfLifeService
	Insights     service.InsightsService
	Auth         service.AuthService
}

// RouterConfig wires the router
type RouterConfig struct {
	Services       Services
	Verifier       auth.TokenVerifier
	Idempotency    repository.IdempotencyRepository
	SessionCookie  string
	AllowedOrigins []string
	Production     bool
	// Limiters default to middleware.RateLimit and RateLimitAuth when nil
	GeneralLimiter *middleware.RateLimiter
	AuthLimiter    *middleware.RateLimiter
}

// NewRouter registers every route on a new gin engine
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(cfg.Production))

	router.GET("/health", Health)

	analyticsHandler := NewAnalyticsHandler(cfg.Services.Correlations)
	recapHandler := NewRecapHandler(cfg.Services.Recaps)
	journalHandler := NewJournalHandler(cfg.Services.Journal)
	checkInHandler := NewCheckInHandler(cfg.Services.CheckIns)
	wheelHandler := NewWheelOfLifeHandler(cfg.Services.WheelOfLife)
	insightsHandler := NewInsightsHandler(cfg.Services.Insights)
	authHandler := NewAuthHandler(cfg.Services.Auth, cfg.SessionCookie, cfg.Production)

	requireAuth := middleware.Auth(cfg.Verifier, cfg.SessionCookie)

	generalLimit := middleware.RateLimit
	if cfg.GeneralLimiter != nil {
		generalLimit = cfg.GeneralLimiter.Handler
	}
	authLimit := middleware.RateLimitAuth
	if cfg.AuthLimiter != nil {
		authLimit = cfg.AuthLimiter.Handler
	}

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		authRoutes.Use(authLimit())
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
		}

		protected := api.Group("")
		protected.Use(generalLimit())
		protected.Use(requireAuth)
		if cfg.Idempotency != nil {
			protected.Use(middleware.Idempotency(cfg.Idempotency))
		}
		{
			protected.GET("/analytics/correlations", analyticsHandler.GetCorrelations)

			protected.GET("/recaps/generate-cards", recapHandler.GenerateCards)
			protected.POST("/recaps/generate", recapHandler.Generate)
			protected.GET("/recaps", recapHandler.List)
			protected.GET("/recaps/:id", recapHandler.Get)

			protected.GET("/wheel-of-life/area/:slug", wheelHandler.GetArea)
			protected.PUT("/wheel-of-life/area/:slug", wheelHandler.UpdateArea)

			protected.GET("/journal/entries", journalHandler.ListEntries)
			protected.POST("/journal/entries", journalHandler.CreateEntry)
			protected.GET("/journal/entries/:id", journalHandler.GetEntry)
			protected.PUT("/journal/entries/:id", journalHandler.UpdateEntry)
			protected.DELETE("/journal/entries/:id", journalHandler.DeleteEntry)

			protected.GET("/check-ins", checkInHandler.ListCheckIns)
			protected.POST("/check-ins", checkInHandler.CreateCheckIn)

			protected.GET("/insights/nudges", insightsHandler.GetNudges)
			protected.GET("/personality", insightsHandler.GetPersonality)
			protected.POST("/personality/refresh", insightsHandler.RefreshPersonality)
		}
	}

	return router
}
