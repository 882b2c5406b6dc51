package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/JonnyWalker81/daybook/backend/internal/auth"
	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/config"
	"github.com/JonnyWalker81/daybook/backend/internal/handlers"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/JonnyWalker81/daybook/backend/internal/middleware"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
	"github.com/JonnyWalker81/daybook/backend/internal/repository/gormstore"
	"github.com/JonnyWalker81/daybook/backend/internal/service"
	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

// app is the wired API with the resources it must release
type app struct {
	router  *gin.Engine
	closers []func() error
}

func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			logger.Warn("failed to release resource", logger.Err(err))
		}
	}
}

// newApp builds stores, services and routes from cfg
func newApp(cfg *config.Config, clk clock.Clock) (*app, error) {
	a := &app{}

	var supabaseClient *supabase.Client
	if cfg.Supabase.URL != "" && cfg.Supabase.ServiceKey != "" {
		supabaseClient = supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	}

	var repos repository.Repositories
	switch cfg.Database.Driver {
	case config.DriverSupabase:
		repos = repository.NewSupabaseRepositories(supabaseClient)
	default:
		db, err := gormstore.Open(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		repos = gormstore.New(db)
	}

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		client := redis.NewClient(opts)
		a.closers = append(a.closers, client.Close)
		repos.Idempotency = repository.NewRedisIdempotencyRepository(client, repository.IdempotencyTTL)
	}

	var verifier auth.TokenVerifier
	if cfg.Auth.JWTSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.Auth.JWTSecret)
	} else {
		verifier = auth.NewSupabaseVerifier(supabaseClient)
	}

	var authenticator service.PasswordAuthenticator
	if supabaseClient != nil {
		authenticator = supabaseClient
	}

	opts := service.Options{
		Rules:             service.DefaultOptions().Rules.WithThemeOverrides(cfg.Analysis.ThemeKeywords),
		FetchLimit:        cfg.Analysis.FetchLimit,
		DefaultPeriodDays: cfg.Analysis.DefaultPeriodDays,
	}

	services := handlers.Services{
		Correlations: service.NewCorrelationsService(repos.JournalEntries, repos.CheckIns, repos.Goals, clk, opts),
		Recaps: service.NewRecapService(service.RecapRepositories{
			Entries:  repos.JournalEntries,
			CheckIns: repos.CheckIns,
			Goals:    repos.Goals,
			Tasks:    repos.Tasks,
			Finance:  repos.Finance,
			People:   repos.People,
			Recaps:   repos.Recaps,
		}, clk, opts),
		Journal:     service.NewJournalService(repos.JournalEntries, clk),
		CheckIns:    service.NewCheckInService(repos.CheckIns, clk),
		WheelOfLife: service.NewWheelOfLifeService(repos.WheelOfLife, repos.Goals, repos.JournalEntries, clk, opts),
		Insights:    service.NewInsightsService(repos.JournalEntries, repos.CheckIns, repos.Goals, repos.Personality, clk, opts),
		Auth:        service.NewAuthService(authenticator),
	}

	generalLimiter := middleware.NewRateLimiter(cfg.RateLimit.General, cfg.RateLimit.Window, "general", clk)
	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.Auth, cfg.RateLimit.Window, "auth", clk)
	a.closers = append(a.closers, stopFunc(generalLimiter), stopFunc(authLimiter))

	a.router = handlers.NewRouter(handlers.RouterConfig{
		Services:       services,
		Verifier:       verifier,
		Idempotency:    repos.Idempotency,
		SessionCookie:  cfg.Auth.SessionCookie,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Production:     cfg.Server.IsProduction(),
		GeneralLimiter: generalLimiter,
		AuthLimiter:    authLimiter,
	})
	return a, nil
}

func stopFunc(rl *middleware.RateLimiter) func() error {
	return func() error {
		rl.Stop()
		return nil
	}
}
