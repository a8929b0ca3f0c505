// SleepWise API
//
// REST API for sleep diaries, cognitive test tracking, and AI sleep
// recommendations.
//
//	@title			SleepWise API
//	@version		1.0
//	@description	Track nightly sleep, run cognitive tests, and get personalized recommendations.
//
//	@BasePath	/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//
//	@tag.name			auth
//	@tag.description	Social login and token lifecycle endpoints
//
//	@tag.name			sleep-records
//	@tag.description	Sleep diary endpoints
//
//	@tag.name			cognitive
//	@tag.description	Cognitive test session endpoints
//
//	@tag.name			records
//	@tag.description	Aggregated statistics endpoints
//
//	@tag.name			mypage
//	@tag.description	Profile summary endpoints
//
//	@tag.name			recommendations
//	@tag.description	AI recommendation endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/hanyul/sleepwise/internal/api"
	"github.com/hanyul/sleepwise/internal/api/handler"
	"github.com/hanyul/sleepwise/internal/auth"
	"github.com/hanyul/sleepwise/internal/config"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/llm"
	"github.com/hanyul/sleepwise/internal/repository"
	"github.com/hanyul/sleepwise/internal/seed"
	"github.com/hanyul/sleepwise/internal/service"
	"github.com/hanyul/sleepwise/internal/social"
	"github.com/hanyul/sleepwise/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()
	loc := cfg.Location()

	// Initialize tracing (no-op if Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "sleepwise-api")
	if err != nil {
		log.Printf("Warning: tracing disabled: %v", err)
	} else {
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				log.Printf("Failed to shut down tracer: %v", err)
			}
		}()
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.UserBlacklist{},
		&domain.SleepRecord{},
		&domain.CognitiveSession{},
		&domain.CognitiveResultSRT{},
		&domain.CognitiveResultSymbol{},
		&domain.CognitiveResultPattern{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Connect to Redis
	rdb, err := config.NewRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sleepRepo := repository.NewSleepRecordRepository(db)
	cognitiveRepo := repository.NewCognitiveRepository(db)
	tokenRepo := repository.NewTokenRepository(rdb)
	recommendationCache := repository.NewRecommendationCache(rdb)

	// Initialize auth plumbing
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	authMW := auth.NewMiddleware(tokens)
	socialClients := social.NewClients(social.Config{
		KakaoClientID:     cfg.KakaoClientID,
		KakaoRedirectURI:  cfg.KakaoRedirectURI,
		GoogleClientID:    cfg.GoogleClientID,
		GoogleClientSec:   cfg.GoogleClientSec,
		GoogleRedirectURI: cfg.GoogleRedirectURI,
	})

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIRecommendationModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, recommendation endpoint will be unavailable")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenRepo, tokens, socialClients)
	sleepService := service.NewSleepRecordService(sleepRepo, userRepo)
	cognitiveService := service.NewCognitiveService(cognitiveRepo, userRepo, loc)
	statsService := service.NewStatsService(sleepRepo, userRepo, cognitiveService, loc)
	detailService := service.NewDetailService(sleepRepo, cognitiveRepo, loc)
	recommendationService := service.NewRecommendationService(sleepRepo, cognitiveRepo, recommendationCache, openaiClient, loc)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	sleepHandler := handler.NewSleepRecordHandler(sleepService)
	cognitiveHandler := handler.NewCognitiveHandler(cognitiveService)
	statsHandler := handler.NewStatsHandler(statsService, detailService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)

	// Setup router
	router := api.NewRouter(authMW, authHandler, sleepHandler, cognitiveHandler, statsHandler, recommendationHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
