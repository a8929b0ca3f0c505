package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/hanyul/sleepwise/docs"
	"github.com/hanyul/sleepwise/internal/api/handler"
	"github.com/hanyul/sleepwise/internal/api/middleware"
	"github.com/hanyul/sleepwise/internal/auth"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	authMW                *auth.Middleware
	authHandler           *handler.AuthHandler
	sleepRecordHandler    *handler.SleepRecordHandler
	cognitiveHandler      *handler.CognitiveHandler
	statsHandler          *handler.StatsHandler
	recommendationHandler *handler.RecommendationHandler
}

func NewRouter(
	authMW *auth.Middleware,
	authHandler *handler.AuthHandler,
	sleepRecordHandler *handler.SleepRecordHandler,
	cognitiveHandler *handler.CognitiveHandler,
	statsHandler *handler.StatsHandler,
	recommendationHandler *handler.RecommendationHandler,
) *Router {
	return &Router{
		authMW:                authMW,
		authHandler:           authHandler,
		sleepRecordHandler:    sleepRecordHandler,
		cognitiveHandler:      cognitiveHandler,
		statsHandler:          statsHandler,
		recommendationHandler: recommendationHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Auth: login and refresh carry their own credentials
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", rt.authHandler.Login)
			r.Post("/refresh", rt.authHandler.Refresh)
			r.Post("/logout", rt.authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(rt.authMW.Authenticate)
				r.Get("/me", rt.authHandler.Me)
				r.Patch("/me", rt.authHandler.UpdateProfile)
				r.Delete("/withdraw", rt.authHandler.Withdraw)
			})
		})

		// Everything below requires a valid access token
		r.Group(func(r chi.Router) {
			r.Use(rt.authMW.Authenticate)

			r.Route("/sleep-records", func(r chi.Router) {
				r.Post("/", rt.sleepRecordHandler.Create)
				r.Get("/", rt.sleepRecordHandler.List)
				r.Get("/{date}", rt.sleepRecordHandler.Get)
				r.Patch("/{date}", rt.sleepRecordHandler.Update)
				r.Delete("/{date}", rt.sleepRecordHandler.Delete)
			})

			r.Route("/cognitive", func(r chi.Router) {
				r.Post("/sessions", rt.cognitiveHandler.StartSession)
				r.Post("/sessions/{sessionId}/end", rt.cognitiveHandler.EndSession)
				r.Post("/sessions/{sessionId}/results/srt", rt.cognitiveHandler.RecordSRT)
				r.Post("/sessions/{sessionId}/results/symbol", rt.cognitiveHandler.RecordSymbol)
				r.Post("/sessions/{sessionId}/results/pattern", rt.cognitiveHandler.RecordPattern)
				r.Get("/daily-scores", rt.cognitiveHandler.DailyScores)
			})

			r.Route("/records", func(r chi.Router) {
				r.Get("/", rt.statsHandler.RecordList)
				r.Get("/{date}", rt.statsHandler.DateDetail)
			})

			r.Get("/mypage/summary", rt.statsHandler.Summary)
			r.Get("/recommendations/{date}", rt.recommendationHandler.Recommend)
		})
	})

	return r
}
