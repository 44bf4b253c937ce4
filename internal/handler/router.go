/*
Package handler provides the HTTP handlers and routing setup for the ZazaChat server.

This file defines the main Router, applying middleware like logging, CORS,
session extraction, and IP-based rate limiting before delegating requests to
the specific handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"zazachat/internal/pkg/auth/jwt"
	"zazachat/internal/pkg/limiter"
	"zazachat/internal/pkg/logx"
	"zazachat/internal/pkg/resp"
)

const (
	CreateRate  = 0.05
	CreateBurst = 2
	JoinRate    = 0.2
	JoinBurst   = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters for the room entry points, configures
// CORS, and applies global and per-route middleware.
func Router(deps *AppDeps) http.Handler {
	createLimiter := limiter.NewIPRateLimiter(rate.Limit(CreateRate), CreateBurst)
	joinLimiter := limiter.NewIPRateLimiter(rate.Limit(JoinRate), JoinBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		logx.Info("Health check endpoint hit")

		data := map[string]string{
			"status":  "ok",
			"service": "ZazaChat Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.SessionExtractorMiddleware(deps.Config.JWTSecret))

		api.Get("/lang", HandleListLanguages(deps))
		api.Get("/lang/{code}", HandleGetLanguage(deps))

		rateLimitedCreateHandler := createLimiter.Middleware(HandleCreateRoom(deps))
		rateLimitedJoinHandler := joinLimiter.Middleware(HandleJoinRoom(deps))

		api.Route("/room", func(room chi.Router) {
			room.Post("/create", rateLimitedCreateHandler.ServeHTTP)
			room.Post("/join", rateLimitedJoinHandler.ServeHTTP)
			room.Get("/", HandleGetRoom(deps))
			room.Post("/message", HandleSendMessage(deps))
			room.Post("/translate", HandleTranslateMessage(deps))
			room.Post("/exit", HandleExitRoom(deps))
		})
	})

	return r
}
