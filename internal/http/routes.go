package http

import (
	"os"
	"strconv"
	"time"

	"crypto_webapp/internal/config"
	"crypto_webapp/internal/http/handlers"
	"crypto_webapp/internal/http/middleware"
	"crypto_webapp/internal/service"
	"crypto_webapp/internal/store"
	"crypto_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, db *pgxpool.Pool, version string) *ws.Hub {
	return RegisterRoutesWithConfig(r, st, db, version, nil)
}

// RegisterRoutesWithConfig wires the store, hub, audit and handlers
// into the router. db may be nil (audit disabled).
func RegisterRoutesWithConfig(r *gin.Engine, st *store.Store, db *pgxpool.Pool, version string, cfg *config.Config) *ws.Hub {
	audit := service.NewAuditService(db)
	hub := ws.NewHub(st)

	var h *handlers.Handler
	if cfg != nil {
		h = handlers.NewHandlerWithConfig(st, hub, audit, handlers.HandlerConfig{
			MaxPostLength: cfg.MaxPostLength,
		})
	} else {
		h = handlers.NewHandler(st, hub, audit)
	}
	healthHandler := handlers.NewHealthHandler(db, version)

	// read limits from env, with safe defaults
	apiRateLimit := 120
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 10
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute

	// Per-user action rate limiting
	actionRateLimit := 30
	actionRateWindow := time.Minute
	if cfg != nil {
		actionRateLimit = cfg.ActionRateLimit
		actionRateWindow = time.Duration(cfg.ActionRateWindow) * time.Second
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h, authRateLimit, authRateWindow, actionRateLimit, actionRateWindow)

	// Legacy /api routes for older clients
	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h, authRateLimit, authRateWindow, actionRateLimit, actionRateWindow)

	// Realtime pushes
	r.GET("/ws", ws.HandleWS(hub))

	return hub
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, authRateLimit int, authRateWindow time.Duration, actionRateLimit int, actionRateWindow time.Duration) {
	// Auth: the in-process limiter guards brute force even when Redis
	// is not configured
	authRL := middleware.SimpleRateLimit(authRateLimit, authRateWindow)
	api.POST("/auth/register", authRL, h.Register)
	api.POST("/auth/login", authRL, h.Login)

	// Current user (JWT from register/login)
	api.GET("/me", middleware.JWT(), h.Me)
	api.GET("/me/audit", middleware.JWT(), h.GetAuditLog)

	// Per-user action limiter for reward-granting endpoints
	actionRL := middleware.ActionRateLimit(actionRateLimit, actionRateWindow)

	// Mining
	api.GET("/mining/:userId", h.GetStation)
	api.POST("/mining/:userId/collect", actionRL, h.CollectMining)
	api.POST("/mining/:userId/upgrade", actionRL, h.UpgradeStation)

	// Crypto catalog
	api.GET("/cryptos", h.ListCryptos)
	api.GET("/cryptos/:id", h.GetCrypto)

	// Trading
	api.GET("/holdings/:userId", h.GetHoldings)
	api.POST("/trade", actionRL, h.Trade)

	// Social feed
	api.GET("/posts", h.ListPosts)
	api.POST("/posts", actionRL, h.CreatePost)
	api.POST("/posts/:id/like", h.LikePost)

	// Progress
	api.GET("/achievements/:userId", h.GetAchievements)
	api.GET("/challenges/:userId", h.GetChallenges)

	// Trading bots (:id is the owner for the list route, the bot for
	// toggle)
	api.GET("/trading-bots/:id", h.ListBots)
	api.POST("/trading-bots", h.CreateBot)
	api.PATCH("/trading-bots/:id/toggle", h.ToggleBot)

	// Leaderboard
	api.GET("/leaderboard", h.GetLeaderboard)
}
