package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"visitation-backend/config"
	"visitation-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, h *Handler) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/visitors", h.GetVisitors)
		api.GET("/visitors/today", h.GetTodayVisitors)
		api.GET("/visitors/upcoming", h.GetUpcomingVisitors)
		// The archive is append-only, so a short cache is safe here.
		api.GET("/visitors/completed", caching, h.GetCompletedVisitors)
		api.POST("/visitors", h.ScheduleVisitor)
		api.PUT("/visitors/:id", h.UpdateVisitor)
		api.DELETE("/visitors/:id", h.DeleteVisitor)
		api.PUT("/visitors/:id/status", h.UpdateVisitorStatus)
		api.PUT("/visitors/:id/complete", h.CompleteVisitor)

		api.GET("/criminals", caching, h.GetCriminals)
		api.POST("/criminals", h.CreateCriminal)
		api.DELETE("/criminals/:id", h.DeleteCriminal)

		api.GET("/users", h.GetUsers)
		api.POST("/users", h.CreateUser)
		api.POST("/auth/login", h.Login)

		api.GET("/health", h.GetHealth)
	}

	return r
}
