package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/server/handlers"
	"github.com/mamadbah2/nutrilog/internal/server/middleware"
)

// Handlers groups the HTTP adapters mounted under /api.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Food    *handlers.FoodHandler
	Days    *handlers.DaysHandler
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, verifier middleware.TokenVerifier, pinger Pinger, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	private := middleware.Auth(verifier, logger.Named("auth"))

	api := r.Group("/api")
	{
		api.POST("/users", h.Auth.Register)
		api.POST("/auth", h.Auth.Login)
		api.GET("/auth", private, h.Auth.Me)

		profile := api.Group("/profile", private)
		profile.GET("/me", h.Profile.Get)
		profile.POST("", h.Profile.Upsert)
		profile.DELETE("", h.Profile.Delete)

		food := api.Group("/food")
		food.GET("", h.Food.List)
		food.GET("/lookup", private, h.Food.Lookup)
		food.GET("/:name", h.Food.Get)
		food.POST("", private, h.Food.Upsert)
		food.POST("/import", private, h.Food.Import)
		food.DELETE("", private, h.Food.Delete)
		food.DELETE("/:name", private, h.Food.Delete)

		days := api.Group("/days", private)
		days.POST("", h.Days.Upsert)
		days.GET("", h.Days.List)
		days.PUT("/meals", h.Days.AddMeal)
		days.DELETE("/meals/:type", h.Days.RemoveMeal)
		days.PUT("/meals/:type/consumed", h.Days.AddConsumed)
		days.PUT("/meals/:type/consumed/:id", h.Days.RemoveConsumed)
		days.GET("/:name", h.Days.Get)
		days.GET("/:name/summary", h.Days.Summary)
		days.DELETE("/:name", h.Days.Delete)
	}

	r.GET("/healthz", func(c *gin.Context) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				logger.Warn("health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	logger.Info("router initialized")

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
