package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/comitanigiacomo/rings-closed-engine/docs"
	"github.com/comitanigiacomo/rings-closed-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/rings-closed-engine/internal/observability"
)

type RouterDependencies struct {
	AuthHandler     *AuthHandler
	ActivityHandler *ActivityHandler
	StreakHandler   *StreakHandler
	Tokens          middleware.TokenValidator
	DB              *sqlx.DB
	Redis           *redis.Client
	Logger          *zap.Logger
	StartTime       time.Time
	RateLimit       int
	RateWindow      time.Duration
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	router.GET("/health", healthCheck(deps))
	router.GET("/metrics", observability.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	if deps.Redis != nil && deps.RateLimit > 0 {
		apiV1.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateWindow, log))
	}

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		deps.ActivityHandler.RegisterRoutes(protected)
		deps.StreakHandler.RegisterRoutes(protected)
	}

	return router
}

// healthCheck reports 503 only when the database is down. Redis is optional:
// without it the service runs uncached and unthrottled.
func healthCheck(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		dbStatus := "connected"
		if deps.DB == nil || deps.DB.PingContext(ctx) != nil {
			dbStatus = "unreachable"
		}

		redisStatus := "connected"
		switch {
		case deps.Redis == nil:
			redisStatus = "disabled"
		case deps.Redis.Ping(ctx).Err() != nil:
			redisStatus = "unreachable"
		}

		statusCode := http.StatusOK
		status := "ok"
		if dbStatus != "connected" {
			statusCode = http.StatusServiceUnavailable
			status = "degraded"
		}

		c.JSON(statusCode, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).Round(time.Second).String(),
		})
	}
}
