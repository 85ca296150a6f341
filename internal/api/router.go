package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"menu-image-resolver/internal/api/handlers/health"
	"menu-image-resolver/internal/api/handlers/images"
	"menu-image-resolver/internal/api/middleware"
	"menu-image-resolver/internal/core/menuimage"
	"menu-image-resolver/internal/core/stats"
	"menu-image-resolver/internal/infrastructure/config"
	"menu-image-resolver/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置路由
//
// 啟動時檢查 resolver 持有的圖庫資料完整性，失敗則不提供服務。
func SetupRouter(cfg *config.Config, resolver *menuimage.Resolver, recorder stats.Recorder) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if resolver == nil {
		return nil, errors.New("resolver is required")
	}
	if err := resolver.Verify(); err != nil {
		return nil, fmt.Errorf("catalog integrity check failed: %w", err)
	}

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	// CORS 設置，圖片選擇器 UI 由其他網域載入
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.BodyLimitBytes))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Server.RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("resolver", resolver)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", cfg.Server.RequestTimeout),
			)
			c.AbortWithStatusJSON(http.StatusRequestTimeout, common.ErrorResponse{
				Code:    common.ErrCodeRequestTimeout,
				Message: "Request timeout",
			})
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	h := images.NewHandler(resolver, recorder, cfg.App.Debug)

	api := router.Group("/api/v1")
	{
		imageGroup := api.Group("/images")
		{
			imageGroup.POST("/resolve", h.HandleResolve)
			imageGroup.POST("/resolve/batch", h.HandleResolveBatch)
		}

		catalogGroup := api.Group("/catalogs/:style")
		{
			catalogGroup.GET("", h.HandleListCatalog)
			catalogGroup.GET("/search", h.HandleSearch)
			catalogGroup.GET("/categories", h.HandleCategories)
			catalogGroup.GET("/categories/:category", h.HandleListByCategory)
			catalogGroup.GET("/entries/:id", h.HandleEntry)
		}

		api.GET("/stats", h.HandleStats)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.ErrNotFound.Response(false))
	})

	common.LogInfo("Router setup completed successfully",
		zap.Int("illustrated_entries", resolver.Illustrated().Len()),
		zap.Int("photographic_entries", resolver.Photographic().Len()),
		zap.Bool("stats_enabled", recorder != nil),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Int64("max_body_size", cfg.BodyLimitBytes),
	)

	return router, nil
}
