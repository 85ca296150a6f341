package health

import (
	"net/http"
	"runtime"
	"time"

	"menu-image-resolver/internal/core/catalog"
	"menu-image-resolver/internal/core/menuimage"
	"menu-image-resolver/internal/infrastructure/config"
	"menu-image-resolver/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Catalogs  map[string]int         `json:"catalogs"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	cfg, ok := c.MustGet("config").(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, common.ErrInternalError.Response(false))
		return
	}
	resolver, ok := c.MustGet("resolver").(*menuimage.Resolver)
	if !ok {
		common.LogError("Invalid resolver type in context")
		c.JSON(http.StatusInternalServerError, common.ErrInternalError.Response(false))
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		Catalogs: map[string]int{
			string(catalog.FamilyIllustrated):  resolver.Illustrated().Len(),
			string(catalog.FamilyPhotographic): resolver.Photographic().Len(),
		},
	})
}

// ReadinessCheck 就緒檢查處理器，圖庫為空時未就緒
func ReadinessCheck(c *gin.Context) {
	resolver, ok := c.MustGet("resolver").(*menuimage.Resolver)
	if !ok || resolver.Illustrated().Len() == 0 || resolver.Photographic().Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, common.ErrServiceUnavailable.Response(false))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
