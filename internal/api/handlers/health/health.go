package health

import (
	"net/http"
	"runtime"
	"time"

	"fittrack-api/internal/core/dataset"
	"fittrack-api/internal/infrastructure/config"
	"fittrack-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Datasets  *DatasetStatus         `json:"datasets,omitempty"`
}

// DatasetStatus 資料集狀態
type DatasetStatus struct {
	DietRows    int       `json:"diet_rows"`
	WorkoutRows int       `json:"workout_rows"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	// 獲取配置
	cfg, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Configuration not found",
		})
		return
	}
	config, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	// 構建響應
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	// 附上資料集快照狀態
	if store, exists := c.Get("dataset_store"); exists {
		if s, ok := store.(*dataset.Store); ok {
			snap := s.Snapshot()
			response.Datasets = &DatasetStatus{
				DietRows:    len(snap.Diet),
				WorkoutRows: len(snap.Workout),
				LoadedAt:    snap.LoadedAt,
			}
		}
	}

	// 記錄請求
	common.LogInfo("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器
// 資料集載入失敗會直接中止啟動，能走到這裡即代表快照可用
func ReadinessCheck(c *gin.Context) {
	if store, exists := c.Get("dataset_store"); exists {
		if s, ok := store.(*dataset.Store); ok && s.Snapshot() != nil {
			c.JSON(http.StatusOK, gin.H{
				"status": "ready",
			})
			return
		}
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status": "not ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
