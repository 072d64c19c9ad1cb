package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	chatHandler "fittrack-api/internal/api/handlers/chat"
	"fittrack-api/internal/api/handlers/health"
	recommendHandler "fittrack-api/internal/api/handlers/recommend"
	"fittrack-api/internal/api/middleware"
	"fittrack-api/internal/core/cache"
	"fittrack-api/internal/core/chatbot"
	"fittrack-api/internal/core/dataset"
	recommendService "fittrack-api/internal/core/recommend"
	"fittrack-api/internal/infrastructure/config"
	"fittrack-api/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (1MB)：請求都是小型 JSON 輪廓
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheStore cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 重複請求去重
	router.Use(middleware.Deduplication(cfg))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 載入參考資料集：失敗直接中止啟動，不做降級
	store, err := dataset.NewStore(cfg.Dataset.DietPath, cfg.Dataset.WorkoutPath)
	if err != nil {
		common.LogError("Failed to load reference datasets", zap.Error(err))
		return nil, fmt.Errorf("failed to load reference datasets: %w", err)
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("advice_enabled", cfg.Advice.Enabled),
	)

	// 初始化推薦服務
	dietSvc := recommendService.NewDietService(store, cacheStore)
	workoutSvc := recommendService.NewWorkoutService(store, cacheStore)

	// 初始化聊天機器人服務
	chatSvc := chatbot.NewService(cfg)

	if dietSvc == nil || workoutSvc == nil || chatSvc == nil {
		common.LogError("Failed to initialize services: service returned nil")
		return nil, fmt.Errorf("failed to initialize services: service returned nil")
	}

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		// 設置配置與資料集存放器，供健康檢查使用
		c.Set("config", cfg)
		c.Set("dataset_store", store)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := recommendHandler.NewHandler(dietSvc, workoutSvc, chatSvc)

		// 推薦相關路由
		recommendGroup := api.Group("/recommend")
		{
			// 飲食推薦
			recommendGroup.POST("/diet", handler.HandleDietRecommend)

			// 運動推薦
			recommendGroup.POST("/workout", handler.HandleWorkoutRecommend)
		}

		// 聊天機器人
		api.POST("/chat", chatHandler.HandleChat(chatSvc))

		// 資料集熱更新：重讀兩份 CSV 後原子替換快照，進行中的請求不受影響
		api.POST("/dataset/reload", func(c *gin.Context) {
			if err := store.Reload(); err != nil {
				common.LogError("Dataset reload failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Dataset reload failed"})
				return
			}
			snap := store.Snapshot()
			c.JSON(http.StatusOK, gin.H{
				"status":       "reloaded",
				"diet_rows":    len(snap.Diet),
				"workout_rows": len(snap.Workout),
			})
		})
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
