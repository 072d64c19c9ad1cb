package recommend

import (
	"errors"
	"net/http"

	"fittrack-api/internal/core/chatbot"
	recommendService "fittrack-api/internal/core/recommend"
	"fittrack-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 表單允許的列舉值，與資料集的標準寫法一致
var (
	allowedGenders        = []string{"Male", "Female"}
	allowedDietGoals      = []string{"Lose Weight", "Gain Muscle", "Maintain Weight"}
	allowedDietTypes      = []string{"Vegan", "Vegetarian", "Non-Vegetarian", "Eggetarian"}
	allowedActivityLevels = []string{"Sedentary", "Lightly Active", "Moderately Active", "Very Active", "Super Active"}
	allowedFitnessLevels  = []string{"Beginner", "Intermediate", "Advanced"}
	allowedWorkoutGoals   = []string{"Strength", "Endurance", "Flexibility", "Weight Loss"}
	allowedPreferences    = []string{"Home", "Gym", "Outdoor"}
)

// Handler 推薦相關的處理器
type Handler struct {
	dietService    *recommendService.DietService
	workoutService *recommendService.WorkoutService
	chatService    *chatbot.Service
}

// NewHandler 創建推薦處理器
func NewHandler(dietService *recommendService.DietService, workoutService *recommendService.WorkoutService, chatService *chatbot.Service) *Handler {
	return &Handler{
		dietService:    dietService,
		workoutService: workoutService,
		chatService:    chatService,
	}
}

// DietRecommendRequest 飲食推薦請求
type DietRecommendRequest struct {
	Age               int    `json:"age" binding:"required"`
	Gender            string `json:"gender" binding:"required"`
	Goal              string `json:"goal" binding:"required"`
	DietType          string `json:"diet_type" binding:"required"`
	Allergies         string `json:"allergies"`          // 可選，逗號分隔
	MedicalConditions string `json:"medical_conditions"` // 可選，逗號分隔
	ActivityLevel     string `json:"activity_level" binding:"required"`
}

// WorkoutRecommendRequest 運動推薦請求
type WorkoutRecommendRequest struct {
	Age          int    `json:"age" binding:"required"`
	Gender       string `json:"gender" binding:"required"`
	FitnessLevel string `json:"fitness_level" binding:"required"`
	Goal         string `json:"goal" binding:"required"`
	Preference   string `json:"preference" binding:"required"`
	TimeMins     int    `json:"time"` // 可選，預設 60 分鐘
}

// HandleDietRecommend 處理 /recommend/diet 飲食推薦 API
func (h *Handler) HandleDietRecommend(c *gin.Context) {
	requestID := requestID(c)

	var req DietRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// 列舉驗證屬於外層的責任，核心對未知值一律以不匹配計分
	if err := validateDietRequest(&req); err != nil {
		common.LogWarn("飲食推薦請求驗證失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 未填的限制條件以 "None" 帶入，與正規化的無限制語意對齊
	allergies := valueOrNone(req.Allergies)
	medicalConditions := valueOrNone(req.MedicalConditions)

	profile := common.DietProfile{
		Age:               &req.Age,
		Gender:            req.Gender,
		Goal:              req.Goal,
		DietType:          req.DietType,
		Allergies:         &allergies,
		MedicalConditions: &medicalConditions,
		ActivityLevel:     req.ActivityLevel,
	}

	plan, err := h.dietService.Recommend(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, common.ErrDatasetEmpty) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No suitable diet plan found"})
			return
		}
		common.LogError("飲食推薦失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Diet recommendation failed"})
		return
	}

	// 針對剛產生的計畫請聊天機器人補一段建議
	tips := h.chatService.DietTips(c.Request.Context(), req.DietType, plan)

	common.LogInfo("飲食推薦成功",
		zap.String("request_id", requestID),
		zap.Int("total_calories", plan.TotalCalories),
	)

	c.JSON(http.StatusOK, gin.H{
		"recommendation": plan,
		"tips":           tips,
	})
}

// HandleWorkoutRecommend 處理 /recommend/workout 運動推薦 API
func (h *Handler) HandleWorkoutRecommend(c *gin.Context) {
	requestID := requestID(c)

	var req WorkoutRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.TimeMins == 0 {
		req.TimeMins = 60
	}

	if err := validateWorkoutRequest(&req); err != nil {
		common.LogWarn("運動推薦請求驗證失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := common.WorkoutProfile{
		Age:               &req.Age,
		Gender:            req.Gender,
		FitnessLevel:      req.FitnessLevel,
		Goal:              req.Goal,
		WorkoutPreference: req.Preference,
		WorkoutTimeMins:   &req.TimeMins,
	}

	plan, err := h.workoutService.Recommend(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, common.ErrDatasetEmpty) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No suitable workout plan found"})
			return
		}
		common.LogError("運動推薦失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Workout recommendation failed"})
		return
	}

	tips := h.chatService.WorkoutTips(c.Request.Context(), req.FitnessLevel, req.Preference, plan)

	common.LogInfo("運動推薦成功",
		zap.String("request_id", requestID),
		zap.String("workout_type", plan.WorkoutType),
		zap.Int("duration", plan.DurationMins),
	)

	c.JSON(http.StatusOK, gin.H{
		"recommendation": plan,
		"tips":           tips,
	})
}

// validateDietRequest 驗證飲食推薦請求
func validateDietRequest(req *DietRecommendRequest) error {
	if req.Age < 1 || req.Age > 120 {
		return common.NewValidationError("Age must be between 1 and 120")
	}
	if !contains(allowedGenders, req.Gender) {
		return common.NewValidationError("Invalid gender")
	}
	if !contains(allowedDietGoals, req.Goal) {
		return common.NewValidationError("Invalid goal")
	}
	if !contains(allowedDietTypes, req.DietType) {
		return common.NewValidationError("Invalid diet type")
	}
	if !contains(allowedActivityLevels, req.ActivityLevel) {
		return common.NewValidationError("Invalid activity level")
	}
	return nil
}

// validateWorkoutRequest 驗證運動推薦請求
func validateWorkoutRequest(req *WorkoutRecommendRequest) error {
	if req.Age < 1 || req.Age > 120 {
		return common.NewValidationError("Age must be between 1 and 120")
	}
	if !contains(allowedGenders, req.Gender) {
		return common.NewValidationError("Invalid gender")
	}
	if !contains(allowedFitnessLevels, req.FitnessLevel) {
		return common.NewValidationError("Invalid fitness level")
	}
	if !contains(allowedWorkoutGoals, req.Goal) {
		return common.NewValidationError("Invalid goal")
	}
	if !contains(allowedPreferences, req.Preference) {
		return common.NewValidationError("Invalid workout preference")
	}
	if req.TimeMins < 10 || req.TimeMins > 240 {
		return common.NewValidationError("Workout time must be between 10 and 240 minutes")
	}
	return nil
}

// requestID 取得或生成請求 ID
func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = common.GenerateUUID()
		c.Header("X-Request-ID", id)
	}
	return id
}

// valueOrNone 空字串回傳 "None"
func valueOrNone(value string) string {
	if value == "" {
		return "None"
	}
	return value
}

// contains 檢查值是否在允許清單內
func contains(allowed []string, value string) bool {
	for _, item := range allowed {
		if item == value {
			return true
		}
	}
	return false
}
