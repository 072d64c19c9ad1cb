package chatbot

import (
	"context"
	"fmt"

	"fittrack-api/internal/infrastructure/config"
	"fittrack-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 聊天機器人服務
// 先做問候與不當字眼的短路判斷，再做意圖分類；
// 落在 fitness/health/nutrition 之外的查詢直接導回主題
type Service struct {
	config     *config.Config
	classifier *Classifier
	remote     *AdviceClient
}

// NewService 創建聊天機器人服務
func NewService(cfg *config.Config) *Service {
	s := &Service{
		config:     cfg,
		classifier: NewClassifier(),
	}
	if cfg.Advice.Enabled {
		s.remote = NewAdviceClient(cfg)
	}
	return s
}

// Respond 處理一則使用者訊息
// summary 為最近一次推薦的摘要，可為空字串
func (s *Service) Respond(ctx context.Context, message, summary string) string {
	if message == "" {
		return replyEmptyInput
	}

	if containsOffensive(message) {
		return replyOffensive
	}

	if isGreeting(message) {
		return replyGreeting
	}

	category := s.classifier.Classify(message)
	common.LogDebug("訊息分類完成",
		zap.String("category", category),
	)

	if category != CategoryFitness && category != CategoryHealth && category != CategoryNutrition {
		return replyOffTopic
	}

	// 啟用遠端產生器時優先使用，失敗退回模板
	if s.remote != nil {
		prompt := message
		if summary != "" {
			prompt = fmt.Sprintf("%s\nUser's current plan: %s", message, summary)
		}
		if reply, err := s.remote.Generate(ctx, prompt); err == nil && reply != "" {
			return reply
		} else if err != nil {
			common.LogWarn("遠端建議產生失敗，退回模板回覆",
				zap.Error(err),
			)
		}
	}

	return templateResponse(category, summary)
}

// DietTips 針對剛產生的飲食計畫給出建議
func (s *Service) DietTips(ctx context.Context, dietType string, plan *common.MealPlan) string {
	summary := common.FormatMealPlan(plan)

	if s.remote != nil {
		prompt := fmt.Sprintf("Provide tips for a %s diet plan: %s", dietType, summary)
		if reply, err := s.remote.Generate(ctx, prompt); err == nil && reply != "" {
			return reply
		} else if err != nil {
			common.LogWarn("遠端建議產生失敗，退回模板回覆",
				zap.Error(err),
			)
		}
	}

	return templateResponse(CategoryNutrition, summary)
}

// WorkoutTips 針對剛產生的運動計畫給出建議
func (s *Service) WorkoutTips(ctx context.Context, fitnessLevel, preference string, plan *common.WorkoutPlan) string {
	summary := common.FormatWorkoutPlan(plan)

	if s.remote != nil {
		prompt := fmt.Sprintf("Provide tips for a %s %s workout plan: %s",
			fitnessLevel, preference, summary)
		if reply, err := s.remote.Generate(ctx, prompt); err == nil && reply != "" {
			return reply
		} else if err != nil {
			common.LogWarn("遠端建議產生失敗，退回模板回覆",
				zap.Error(err),
			)
		}
	}

	return templateResponse(CategoryFitness, summary)
}
