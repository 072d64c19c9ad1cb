package chatbot

import (
	"fmt"
	"strings"
)

// 固定回覆
const (
	replyEmptyInput = "Please enter a valid question."
	replyOffensive  = "Let's keep things positive - I'm here to assist you with any fitness or health questions you have."
	replyGreeting   = "Hello! How can I assist you with fitness or health today?"
	replyOffTopic   = "I'm here to help with fitness and health-related questions. Please ask something in that area."
)

// 問候語與需要擋下的字眼
var (
	greetings = []string{
		"hi", "hello", "hey", "good morning", "good afternoon", "good evening",
		"yo", "what's up", "howdy",
	}
	offensiveWords = []string{
		"stupid", "idiot", "dumb", "hate you", "shut up", "useless",
	}
)

// isGreeting 判斷輸入是否為問候語
func isGreeting(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, greet := range greetings {
		if strings.Contains(lower, greet) {
			return true
		}
	}
	return false
}

// containsOffensive 判斷輸入是否包含不當字眼
func containsOffensive(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range offensiveWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// templateResponse 依分類結果套用建議模板
// 有推薦摘要時附在建議後面，讓回覆扣著使用者剛拿到的計畫
func templateResponse(category, summary string) string {
	var advice string
	switch category {
	case CategoryFitness:
		advice = "Consistency beats intensity: schedule your workouts like appointments, " +
			"warm up before you start, and increase load gradually week over week. " +
			"Rest days are part of the plan, not a break from it."
	case CategoryHealth:
		advice = "Focus on the basics first: seven to nine hours of sleep, regular hydration " +
			"through the day, and daily movement. Track how you feel alongside what you do, " +
			"and talk to a professional about anything persistent."
	case CategoryNutrition:
		advice = "Build meals around protein and vegetables, keep portions consistent, " +
			"and avoid cutting calories too aggressively. Small sustainable changes " +
			"outlast strict plans you cannot keep."
	default:
		return replyOffTopic
	}

	if summary != "" {
		return fmt.Sprintf("%s Here is your current plan for reference: %s", advice, summary)
	}
	return advice
}
