package common

import (
	"fmt"
	"strings"
)

// DietProfile 飲食推薦的使用者輪廓
// 欄位允許缺省：缺省的屬性在比對時視為「永遠匹配」，由核心逐列補上候選列自身的值
type DietProfile struct {
	Age               *int    `json:"age,omitempty"`
	Gender            string  `json:"gender,omitempty"`
	Goal              string  `json:"goal,omitempty"`
	DietType          string  `json:"diet_type,omitempty"`
	Allergies         *string `json:"allergies,omitempty"`
	MedicalConditions *string `json:"medical_conditions,omitempty"`
	ActivityLevel     string  `json:"activity_level,omitempty"`
}

// WorkoutProfile 運動推薦的使用者輪廓
type WorkoutProfile struct {
	Age               *int   `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	FitnessLevel      string `json:"fitness_level,omitempty"`
	Goal              string `json:"goal,omitempty"`
	WorkoutPreference string `json:"preference,omitempty"`
	WorkoutTimeMins   *int   `json:"time,omitempty"`
}

// MealSlot 單一餐次
type MealSlot struct {
	Meal     string `json:"Meal"`     // 餐點名稱
	Calories int    `json:"Calories"` // 熱量（大卡）
}

// MealPlan 飲食推薦結果
// JSON 鍵名沿用資料集的餐次命名
type MealPlan struct {
	Breakfast     MealSlot `json:"Breakfast"`
	MidMorning    MealSlot `json:"Mid-Morning"`
	Lunch         MealSlot `json:"Lunch"`
	EveningSnack  MealSlot `json:"Evening Snack"`
	Dinner        MealSlot `json:"Dinner"`
	PostDinner    MealSlot `json:"Post-Dinner"`
	TotalCalories int      `json:"Total Calories"`
}

// WorkoutPlan 運動推薦結果
type WorkoutPlan struct {
	WorkoutType  string   `json:"Workout_Type"`
	Exercises    []string `json:"Exercises"`
	DurationMins int      `json:"Duration"` // 每日分鐘數
}

// FormatMealPlan 將飲食計畫轉成單行摘要，提供給聊天機器人產生建議
func FormatMealPlan(p *MealPlan) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf(
		"Breakfast: %s (%d cal), Mid-Morning: %s (%d cal), Lunch: %s (%d cal), "+
			"Evening Snack: %s (%d cal), Dinner: %s (%d cal), Post-Dinner: %s (%d cal), "+
			"Total Calories: %d cal",
		p.Breakfast.Meal, p.Breakfast.Calories,
		p.MidMorning.Meal, p.MidMorning.Calories,
		p.Lunch.Meal, p.Lunch.Calories,
		p.EveningSnack.Meal, p.EveningSnack.Calories,
		p.Dinner.Meal, p.Dinner.Calories,
		p.PostDinner.Meal, p.PostDinner.Calories,
		p.TotalCalories,
	)
}

// FormatWorkoutPlan 將運動計畫轉成單行摘要
func FormatWorkoutPlan(p *WorkoutPlan) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%s with exercises %s for %d minutes",
		p.WorkoutType, strings.Join(p.Exercises, ", "), p.DurationMins)
}
