package recommend

import (
	"strings"
	"unicode"

	"fittrack-api/internal/pkg/common"
)

// NormalizeDietProfile 將輪廓的類別欄位正規化成資料集的標準寫法
// 缺省欄位保持缺省，預設值的補齊發生在逐列計分時
func NormalizeDietProfile(p common.DietProfile) common.DietProfile {
	normalized := p
	normalized.Gender = titleCase(p.Gender)
	normalized.Goal = titleCase(p.Goal)
	normalized.DietType = titleCase(p.DietType)
	normalized.ActivityLevel = titleCase(p.ActivityLevel)

	// "none" 代表明確無限制，清空後下游直接跳過該輪過濾，
	// 而不是拿字面 "none" 去做子字串比對
	normalized.Allergies = clearNone(p.Allergies)
	normalized.MedicalConditions = clearNone(p.MedicalConditions)

	return normalized
}

// NormalizeWorkoutProfile 正規化運動輪廓
func NormalizeWorkoutProfile(p common.WorkoutProfile) common.WorkoutProfile {
	normalized := p
	normalized.Gender = titleCase(p.Gender)
	normalized.FitnessLevel = titleCase(p.FitnessLevel)
	normalized.Goal = titleCase(p.Goal)
	normalized.WorkoutPreference = titleCase(p.WorkoutPreference)
	return normalized
}

// titleCase 正規化成資料集的標準寫法：多餘空白收斂成單一空白，
// 每段連續字母的首字大寫其餘小寫，連字號後重新起算，
// 所以 "non-vegetarian" 會變成 "Non-Vegetarian"
func titleCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

// capitalize 每段連續字母的首字大寫、其餘小寫
func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	prevLetter := false
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if !prevLetter {
				runes[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(runes)
}

// clearNone 將字面 "none"（不分大小寫）視為明確無限制
func clearNone(value *string) *string {
	if value == nil {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(*value), "none") {
		return nil
	}
	return value
}
