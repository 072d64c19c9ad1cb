package recommend

import (
	"math"

	"fittrack-api/internal/core/dataset"
	"fittrack-api/internal/pkg/common"
)

const (
	maxAgeDiff  = 50.0  // 年齡差距滿分到零分的跨度
	maxTimeDiff = 120.0 // 每日運動時間差距的飽和點（分鐘）
)

// ScoreDietRow 計算輪廓與候選列的加權相似度
//
// 缺省屬性逐列補上該候選列自身的值，等同「永遠匹配」並拿到整項權重。
// 年齡項為線性衰減且低端不截斷：差距超過 50 歲時該項轉負，
// 總分可能為負，此為既定行為，不得截到零。
func ScoreDietRow(p *common.DietProfile, row *dataset.DietRow) float64 {
	score := 0.0

	age := row.Age
	if p.Age != nil {
		age = *p.Age
	}
	ageDiff := math.Abs(float64(age - row.Age))
	score += 0.2 * (1 - ageDiff/maxAgeDiff)

	if pick(p.Gender, row.Gender) == row.Gender {
		score += 0.2
	}
	if pick(p.Goal, row.Goal) == row.Goal {
		score += 0.3
	}
	if pick(p.DietType, row.DietType) == row.DietType {
		score += 0.2
	}
	if pick(p.ActivityLevel, row.ActivityLevel) == row.ActivityLevel {
		score += 0.1
	}

	return score
}

// ScoreWorkoutRow 計算運動輪廓與候選列的加權相似度
// 時間項在 120 分鐘差距處飽和歸零（與年齡項不同，有下限截斷）
func ScoreWorkoutRow(p *common.WorkoutProfile, row *dataset.WorkoutRow) float64 {
	score := 0.0

	age := row.Age
	if p.Age != nil {
		age = *p.Age
	}
	ageDiff := math.Abs(float64(age - row.Age))
	score += 0.2 * (1 - ageDiff/maxAgeDiff)

	if pick(p.Gender, row.Gender) == row.Gender {
		score += 0.2
	}
	if pick(p.FitnessLevel, row.FitnessLevel) == row.FitnessLevel {
		score += 0.3
	}
	if pick(p.Goal, row.Goal) == row.Goal {
		score += 0.2
	}
	if pick(p.WorkoutPreference, row.WorkoutPreference) == row.WorkoutPreference {
		score += 0.1
	}

	mins := row.WorkoutTimeMins
	if p.WorkoutTimeMins != nil {
		mins = *p.WorkoutTimeMins
	}
	timeDiff := math.Abs(float64(mins - row.WorkoutTimeMins))
	score += 0.2 * (1 - math.Min(timeDiff/maxTimeDiff, 1))

	return score
}

// pick 輪廓值缺省時退回候選列自身的值
func pick(profileValue, rowValue string) string {
	if profileValue == "" {
		return rowValue
	}
	return profileValue
}
