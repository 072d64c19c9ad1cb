package recommend

import (
	"testing"

	"fittrack-api/internal/core/dataset"
	"fittrack-api/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

const scoreEpsilon = 1e-9

func sampleDietRow() dataset.DietRow {
	return dataset.DietRow{
		Age:           30,
		Gender:        "Male",
		Goal:          "Lose Weight",
		DietType:      "Vegan",
		ActivityLevel: "Moderately Active",
	}
}

func TestScoreDietRowPerfectMatch(t *testing.T) {
	row := sampleDietRow()
	profile := common.DietProfile{
		Age:           intPtr(30),
		Gender:        "Male",
		Goal:          "Lose Weight",
		DietType:      "Vegan",
		ActivityLevel: "Moderately Active",
	}

	assert.InDelta(t, 1.0, ScoreDietRow(&profile, &row), scoreEpsilon)
}

func TestScoreDietRowEmptyProfileAlwaysPerfect(t *testing.T) {
	// 缺省屬性逐列補上候選列自身的值，空輪廓對任何列都是滿分
	row := sampleDietRow()
	profile := common.DietProfile{}

	assert.InDelta(t, 1.0, ScoreDietRow(&profile, &row), scoreEpsilon)
}

func TestScoreDietRowAgeLinearDecay(t *testing.T) {
	// 年齡差 25 歲：0.2 * (1 - 25/50) = 0.1，其餘全中
	row := sampleDietRow()
	profile := common.DietProfile{
		Age:           intPtr(55),
		Gender:        "Male",
		Goal:          "Lose Weight",
		DietType:      "Vegan",
		ActivityLevel: "Moderately Active",
	}

	assert.InDelta(t, 0.9, ScoreDietRow(&profile, &row), scoreEpsilon)
}

func TestScoreDietRowAgeFiftyYearGap(t *testing.T) {
	// 年齡差剛好 50 歲時年齡項歸零：0.2 * (1 - 50/50) = 0，其餘全中為 0.8
	row := sampleDietRow()
	profile := common.DietProfile{
		Age:           intPtr(80),
		Gender:        "Male",
		Goal:          "Lose Weight",
		DietType:      "Vegan",
		ActivityLevel: "Moderately Active",
	}

	assert.InDelta(t, 0.8, ScoreDietRow(&profile, &row), scoreEpsilon)
}

func TestScoreDietRowAgeTermGoesNegative(t *testing.T) {
	// 年齡差 100 歲時年齡項為 0.2 * (1 - 100/50) = -0.2，
	// 低端不截斷，其餘全不中時總分為負
	row := dataset.DietRow{
		Age:           20,
		Gender:        "Male",
		Goal:          "Lose Weight",
		DietType:      "Vegan",
		ActivityLevel: "Moderately Active",
	}
	profile := common.DietProfile{
		Age:           intPtr(120),
		Gender:        "Female",
		Goal:          "Gain Muscle",
		DietType:      "Vegetarian",
		ActivityLevel: "Sedentary",
	}

	assert.InDelta(t, -0.2, ScoreDietRow(&profile, &row), scoreEpsilon)
}

func sampleWorkoutRow() dataset.WorkoutRow {
	return dataset.WorkoutRow{
		Age:               30,
		Gender:            "Male",
		FitnessLevel:      "Intermediate",
		Goal:              "Strength",
		WorkoutPreference: "Gym",
		WorkoutTimeMins:   60,
	}
}

func TestScoreWorkoutRowPerfectMatch(t *testing.T) {
	row := sampleWorkoutRow()
	profile := common.WorkoutProfile{
		Age:               intPtr(30),
		Gender:            "Male",
		FitnessLevel:      "Intermediate",
		Goal:              "Strength",
		WorkoutPreference: "Gym",
		WorkoutTimeMins:   intPtr(60),
	}

	// 六個項目的權重總和為 1.2
	assert.InDelta(t, 1.2, ScoreWorkoutRow(&profile, &row), scoreEpsilon)
}

func TestScoreWorkoutRowTimeDecay(t *testing.T) {
	// 時間差 60 分鐘：0.2 * (1 - 60/120) = 0.1
	row := sampleWorkoutRow()
	profile := common.WorkoutProfile{
		Age:               intPtr(30),
		Gender:            "Male",
		FitnessLevel:      "Intermediate",
		Goal:              "Strength",
		WorkoutPreference: "Gym",
		WorkoutTimeMins:   intPtr(120),
	}

	assert.InDelta(t, 1.1, ScoreWorkoutRow(&profile, &row), scoreEpsilon)
}

func TestScoreWorkoutRowTimeTermClampsAtZero(t *testing.T) {
	// 時間差超過 120 分鐘時時間項飽和歸零，不像年齡項會轉負
	row := sampleWorkoutRow()
	profile := common.WorkoutProfile{
		Age:               intPtr(30),
		Gender:            "Male",
		FitnessLevel:      "Intermediate",
		Goal:              "Strength",
		WorkoutPreference: "Gym",
		WorkoutTimeMins:   intPtr(240),
	}

	assert.InDelta(t, 1.0, ScoreWorkoutRow(&profile, &row), scoreEpsilon)
}

func TestScoreWorkoutRowEmptyProfile(t *testing.T) {
	row := sampleWorkoutRow()
	profile := common.WorkoutProfile{}

	assert.InDelta(t, 1.2, ScoreWorkoutRow(&profile, &row), scoreEpsilon)
}
