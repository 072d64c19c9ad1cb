package recommend

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fittrack-api/internal/core/cache"
	"fittrack-api/internal/core/dataset"
	"fittrack-api/internal/infrastructure/config"
	"fittrack-api/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

const dietHeader = "Age,Gender,Goal,Diet_Type,Allergies,Medical_Conditions,Activity_Level," +
	"Recommended_Breakfast,Breakfast_Calories,Recommended_Mid-Morning,Mid-Morning_Calories," +
	"Recommended_Lunch,Lunch_Calories,Recommended_Evening_Snack,Evening_Snack_Calories," +
	"Recommended_Dinner,Dinner_Calories,Recommended_Post-Dinner,Post-Dinner_Calories"

const workoutHeader = "Age,Gender,Fitness_Level,Goal,Workout_Time_per_day_mins," +
	"Workout_Preference,Recommended_Workout,Workout_Exercises"

var defaultWorkoutRows = []string{
	`30,Male,Intermediate,Strength,60,Gym,Push Pull Legs Split,"Bench Press, Barbell Row, Squat"`,
	`55,Female,Beginner,Flexibility,30,Home,Gentle Yoga Flow,"Cat Cow, Child Pose, Supine Twist"`,
}

var defaultDietRows = []string{
	"30,Male,Lose Weight,Vegan,None,None,Moderately Active,Oatmeal,300,Apple,95,Quinoa salad,450,Roasted chickpeas,160,Vegetable stir fry,400,Herbal tea,0",
}

// newTestStore 以給定資料列組出兩份暫存 CSV 並載入
func newTestStore(t *testing.T, dietRows, workoutRows []string) *dataset.Store {
	t.Helper()
	if dietRows == nil {
		dietRows = defaultDietRows
	}
	if workoutRows == nil {
		workoutRows = defaultWorkoutRows
	}

	dir := t.TempDir()
	dietPath := filepath.Join(dir, "diet.csv")
	workoutPath := filepath.Join(dir, "workout.csv")

	dietCSV := dietHeader + "\n" + strings.Join(dietRows, "\n") + "\n"
	workoutCSV := workoutHeader + "\n" + strings.Join(workoutRows, "\n") + "\n"
	require.NoError(t, os.WriteFile(dietPath, []byte(dietCSV), 0644))
	require.NoError(t, os.WriteFile(workoutPath, []byte(workoutCSV), 0644))

	store, err := dataset.NewStore(dietPath, workoutPath)
	require.NoError(t, err)
	return store
}

func TestDietRecommendSkipsAllergicRow(t *testing.T) {
	// 兩列的輪廓欄位完全相同，只有過敏原不同；
	// 帶著花生過敏的使用者應拿到第二列的計畫
	store := newTestStore(t, []string{
		"30,Male,Lose Weight,Vegan,Peanuts,None,Moderately Active,Peanut butter toast,350,Apple,95,Quinoa salad,450,Trail mix,200,Vegetable stir fry,400,Herbal tea,0",
		"30,Male,Lose Weight,Vegan,None,None,Moderately Active,Chia pudding,280,Pear,90,Buddha bowl,430,Roasted chickpeas,160,Lentil curry,420,Warm soy milk,120",
	}, nil)
	svc := NewDietService(store, nil)

	plan, err := svc.Recommend(context.Background(), common.DietProfile{
		Age:           intPtr(30),
		Gender:        "male",
		Goal:          "lose weight",
		DietType:      "vegan",
		Allergies:     strPtr("peanut"),
		ActivityLevel: "moderately active",
	})
	require.NoError(t, err)

	assert.Equal(t, "Chia pudding", plan.Breakfast.Meal)
	assert.Equal(t, 280+90+430+160+420+120, plan.TotalCalories)
}

func TestDietRecommendFirstRowWinsOnTie(t *testing.T) {
	// 分數相同時最先出現的列勝出，結果可重現
	store := newTestStore(t, []string{
		"30,Male,Lose Weight,Vegan,None,None,Moderately Active,First breakfast,300,Apple,95,Quinoa salad,450,Roasted chickpeas,160,Vegetable stir fry,400,Herbal tea,0",
		"30,Male,Lose Weight,Vegan,None,None,Moderately Active,Second breakfast,300,Apple,95,Quinoa salad,450,Roasted chickpeas,160,Vegetable stir fry,400,Herbal tea,0",
	}, nil)
	svc := NewDietService(store, nil)

	profile := common.DietProfile{
		Age:           intPtr(30),
		Gender:        "Male",
		Goal:          "Lose Weight",
		DietType:      "Vegan",
		ActivityLevel: "Moderately Active",
	}

	for i := 0; i < 5; i++ {
		plan, err := svc.Recommend(context.Background(), profile)
		require.NoError(t, err)
		assert.Equal(t, "First breakfast", plan.Breakfast.Meal)
	}
}

func TestDietRecommendFallbackWhenFilteredOut(t *testing.T) {
	// 唯一一列也被過敏原排除時退回完整資料表，仍要給出計畫
	store := newTestStore(t, []string{
		"30,Male,Lose Weight,Vegan,Peanuts,None,Moderately Active,Peanut oats,350,Apple,95,Quinoa salad,450,Trail mix,200,Vegetable stir fry,400,Herbal tea,0",
	}, nil)
	svc := NewDietService(store, nil)

	plan, err := svc.Recommend(context.Background(), common.DietProfile{
		Age:       intPtr(30),
		Allergies: strPtr("peanut"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Peanut oats", plan.Breakfast.Meal)
}

func TestDietRecommendPostDinnerZeroWhenMealEmpty(t *testing.T) {
	// Post-Dinner 餐點為空時熱量以 0 計，即使該欄位帶著殘留數值
	store := newTestStore(t, []string{
		"30,Male,Lose Weight,Vegan,None,None,Moderately Active,Oatmeal,300,Apple,95,Quinoa salad,450,Roasted chickpeas,160,Vegetable stir fry,400,,150",
	}, nil)
	svc := NewDietService(store, nil)

	plan, err := svc.Recommend(context.Background(), common.DietProfile{Age: intPtr(30)})
	require.NoError(t, err)

	assert.Equal(t, 0, plan.PostDinner.Calories)
	assert.Equal(t, 300+95+450+160+400, plan.TotalCalories)
}

func TestDietRecommendUsesCache(t *testing.T) {
	cfg := &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         10,
			TTL:             time.Minute,
			CleanupInterval: time.Minute,
		},
	}
	manager := cache.NewManager(cfg)
	require.NotNil(t, manager)
	defer manager.Close()

	store := newTestStore(t, nil, nil)
	svc := NewDietService(store, manager)

	profile := common.DietProfile{Age: intPtr(30), Gender: "Male"}

	first, err := svc.Recommend(context.Background(), profile)
	require.NoError(t, err)
	second, err := svc.Recommend(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	stats := manager.GetStats()
	assert.Equal(t, int64(1), stats["hits"])
}

func TestWorkoutRecommend(t *testing.T) {
	store := newTestStore(t, nil, nil)
	svc := NewWorkoutService(store, nil)

	plan, err := svc.Recommend(context.Background(), common.WorkoutProfile{
		Age:               intPtr(30),
		Gender:            "male",
		FitnessLevel:      "intermediate",
		Goal:              "strength",
		WorkoutPreference: "gym",
		WorkoutTimeMins:   intPtr(60),
	})
	require.NoError(t, err)

	assert.Equal(t, "Push Pull Legs Split", plan.WorkoutType)
	assert.Equal(t, []string{"Bench Press", "Barbell Row", "Squat"}, plan.Exercises)
	assert.Equal(t, 60, plan.DurationMins)
}

func TestWorkoutRecommendAbsentTimeMatchesAnyRow(t *testing.T) {
	// 缺省的運動時間視為永遠匹配，選擇只由其餘欄位決定
	store := newTestStore(t, nil, nil)
	svc := NewWorkoutService(store, nil)

	plan, err := svc.Recommend(context.Background(), common.WorkoutProfile{
		Gender:            "female",
		FitnessLevel:      "beginner",
		Goal:              "flexibility",
		WorkoutPreference: "home",
	})
	require.NoError(t, err)

	assert.Equal(t, "Gentle Yoga Flow", plan.WorkoutType)
	assert.Equal(t, 30, plan.DurationMins)
}
