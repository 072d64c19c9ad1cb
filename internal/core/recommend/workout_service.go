package recommend

import (
	"context"
	"math"
	"strings"
	"time"

	"fittrack-api/internal/core/cache"
	"fittrack-api/internal/core/dataset"
	"fittrack-api/internal/pkg/common"
)

// WorkoutService 運動推薦服務
type WorkoutService struct {
	store      *dataset.Store
	cacheStore cache.Store
}

// NewWorkoutService 創建運動推薦服務
func NewWorkoutService(store *dataset.Store, cacheStore cache.Store) *WorkoutService {
	return &WorkoutService{
		store:      store,
		cacheStore: cacheStore,
	}
}

// Recommend 產生一筆運動推薦
func (s *WorkoutService) Recommend(ctx context.Context, profile common.WorkoutProfile) (*common.WorkoutPlan, error) {
	start := time.Now()
	normalized := NormalizeWorkoutProfile(profile)

	// 檢查快取
	key, keyErr := cacheKey("workout", normalized)
	if keyErr == nil && s.cacheStore != nil {
		if val, err := s.cacheStore.Get(ctx, key); err == nil && val != "" {
			var plan common.WorkoutPlan
			if err := common.ParseJSON(val, &plan); err == nil {
				return &plan, nil
			}
		}
	}

	candidates := FilterWorkoutRows(s.store.Snapshot().Workout)

	// 載入時已保證非空，此處為防禦性檢查
	if len(candidates) == 0 {
		common.LogRecommendation("workout", 0, time.Since(start), common.ErrDatasetEmpty)
		return nil, common.ErrDatasetEmpty
	}

	// 線性掃描取最高分；嚴格大於才取代，平手時最先出現的列勝出
	bestIdx := 0
	bestScore := math.Inf(-1)
	for i := range candidates {
		if score := ScoreWorkoutRow(&normalized, &candidates[i]); score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	plan := projectWorkoutPlan(&candidates[bestIdx])

	// 寫入快取
	if keyErr == nil && s.cacheStore != nil {
		if data, err := common.ToJSON(plan); err == nil {
			_ = s.cacheStore.Set(ctx, key, data)
		}
	}

	common.LogRecommendation("workout", bestScore, time.Since(start), nil)
	return plan, nil
}

// projectWorkoutPlan 將選中的列投影成運動計畫
// 動作清單以字面 ", " 切開，保持資料集內的順序
func projectWorkoutPlan(row *dataset.WorkoutRow) *common.WorkoutPlan {
	return &common.WorkoutPlan{
		WorkoutType:  row.RecommendedWorkout,
		Exercises:    strings.Split(row.WorkoutExercises, ", "),
		DurationMins: row.WorkoutTimeMins,
	}
}
