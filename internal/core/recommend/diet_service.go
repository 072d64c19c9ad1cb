package recommend

import (
	"context"
	"math"
	"strings"
	"time"

	"fittrack-api/internal/core/cache"
	"fittrack-api/internal/core/dataset"
	"fittrack-api/internal/pkg/common"

	"go.uber.org/zap"
)

// DietService 飲食推薦服務
// 計分是對唯讀快照的純函數，任意數量的併發呼叫不需要協調
type DietService struct {
	store      *dataset.Store
	cacheStore cache.Store
}

// NewDietService 創建飲食推薦服務
func NewDietService(store *dataset.Store, cacheStore cache.Store) *DietService {
	return &DietService{
		store:      store,
		cacheStore: cacheStore,
	}
}

// Recommend 產生一筆飲食推薦
// 流程：正規化 → 限制過濾 → 逐列計分 → 取最高分列投影成餐食計畫
func (s *DietService) Recommend(ctx context.Context, profile common.DietProfile) (*common.MealPlan, error) {
	start := time.Now()
	normalized := NormalizeDietProfile(profile)

	// 檢查快取
	key, keyErr := cacheKey("diet", normalized)
	if keyErr == nil && s.cacheStore != nil {
		if val, err := s.cacheStore.Get(ctx, key); err == nil && val != "" {
			var plan common.MealPlan
			if err := common.ParseJSON(val, &plan); err == nil {
				return &plan, nil
			}
		}
	}

	rows := s.store.Snapshot().Diet
	candidates := FilterDietRows(rows, normalized.Allergies, normalized.MedicalConditions)

	// 載入時已保證非空，此處為防禦性檢查
	if len(candidates) == 0 {
		common.LogRecommendation("diet", 0, time.Since(start), common.ErrDatasetEmpty)
		return nil, common.ErrDatasetEmpty
	}

	// 線性掃描取最高分；嚴格大於才取代，平手時最先出現的列勝出
	bestIdx := 0
	bestScore := math.Inf(-1)
	for i := range candidates {
		if score := ScoreDietRow(&normalized, &candidates[i]); score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	plan := projectMealPlan(&candidates[bestIdx])

	// 寫入快取
	if keyErr == nil && s.cacheStore != nil {
		if data, err := common.ToJSON(plan); err == nil {
			_ = s.cacheStore.Set(ctx, key, data)
		}
	}

	common.LogRecommendation("diet", bestScore, time.Since(start), nil)
	return plan, nil
}

// projectMealPlan 將選中的列投影成餐食計畫
// Post-Dinner 餐點為空時熱量以 0 計；總熱量直接取自同一列的六個熱量欄位
func projectMealPlan(row *dataset.DietRow) *common.MealPlan {
	postDinnerCalories := row.PostDinnerCalories
	if strings.TrimSpace(row.RecommendedPostDinner) == "" {
		postDinnerCalories = 0
	}

	return &common.MealPlan{
		Breakfast: common.MealSlot{
			Meal:     row.RecommendedBreakfast,
			Calories: row.BreakfastCalories,
		},
		MidMorning: common.MealSlot{
			Meal:     row.RecommendedMidMorning,
			Calories: row.MidMorningCalories,
		},
		Lunch: common.MealSlot{
			Meal:     row.RecommendedLunch,
			Calories: row.LunchCalories,
		},
		EveningSnack: common.MealSlot{
			Meal:     row.RecommendedEveningSnack,
			Calories: row.EveningSnackCalories,
		},
		Dinner: common.MealSlot{
			Meal:     row.RecommendedDinner,
			Calories: row.DinnerCalories,
		},
		PostDinner: common.MealSlot{
			Meal:     row.RecommendedPostDinner,
			Calories: postDinnerCalories,
		},
		TotalCalories: row.BreakfastCalories + row.MidMorningCalories +
			row.LunchCalories + row.EveningSnackCalories +
			row.DinnerCalories + postDinnerCalories,
	}
}

// cacheKey 以正規化輪廓的 JSON 當作快取鍵的素材
func cacheKey(kind string, profile interface{}) (string, error) {
	data, err := common.ToJSON(profile)
	if err != nil {
		common.LogWarn("快取鍵生成失敗", zap.Error(err))
		return "", err
	}
	return kind + ":" + data, nil
}
