package dataset

import (
	"sync/atomic"
	"time"

	"fittrack-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Snapshot 兩份參考資料集的一次性快照
// 快照本身不可變；重新載入時整個換掉，進行中的比對不受影響
type Snapshot struct {
	Diet     []DietRow
	Workout  []WorkoutRow
	LoadedAt time.Time
}

// Store 參考資料集的持有者
// 以原子指標交換快照，讀取端不需要鎖
type Store struct {
	dietPath    string
	workoutPath string
	snap        atomic.Pointer[Snapshot]
}

// NewStore 建立資料集存放器並完成首次載入
// 首次載入失敗即回傳錯誤，由呼叫端中止服務啟動
func NewStore(dietPath, workoutPath string) (*Store, error) {
	s := &Store{
		dietPath:    dietPath,
		workoutPath: workoutPath,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload 重新載入兩份資料集並原子替換快照
// 任一份載入失敗時保留原快照
func (s *Store) Reload() error {
	diet, err := LoadDietTable(s.dietPath)
	if err != nil {
		common.LogError("飲食資料集載入失敗",
			zap.String("path", s.dietPath),
			zap.Error(err),
		)
		return err
	}

	workout, err := LoadWorkoutTable(s.workoutPath)
	if err != nil {
		common.LogError("運動資料集載入失敗",
			zap.String("path", s.workoutPath),
			zap.Error(err),
		)
		return err
	}

	snap := &Snapshot{
		Diet:     diet,
		Workout:  workout,
		LoadedAt: time.Now(),
	}
	s.snap.Store(snap)

	common.LogInfo("資料集載入完成",
		zap.Int("diet_rows", len(diet)),
		zap.Int("workout_rows", len(workout)),
	)

	return nil
}

// Snapshot 取得目前快照
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}
