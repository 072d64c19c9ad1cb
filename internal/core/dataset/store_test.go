package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyFixture 把 testdata 檔案複製到暫存目錄，讓測試可以安全改寫
func copyFixture(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0644))
}

func newTempStore(t *testing.T) (*Store, string, string) {
	t.Helper()
	dir := t.TempDir()
	dietPath := filepath.Join(dir, "diet.csv")
	workoutPath := filepath.Join(dir, "workout.csv")
	copyFixture(t, "testdata/diet_valid.csv", dietPath)
	copyFixture(t, "testdata/workout_valid.csv", workoutPath)

	store, err := NewStore(dietPath, workoutPath)
	require.NoError(t, err)
	return store, dietPath, workoutPath
}

func TestNewStoreLoadsSnapshot(t *testing.T) {
	store, _, _ := newTempStore(t)

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Len(t, snap.Diet, 2)
	assert.Len(t, snap.Workout, 2)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestNewStoreFailsFast(t *testing.T) {
	_, err := NewStore("testdata/does_not_exist.csv", "testdata/workout_valid.csv")
	require.Error(t, err)
}

const singleRowDietCSV = `Age,Gender,Goal,Diet_Type,Allergies,Medical_Conditions,Activity_Level,Recommended_Breakfast,Breakfast_Calories,Recommended_Mid-Morning,Mid-Morning_Calories,Recommended_Lunch,Lunch_Calories,Recommended_Evening_Snack,Evening_Snack_Calories,Recommended_Dinner,Dinner_Calories,Recommended_Post-Dinner,Post-Dinner_Calories
30,Male,Lose Weight,Vegan,None,None,Moderately Active,Oatmeal,300,Apple,95,Quinoa salad,450,Roasted chickpeas,160,Vegetable stir fry,400,Herbal tea,0
`

func TestReloadSwapsSnapshot(t *testing.T) {
	store, dietPath, _ := newTempStore(t)
	before := store.Snapshot()

	// 改寫成只有一列的資料集後重新載入
	require.NoError(t, os.WriteFile(dietPath, []byte(singleRowDietCSV), 0644))
	require.NoError(t, store.Reload())

	after := store.Snapshot()
	assert.Len(t, after.Diet, 1)
	assert.NotEqual(t, before.LoadedAt, after.LoadedAt)
}

func TestReloadKeepsSnapshotOnFailure(t *testing.T) {
	store, dietPath, _ := newTempStore(t)
	before := store.Snapshot()

	// 破壞飲食資料集後重新載入應該失敗，且保留原快照
	require.NoError(t, os.WriteFile(dietPath, []byte("Age,Gender\n30,Male\n"), 0644))
	require.Error(t, store.Reload())

	after := store.Snapshot()
	require.NotNil(t, after)
	assert.Equal(t, before.LoadedAt, after.LoadedAt)
	assert.Len(t, after.Diet, 2)
}
