package recommend

import (
	"testing"

	"fittrack-api/internal/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dietRows() []dataset.DietRow {
	return []dataset.DietRow{
		{RecommendedBreakfast: "A", Allergies: "Peanuts, Dairy", MedicalConditions: "None"},
		{RecommendedBreakfast: "B", Allergies: "None", MedicalConditions: "Diabetes"},
		{RecommendedBreakfast: "C", Allergies: "Gluten", MedicalConditions: "Hypertension"},
	}
}

func TestFilterDietRowsAllergyExclusion(t *testing.T) {
	// 大小寫不敏感的子字串比對："peanut" 命中 "Peanuts, Dairy"
	filtered := FilterDietRows(dietRows(), strPtr("peanut"), nil)

	require.Len(t, filtered, 2)
	assert.Equal(t, "B", filtered[0].RecommendedBreakfast)
	assert.Equal(t, "C", filtered[1].RecommendedBreakfast)
}

func TestFilterDietRowsMultipleAllergens(t *testing.T) {
	filtered := FilterDietRows(dietRows(), strPtr("peanut, gluten"), nil)

	require.Len(t, filtered, 1)
	assert.Equal(t, "B", filtered[0].RecommendedBreakfast)
}

func TestFilterDietRowsMedicalRetention(t *testing.T) {
	// 病史為保留式：含該病史的列、或字面 "None" 的列保留
	filtered := FilterDietRows(dietRows(), nil, strPtr("diabetes"))

	require.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].RecommendedBreakfast)
	assert.Equal(t, "B", filtered[1].RecommendedBreakfast)
}

func TestFilterDietRowsNilRestrictions(t *testing.T) {
	rows := dietRows()
	assert.Len(t, FilterDietRows(rows, nil, nil), len(rows))
}

func TestFilterDietRowsNoneLiteral(t *testing.T) {
	// 字面 "none" 視為沒有限制，不做子字串比對
	rows := dietRows()
	assert.Len(t, FilterDietRows(rows, strPtr("None"), strPtr("none")), len(rows))
}

func TestFilterDietRowsFallbackToFullTable(t *testing.T) {
	// 所有列都被排除時退回完整資料表，而不是回傳空集合
	rows := []dataset.DietRow{
		{RecommendedBreakfast: "A", Allergies: "Peanuts", MedicalConditions: "None"},
		{RecommendedBreakfast: "B", Allergies: "Peanut butter", MedicalConditions: "None"},
	}

	filtered := FilterDietRows(rows, strPtr("peanut"), nil)
	assert.Len(t, filtered, 2)
}

func TestFilterDietRowsFallbackAfterBothPasses(t *testing.T) {
	// 過敏原先砍掉一部分、病史再砍光剩下的：保底要退回完整資料表，
	// 不是只退回過敏原過濾後的中間結果
	rows := []dataset.DietRow{
		{RecommendedBreakfast: "A", Allergies: "Peanuts", MedicalConditions: "Diabetes"},
		{RecommendedBreakfast: "B", Allergies: "None", MedicalConditions: "Hypertension"},
	}

	filtered := FilterDietRows(rows, strPtr("peanut"), strPtr("asthma"))
	assert.Len(t, filtered, 2)
}

func TestRestrictionListSkipsEmptyTokens(t *testing.T) {
	items := restrictionList(strPtr(" Peanuts ,, Dairy , "))
	assert.Equal(t, []string{"Peanuts", "Dairy"}, items)
}
