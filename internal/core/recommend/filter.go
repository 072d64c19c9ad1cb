package recommend

import (
	"strings"

	"fittrack-api/internal/core/dataset"
)

// FilterDietRows 依過敏原與病史過濾候選列
//
// 過敏原為排除式：列的 Allergies 含任一使用者過敏原（不分大小寫的子字串）就剔除。
// 病史為保留式：列的 Medical_Conditions 含使用者病史、或字面為 "None" 的列保留，
// 帶有其他病史限制的列剔除。兩種語意不同，屬既定行為。
//
// 兩輪過濾都跑完後若候選集被清空，靜默退回完整資料表（保底，不是錯誤）。
func FilterDietRows(rows []dataset.DietRow, allergies, conditions *string) []dataset.DietRow {
	filtered := rows

	if restriction := restrictionList(allergies); len(restriction) > 0 {
		for _, allergen := range restriction {
			kept := filtered[:0:0]
			for _, row := range filtered {
				if !containsFold(row.Allergies, allergen) {
					kept = append(kept, row)
				}
			}
			filtered = kept
		}
	}

	if restriction := restrictionList(conditions); len(restriction) > 0 {
		for _, condition := range restriction {
			kept := filtered[:0:0]
			for _, row := range filtered {
				if containsFold(row.MedicalConditions, condition) || row.MedicalConditions == "None" {
					kept = append(kept, row)
				}
			}
			filtered = kept
		}
	}

	// 保底：過濾到一列不剩時退回完整資料表
	if len(filtered) == 0 {
		return rows
	}

	return filtered
}

// FilterWorkoutRows 運動資料集目前沒有限制條件，保留掛鉤供傷病過濾擴充
func FilterWorkoutRows(rows []dataset.WorkoutRow) []dataset.WorkoutRow {
	return rows
}

// restrictionList 將逗號分隔的限制條件拆成修剪後的清單
// nil、空字串不產生任何條件；空白項目略過
func restrictionList(value *string) []string {
	if value == nil {
		return nil
	}
	raw := strings.TrimSpace(*value)
	if raw == "" || strings.EqualFold(raw, "none") {
		return nil
	}

	var items []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// containsFold 不分大小寫的子字串判斷
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
