package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fittrack-api/internal/pkg/common"
)

// 飲食資料集必要欄位
var dietRequiredColumns = []string{
	"Age", "Gender", "Goal", "Diet_Type", "Allergies",
	"Medical_Conditions", "Activity_Level",
	"Recommended_Breakfast", "Breakfast_Calories",
	"Recommended_Mid-Morning", "Mid-Morning_Calories",
	"Recommended_Lunch", "Lunch_Calories",
	"Recommended_Evening_Snack", "Evening_Snack_Calories",
	"Recommended_Dinner", "Dinner_Calories",
	"Recommended_Post-Dinner", "Post-Dinner_Calories",
}

// 運動資料集必要欄位
var workoutRequiredColumns = []string{
	"Age", "Gender", "Fitness_Level", "Goal",
	"Workout_Time_per_day_mins", "Workout_Preference",
	"Recommended_Workout", "Workout_Exercises",
}

// LoadDietTable 載入飲食資料集
// 驗證為全有或全無：缺檔案、缺欄位、空表都直接回錯誤，不做寬鬆模式
func LoadDietTable(path string) ([]DietRow, error) {
	records, columns, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	if err := validateColumns(path, columns, dietRequiredColumns); err != nil {
		return nil, err
	}

	rows := make([]DietRow, 0, len(records))
	for i, record := range records {
		row := DietRow{
			Gender:                  cell(record, columns, "Gender"),
			Goal:                    cell(record, columns, "Goal"),
			DietType:                cell(record, columns, "Diet_Type"),
			Allergies:               cell(record, columns, "Allergies"),
			MedicalConditions:       cell(record, columns, "Medical_Conditions"),
			ActivityLevel:           cell(record, columns, "Activity_Level"),
			RecommendedBreakfast:    cell(record, columns, "Recommended_Breakfast"),
			RecommendedMidMorning:   cell(record, columns, "Recommended_Mid-Morning"),
			RecommendedLunch:        cell(record, columns, "Recommended_Lunch"),
			RecommendedEveningSnack: cell(record, columns, "Recommended_Evening_Snack"),
			RecommendedDinner:       cell(record, columns, "Recommended_Dinner"),
			RecommendedPostDinner:   cell(record, columns, "Recommended_Post-Dinner"),
		}

		// 數值欄位在載入時一次轉型，之後比對不再做字串解析
		if row.Age, err = intCell(record, columns, "Age", i); err != nil {
			return nil, err
		}
		if row.BreakfastCalories, err = intCell(record, columns, "Breakfast_Calories", i); err != nil {
			return nil, err
		}
		if row.MidMorningCalories, err = intCell(record, columns, "Mid-Morning_Calories", i); err != nil {
			return nil, err
		}
		if row.LunchCalories, err = intCell(record, columns, "Lunch_Calories", i); err != nil {
			return nil, err
		}
		if row.EveningSnackCalories, err = intCell(record, columns, "Evening_Snack_Calories", i); err != nil {
			return nil, err
		}
		if row.DinnerCalories, err = intCell(record, columns, "Dinner_Calories", i); err != nil {
			return nil, err
		}
		if row.PostDinnerCalories, err = intCell(record, columns, "Post-Dinner_Calories", i); err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrDatasetEmpty, path)
	}

	return rows, nil
}

// LoadWorkoutTable 載入運動資料集
func LoadWorkoutTable(path string) ([]WorkoutRow, error) {
	records, columns, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	if err := validateColumns(path, columns, workoutRequiredColumns); err != nil {
		return nil, err
	}

	rows := make([]WorkoutRow, 0, len(records))
	for i, record := range records {
		row := WorkoutRow{
			Gender:             cell(record, columns, "Gender"),
			FitnessLevel:       cell(record, columns, "Fitness_Level"),
			Goal:               cell(record, columns, "Goal"),
			WorkoutPreference:  cell(record, columns, "Workout_Preference"),
			RecommendedWorkout: cell(record, columns, "Recommended_Workout"),
			WorkoutExercises:   cell(record, columns, "Workout_Exercises"),
		}

		if row.Age, err = intCell(record, columns, "Age", i); err != nil {
			return nil, err
		}
		if row.WorkoutTimeMins, err = intCell(record, columns, "Workout_Time_per_day_mins", i); err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrDatasetEmpty, path)
	}

	return rows, nil
}

// readCSV 讀取整份 CSV，回傳資料列與欄位索引
func readCSV(path string) ([][]string, map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", common.ErrDatasetNotFound, path)
		}
		return nil, nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", common.ErrDatasetSchema, path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", common.ErrDatasetEmpty, path)
	}

	// 第一列為表頭
	columns := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		columns[strings.TrimSpace(name)] = i
	}

	return all[1:], columns, nil
}

// validateColumns 驗證必要欄位是否齊全
func validateColumns(path string, columns map[string]int, required []string) error {
	var missing []string
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s missing %s",
			common.ErrDatasetSchema, path, strings.Join(missing, ", "))
	}
	return nil
}

// cell 取出字串欄位
func cell(record []string, columns map[string]int, name string) string {
	idx := columns[name]
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// intCell 取出整數欄位，空白視為 0
func intCell(record []string, columns map[string]int, name string, rowIdx int) (int, error) {
	raw := cell(record, columns, name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		// 允許 "1800.0" 這類浮點寫法
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0, fmt.Errorf("%w: row %d column %s: %q is not a number",
				common.ErrDatasetSchema, rowIdx+1, name, raw)
		}
		return int(f), nil
	}
	return value, nil
}
