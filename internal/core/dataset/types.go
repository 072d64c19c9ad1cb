package dataset

// DietRow 飲食資料集的一列
// 載入後不可變，整張表為唯讀共享狀態
type DietRow struct {
	Age               int
	Gender            string
	Goal              string
	DietType          string
	Allergies         string
	MedicalConditions string
	ActivityLevel     string

	RecommendedBreakfast    string
	BreakfastCalories       int
	RecommendedMidMorning   string
	MidMorningCalories      int
	RecommendedLunch        string
	LunchCalories           int
	RecommendedEveningSnack string
	EveningSnackCalories    int
	RecommendedDinner       string
	DinnerCalories          int
	RecommendedPostDinner   string
	PostDinnerCalories      int
}

// WorkoutRow 運動資料集的一列
type WorkoutRow struct {
	Age                int
	Gender             string
	FitnessLevel       string
	Goal               string
	WorkoutTimeMins    int
	WorkoutPreference  string
	RecommendedWorkout string
	WorkoutExercises   string // 以 ", " 連接的動作清單，投影時才切開
}
