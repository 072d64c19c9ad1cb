package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifierCategories(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		query    string
		expected string
	}{
		{"what is the best workout to build muscle", CategoryFitness},
		{"good warm up routine before lifting heavy weights", CategoryFitness},
		{"how many calories should i eat to lose weight", CategoryNutrition},
		{"is a high protein diet good for me", CategoryNutrition},
		{"how much sleep do adults need every night", CategoryHealth},
		{"how can i lower my resting heart rate", CategoryHealth},
		{"who won the football game last night", CategoryOther},
		{"tell me a joke", CategoryOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, c.Classify(tc.query), "query: %s", tc.query)
	}
}

func TestClassifierEmptyQuery(t *testing.T) {
	c := NewClassifier()
	assert.Equal(t, CategoryOther, c.Classify(""))
	// 分詞後不剩任何 token 也視為其他
	assert.Equal(t, CategoryOther, c.Classify("! ? ."))
}

func TestClassifierDeterministic(t *testing.T) {
	// 訓練與推論都不帶隨機性，同一查詢永遠同一標籤
	first := NewClassifier()
	second := NewClassifier()

	queries := []string{
		"best exercises for core strength",
		"what should i eat before a workout",
		"why do i feel tired all the time",
		"recommend a good book to read",
	}
	for _, query := range queries {
		label := first.Classify(query)
		for i := 0; i < 3; i++ {
			assert.Equal(t, label, first.Classify(query))
			assert.Equal(t, label, second.Classify(query))
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("How's the High-Protein diet? OK!")
	// 小寫化、以非英數字元切詞、略過單一字元
	assert.Equal(t, []string{"how", "the", "high-protein", "diet", "ok"}, tokens)
}
