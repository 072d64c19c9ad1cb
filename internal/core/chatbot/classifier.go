package chatbot

import (
	"math"
	"regexp"
	"strings"
)

// 意圖標籤
const (
	CategoryFitness   = "fitness"
	CategoryHealth    = "health"
	CategoryNutrition = "nutrition"
	CategoryOther     = "other"
)

// tokenPattern 編譯一次供全部分詞使用
var tokenPattern = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// trainingExample 標註過的訓練語料
type trainingExample struct {
	text  string
	label string
}

// 內嵌語料：詞袋分類器的小型標註集
var trainingData = []trainingExample{
	{"how many push ups should i do every day", CategoryFitness},
	{"best workout to build muscle at home", CategoryFitness},
	{"how do i improve my running endurance", CategoryFitness},
	{"what exercises target the core", CategoryFitness},
	{"is it okay to train legs two days in a row", CategoryFitness},
	{"how long should a beginner workout last", CategoryFitness},
	{"tips for improving my squat form", CategoryFitness},
	{"what is a good warm up before lifting weights", CategoryFitness},
	{"how often should i do cardio each week", CategoryFitness},
	{"best stretches after a gym session", CategoryFitness},
	{"provide tips for a home workout plan", CategoryFitness},
	{"how can i increase my bench press", CategoryFitness},
	{"yoga or pilates for flexibility", CategoryFitness},
	{"how many steps should i walk per day", CategoryFitness},

	{"how much sleep do adults need", CategoryHealth},
	{"why do i feel tired all the time", CategoryHealth},
	{"how can i lower my resting heart rate", CategoryHealth},
	{"is my blood pressure too high", CategoryHealth},
	{"how to manage stress during work", CategoryHealth},
	{"what is a healthy body weight for my height", CategoryHealth},
	{"how much water should i drink daily", CategoryHealth},
	{"tips to improve sleep quality", CategoryHealth},
	{"is it normal to have sore muscles after exercise", CategoryHealth},
	{"how do i track my daily mood", CategoryHealth},
	{"what are signs of dehydration", CategoryHealth},
	{"how can i stay healthy while working from home", CategoryHealth},

	{"how many calories should i eat to lose weight", CategoryNutrition},
	{"what should i eat before a workout", CategoryNutrition},
	{"is a vegan diet good for building muscle", CategoryNutrition},
	{"best high protein breakfast ideas", CategoryNutrition},
	{"how much protein do i need per day", CategoryNutrition},
	{"what foods help with recovery", CategoryNutrition},
	{"are carbs bad for weight loss", CategoryNutrition},
	{"provide tips for a vegetarian diet plan", CategoryNutrition},
	{"healthy snacks for the evening", CategoryNutrition},
	{"what is a balanced meal plan", CategoryNutrition},
	{"should i count calories or macros", CategoryNutrition},
	{"foods to avoid with a peanut allergy", CategoryNutrition},
	{"how many meals should i eat a day", CategoryNutrition},

	{"what is the weather like today", CategoryOther},
	{"tell me a joke", CategoryOther},
	{"who won the football game last night", CategoryOther},
	{"how do i fix my computer", CategoryOther},
	{"what movies are playing this weekend", CategoryOther},
	{"can you help me with my homework", CategoryOther},
	{"what time is it in new york", CategoryOther},
	{"recommend a good book to read", CategoryOther},
}

// Classifier 詞袋意圖分類器
// TF-IDF 加權的多項式貝氏：訓練語料內嵌，建構時一次算完所有統計
type Classifier struct {
	labels      []string
	vocab       map[string]struct{}
	docFreq     map[string]int
	totalDocs   int
	labelDocs   map[string]int
	tokenWeight map[string]map[string]float64 // label -> token -> 權重總和
	labelWeight map[string]float64            // label -> 全部 token 權重總和
}

// NewClassifier 以內嵌語料訓練分類器
func NewClassifier() *Classifier {
	c := &Classifier{
		labels:      []string{CategoryFitness, CategoryHealth, CategoryNutrition, CategoryOther},
		vocab:       make(map[string]struct{}),
		docFreq:     make(map[string]int),
		labelDocs:   make(map[string]int),
		tokenWeight: make(map[string]map[string]float64),
		labelWeight: make(map[string]float64),
	}
	for _, label := range c.labels {
		c.tokenWeight[label] = make(map[string]float64)
	}

	// 第一輪：詞頻與文件頻率
	tokenized := make([][]string, len(trainingData))
	for i, example := range trainingData {
		tokens := tokenize(example.text)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			c.vocab[token] = struct{}{}
			if _, ok := seen[token]; !ok {
				seen[token] = struct{}{}
				c.docFreq[token]++
			}
		}
	}
	c.totalDocs = len(trainingData)

	// 第二輪：以 TF-IDF 累積各標籤的 token 權重
	for i, example := range trainingData {
		c.labelDocs[example.label]++
		tf := termFrequencies(tokenized[i])
		for token, freq := range tf {
			weight := freq * c.idf(token)
			c.tokenWeight[example.label][token] += weight
			c.labelWeight[example.label] += weight
		}
	}

	return c
}

// Classify 回傳查詢最可能的意圖標籤
// 標籤以固定順序走訪，分數平手時順序在前的勝出，結果可重現
func (c *Classifier) Classify(query string) string {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return CategoryOther
	}

	vocabSize := float64(len(c.vocab))
	best := CategoryOther
	bestScore := math.Inf(-1)

	for _, label := range c.labels {
		// 類別先驗 + 各 token 的平滑條件機率，全部取對數相加
		score := math.Log(float64(c.labelDocs[label]) / float64(c.totalDocs))
		for _, token := range tokens {
			weight := c.tokenWeight[label][token]
			score += math.Log((weight + 1) / (c.labelWeight[label] + vocabSize))
		}
		if score > bestScore {
			bestScore = score
			best = label
		}
	}

	return best
}

// idf 平滑的逆向文件頻率
func (c *Classifier) idf(token string) float64 {
	return math.Log(float64(c.totalDocs+1)/float64(c.docFreq[token]+1)) + 1
}

// tokenize 小寫化後以非英數字元切詞，略過單一字元
func tokenize(text string) []string {
	parts := tokenPattern.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if len(part) > 1 {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// termFrequencies 計算正規化詞頻
func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		tf[token]++
	}
	total := float64(len(tokens))
	for token := range tf {
		tf[token] /= total
	}
	return tf
}
