package chatbot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fittrack-api/internal/infrastructure/config"

	"github.com/go-resty/resty/v2"
)

// AdviceClient 遠端建議產生器
// 走 OpenAI 相容的 chat completions 介面，聊天服務在啟用時優先使用
type AdviceClient struct {
	config *config.Config
	client *resty.Client
}

// NewAdviceClient 創建遠端建議產生器
func NewAdviceClient(cfg *config.Config) *AdviceClient {
	client := resty.New().
		SetBaseURL(cfg.Advice.BaseURL).
		SetTimeout(cfg.Advice.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Advice.APIKey)).
		SetHeader("X-Title", "FitTrack")

	return &AdviceClient{
		config: cfg,
		client: client,
	}
}

// Generate 產生建議文字
func (c *AdviceClient) Generate(ctx context.Context, prompt string) (string, error) {
	// 簡化 prompt：去除多餘換行與前後空白
	simplePrompt := strings.TrimSpace(prompt)
	simplePrompt = strings.Join(strings.Fields(simplePrompt), " ")

	// 構建請求
	req := map[string]interface{}{
		"model": c.config.Advice.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": simplePrompt,
			},
		},
		"max_tokens": c.config.Advice.MaxTokens,
	}

	// 發送請求
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("failed to send advice request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("advice API returned error: %s", resp.String())
	}

	// 解析回應
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse advice response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in advice response")
	}

	return result.Choices[0].Message.Content, nil
}
