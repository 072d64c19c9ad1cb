package chat

import (
	"net/http"

	"fittrack-api/internal/core/chatbot"
	"fittrack-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatRequest 聊天請求
// last_recommendation 為最近一次推薦的摘要，可選
type ChatRequest struct {
	Message            string `json:"message" binding:"required"`
	LastRecommendation string `json:"last_recommendation,omitempty"`
}

// ChatResponse 聊天回應
type ChatResponse struct {
	Response string `json:"response"`
}

// HandleChat 處理 /chat 聊天 API
func HandleChat(chatService *chatbot.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = common.GenerateUUID()
			c.Header("X-Request-ID", requestID)
		}

		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogError("請求格式無效",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		reply := chatService.Respond(c.Request.Context(), req.Message, req.LastRecommendation)

		common.LogInfo("聊天回覆完成",
			zap.String("request_id", requestID),
			zap.Int("message_length", len(req.Message)),
		)

		c.JSON(http.StatusOK, ChatResponse{Response: reply})
	}
}
