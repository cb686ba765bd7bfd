package handler

import (
	"net/http"
	"strconv"

	"personapath/internal/advisor"
	"personapath/internal/middleware"
	"personapath/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler interface {
	Query(c *gin.Context)
	History(c *gin.Context)
	DeleteEntry(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type chatHandler struct {
	assistant *advisor.Assistant
	chatRepo  repository.ChatRepository
	logger    *zap.Logger
}

func NewChatHandler(assistant *advisor.Assistant, chatRepo repository.ChatRepository, logger *zap.Logger) ChatHandler {
	return &chatHandler{assistant: assistant, chatRepo: chatRepo, logger: logger}
}

type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// Query handles POST /api/chat/query
func (h *chatHandler) Query(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON for chat query", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet(middleware.CtxUserID).(int64)

	answer, err := h.assistant.Answer(c.Request.Context(), userID, req.Query)
	if err != nil {
		h.logger.Error("Failed to answer chat query", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process query"})
		return
	}

	c.JSON(http.StatusOK, answer)
}

// History handles GET /api/chat/history?limit=
func (h *chatHandler) History(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(int64)

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.chatRepo.GetByUser(userID, limit)
	if err != nil {
		h.logger.Error("Failed to get chat history", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": entries, "count": len(entries)})
}

// DeleteEntry handles DELETE /api/chat/history/:id
func (h *chatHandler) DeleteEntry(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(int64)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
		return
	}

	deleted, err := h.chatRepo.Delete(userID, id)
	if err != nil {
		h.logger.Error("Failed to delete chat entry", zap.Int64("user_id", userID), zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chat entry"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat entry deleted"})
}

// ClearHistory handles DELETE /api/chat/history
func (h *chatHandler) ClearHistory(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(int64)

	if err := h.chatRepo.Clear(userID); err != nil {
		h.logger.Error("Failed to clear chat history", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}
