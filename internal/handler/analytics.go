package handler

import (
	"net/http"
	"strconv"
	"time"

	"personapath/internal/middleware"
	"personapath/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler interface {
	Summary(c *gin.Context)
	Activity(c *gin.Context)
}

type analyticsHandler struct {
	authRepo   repository.AuthRepository
	roleRepo   repository.RoleRepository
	chatRepo   repository.ChatRepository
	mentorRepo repository.MentorRepository
	logger     *zap.Logger
}

func NewAnalyticsHandler(authRepo repository.AuthRepository, roleRepo repository.RoleRepository, chatRepo repository.ChatRepository, mentorRepo repository.MentorRepository, logger *zap.Logger) AnalyticsHandler {
	return &analyticsHandler{
		authRepo:   authRepo,
		roleRepo:   roleRepo,
		chatRepo:   chatRepo,
		mentorRepo: mentorRepo,
		logger:     logger,
	}
}

// Summary handles GET /api/analytics/summary
func (h *analyticsHandler) Summary(c *gin.Context) {
	users, err := h.authRepo.CountUsers()
	if err != nil {
		h.logger.Error("Failed to count users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	roles, err := h.roleRepo.CountRoles()
	if err != nil {
		h.logger.Error("Failed to count roles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	mentors, err := h.mentorRepo.CountMentors()
	if err != nil {
		h.logger.Error("Failed to count mentors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	chatEntries, err := h.chatRepo.CountEntries()
	if err != nil {
		h.logger.Error("Failed to count chat entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	byDepartment, err := h.roleRepo.CountByDepartment()
	if err != nil {
		h.logger.Error("Failed to count roles by department", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":         users,
		"total_roles":         roles,
		"total_mentors":       mentors,
		"total_chat_queries":  chatEntries,
		"roles_by_department": byDepartment,
	})
}

// Activity handles GET /api/analytics/activity?days=
func (h *analyticsHandler) Activity(c *gin.Context) {
	days := 7
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days"})
			return
		}
		days = parsed
	}

	since := time.Now().AddDate(0, 0, -days)
	count, err := h.chatRepo.CountEntriesSince(since)
	if err != nil {
		h.logger.Error("Failed to count recent chat entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity"})
		return
	}

	userID := c.MustGet(middleware.CtxUserID).(int64)
	ownEntries, err := h.chatRepo.GetByUserSince(userID, since)
	if err != nil {
		h.logger.Error("Failed to get recent chat entries", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":         days,
		"since":        since,
		"chat_queries": count,
		"user_queries": len(ownEntries),
		"user_recent":  ownEntries,
	})
}
