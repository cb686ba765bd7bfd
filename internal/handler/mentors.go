package handler

import (
	"net/http"
	"strings"

	"personapath/internal/mentor"
	"personapath/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MentorHandler interface {
	List(c *gin.Context)
	Recommendations(c *gin.Context)
	Plan(c *gin.Context)
}

type mentorHandler struct {
	mentorRepo repository.MentorRepository
	roleRepo   repository.RoleRepository
	matcher    *mentor.Matcher
	logger     *zap.Logger
}

func NewMentorHandler(mentorRepo repository.MentorRepository, roleRepo repository.RoleRepository, matcher *mentor.Matcher, logger *zap.Logger) MentorHandler {
	return &mentorHandler{mentorRepo: mentorRepo, roleRepo: roleRepo, matcher: matcher, logger: logger}
}

// List handles GET /api/mentors
func (h *mentorHandler) List(c *gin.Context) {
	mentors, err := h.mentorRepo.GetAll()
	if err != nil {
		h.logger.Error("Failed to list mentors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve mentors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mentors": mentors, "count": len(mentors)})
}

// Recommendations handles GET /api/mentors/recommendations?target_role=
func (h *mentorHandler) Recommendations(c *gin.Context) {
	targetRole := strings.TrimSpace(c.Query("target_role"))
	if targetRole == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter target_role is required"})
		return
	}

	role, err := h.roleRepo.GetByTitle(targetRole)
	if err != nil {
		h.logger.Error("Failed to look up role", zap.String("target_role", targetRole), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve role"})
		return
	}
	if role == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Target role not found"})
		return
	}

	matches, err := h.matcher.RecommendForRole(role)
	if err != nil {
		h.logger.Error("Failed to recommend mentors", zap.String("target_role", targetRole), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recommend mentors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"target_role": role.Title, "mentors": matches, "count": len(matches)})
}

type MentorshipPlanRequest struct {
	CurrentRole string `json:"current_role" binding:"required"`
	TargetRole  string `json:"target_role" binding:"required"`
}

// Plan handles POST /api/mentors/plan
func (h *mentorHandler) Plan(c *gin.Context) {
	var req MentorshipPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON for mentorship plan", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.matcher.SuggestPlan(req.CurrentRole, req.TargetRole)
	if err != nil {
		h.logger.Error("Failed to build mentorship plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build mentorship plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
