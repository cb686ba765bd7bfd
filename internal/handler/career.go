package handler

import (
	"errors"
	"net/http"

	"personapath/internal/middleware"
	"personapath/internal/planner"
	"personapath/internal/skills"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CareerHandler interface {
	Roadmap(c *gin.Context)
	RoadmapHistory(c *gin.Context)
	SkillAnalysis(c *gin.Context)
	DevelopmentPlan(c *gin.Context)
}

type careerHandler struct {
	planner  *planner.Planner
	analyzer *skills.Analyzer
	logger   *zap.Logger
}

func NewCareerHandler(p *planner.Planner, a *skills.Analyzer, logger *zap.Logger) CareerHandler {
	return &careerHandler{planner: p, analyzer: a, logger: logger}
}

type RoadmapRequest struct {
	CurrentRole string `json:"current_role" binding:"required"`
	TargetRole  string `json:"target_role" binding:"required"`
}

// Roadmap handles POST /api/career/roadmap
func (h *careerHandler) Roadmap(c *gin.Context) {
	var req RoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON for roadmap", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet(middleware.CtxUserID).(int64)

	roadmap, err := h.planner.GenerateRoadmap(userID, req.CurrentRole, req.TargetRole)
	if err != nil {
		h.logger.Error("Failed to generate roadmap", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate roadmap"})
		return
	}

	c.JSON(http.StatusOK, roadmap)
}

// RoadmapHistory handles GET /api/career/roadmap
func (h *careerHandler) RoadmapHistory(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(int64)

	paths, err := h.planner.History(userID)
	if err != nil {
		h.logger.Error("Failed to get roadmap history", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve roadmap history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"paths": paths, "count": len(paths)})
}

type SkillAnalysisRequest struct {
	CurrentSkills []string `json:"current_skills" binding:"required"`
	TargetRole    string   `json:"target_role" binding:"required"`
}

// SkillAnalysis handles POST /api/career/skill-analysis
func (h *careerHandler) SkillAnalysis(c *gin.Context) {
	var req SkillAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON for skill analysis", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.analyzer.AnalyzeGap(req.CurrentSkills, req.TargetRole)
	if err != nil {
		if errors.Is(err, skills.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to analyze skill gap", zap.String("target_role", req.TargetRole), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze skill gap"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// DevelopmentPlan handles POST /api/career/development-plan
func (h *careerHandler) DevelopmentPlan(c *gin.Context) {
	var req SkillAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON for development plan", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.analyzer.DevelopmentPlanFor(req.CurrentSkills, req.TargetRole)
	if err != nil {
		if errors.Is(err, skills.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to build development plan", zap.String("target_role", req.TargetRole), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build development plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
