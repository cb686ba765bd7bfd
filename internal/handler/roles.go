package handler

import (
	"net/http"
	"strconv"
	"strings"

	"personapath/internal/middleware"
	"personapath/internal/models"
	"personapath/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoleHandler interface {
	List(c *gin.Context)
	Search(c *gin.Context)
	Create(c *gin.Context)
}

// indexRefresher rebuilds the assistant's role keyword index after the
// catalog changes.
type indexRefresher interface {
	Refresh() error
}

type roleHandler struct {
	roleRepo  repository.RoleRepository
	refresher indexRefresher
	logger    *zap.Logger
}

func NewRoleHandler(roleRepo repository.RoleRepository, refresher indexRefresher, logger *zap.Logger) RoleHandler {
	return &roleHandler{roleRepo: roleRepo, refresher: refresher, logger: logger}
}

// List handles GET /api/roles?limit=
func (h *roleHandler) List(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	roles, err := h.roleRepo.GetAll(limit)
	if err != nil {
		h.logger.Error("Failed to list roles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve roles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles, "count": len(roles)})
}

// Search handles GET /api/roles/search?q=
func (h *roleHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}

	roles, err := h.roleRepo.SearchByKeyword(query)
	if err != nil {
		h.logger.Error("Failed to search roles", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search roles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles, "count": len(roles)})
}

type CreateRoleRequest struct {
	Title          string `json:"title" binding:"required"`
	Department     string `json:"department" binding:"required"`
	Level          string `json:"level" binding:"required"`
	Description    string `json:"description"`
	SkillsRequired string `json:"skills_required"`
	SalaryMin      int64  `json:"salary_min"`
	SalaryMax      int64  `json:"salary_max"`
}

// Create handles POST /api/roles. Restricted to HR Manager and Admin.
func (h *roleHandler) Create(c *gin.Context) {
	role := c.MustGet(middleware.CtxRole).(string)
	if role != "HR Manager" && role != "Admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON for role creation", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.SalaryMin < 0 || req.SalaryMax < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salaries cannot be negative"})
		return
	}
	if req.SalaryMin > req.SalaryMax {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salary_min cannot exceed salary_max"})
		return
	}

	userID := c.MustGet(middleware.CtxUserID).(int64)
	jobRole := &models.JobRole{
		Title:          req.Title,
		Department:     req.Department,
		Level:          req.Level,
		Description:    req.Description,
		SkillsRequired: req.SkillsRequired,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		UploadedBy:     &userID,
	}

	if err := h.roleRepo.Create(jobRole); err != nil {
		h.logger.Error("Failed to create role", zap.String("title", req.Title), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role"})
		return
	}

	if h.refresher != nil {
		if err := h.refresher.Refresh(); err != nil {
			h.logger.Warn("Failed to refresh role index", zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Role created successfully", "role": jobRole})
}
