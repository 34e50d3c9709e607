package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"trainingms/training-api/internal/domain"
	"trainingms/training-api/internal/service"
)

// ModuleHandler holds the module service dependency.
type ModuleHandler struct {
	moduleService service.ModuleService
}

// NewModuleHandler creates a new ModuleHandler.
func NewModuleHandler(moduleService service.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService}
}

// --- DTOs ---

// CreateModuleRequest defines the expected JSON for creating a module.
type CreateModuleRequest struct {
	GoalID          int64  `json:"goalId" binding:"required"`
	Type            string `json:"type" binding:"required,max=40"`
	DurationWeeks   int    `json:"durationWeeks" binding:"required,min=1,max=52"`
	SessionsPerWeek int    `json:"sessionsPerWeek" binding:"required,min=1,max=14"`
	Notes           string `json:"notes" binding:"omitempty,max=500"`
}

// UpdateModuleRequest defines the expected JSON for updating a module.
// goalId and createdAt are deliberately not part of the payload, so a
// crafted update cannot move a module to another goal or rewrite its
// creation time.
type UpdateModuleRequest struct {
	Type            string `json:"type" binding:"required,max=40"`
	DurationWeeks   int    `json:"durationWeeks" binding:"required,min=1,max=52"`
	SessionsPerWeek int    `json:"sessionsPerWeek" binding:"required,min=1,max=14"`
	Notes           string `json:"notes" binding:"omitempty,max=500"`
}

// --- Handler Methods ---

// List returns modules, optionally filtered by goalId, paginated and
// ordered by creation time descending.
func (h *ModuleHandler) List(c *gin.Context) {
	goalID, ok := optionalIDQuery(c, "goalId")
	if !ok {
		return
	}

	modules, err := h.moduleService.List(c.Request.Context(), goalID, parsePagination(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list modules.")
		return
	}
	if modules == nil {
		modules = []domain.Module{}
	}
	c.JSON(http.StatusOK, modules)
}

func (h *ModuleHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	module, err := h.moduleService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve module.")
		}
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *ModuleHandler) Create(c *gin.Context) {
	var req CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	module := &domain.Module{
		GoalID:          req.GoalID,
		Type:            req.Type,
		DurationWeeks:   req.DurationWeeks,
		SessionsPerWeek: req.SessionsPerWeek,
		Notes:           req.Notes,
	}

	module, err := h.moduleService.Create(c.Request.Context(), module)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create module.")
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/modules/%d", module.ID))
	c.JSON(http.StatusCreated, module)
}

func (h *ModuleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err := h.moduleService.Update(c.Request.Context(), id, req.Type, req.DurationWeeks, req.SessionsPerWeek, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrModuleNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update module.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ModuleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.moduleService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete module.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
