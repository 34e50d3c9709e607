package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trainingms/training-api/internal/domain"
	"trainingms/training-api/internal/service"
)

// GoalHandler holds the goal service dependency.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// --- DTOs ---

// CreateGoalRequest defines the expected JSON for creating a goal.
// StartDate defaults to the creation time when omitted.
type CreateGoalRequest struct {
	TraineeID  int64      `json:"traineeId" binding:"required"`
	GoalType   string     `json:"goalType" binding:"required"`
	StartDate  *time.Time `json:"startDate"`
	TargetNote string     `json:"targetNote" binding:"omitempty,max=200"`
	IsActive   bool       `json:"isActive"`
}

// UpdateGoalRequest defines the expected JSON for updating a goal.
// The owning trainee is deliberately not part of the payload.
type UpdateGoalRequest struct {
	ID         int64     `json:"id"`
	GoalType   string    `json:"goalType" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	TargetNote string    `json:"targetNote" binding:"omitempty,max=200"`
	IsActive   bool      `json:"isActive"`
}

// --- Handler Methods ---

// ListByTrainee returns all goals of a trainee, newest start date first.
func (h *GoalHandler) ListByTrainee(c *gin.Context) {
	traineeID, ok := parseIDParam(c, "traineeId")
	if !ok {
		return
	}

	goals, err := h.goalService.ListByTrainee(c.Request.Context(), traineeID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list goals.")
		return
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	c.JSON(http.StatusOK, goals)
}

// GetActive returns the trainee's single active goal, or 204 when the
// trainee has none. Having no active goal is not an error.
func (h *GoalHandler) GetActive(c *gin.Context) {
	traineeID, ok := parseIDParam(c, "traineeId")
	if !ok {
		return
	}

	goal, err := h.goalService.GetActiveForTrainee(c.Request.Context(), traineeID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve active goal.")
		return
	}
	if goal == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) Create(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	goal := &domain.Goal{
		TraineeID:  req.TraineeID,
		GoalType:   domain.GoalType(req.GoalType),
		TargetNote: req.TargetNote,
		IsActive:   req.IsActive,
	}
	if req.StartDate != nil {
		goal.StartDate = *req.StartDate
	}

	goal, err := h.goalService.Create(c.Request.Context(), goal)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrActiveGoalConflict):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create goal.")
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/goals/by-trainee/%d", goal.TraineeID))
	c.JSON(http.StatusCreated, goal)
}

func (h *GoalHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	goal := &domain.Goal{
		ID:         req.ID,
		GoalType:   domain.GoalType(req.GoalType),
		StartDate:  req.StartDate,
		TargetNote: req.TargetNote,
		IsActive:   req.IsActive,
	}

	err := h.goalService.Update(c.Request.Context(), id, goal)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIDMismatch),
			errors.Is(err, service.ErrValidation),
			errors.Is(err, service.ErrActiveGoalConflict):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrGoalNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update goal.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.goalService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete goal.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
