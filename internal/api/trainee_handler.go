package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"trainingms/training-api/internal/domain"
	"trainingms/training-api/internal/service"
)

// TraineeHandler holds the trainee service dependency.
type TraineeHandler struct {
	traineeService service.TraineeService
}

// NewTraineeHandler creates a new TraineeHandler.
func NewTraineeHandler(traineeService service.TraineeService) *TraineeHandler {
	return &TraineeHandler{traineeService: traineeService}
}

// --- DTOs ---

// TraineeRequest is the payload for creating or updating a trainee.
// The id field is ignored on create; on update it must match the path.
type TraineeRequest struct {
	ID        int64               `json:"id"`
	FullName  string              `json:"fullName" binding:"required,max=120"`
	Sex       string              `json:"sex" binding:"omitempty,max=20"`
	BirthDate *time.Time          `json:"birthDate"`
	HeightCm  decimal.NullDecimal `json:"heightCm"`
	WeightKg  decimal.NullDecimal `json:"weightKg"`
}

func (r TraineeRequest) toDomain() *domain.Trainee {
	return &domain.Trainee{
		ID:        r.ID,
		FullName:  r.FullName,
		Sex:       r.Sex,
		BirthDate: r.BirthDate,
		HeightCm:  r.HeightCm,
		WeightKg:  r.WeightKg,
	}
}

// --- Handler Methods ---

// List returns every trainee. The collection is not paginated.
func (h *TraineeHandler) List(c *gin.Context) {
	trainees, err := h.traineeService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list trainees.")
		return
	}
	if trainees == nil {
		trainees = []domain.Trainee{}
	}
	c.JSON(http.StatusOK, trainees)
}

func (h *TraineeHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	trainee, err := h.traineeService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTraineeNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve trainee.")
		}
		return
	}
	c.JSON(http.StatusOK, trainee)
}

func (h *TraineeHandler) Create(c *gin.Context) {
	var req TraineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainee := req.toDomain()
	trainee.ID = 0 // identity is system-assigned

	trainee, err := h.traineeService.Create(c.Request.Context(), trainee)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create trainee.")
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/trainees/%d", trainee.ID))
	c.JSON(http.StatusCreated, trainee)
}

func (h *TraineeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TraineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err := h.traineeService.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIDMismatch):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTraineeNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update trainee.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TraineeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.traineeService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTraineeNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete trainee.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
