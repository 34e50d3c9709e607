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

// EvaluationHandler holds the evaluation service dependency.
type EvaluationHandler struct {
	evaluationService service.EvaluationService
}

// NewEvaluationHandler creates a new EvaluationHandler.
func NewEvaluationHandler(evaluationService service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

// --- DTOs ---

// CreateEvaluationRequest defines the expected JSON for creating an
// evaluation.
type CreateEvaluationRequest struct {
	TraineeID  int64               `json:"traineeId" binding:"required"`
	Date       time.Time           `json:"date" binding:"required"`
	WaistCm    decimal.NullDecimal `json:"waistCm"`
	ArmCm      decimal.NullDecimal `json:"armCm"`
	WeightKg   decimal.NullDecimal `json:"weightKg"`
	BodyFatPct decimal.NullDecimal `json:"bodyFatPct"`
	Notes      string              `json:"notes" binding:"omitempty,max=500"`
}

// UpdateEvaluationRequest defines the expected JSON for updating an
// evaluation. traineeId and createdAt are deliberately not part of the
// payload.
type UpdateEvaluationRequest struct {
	Date       time.Time           `json:"date" binding:"required"`
	WaistCm    decimal.NullDecimal `json:"waistCm"`
	ArmCm      decimal.NullDecimal `json:"armCm"`
	WeightKg   decimal.NullDecimal `json:"weightKg"`
	BodyFatPct decimal.NullDecimal `json:"bodyFatPct"`
	Notes      string              `json:"notes" binding:"omitempty,max=500"`
}

// measurementBounds mirrors the range annotations of the input schema.
// The binding layer cannot range-check decimal fields, so the bounds
// are enforced here before the core sees the payload.
var measurementBounds = []struct {
	name     string
	min, max int64
}{
	{"waistCm", 0, 500},
	{"armCm", 0, 100},
	{"weightKg", 0, 500},
	{"bodyFatPct", 0, 75},
}

func checkMeasurements(waist, arm, weight, bodyFat decimal.NullDecimal) error {
	values := []decimal.NullDecimal{waist, arm, weight, bodyFat}
	for i, v := range values {
		if !v.Valid {
			continue
		}
		b := measurementBounds[i]
		if v.Decimal.LessThan(decimal.NewFromInt(b.min)) || v.Decimal.GreaterThan(decimal.NewFromInt(b.max)) {
			return fmt.Errorf("%s must be between %d and %d", b.name, b.min, b.max)
		}
	}
	return nil
}

// --- Handler Methods ---

// List returns evaluations, optionally filtered by traineeId, paginated
// and ordered by measurement date descending.
func (h *EvaluationHandler) List(c *gin.Context) {
	traineeID, ok := optionalIDQuery(c, "traineeId")
	if !ok {
		return
	}

	evaluations, err := h.evaluationService.List(c.Request.Context(), traineeID, parsePagination(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list evaluations.")
		return
	}
	if evaluations == nil {
		evaluations = []domain.Evaluation{}
	}
	c.JSON(http.StatusOK, evaluations)
}

func (h *EvaluationHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	evaluation, err := h.evaluationService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEvaluationNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve evaluation.")
		}
		return
	}
	c.JSON(http.StatusOK, evaluation)
}

func (h *EvaluationHandler) Create(c *gin.Context) {
	var req CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := checkMeasurements(req.WaistCm, req.ArmCm, req.WeightKg, req.BodyFatPct); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	evaluation := &domain.Evaluation{
		TraineeID:  req.TraineeID,
		Date:       req.Date,
		WaistCm:    req.WaistCm,
		ArmCm:      req.ArmCm,
		WeightKg:   req.WeightKg,
		BodyFatPct: req.BodyFatPct,
		Notes:      req.Notes,
	}

	evaluation, err := h.evaluationService.Create(c.Request.Context(), evaluation)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create evaluation.")
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/evaluations/%d", evaluation.ID))
	c.JSON(http.StatusCreated, evaluation)
}

func (h *EvaluationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := checkMeasurements(req.WaistCm, req.ArmCm, req.WeightKg, req.BodyFatPct); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	evaluation := &domain.Evaluation{
		Date:       req.Date,
		WaistCm:    req.WaistCm,
		ArmCm:      req.ArmCm,
		WeightKg:   req.WeightKg,
		BodyFatPct: req.BodyFatPct,
		Notes:      req.Notes,
	}

	err := h.evaluationService.Update(c.Request.Context(), id, evaluation)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEvaluationNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update evaluation.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
