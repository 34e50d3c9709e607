package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Evaluation is a dated body-measurement snapshot for a Trainee.
// The measurement date may never be later than the current UTC date
// (date component only). TraineeID and CreatedAt are immutable after
// creation, and no delete operation is exposed for Evaluations; they
// are only purged by cascading deletion of their Trainee.
type Evaluation struct {
	ID         int64               `json:"id"`
	TraineeID  int64               `json:"traineeId"`
	Date       time.Time           `json:"date"`
	WaistCm    decimal.NullDecimal `json:"waistCm"`
	ArmCm      decimal.NullDecimal `json:"armCm"`
	WeightKg   decimal.NullDecimal `json:"weightKg"`
	BodyFatPct decimal.NullDecimal `json:"bodyFatPct"`
	Notes      string              `json:"notes,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
}
