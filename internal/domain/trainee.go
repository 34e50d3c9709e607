package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trainee represents a person under training. It is the root of the
// ownership hierarchy: deleting a Trainee removes its Goals (and their
// Modules) and its Evaluations.
type Trainee struct {
	ID        int64               `json:"id"`
	FullName  string              `json:"fullName"`
	Sex       string              `json:"sex,omitempty"`
	BirthDate *time.Time          `json:"birthDate,omitempty"`
	HeightCm  decimal.NullDecimal `json:"heightCm"`
	WeightKg  decimal.NullDecimal `json:"weightKg"`
	CreatedAt time.Time           `json:"createdAt"`
}
