package domain

import "time"

// GoalType is the closed set of training objectives a Goal can target.
// The string values are persisted as-is, so they must not be renamed.
type GoalType string

const (
	GoalHypertrophy GoalType = "Hypertrophy"
	GoalFatLoss     GoalType = "FatLoss"
	GoalEndurance   GoalType = "Endurance"
	GoalStrength    GoalType = "Strength"
)

// IsValid reports whether t is one of the known goal types.
func (t GoalType) IsValid() bool {
	switch t {
	case GoalHypertrophy, GoalFatLoss, GoalEndurance, GoalStrength:
		return true
	}
	return false
}

// Goal is a time-boxed training objective belonging to one Trainee.
// At most one Goal per Trainee may be active at any time.
type Goal struct {
	ID         int64     `json:"id"`
	TraineeID  int64     `json:"traineeId"`
	GoalType   GoalType  `json:"goalType"`
	StartDate  time.Time `json:"startDate"`
	TargetNote string    `json:"targetNote,omitempty"`
	IsActive   bool      `json:"isActive"`
}
