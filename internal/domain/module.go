package domain

import "time"

// Module is a structured training block scoped to one Goal, e.g.
// "Hypertrophy, 8 weeks, 4 sessions/week". GoalID and CreatedAt are
// immutable after creation.
type Module struct {
	ID              int64     `json:"id"`
	GoalID          int64     `json:"goalId"`
	Type            string    `json:"type"`
	DurationWeeks   int       `json:"durationWeeks"`
	SessionsPerWeek int       `json:"sessionsPerWeek"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
