package repository

import (
	"context"

	"trainingms/training-api/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	// ErrActiveGoalConflict is returned when the storage layer's
	// one-active-goal-per-trainee constraint rejects a write. It is the
	// backstop for concurrent writers racing the exclusivity rule.
	ErrActiveGoalConflict = RepositoryError("another active goal exists for this trainee")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// TraineeRepository defines the interface for interacting with trainee data.
type TraineeRepository interface {
	List(ctx context.Context) ([]domain.Trainee, error)
	GetByID(ctx context.Context, id int64) (*domain.Trainee, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, trainee *domain.Trainee) (int64, error)
	// Update replaces the mutable fields (FullName, Sex, BirthDate,
	// HeightCm, WeightKg). ID and CreatedAt are never written.
	Update(ctx context.Context, trainee *domain.Trainee) error
	// Delete removes the trainee. The schema cascades the deletion to
	// the trainee's goals (and their modules) and evaluations.
	Delete(ctx context.Context, id int64) error
}

// GoalRepository defines the interface for interacting with goal data.
type GoalRepository interface {
	ListByTrainee(ctx context.Context, traineeID int64) ([]domain.Goal, error)
	GetByID(ctx context.Context, id int64) (*domain.Goal, error)
	// GetActiveByTrainee returns the single active goal for the
	// trainee, or ErrNotFound when there is none.
	GetActiveByTrainee(ctx context.Context, traineeID int64) (*domain.Goal, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Create inserts the goal. When goal.IsActive, every other active
	// goal of the same trainee is deactivated within the same
	// transaction, so no state with two active goals is observable.
	Create(ctx context.Context, goal *domain.Goal) (int64, error)
	// Update replaces GoalType, StartDate, TargetNote and IsActive.
	// TraineeID is never written. When goal.IsActive, sibling goals are
	// deactivated within the same transaction, as in Create.
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id int64) error
}

// ModuleRepository defines the interface for interacting with module data.
type ModuleRepository interface {
	// List returns modules ordered by creation time descending,
	// optionally filtered by goal, windowed by page.
	List(ctx context.Context, goalID *int64, page Pagination) ([]domain.Module, error)
	GetByID(ctx context.Context, id int64) (*domain.Module, error)
	Create(ctx context.Context, module *domain.Module) (int64, error)
	// Update replaces Type, DurationWeeks, SessionsPerWeek and Notes.
	// GoalID and CreatedAt are never written.
	Update(ctx context.Context, module *domain.Module) error
	Delete(ctx context.Context, id int64) error
}

// EvaluationRepository defines the interface for interacting with
// evaluation data. There deliberately is no Delete: evaluations are
// removed only by cascading deletion of their trainee.
type EvaluationRepository interface {
	// List returns evaluations ordered by measurement date descending,
	// optionally filtered by trainee, windowed by page.
	List(ctx context.Context, traineeID *int64, page Pagination) ([]domain.Evaluation, error)
	GetByID(ctx context.Context, id int64) (*domain.Evaluation, error)
	Create(ctx context.Context, evaluation *domain.Evaluation) (int64, error)
	// Update replaces Date, the measurement fields and Notes.
	// TraineeID and CreatedAt are never written.
	Update(ctx context.Context, evaluation *domain.Evaluation) error
}
