package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trainingms/training-api/internal/domain"
	"trainingms/training-api/internal/repository"
)

// --- Service Interface ---
type GoalService interface {
	ListByTrainee(ctx context.Context, traineeID int64) ([]domain.Goal, error)
	// GetActiveForTrainee returns (nil, nil) when the trainee has no
	// active goal; "no active goal" is a normal outcome, not an error.
	GetActiveForTrainee(ctx context.Context, traineeID int64) (*domain.Goal, error)
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, id int64, goal *domain.Goal) error
	Delete(ctx context.Context, id int64) error
}

// --- Service Implementation ---

// goalService implements the GoalService interface.
type goalService struct {
	goalRepo    repository.GoalRepository
	traineeRepo repository.TraineeRepository
}

// NewGoalService creates a new instance of goalService.
func NewGoalService(goalRepo repository.GoalRepository, traineeRepo repository.TraineeRepository) GoalService {
	return &goalService{goalRepo: goalRepo, traineeRepo: traineeRepo}
}

func (s *goalService) ListByTrainee(ctx context.Context, traineeID int64) ([]domain.Goal, error) {
	return s.goalRepo.ListByTrainee(ctx, traineeID)
}

func (s *goalService) GetActiveForTrainee(ctx context.Context, traineeID int64) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetActiveByTrainee(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return goal, nil
}

// Create validates the goal type and the owning trainee, then persists
// the goal. When the incoming goal is active, the repository
// deactivates every other active goal of the same trainee atomically
// with the insert, so at most one goal per trainee is ever active.
func (s *goalService) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if !goal.GoalType.IsValid() {
		return nil, fmt.Errorf("%w: unknown goal type %q", ErrValidation, goal.GoalType)
	}

	// The existence check must be fresh at decision time; nothing is
	// cached across requests.
	exists, err := s.traineeRepo.Exists(ctx, goal.TraineeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: trainee with id %d does not exist", ErrValidation, goal.TraineeID)
	}

	if goal.StartDate.IsZero() {
		goal.StartDate = time.Now().UTC()
	}

	if _, err := s.goalRepo.Create(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrActiveGoalConflict) {
			return nil, ErrActiveGoalConflict
		}
		return nil, err
	}
	return goal, nil
}

// Update replaces the goal's mutable fields (type, start date, note,
// active flag). The owning trainee is immutable, and the exclusivity
// rule is re-applied when the update leaves the goal active.
func (s *goalService) Update(ctx context.Context, id int64, goal *domain.Goal) error {
	if goal.ID != id {
		return ErrIDMismatch
	}
	if !goal.GoalType.IsValid() {
		return fmt.Errorf("%w: unknown goal type %q", ErrValidation, goal.GoalType)
	}

	err := s.goalRepo.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		if errors.Is(err, repository.ErrActiveGoalConflict) {
			return ErrActiveGoalConflict
		}
		return err
	}
	return nil
}

// Delete removes the goal and, by cascade, its modules.
func (s *goalService) Delete(ctx context.Context, id int64) error {
	err := s.goalRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGoalNotFound
	}
	return err
}
