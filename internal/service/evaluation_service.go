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
//
// There is no Delete: evaluations are append/amend-only through the API
// and are purged only by cascading deletion of their trainee.
type EvaluationService interface {
	List(ctx context.Context, traineeID *int64, page repository.Pagination) ([]domain.Evaluation, error)
	GetByID(ctx context.Context, id int64) (*domain.Evaluation, error)
	Create(ctx context.Context, evaluation *domain.Evaluation) (*domain.Evaluation, error)
	Update(ctx context.Context, id int64, evaluation *domain.Evaluation) error
}

// --- Service Implementation ---

// evaluationService implements the EvaluationService interface.
type evaluationService struct {
	evaluationRepo repository.EvaluationRepository
	traineeRepo    repository.TraineeRepository
}

// NewEvaluationService creates a new instance of evaluationService.
func NewEvaluationService(evaluationRepo repository.EvaluationRepository, traineeRepo repository.TraineeRepository) EvaluationService {
	return &evaluationService{evaluationRepo: evaluationRepo, traineeRepo: traineeRepo}
}

// afterTodayUTC reports whether t falls on a later UTC calendar day
// than the current one. The time-of-day component is ignored.
func afterTodayUTC(t time.Time) bool {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tu := t.UTC()
	day := time.Date(tu.Year(), tu.Month(), tu.Day(), 0, 0, 0, 0, time.UTC)
	return day.After(today)
}

func (s *evaluationService) List(ctx context.Context, traineeID *int64, page repository.Pagination) ([]domain.Evaluation, error) {
	return s.evaluationRepo.List(ctx, traineeID, page.Normalize())
}

func (s *evaluationService) GetByID(ctx context.Context, id int64) (*domain.Evaluation, error) {
	evaluation, err := s.evaluationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}
	return evaluation, nil
}

// Create validates the measurement date and the referenced trainee, in
// that order, before persisting anything.
func (s *evaluationService) Create(ctx context.Context, evaluation *domain.Evaluation) (*domain.Evaluation, error) {
	if afterTodayUTC(evaluation.Date) {
		return nil, fmt.Errorf("%w: measurement date cannot be in the future", ErrValidation)
	}

	exists, err := s.traineeRepo.Exists(ctx, evaluation.TraineeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: trainee with id %d does not exist", ErrValidation, evaluation.TraineeID)
	}

	if _, err := s.evaluationRepo.Create(ctx, evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

// Update replaces the measurement date, values and notes. The owning
// trainee is not part of the payload and is re-checked nowhere; only
// the future-date rule is re-validated.
func (s *evaluationService) Update(ctx context.Context, id int64, evaluation *domain.Evaluation) error {
	if afterTodayUTC(evaluation.Date) {
		return fmt.Errorf("%w: measurement date cannot be in the future", ErrValidation)
	}

	evaluation.ID = id
	err := s.evaluationRepo.Update(ctx, evaluation)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEvaluationNotFound
	}
	return err
}
