package service

import (
	"context"
	"errors"

	"trainingms/training-api/internal/domain"
	"trainingms/training-api/internal/repository"
)

// --- Service Interface ---
type TraineeService interface {
	List(ctx context.Context) ([]domain.Trainee, error)
	GetByID(ctx context.Context, id int64) (*domain.Trainee, error)
	Create(ctx context.Context, trainee *domain.Trainee) (*domain.Trainee, error)
	Update(ctx context.Context, id int64, trainee *domain.Trainee) error
	Delete(ctx context.Context, id int64) error
}

// --- Service Implementation ---

// traineeService implements the TraineeService interface.
type traineeService struct {
	traineeRepo repository.TraineeRepository
}

// NewTraineeService creates a new instance of traineeService.
func NewTraineeService(traineeRepo repository.TraineeRepository) TraineeService {
	return &traineeService{traineeRepo: traineeRepo}
}

func (s *traineeService) List(ctx context.Context) ([]domain.Trainee, error) {
	return s.traineeRepo.List(ctx)
}

func (s *traineeService) GetByID(ctx context.Context, id int64) (*domain.Trainee, error) {
	trainee, err := s.traineeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTraineeNotFound
		}
		return nil, err
	}
	return trainee, nil
}

// Create persists a new trainee. The trainee has no parent entity, so
// no referential checks apply; identity and creation timestamp are
// assigned by the store.
func (s *traineeService) Create(ctx context.Context, trainee *domain.Trainee) (*domain.Trainee, error) {
	if _, err := s.traineeRepo.Create(ctx, trainee); err != nil {
		return nil, err
	}
	return trainee, nil
}

// Update replaces the trainee's mutable fields. The identity in the
// path must match the one in the payload; identity itself and the
// creation timestamp are immutable.
func (s *traineeService) Update(ctx context.Context, id int64, trainee *domain.Trainee) error {
	if trainee.ID != id {
		return ErrIDMismatch
	}
	err := s.traineeRepo.Update(ctx, trainee)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTraineeNotFound
	}
	return err
}

// Delete removes the trainee and, by cascade, every goal, module and
// evaluation it owns. The deletion is irreversible.
func (s *traineeService) Delete(ctx context.Context, id int64) error {
	err := s.traineeRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTraineeNotFound
	}
	return err
}
