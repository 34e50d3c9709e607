package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trainingms/training-api/internal/domain"
	"trainingms/training-api/internal/repository"
)

// --- Service Interface ---
type ModuleService interface {
	List(ctx context.Context, goalID *int64, page repository.Pagination) ([]domain.Module, error)
	GetByID(ctx context.Context, id int64) (*domain.Module, error)
	Create(ctx context.Context, module *domain.Module) (*domain.Module, error)
	// Update replaces type, duration, sessions and notes. The owning
	// goal and the creation timestamp are not part of the contract and
	// can never be changed through it.
	Update(ctx context.Context, id int64, moduleType string, durationWeeks, sessionsPerWeek int, notes string) error
	Delete(ctx context.Context, id int64) error
}

// --- Service Implementation ---

// moduleService implements the ModuleService interface.
type moduleService struct {
	moduleRepo repository.ModuleRepository
	goalRepo   repository.GoalRepository
}

// NewModuleService creates a new instance of moduleService.
func NewModuleService(moduleRepo repository.ModuleRepository, goalRepo repository.GoalRepository) ModuleService {
	return &moduleService{moduleRepo: moduleRepo, goalRepo: goalRepo}
}

func (s *moduleService) List(ctx context.Context, goalID *int64, page repository.Pagination) ([]domain.Module, error) {
	return s.moduleRepo.List(ctx, goalID, page.Normalize())
}

func (s *moduleService) GetByID(ctx context.Context, id int64) (*domain.Module, error) {
	module, err := s.moduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}
	return module, nil
}

// Create validates the duration/sessions floor and the referenced goal,
// in that order, before persisting anything. The boundary layer already
// range-checks the input; the floor is re-enforced here regardless.
func (s *moduleService) Create(ctx context.Context, module *domain.Module) (*domain.Module, error) {
	if module.DurationWeeks < 1 || module.SessionsPerWeek < 1 {
		return nil, fmt.Errorf("%w: duration weeks and sessions per week must be >= 1", ErrValidation)
	}

	exists, err := s.goalRepo.Exists(ctx, module.GoalID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: goal with id %d does not exist", ErrValidation, module.GoalID)
	}

	module.Type = strings.TrimSpace(module.Type)

	if _, err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *moduleService) Update(ctx context.Context, id int64, moduleType string, durationWeeks, sessionsPerWeek int, notes string) error {
	moduleType = strings.TrimSpace(moduleType)
	if moduleType == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	if durationWeeks < 1 || sessionsPerWeek < 1 {
		return fmt.Errorf("%w: duration weeks and sessions per week must be >= 1", ErrValidation)
	}

	err := s.moduleRepo.Update(ctx, &domain.Module{
		ID:              id,
		Type:            moduleType,
		DurationWeeks:   durationWeeks,
		SessionsPerWeek: sessionsPerWeek,
		Notes:           notes,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrModuleNotFound
	}
	return err
}

func (s *moduleService) Delete(ctx context.Context, id int64) error {
	err := s.moduleRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrModuleNotFound
	}
	return err
}
