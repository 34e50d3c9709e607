package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trainingms/training-api/internal/domain"
)

func newGoalFixture(t *testing.T) (GoalService, *fakeStore, int64) {
	t.Helper()
	store := newFakeStore()
	traineeRepo := &fakeTraineeRepo{store: store}
	trainee := &domain.Trainee{FullName: "Ana Pérez"}
	if _, err := traineeRepo.Create(context.Background(), trainee); err != nil {
		t.Fatalf("seed trainee: %v", err)
	}
	return NewGoalService(&fakeGoalRepo{store: store}, traineeRepo), store, trainee.ID
}

func activeGoals(store *fakeStore, traineeID int64) []domain.Goal {
	var out []domain.Goal
	for _, g := range store.goals {
		if g.TraineeID == traineeID && g.IsActive {
			out = append(out, g)
		}
	}
	return out
}

func TestGoalCreateActiveDeactivatesPrevious(t *testing.T) {
	svc, store, traineeID := newGoalFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &domain.Goal{
		TraineeID: traineeID,
		GoalType:  domain.GoalFatLoss,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create first goal: %v", err)
	}

	second, err := svc.Create(ctx, &domain.Goal{
		TraineeID: traineeID,
		GoalType:  domain.GoalStrength,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create second goal: %v", err)
	}

	if got := store.goals[first.ID]; got.IsActive {
		t.Error("first goal should have been deactivated")
	}
	if got := store.goals[second.ID]; !got.IsActive {
		t.Error("second goal should be active")
	}
	if n := len(activeGoals(store, traineeID)); n != 1 {
		t.Fatalf("active goals = %d, want 1", n)
	}
}

func TestGoalCreateInactiveLeavesActiveAlone(t *testing.T) {
	svc, store, traineeID := newGoalFixture(t)
	ctx := context.Background()

	active, err := svc.Create(ctx, &domain.Goal{
		TraineeID: traineeID,
		GoalType:  domain.GoalHypertrophy,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create active goal: %v", err)
	}

	if _, err := svc.Create(ctx, &domain.Goal{
		TraineeID: traineeID,
		GoalType:  domain.GoalEndurance,
		IsActive:  false,
	}); err != nil {
		t.Fatalf("create inactive goal: %v", err)
	}

	if got := store.goals[active.ID]; !got.IsActive {
		t.Error("existing active goal should remain active")
	}
}

func TestGoalCreateUnknownType(t *testing.T) {
	svc, store, traineeID := newGoalFixture(t)

	_, err := svc.Create(context.Background(), &domain.Goal{
		TraineeID: traineeID,
		GoalType:  "Flexibility",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(store.goals) != 0 {
		t.Error("no goal should have been persisted")
	}
}

func TestGoalCreateMissingTrainee(t *testing.T) {
	svc, store, traineeID := newGoalFixture(t)

	_, err := svc.Create(context.Background(), &domain.Goal{
		TraineeID: traineeID + 100,
		GoalType:  domain.GoalFatLoss,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(store.goals) != 0 {
		t.Error("no goal should have been persisted")
	}
}

func TestGoalCreateDefaultsStartDate(t *testing.T) {
	svc, _, traineeID := newGoalFixture(t)

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), &domain.Goal{
		TraineeID: traineeID,
		GoalType:  domain.GoalEndurance,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.StartDate.Before(before) || created.StartDate.After(time.Now().UTC()) {
		t.Errorf("StartDate = %v, want defaulted to now", created.StartDate)
	}
}

func TestGoalUpdateReappliesExclusivity(t *testing.T) {
	svc, store, traineeID := newGoalFixture(t)
	ctx := context.Background()

	active, err := svc.Create(ctx, &domain.Goal{
		TraineeID: traineeID,
		GoalType:  domain.GoalFatLoss,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create active goal: %v", err)
	}
	dormant, err := svc.Create(ctx, &domain.Goal{
		TraineeID: traineeID,
		GoalType:  domain.GoalStrength,
		IsActive:  false,
	})
	if err != nil {
		t.Fatalf("create dormant goal: %v", err)
	}

	err = svc.Update(ctx, dormant.ID, &domain.Goal{
		ID:        dormant.ID,
		GoalType:  domain.GoalStrength,
		StartDate: dormant.StartDate,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := store.goals[active.ID]; got.IsActive {
		t.Error("previously active goal should have been deactivated")
	}
	if got := store.goals[dormant.ID]; !got.IsActive {
		t.Error("updated goal should be active")
	}
	if n := len(activeGoals(store, traineeID)); n != 1 {
		t.Fatalf("active goals = %d, want 1", n)
	}
}

func TestGoalUpdateKeepsTrainee(t *testing.T) {
	svc, store, traineeID := newGoalFixture(t)
	ctx := context.Background()

	goal, err := svc.Create(ctx, &domain.Goal{
		TraineeID: traineeID,
		GoalType:  domain.GoalFatLoss,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A payload carrying a different trainee must not re-home the goal.
	err = svc.Update(ctx, goal.ID, &domain.Goal{
		ID:        goal.ID,
		TraineeID: traineeID + 7,
		GoalType:  domain.GoalFatLoss,
		StartDate: goal.StartDate,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := store.goals[goal.ID]; got.TraineeID != traineeID {
		t.Errorf("TraineeID = %d, want %d", got.TraineeID, traineeID)
	}
}

func TestGoalUpdateIDMismatch(t *testing.T) {
	svc, _, _ := newGoalFixture(t)

	err := svc.Update(context.Background(), 1, &domain.Goal{ID: 2, GoalType: domain.GoalFatLoss})
	if !errors.Is(err, ErrIDMismatch) {
		t.Fatalf("err = %v, want ErrIDMismatch", err)
	}
}

func TestGoalUpdateNotFound(t *testing.T) {
	svc, _, _ := newGoalFixture(t)

	err := svc.Update(context.Background(), 55, &domain.Goal{ID: 55, GoalType: domain.GoalStrength})
	if !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("err = %v, want ErrGoalNotFound", err)
	}
}

func TestGoalGetActiveForTraineeNone(t *testing.T) {
	svc, _, traineeID := newGoalFixture(t)

	goal, err := svc.GetActiveForTrainee(context.Background(), traineeID)
	if err != nil {
		t.Fatalf("GetActiveForTrainee: %v", err)
	}
	if goal != nil {
		t.Fatalf("goal = %+v, want nil", goal)
	}
}

func TestGoalDeleteCascadesModules(t *testing.T) {
	store := newFakeStore()
	traineeRepo := &fakeTraineeRepo{store: store}
	goalRepo := &fakeGoalRepo{store: store}
	goalSvc := NewGoalService(goalRepo, traineeRepo)
	moduleSvc := NewModuleService(&fakeModuleRepo{store: store}, goalRepo)
	ctx := context.Background()

	trainee := &domain.Trainee{FullName: "Ana Pérez"}
	if _, err := traineeRepo.Create(ctx, trainee); err != nil {
		t.Fatalf("seed trainee: %v", err)
	}
	goal, err := goalSvc.Create(ctx, &domain.Goal{TraineeID: trainee.ID, GoalType: domain.GoalFatLoss})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if _, err := moduleSvc.Create(ctx, &domain.Module{
		GoalID:          goal.ID,
		Type:            "Cardio",
		DurationWeeks:   4,
		SessionsPerWeek: 2,
	}); err != nil {
		t.Fatalf("create module: %v", err)
	}

	if err := goalSvc.Delete(ctx, goal.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.modules) != 0 {
		t.Errorf("modules remaining: %d", len(store.modules))
	}
}
