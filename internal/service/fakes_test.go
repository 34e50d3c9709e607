package service

import (
	"context"
	"sort"
	"time"

	"trainingms/training-api/internal/domain"
	"trainingms/training-api/internal/repository"
)

// fakeStore is an in-memory stand-in for the PostgreSQL schema. It
// models the behavior the repositories guarantee: cascading deletes
// along the foreign keys, the transactional sibling deactivation on
// goal writes, and the immutable-column protection on updates.
type fakeStore struct {
	nextID      int64
	clock       time.Time
	trainees    map[int64]domain.Trainee
	goals       map[int64]domain.Goal
	modules     map[int64]domain.Module
	evaluations map[int64]domain.Evaluation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clock:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		trainees:    map[int64]domain.Trainee{},
		goals:       map[int64]domain.Goal{},
		modules:     map[int64]domain.Module{},
		evaluations: map[int64]domain.Evaluation{},
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

// now returns a strictly increasing timestamp so created_at ordering is
// deterministic in tests.
func (s *fakeStore) now() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// --- TraineeRepository ---

type fakeTraineeRepo struct {
	store *fakeStore
}

func (r *fakeTraineeRepo) List(ctx context.Context) ([]domain.Trainee, error) {
	var out []domain.Trainee
	for _, t := range r.store.trainees {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTraineeRepo) GetByID(ctx context.Context, id int64) (*domain.Trainee, error) {
	t, ok := r.store.trainees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTraineeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.store.trainees[id]
	return ok, nil
}

func (r *fakeTraineeRepo) Create(ctx context.Context, trainee *domain.Trainee) (int64, error) {
	trainee.ID = r.store.id()
	trainee.CreatedAt = r.store.now()
	r.store.trainees[trainee.ID] = *trainee
	return trainee.ID, nil
}

func (r *fakeTraineeRepo) Update(ctx context.Context, trainee *domain.Trainee) error {
	stored, ok := r.store.trainees[trainee.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.FullName = trainee.FullName
	stored.Sex = trainee.Sex
	stored.BirthDate = trainee.BirthDate
	stored.HeightCm = trainee.HeightCm
	stored.WeightKg = trainee.WeightKg
	r.store.trainees[trainee.ID] = stored
	return nil
}

func (r *fakeTraineeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.store.trainees[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.trainees, id)
	// FK cascade: goals (and their modules) and evaluations.
	for gid, g := range r.store.goals {
		if g.TraineeID == id {
			delete(r.store.goals, gid)
			for mid, m := range r.store.modules {
				if m.GoalID == gid {
					delete(r.store.modules, mid)
				}
			}
		}
	}
	for eid, e := range r.store.evaluations {
		if e.TraineeID == id {
			delete(r.store.evaluations, eid)
		}
	}
	return nil
}

// --- GoalRepository ---

type fakeGoalRepo struct {
	store *fakeStore
}

func (r *fakeGoalRepo) ListByTrainee(ctx context.Context, traineeID int64) ([]domain.Goal, error) {
	var out []domain.Goal
	for _, g := range r.store.goals {
		if g.TraineeID == traineeID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *fakeGoalRepo) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	g, ok := r.store.goals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (r *fakeGoalRepo) GetActiveByTrainee(ctx context.Context, traineeID int64) (*domain.Goal, error) {
	for _, g := range r.store.goals {
		if g.TraineeID == traineeID && g.IsActive {
			return &g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGoalRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.store.goals[id]
	return ok, nil
}

func (r *fakeGoalRepo) deactivateOthers(traineeID, exceptID int64) {
	for gid, g := range r.store.goals {
		if g.TraineeID == traineeID && g.IsActive && gid != exceptID {
			g.IsActive = false
			r.store.goals[gid] = g
		}
	}
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *domain.Goal) (int64, error) {
	if goal.IsActive {
		r.deactivateOthers(goal.TraineeID, 0)
	}
	goal.ID = r.store.id()
	r.store.goals[goal.ID] = *goal
	return goal.ID, nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *domain.Goal) error {
	stored, ok := r.store.goals[goal.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if goal.IsActive {
		r.deactivateOthers(stored.TraineeID, goal.ID)
	}
	stored.GoalType = goal.GoalType
	stored.StartDate = goal.StartDate
	stored.TargetNote = goal.TargetNote
	stored.IsActive = goal.IsActive
	r.store.goals[goal.ID] = stored
	return nil
}

func (r *fakeGoalRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.store.goals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.goals, id)
	for mid, m := range r.store.modules {
		if m.GoalID == id {
			delete(r.store.modules, mid)
		}
	}
	return nil
}

// --- ModuleRepository ---

type fakeModuleRepo struct {
	store    *fakeStore
	lastPage repository.Pagination
}

func (r *fakeModuleRepo) List(ctx context.Context, goalID *int64, page repository.Pagination) ([]domain.Module, error) {
	r.lastPage = page
	var out []domain.Module
	for _, m := range r.store.modules {
		if goalID == nil || m.GoalID == *goalID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return window(out, page), nil
}

func (r *fakeModuleRepo) GetByID(ctx context.Context, id int64) (*domain.Module, error) {
	m, ok := r.store.modules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r *fakeModuleRepo) Create(ctx context.Context, module *domain.Module) (int64, error) {
	module.ID = r.store.id()
	module.CreatedAt = r.store.now()
	r.store.modules[module.ID] = *module
	return module.ID, nil
}

func (r *fakeModuleRepo) Update(ctx context.Context, module *domain.Module) error {
	stored, ok := r.store.modules[module.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Type = module.Type
	stored.DurationWeeks = module.DurationWeeks
	stored.SessionsPerWeek = module.SessionsPerWeek
	stored.Notes = module.Notes
	r.store.modules[module.ID] = stored
	return nil
}

func (r *fakeModuleRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.store.modules[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.modules, id)
	return nil
}

// --- EvaluationRepository ---

type fakeEvaluationRepo struct {
	store    *fakeStore
	lastPage repository.Pagination
}

func (r *fakeEvaluationRepo) List(ctx context.Context, traineeID *int64, page repository.Pagination) ([]domain.Evaluation, error) {
	r.lastPage = page
	var out []domain.Evaluation
	for _, e := range r.store.evaluations {
		if traineeID == nil || e.TraineeID == *traineeID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return window(out, page), nil
}

func (r *fakeEvaluationRepo) GetByID(ctx context.Context, id int64) (*domain.Evaluation, error) {
	e, ok := r.store.evaluations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEvaluationRepo) Create(ctx context.Context, evaluation *domain.Evaluation) (int64, error) {
	evaluation.ID = r.store.id()
	evaluation.CreatedAt = r.store.now()
	r.store.evaluations[evaluation.ID] = *evaluation
	return evaluation.ID, nil
}

func (r *fakeEvaluationRepo) Update(ctx context.Context, evaluation *domain.Evaluation) error {
	stored, ok := r.store.evaluations[evaluation.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Date = evaluation.Date
	stored.WaistCm = evaluation.WaistCm
	stored.ArmCm = evaluation.ArmCm
	stored.WeightKg = evaluation.WeightKg
	stored.BodyFatPct = evaluation.BodyFatPct
	stored.Notes = evaluation.Notes
	r.store.evaluations[evaluation.ID] = stored
	return nil
}

func window[T any](items []T, page repository.Pagination) []T {
	offset := page.Offset()
	if offset >= len(items) {
		return nil
	}
	end := offset + page.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
