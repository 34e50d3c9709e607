package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"trainingms/training-api/internal/domain"
	"trainingms/training-api/internal/repository"
)

// pgGoalRepository implements repository.GoalRepository.
type pgGoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new Goal repository backed by PostgreSQL.
func NewGoalRepository(pool *pgxpool.Pool) repository.GoalRepository {
	return &pgGoalRepository{pool: pool}
}

const goalColumns = `id, trainee_id, goal_type, start_date, COALESCE(target_note, ''), is_active`

// translateGoalErr maps a unique violation on the partial active-goal
// index to ErrActiveGoalConflict. Any other error passes through.
func translateGoalErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == "goals_one_active_per_trainee" {
		return repository.ErrActiveGoalConflict
	}
	return err
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var g domain.Goal
	err := row.Scan(&g.ID, &g.TraineeID, &g.GoalType, &g.StartDate, &g.TargetNote, &g.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *pgGoalRepository) ListByTrainee(ctx context.Context, traineeID int64) ([]domain.Goal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE trainee_id = $1 ORDER BY start_date DESC`,
		traineeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.TraineeID, &g.GoalType, &g.StartDate, &g.TargetNote, &g.IsActive); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *pgGoalRepository) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id)
	return scanGoal(row)
}

func (r *pgGoalRepository) GetActiveByTrainee(ctx context.Context, traineeID int64) (*domain.Goal, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE trainee_id = $1 AND is_active`,
		traineeID,
	)
	return scanGoal(row)
}

func (r *pgGoalRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM goals WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// Create inserts the goal, deactivating all other active goals of the
// trainee in the same transaction when the new goal is active. The
// partial unique index goals_one_active_per_trainee serializes
// concurrent creators that race past the UPDATE.
func (r *pgGoalRepository) Create(ctx context.Context, goal *domain.Goal) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if goal.IsActive {
		_, err = tx.Exec(ctx,
			`UPDATE goals SET is_active = false WHERE trainee_id = $1 AND is_active`,
			goal.TraineeID,
		)
		if err != nil {
			return 0, err
		}
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO goals (trainee_id, goal_type, start_date, target_note, is_active)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		 RETURNING id`,
		goal.TraineeID, goal.GoalType, goal.StartDate, goal.TargetNote, goal.IsActive,
	).Scan(&goal.ID)
	if err != nil {
		return 0, translateGoalErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, translateGoalErr(err)
	}
	return goal.ID, nil
}

// Update replaces the mutable goal fields; trainee_id is deliberately
// absent from the SET list. When the goal is being (or staying) active,
// its siblings are deactivated inside the same transaction so the
// exclusivity invariant also holds across updates.
func (r *pgGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var traineeID int64
	err = tx.QueryRow(ctx,
		`SELECT trainee_id FROM goals WHERE id = $1 FOR UPDATE`, goal.ID,
	).Scan(&traineeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	if goal.IsActive {
		_, err = tx.Exec(ctx,
			`UPDATE goals SET is_active = false WHERE trainee_id = $1 AND is_active AND id <> $2`,
			traineeID, goal.ID,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE goals
		 SET goal_type = $1, start_date = $2, target_note = NULLIF($3, ''), is_active = $4
		 WHERE id = $5`,
		goal.GoalType, goal.StartDate, goal.TargetNote, goal.IsActive, goal.ID,
	)
	if err != nil {
		return translateGoalErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return translateGoalErr(err)
	}
	return nil
}

// Delete removes the goal; its modules go with it via ON DELETE CASCADE.
func (r *pgGoalRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
