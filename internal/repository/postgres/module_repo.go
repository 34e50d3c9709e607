package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"trainingms/training-api/internal/domain"
	"trainingms/training-api/internal/repository"
)

// pgModuleRepository implements repository.ModuleRepository.
type pgModuleRepository struct {
	pool *pgxpool.Pool
}

// NewModuleRepository creates a new Module repository backed by PostgreSQL.
func NewModuleRepository(pool *pgxpool.Pool) repository.ModuleRepository {
	return &pgModuleRepository{pool: pool}
}

const moduleColumns = `id, goal_id, type, duration_weeks, sessions_per_week, COALESCE(notes, ''), created_at`

// List returns modules ordered by creation time descending. The window
// is expected to be normalized by the caller.
func (r *pgModuleRepository) List(ctx context.Context, goalID *int64, page repository.Pagination) ([]domain.Module, error) {
	query := `SELECT ` + moduleColumns + ` FROM modules`
	args := []interface{}{}
	if goalID != nil {
		query += ` WHERE goal_id = $1`
		args = append(args, *goalID)
	}
	query += ` ORDER BY created_at DESC`

	// LIMIT/OFFSET placeholders follow the optional filter placeholder.
	switch len(args) {
	case 0:
		query += ` LIMIT $1 OFFSET $2`
	case 1:
		query += ` LIMIT $2 OFFSET $3`
	}
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []domain.Module
	for rows.Next() {
		var m domain.Module
		if err := rows.Scan(&m.ID, &m.GoalID, &m.Type, &m.DurationWeeks, &m.SessionsPerWeek, &m.Notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (r *pgModuleRepository) GetByID(ctx context.Context, id int64) (*domain.Module, error) {
	var m domain.Module
	err := r.pool.QueryRow(ctx, `SELECT `+moduleColumns+` FROM modules WHERE id = $1`, id).
		Scan(&m.ID, &m.GoalID, &m.Type, &m.DurationWeeks, &m.SessionsPerWeek, &m.Notes, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a new module with a server-assigned creation timestamp.
func (r *pgModuleRepository) Create(ctx context.Context, module *domain.Module) (int64, error) {
	module.CreatedAt = time.Now().UTC()

	err := r.pool.QueryRow(ctx,
		`INSERT INTO modules (goal_id, type, duration_weeks, sessions_per_week, notes, created_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING id`,
		module.GoalID, module.Type, module.DurationWeeks, module.SessionsPerWeek,
		module.Notes, module.CreatedAt,
	).Scan(&module.ID)
	if err != nil {
		return 0, err
	}
	return module.ID, nil
}

// Update replaces the mutable module fields. goal_id and created_at are
// deliberately absent from the SET list (overposting protection).
func (r *pgModuleRepository) Update(ctx context.Context, module *domain.Module) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE modules
		 SET type = $1, duration_weeks = $2, sessions_per_week = $3, notes = NULLIF($4, '')
		 WHERE id = $5`,
		module.Type, module.DurationWeeks, module.SessionsPerWeek, module.Notes, module.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgModuleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM modules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
