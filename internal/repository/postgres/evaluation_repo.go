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

// pgEvaluationRepository implements repository.EvaluationRepository.
type pgEvaluationRepository struct {
	pool *pgxpool.Pool
}

// NewEvaluationRepository creates a new Evaluation repository backed by PostgreSQL.
func NewEvaluationRepository(pool *pgxpool.Pool) repository.EvaluationRepository {
	return &pgEvaluationRepository{pool: pool}
}

const evaluationColumns = `id, trainee_id, date, waist_cm, arm_cm, weight_kg, body_fat_pct, COALESCE(notes, ''), created_at`

// List returns evaluations ordered by measurement date descending,
// served by the (trainee_id, date) index when filtered. The window is
// expected to be normalized by the caller.
func (r *pgEvaluationRepository) List(ctx context.Context, traineeID *int64, page repository.Pagination) ([]domain.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations`
	args := []interface{}{}
	if traineeID != nil {
		query += ` WHERE trainee_id = $1`
		args = append(args, *traineeID)
	}
	query += ` ORDER BY date DESC`

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

	var evaluations []domain.Evaluation
	for rows.Next() {
		var e domain.Evaluation
		if err := rows.Scan(&e.ID, &e.TraineeID, &e.Date, &e.WaistCm, &e.ArmCm, &e.WeightKg, &e.BodyFatPct, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		evaluations = append(evaluations, e)
	}
	return evaluations, rows.Err()
}

func (r *pgEvaluationRepository) GetByID(ctx context.Context, id int64) (*domain.Evaluation, error) {
	var e domain.Evaluation
	err := r.pool.QueryRow(ctx, `SELECT `+evaluationColumns+` FROM evaluations WHERE id = $1`, id).
		Scan(&e.ID, &e.TraineeID, &e.Date, &e.WaistCm, &e.ArmCm, &e.WeightKg, &e.BodyFatPct, &e.Notes, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Create inserts a new evaluation with a server-assigned creation timestamp.
func (r *pgEvaluationRepository) Create(ctx context.Context, evaluation *domain.Evaluation) (int64, error) {
	evaluation.CreatedAt = time.Now().UTC()

	err := r.pool.QueryRow(ctx,
		`INSERT INTO evaluations (trainee_id, date, waist_cm, arm_cm, weight_kg, body_fat_pct, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
		 RETURNING id`,
		evaluation.TraineeID, evaluation.Date, evaluation.WaistCm, evaluation.ArmCm,
		evaluation.WeightKg, evaluation.BodyFatPct, evaluation.Notes, evaluation.CreatedAt,
	).Scan(&evaluation.ID)
	if err != nil {
		return 0, err
	}
	return evaluation.ID, nil
}

// Update replaces the mutable evaluation fields. trainee_id and
// created_at are deliberately absent from the SET list.
func (r *pgEvaluationRepository) Update(ctx context.Context, evaluation *domain.Evaluation) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE evaluations
		 SET date = $1, waist_cm = $2, arm_cm = $3, weight_kg = $4, body_fat_pct = $5, notes = NULLIF($6, '')
		 WHERE id = $7`,
		evaluation.Date, evaluation.WaistCm, evaluation.ArmCm, evaluation.WeightKg,
		evaluation.BodyFatPct, evaluation.Notes, evaluation.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
