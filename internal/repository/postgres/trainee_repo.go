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

// pgTraineeRepository implements repository.TraineeRepository.
type pgTraineeRepository struct {
	pool *pgxpool.Pool
}

// NewTraineeRepository creates a new Trainee repository backed by PostgreSQL.
func NewTraineeRepository(pool *pgxpool.Pool) repository.TraineeRepository {
	return &pgTraineeRepository{pool: pool}
}

const traineeColumns = `id, full_name, COALESCE(sex, ''), birth_date, height_cm, weight_kg, created_at`

func scanTrainee(row pgx.Row) (*domain.Trainee, error) {
	var t domain.Trainee
	err := row.Scan(&t.ID, &t.FullName, &t.Sex, &t.BirthDate, &t.HeightCm, &t.WeightKg, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all trainees. The trainee collection is small by nature,
// so no pagination is applied.
func (r *pgTraineeRepository) List(ctx context.Context) ([]domain.Trainee, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+traineeColumns+` FROM trainees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainees []domain.Trainee
	for rows.Next() {
		var t domain.Trainee
		if err := rows.Scan(&t.ID, &t.FullName, &t.Sex, &t.BirthDate, &t.HeightCm, &t.WeightKg, &t.CreatedAt); err != nil {
			return nil, err
		}
		trainees = append(trainees, t)
	}
	return trainees, rows.Err()
}

func (r *pgTraineeRepository) GetByID(ctx context.Context, id int64) (*domain.Trainee, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+traineeColumns+` FROM trainees WHERE id = $1`, id)
	return scanTrainee(row)
}

func (r *pgTraineeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trainees WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// Create inserts a new trainee and returns the assigned identity.
// CreatedAt is server-assigned here and immutable afterwards.
func (r *pgTraineeRepository) Create(ctx context.Context, trainee *domain.Trainee) (int64, error) {
	trainee.CreatedAt = time.Now().UTC()

	err := r.pool.QueryRow(ctx,
		`INSERT INTO trainees (full_name, sex, birth_date, height_cm, weight_kg, created_at)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6)
		 RETURNING id`,
		trainee.FullName, trainee.Sex, trainee.BirthDate,
		trainee.HeightCm, trainee.WeightKg, trainee.CreatedAt,
	).Scan(&trainee.ID)
	if err != nil {
		return 0, err
	}
	return trainee.ID, nil
}

// Update replaces the mutable trainee fields. The id and created_at
// columns are deliberately absent from the SET list.
func (r *pgTraineeRepository) Update(ctx context.Context, trainee *domain.Trainee) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE trainees
		 SET full_name = $1, sex = NULLIF($2, ''), birth_date = $3, height_cm = $4, weight_kg = $5
		 WHERE id = $6`,
		trainee.FullName, trainee.Sex, trainee.BirthDate,
		trainee.HeightCm, trainee.WeightKg, trainee.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the trainee; goals, modules and evaluations go with it
// via the ON DELETE CASCADE foreign keys.
func (r *pgTraineeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trainees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
