package postgres

import (
	"context"
	"errors"

	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const candidateColumns = `id, external_id::text, name, age, COALESCE(username, ''), email, main_skill, created_at, updated_at`

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, c *domain.CandidateRecord) error {
	query := `INSERT INTO candidates (external_id, name, age, email, main_skill)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, c.ExternalID, c.Name, c.Age, c.Email, c.MainSkill).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if _, ok := pgError(err, pgUniqueViolation); ok {
			return apperror.Conflict("Email already taken")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) List(ctx context.Context) ([]domain.CandidateRecord, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY id`
	return r.list(ctx, query)
}

func (r *candidateRepo) ListBySkill(ctx context.Context, skill string) ([]domain.CandidateRecord, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE main_skill = $1 ORDER BY id`
	return r.list(ctx, query, skill)
}

func (r *candidateRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.CandidateRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	candidates := []domain.CandidateRecord{}
	for rows.Next() {
		var c domain.CandidateRecord
		if err := scanCandidate(rows, &c); err != nil {
			return nil, apperror.Internal(err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateRecord, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	var c domain.CandidateRecord
	if err := scanCandidate(r.db.QueryRow(ctx, query, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &c, nil
}

func (r *candidateRepo) Update(ctx context.Context, c *domain.CandidateRecord) error {
	query := `UPDATE candidates
              SET name = $2, age = $3, email = $4, main_skill = $5, updated_at = NOW()
              WHERE id = $1
              RETURNING ` + candidateColumns
	if err := scanCandidate(r.db.QueryRow(ctx, query, c.ID, c.Name, c.Age, c.Email, c.MainSkill), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("Candidate not found")
		}
		if _, ok := pgError(err, pgUniqueViolation); ok {
			return apperror.Conflict("Email already taken")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Candidate not found")
	}
	return nil
}

func scanCandidate(row pgx.Row, c *domain.CandidateRecord) error {
	return row.Scan(&c.ID, &c.ExternalID, &c.Name, &c.Age, &c.Username, &c.Email, &c.MainSkill, &c.CreatedAt, &c.UpdatedAt)
}
