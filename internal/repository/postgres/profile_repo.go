package postgres

import (
	"context"
	"errors"

	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// Upsert relies on the UNIQUE(candidate_id) constraint, so concurrent calls
// for one candidate still leave a single row.
func (r *profileRepo) Upsert(ctx context.Context, p *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles
                  (candidate_id, schooling, institution, summary, main_skill, other_skills, experience)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              ON CONFLICT (candidate_id) DO UPDATE SET
                  schooling    = EXCLUDED.schooling,
                  institution  = EXCLUDED.institution,
                  summary      = EXCLUDED.summary,
                  main_skill   = EXCLUDED.main_skill,
                  other_skills = EXCLUDED.other_skills,
                  experience   = EXCLUDED.experience,
                  updated_at   = NOW()
              RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		p.CandidateID, p.Schooling, p.Institution, p.Summary, p.MainSkill, p.OtherSkills, p.Experience,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if _, ok := pgError(err, pgForeignKeyViolation); ok {
			return apperror.NotFound("Candidate not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *profileRepo) GetByCandidateID(ctx context.Context, candidateID string) (*domain.CandidateProfile, error) {
	query := `SELECT id, candidate_id::text, schooling, institution, summary, main_skill, other_skills, experience,
                     created_at, updated_at
              FROM candidate_profiles WHERE candidate_id = $1`

	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, candidateID).Scan(
		&p.ID, &p.CandidateID, &p.Schooling, &p.Institution, &p.Summary, &p.MainSkill, &p.OtherSkills,
		&p.Experience, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &p, nil
}
