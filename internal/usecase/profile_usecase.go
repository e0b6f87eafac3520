package usecase

import (
	"context"

	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"
	"recruitment-api/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

// Upsert leaves exactly one profile for candidateID holding the values of input.
func (u *profileUsecase) Upsert(ctx context.Context, candidateID string, input domain.ProfileInput) (*domain.CandidateProfile, error) {
	if _, err := uuid.Parse(candidateID); err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	profile := &domain.CandidateProfile{
		CandidateID: candidateID,
		Schooling:   input.Schooling,
		Institution: input.Institution,
		Summary:     input.Summary,
		MainSkill:   input.MainSkill,
		OtherSkills: input.OtherSkills,
		Experience:  input.Experience,
	}
	if err := u.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) Get(ctx context.Context, candidateID string) (*domain.CandidateProfile, error) {
	if _, err := uuid.Parse(candidateID); err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	profile, err := u.repo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}
