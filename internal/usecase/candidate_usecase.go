package usecase

import (
	"context"
	"strings"

	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"
	"recruitment-api/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) Create(ctx context.Context, input domain.CandidateInput) (*domain.CandidateRecord, error) {
	if err := u.check(&input); err != nil {
		return nil, err
	}

	candidate := &domain.CandidateRecord{
		ExternalID: uuid.NewString(),
		Name:       input.Name,
		Age:        input.Age,
		Email:      input.Email,
		MainSkill:  input.MainSkill,
	}
	if err := u.repo.Create(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) List(ctx context.Context) ([]domain.CandidateRecord, error) {
	return u.repo.List(ctx)
}

func (u *candidateUsecase) ListBySkill(ctx context.Context, skill string) ([]domain.CandidateRecord, error) {
	return u.repo.ListBySkill(ctx, strings.TrimSpace(skill))
}

func (u *candidateUsecase) Get(ctx context.Context, id int64) (*domain.CandidateRecord, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) Update(ctx context.Context, id int64, input domain.CandidateInput) (*domain.CandidateRecord, error) {
	candidate, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.check(&input); err != nil {
		return nil, err
	}

	candidate.Name = input.Name
	candidate.Age = input.Age
	candidate.Email = input.Email
	candidate.MainSkill = input.MainSkill

	if err := u.repo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// check trims input in place and validates it.
func (u *candidateUsecase) check(input *domain.CandidateInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.MainSkill = strings.TrimSpace(input.MainSkill)

	if input.Name == "" || input.Email == "" {
		return apperror.BadRequest("Fill in all fields")
	}
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}
	return nil
}
