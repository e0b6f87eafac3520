package usecase

import (
	"context"
	"strings"

	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"
	"recruitment-api/pkg/audit"
	"recruitment-api/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// bcrypt rejects longer input
const maxPasswordBytes = 72

type accountUsecase struct {
	kind     domain.AccountKind
	repo     domain.AccountRepository
	hasher   domain.PasswordHasher
	tokens   domain.TokenService
	audit    *audit.Logger
	validate *validator.Validate
}

// NewAccountUsecase builds the registration and login flow of one account kind.
func NewAccountUsecase(
	kind domain.AccountKind,
	repo domain.AccountRepository,
	hasher domain.PasswordHasher,
	tokens domain.TokenService,
	auditLogger *audit.Logger,
	validate *validator.Validate,
) domain.AccountUsecase {
	return &accountUsecase{
		kind:     kind,
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		audit:    auditLogger,
		validate: validate,
	}
}

func (u *accountUsecase) Kind() domain.AccountKind {
	return u.kind
}

func (u *accountUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Username = strings.TrimSpace(input.Username)
	input.Company = strings.TrimSpace(input.Company)
	input.Email = strings.TrimSpace(input.Email)
	if !u.kind.HasProfileFields() {
		input.Age, input.Username = 0, ""
	}
	if !u.kind.HasCompany() {
		input.Company = ""
	}

	if !u.complete(input) {
		return nil, apperror.BadRequest("Fill in all fields")
	}
	if input.Password != input.ConfirmPassword {
		return nil, apperror.BadRequest("Passwords do not match")
	}
	if len(input.Password) > maxPasswordBytes {
		return nil, apperror.BadRequest("Password must be at most 72 bytes")
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	if u.kind.HasProfileFields() {
		existing, err := u.repo.GetByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("User already taken")
		}
	}

	existing, err := u.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already taken")
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	account := &domain.Account{
		Kind:         u.kind,
		ExternalID:   uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         u.kind.DefaultRole(),
	}
	if u.kind.HasProfileFields() {
		account.Age = input.Age
		account.Username = input.Username
	}
	if u.kind.HasCompany() {
		account.Company = input.Company
	}

	// a concurrent duplicate surfaces here as a Conflict from the unique constraint
	if err := u.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	token, err := u.issue(account)
	if err != nil {
		return nil, err
	}

	u.audit.Registered(ctx, string(u.kind), account.Email)
	return &domain.AuthResult{Account: account, Token: token}, nil
}

func (u *accountUsecase) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, apperror.BadRequest("Fill in all fields")
	}

	account, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		u.audit.LoginFailed(ctx, string(u.kind), email, "not_found")
		return nil, apperror.Unauthorized(u.kind.Label() + " not found")
	}

	if !u.hasher.Compare(account.PasswordHash, input.Password) {
		u.audit.LoginFailed(ctx, string(u.kind), email, "invalid_password")
		return nil, apperror.Unauthorized("Invalid password")
	}

	token, err := u.issue(account)
	if err != nil {
		return nil, err
	}

	u.audit.LoginSucceeded(ctx, string(u.kind), email)
	return &domain.AuthResult{Account: account, Token: token}, nil
}

// complete reports whether every field the kind registers with is present.
func (u *accountUsecase) complete(input domain.RegisterInput) bool {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return false
	}
	if u.kind.HasProfileFields() && (input.Username == "" || input.Age <= 0) {
		return false
	}
	if u.kind.HasCompany() && input.Company == "" {
		return false
	}
	return true
}

func (u *accountUsecase) issue(account *domain.Account) (string, error) {
	claims := domain.TokenClaims{
		ID:    account.ExternalID,
		Email: account.Email,
	}
	if u.kind.EmbedsRole() {
		claims.Role = account.Role
	}

	token, err := u.tokens.Issue(claims)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return token, nil
}
