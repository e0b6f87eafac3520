package domain

import (
	"context"
	"time"
)

// AccountKind selects one of the account namespaces. Each kind has its own
// table, so email and username are unique per kind only.
type AccountKind string

const (
	AccountUser      AccountKind = "user"
	AccountCandidate AccountKind = "candidate"
	AccountRecruiter AccountKind = "recruiter"
)

// Label is the capitalized kind used in response messages.
func (k AccountKind) Label() string {
	switch k {
	case AccountCandidate:
		return "Candidate"
	case AccountRecruiter:
		return "Recruiter"
	default:
		return "User"
	}
}

// HasProfileFields reports whether the kind registers with username and age.
func (k AccountKind) HasProfileFields() bool {
	return k == AccountCandidate || k == AccountRecruiter
}

func (k AccountKind) HasCompany() bool {
	return k == AccountRecruiter
}

// DefaultRole is the role stored for new accounts of this kind.
func (k AccountKind) DefaultRole() Role {
	switch k {
	case AccountCandidate:
		return RoleCandidate
	case AccountRecruiter:
		return RoleRecruiter
	}
	return ""
}

// EmbedsRole reports whether issued tokens carry the role claim.
func (k AccountKind) EmbedsRole() bool {
	return k == AccountRecruiter
}

type Account struct {
	ID           int64       `json:"-"`
	Kind         AccountKind `json:"-"`
	ExternalID   string      `json:"externalId"`
	Name         string      `json:"name"`
	Age          int         `json:"age,omitempty"`
	Username     string      `json:"username,omitempty"`
	Company      string      `json:"company,omitempty"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// AccountSummary is the public view of an account returned by auth endpoints.
type AccountSummary struct {
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email"`
}

func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		Name:     a.Name,
		Username: a.Username,
		Company:  a.Company,
		Email:    a.Email,
	}
}

// RegisterInput fields not used by a kind are left empty and skipped by omitempty.
type RegisterInput struct {
	Name            string `json:"name" validate:"max=120,valid_name"`
	Age             int    `json:"age" validate:"gte=0,lte=120"`
	Username        string `json:"username" validate:"omitempty,max=50,no_emoji"`
	Company         string `json:"company" validate:"omitempty,max=120"`
	Email           string `json:"email" validate:"email,max=255"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by successful registration and login.
type AuthResult struct {
	Account *Account
	Token   string
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	// Lookups return (nil, nil) when no row matches.
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
}

type AccountUsecase interface {
	Kind() AccountKind
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
}
