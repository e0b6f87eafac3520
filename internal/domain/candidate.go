package domain

import (
	"context"
	"time"
)

// CandidateRecord is the CRUD view of a row in the candidates table.
type CandidateRecord struct {
	ID         int64     `json:"id"`
	ExternalID string    `json:"externalId"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Username   string    `json:"username,omitempty"`
	Email      string    `json:"email"`
	MainSkill  string    `json:"mainSkill"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CandidateInput struct {
	Name      string `json:"name" validate:"required,max=120,valid_name"`
	Age       int    `json:"age" validate:"gte=0,lte=120"`
	Email     string `json:"email" validate:"required,email,max=255"`
	MainSkill string `json:"mainSkill" validate:"max=100,no_emoji"`
}

// ExportFormats lists the formats accepted by CandidateUsecase.Export; the first is the default.
var ExportFormats = []string{"xlsx", "csv"}

type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *CandidateRecord) error
	List(ctx context.Context) ([]CandidateRecord, error)
	ListBySkill(ctx context.Context, skill string) ([]CandidateRecord, error)
	// GetByID returns (nil, nil) when the candidate does not exist.
	GetByID(ctx context.Context, id int64) (*CandidateRecord, error)
	Update(ctx context.Context, candidate *CandidateRecord) error
	Delete(ctx context.Context, id int64) error
}

type CandidateUsecase interface {
	Create(ctx context.Context, input CandidateInput) (*CandidateRecord, error)
	List(ctx context.Context) ([]CandidateRecord, error)
	ListBySkill(ctx context.Context, skill string) ([]CandidateRecord, error)
	Get(ctx context.Context, id int64) (*CandidateRecord, error)
	Update(ctx context.Context, id int64, input CandidateInput) (*CandidateRecord, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, format string) (*ExportFile, error)
}
